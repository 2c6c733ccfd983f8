package handlers

import (
	"github.com/anjiri1684/course_enrollment/database"
	"github.com/anjiri1684/course_enrollment/services"
	"github.com/anjiri1684/course_enrollment/websocket"
	"github.com/gofiber/fiber/v2"
)

func CreateEnrollment(c *fiber.Ctx) error {
	var req services.EnrollmentInput
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	enrollment, err := services.CreateEnrollment(c.UserContext(), database.DB, req)
	if err != nil {
		return respondError(c, err)
	}

	websocket.Publish("enrollment.created", enrollment.ID, enrollment)
	return c.Status(fiber.StatusCreated).JSON(enrollment)
}

func ListEnrollments(c *fiber.Ctx) error {
	enrollments, err := services.ListEnrollments(c.UserContext(), database.DB, pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(enrollments)
}

func GetEnrollment(c *fiber.Ctx) error {
	id, err := parseID(c, "enrollmentId")
	if err != nil {
		return respondError(c, err)
	}

	enrollment, err := services.GetEnrollment(c.UserContext(), database.DB, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(enrollment)
}

func ListStudentEnrollments(c *fiber.Ctx) error {
	studentID, err := parseID(c, "studentId")
	if err != nil {
		return respondError(c, err)
	}

	enrollments, err := services.ListEnrollmentsByStudent(c.UserContext(), database.DB, studentID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(enrollments)
}

func ListCourseEnrollments(c *fiber.Ctx) error {
	courseID, err := parseID(c, "courseId")
	if err != nil {
		return respondError(c, err)
	}

	enrollments, err := services.ListEnrollmentsByCourse(c.UserContext(), database.DB, courseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(enrollments)
}

func DeleteEnrollment(c *fiber.Ctx) error {
	id, err := parseID(c, "enrollmentId")
	if err != nil {
		return respondError(c, err)
	}

	if err := services.DeleteEnrollment(c.UserContext(), database.DB, id); err != nil {
		return respondError(c, err)
	}

	websocket.Publish("enrollment.deleted", id, nil)
	return deleted(c, "Enrollment")
}
