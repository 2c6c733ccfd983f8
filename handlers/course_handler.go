package handlers

import (
	"github.com/anjiri1684/course_enrollment/database"
	"github.com/anjiri1684/course_enrollment/services"
	"github.com/anjiri1684/course_enrollment/websocket"
	"github.com/gofiber/fiber/v2"
)

func CreateCourse(c *fiber.Ctx) error {
	var req services.CourseInput
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	course, err := services.CreateCourse(c.UserContext(), database.DB, req)
	if err != nil {
		return respondError(c, err)
	}

	websocket.Publish("course.created", course.ID, course)
	return c.Status(fiber.StatusCreated).JSON(course)
}

func ListCourses(c *fiber.Ctx) error {
	courses, err := services.ListCourses(c.UserContext(), database.DB, pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(courses)
}

func GetCourse(c *fiber.Ctx) error {
	id, err := parseID(c, "courseId")
	if err != nil {
		return respondError(c, err)
	}

	course, err := services.GetCourse(c.UserContext(), database.DB, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(course)
}

func UpdateCourse(c *fiber.Ctx) error {
	id, err := parseID(c, "courseId")
	if err != nil {
		return respondError(c, err)
	}
	var req services.CourseInput
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	course, err := services.UpdateCourse(c.UserContext(), database.DB, id, req)
	if err != nil {
		return respondError(c, err)
	}

	websocket.Publish("course.updated", course.ID, course)
	return c.JSON(course)
}

func DeleteCourse(c *fiber.Ctx) error {
	id, err := parseID(c, "courseId")
	if err != nil {
		return respondError(c, err)
	}

	if err := services.DeleteCourse(c.UserContext(), database.DB, id); err != nil {
		return respondError(c, err)
	}

	websocket.Publish("course.deleted", id, nil)
	return deleted(c, "Course")
}
