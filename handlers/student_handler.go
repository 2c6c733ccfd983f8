package handlers

import (
	"github.com/anjiri1684/course_enrollment/database"
	"github.com/anjiri1684/course_enrollment/services"
	"github.com/anjiri1684/course_enrollment/websocket"
	"github.com/gofiber/fiber/v2"
)

func CreateStudent(c *fiber.Ctx) error {
	var req services.StudentInput
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	student, err := services.CreateStudent(c.UserContext(), database.DB, req)
	if err != nil {
		return respondError(c, err)
	}

	websocket.Publish("student.created", student.ID, student)
	return c.Status(fiber.StatusCreated).JSON(student)
}

func ListStudents(c *fiber.Ctx) error {
	students, err := services.ListStudents(c.UserContext(), database.DB, pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(students)
}

func GetStudent(c *fiber.Ctx) error {
	id, err := parseID(c, "studentId")
	if err != nil {
		return respondError(c, err)
	}

	student, err := services.GetStudent(c.UserContext(), database.DB, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(student)
}

func UpdateStudent(c *fiber.Ctx) error {
	id, err := parseID(c, "studentId")
	if err != nil {
		return respondError(c, err)
	}
	var req services.StudentInput
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	student, err := services.UpdateStudent(c.UserContext(), database.DB, id, req)
	if err != nil {
		return respondError(c, err)
	}

	websocket.Publish("student.updated", student.ID, student)
	return c.JSON(student)
}

func DeleteStudent(c *fiber.Ctx) error {
	id, err := parseID(c, "studentId")
	if err != nil {
		return respondError(c, err)
	}

	if err := services.DeleteStudent(c.UserContext(), database.DB, id); err != nil {
		return respondError(c, err)
	}

	websocket.Publish("student.deleted", id, nil)
	return deleted(c, "Student")
}
