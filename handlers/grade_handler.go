package handlers

import (
	"fmt"
	"time"

	"github.com/anjiri1684/course_enrollment/database"
	"github.com/anjiri1684/course_enrollment/notifications"
	"github.com/anjiri1684/course_enrollment/services"
	"github.com/anjiri1684/course_enrollment/websocket"
	"github.com/gofiber/fiber/v2"
)

func CreateGrade(c *fiber.Ctx) error {
	var req services.GradeInput
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	grade, err := services.CreateGrade(c.UserContext(), database.DB, req)
	if err != nil {
		return respondError(c, err)
	}

	websocket.Publish("grade.created", grade.ID, grade)
	if notifications.EmailClient != nil {
		go services.NotifyGradeRecorded(database.DB, grade, false)
	}
	return c.Status(fiber.StatusCreated).JSON(grade)
}

func ListGrades(c *fiber.Ctx) error {
	grades, err := services.ListGrades(c.UserContext(), database.DB, pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(grades)
}

func GetGrade(c *fiber.Ctx) error {
	id, err := parseID(c, "gradeId")
	if err != nil {
		return respondError(c, err)
	}

	grade, err := services.GetGrade(c.UserContext(), database.DB, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(grade)
}

func GetEnrollmentGrade(c *fiber.Ctx) error {
	enrollmentID, err := parseID(c, "enrollmentId")
	if err != nil {
		return respondError(c, err)
	}

	grade, err := services.GetGradeByEnrollment(c.UserContext(), database.DB, enrollmentID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(grade)
}

func UpdateGrade(c *fiber.Ctx) error {
	id, err := parseID(c, "gradeId")
	if err != nil {
		return respondError(c, err)
	}
	var req services.GradeUpdateInput
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	grade, err := services.UpdateGrade(c.UserContext(), database.DB, id, req)
	if err != nil {
		return respondError(c, err)
	}

	websocket.Publish("grade.updated", grade.ID, grade)
	if notifications.EmailClient != nil {
		go services.NotifyGradeRecorded(database.DB, grade, true)
	}
	return c.JSON(grade)
}

func DeleteGrade(c *fiber.Ctx) error {
	id, err := parseID(c, "gradeId")
	if err != nil {
		return respondError(c, err)
	}

	if err := services.DeleteGrade(c.UserContext(), database.DB, id); err != nil {
		return respondError(c, err)
	}

	websocket.Publish("grade.deleted", id, nil)
	return deleted(c, "Grade")
}

func ExportGrades(c *fiber.Ctx) error {
	f, err := services.ExportGrades(c.UserContext(), database.DB)
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return respondError(c, fmt.Errorf("write grade workbook: %w", err))
	}

	fileName := fmt.Sprintf("grades_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return c.Send(buf.Bytes())
}
