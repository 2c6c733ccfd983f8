package handlers

import (
	"fmt"

	"github.com/anjiri1684/course_enrollment/database"
	"github.com/anjiri1684/course_enrollment/services"
	"github.com/anjiri1684/course_enrollment/websocket"
	"github.com/gofiber/fiber/v2"
)

// RenderPDF is swapped out in tests so no browser is needed.
var RenderPDF services.PDFRenderer = services.RenderPDFWithChrome

func GetStudentTranscript(c *fiber.Ctx) error {
	id, err := parseID(c, "studentId")
	if err != nil {
		return respondError(c, err)
	}

	report, err := services.BuildTranscript(c.UserContext(), database.DB, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

func GetStudentTranscriptPDF(c *fiber.Ctx) error {
	id, err := parseID(c, "studentId")
	if err != nil {
		return respondError(c, err)
	}

	pdf, err := services.RenderTranscriptPDF(c.UserContext(), database.DB, RenderPDF, id)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="transcript_%d.pdf"`, id))
	return c.Send(pdf)
}

func PublishStudentTranscript(c *fiber.Ctx) error {
	id, err := parseID(c, "studentId")
	if err != nil {
		return respondError(c, err)
	}

	transcript, err := services.PublishTranscript(c.UserContext(), database.DB, RenderPDF, services.TranscriptStore, id)
	if err != nil {
		return respondError(c, err)
	}

	websocket.Publish("transcript.published", transcript.ID, transcript)
	return c.Status(fiber.StatusCreated).JSON(transcript)
}

func ListStudentTranscripts(c *fiber.Ctx) error {
	id, err := parseID(c, "studentId")
	if err != nil {
		return respondError(c, err)
	}

	transcripts, err := services.ListStudentTranscripts(c.UserContext(), database.DB, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(transcripts)
}
