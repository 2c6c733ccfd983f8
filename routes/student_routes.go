package routes

import (
	"github.com/anjiri1684/course_enrollment/handlers"
	"github.com/gofiber/fiber/v2"
)

func StudentRoutes(app *fiber.App) {
	students := app.Group("/students")
	students.Post("/", handlers.CreateStudent)
	students.Get("/", handlers.ListStudents)
	students.Get("/:studentId", handlers.GetStudent)
	students.Put("/:studentId", handlers.UpdateStudent)
	students.Delete("/:studentId", handlers.DeleteStudent)

	students.Get("/:studentId/transcript", handlers.GetStudentTranscript)
	students.Get("/:studentId/transcript/pdf", handlers.GetStudentTranscriptPDF)
	students.Post("/:studentId/transcript/publish", handlers.PublishStudentTranscript)
	students.Get("/:studentId/transcripts", handlers.ListStudentTranscripts)
}
