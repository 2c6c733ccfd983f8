package routes

import (
	"github.com/anjiri1684/course_enrollment/handlers"
	"github.com/gofiber/fiber/v2"
)

func GradeRoutes(app *fiber.App) {
	grades := app.Group("/grades")
	grades.Post("/", handlers.CreateGrade)
	grades.Get("/", handlers.ListGrades)
	grades.Get("/export", handlers.ExportGrades)
	grades.Get("/enrollment/:enrollmentId", handlers.GetEnrollmentGrade)
	grades.Get("/:gradeId", handlers.GetGrade)
	grades.Put("/:gradeId", handlers.UpdateGrade)
	grades.Delete("/:gradeId", handlers.DeleteGrade)
}
