package routes

import (
	"github.com/anjiri1684/course_enrollment/handlers"
	"github.com/gofiber/fiber/v2"
)

func EnrollmentRoutes(app *fiber.App) {
	enrollments := app.Group("/enrollments")
	enrollments.Post("/", handlers.CreateEnrollment)
	enrollments.Get("/", handlers.ListEnrollments)
	enrollments.Get("/student/:studentId", handlers.ListStudentEnrollments)
	enrollments.Get("/course/:courseId", handlers.ListCourseEnrollments)
	enrollments.Get("/:enrollmentId", handlers.GetEnrollment)
	enrollments.Delete("/:enrollmentId", handlers.DeleteEnrollment)
}
