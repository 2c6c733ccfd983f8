package routes

import (
	"github.com/anjiri1684/course_enrollment/handlers"
	"github.com/gofiber/fiber/v2"
)

func CourseRoutes(app *fiber.App) {
	courses := app.Group("/courses")
	courses.Post("/", handlers.CreateCourse)
	courses.Get("/", handlers.ListCourses)
	courses.Get("/:courseId", handlers.GetCourse)
	courses.Put("/:courseId", handlers.UpdateCourse)
	courses.Delete("/:courseId", handlers.DeleteCourse)
}
