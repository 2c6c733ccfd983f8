package routes

import (
	"log"
	"time"

	"github.com/anjiri1684/course_enrollment/handlers"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

type AppConfig struct {
	CORSOrigins string
	TimeZone    string
	AccessLog   bool
}

// NewApp builds the fiber application with middleware and every route
// registered.
func NewApp(cfg AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		Prefork:       false,
		AppName:       "Course Enrollment API",
		CaseSensitive: true,
		StrictRouting: false,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := handlers.StatusFor(err)
			message := err.Error()
			if code == fiber.StatusInternalServerError {
				log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
				message = "Internal server error"
			}
			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})

	origins := cfg.CORSOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
		MaxAge:       86400,
	}))
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	if cfg.AccessLog {
		timeZone := cfg.TimeZone
		if timeZone == "" {
			timeZone = "UTC"
		}
		app.Use(logger.New(logger.Config{
			TimeFormat: "2006-01-02 15:04:05",
			TimeZone:   timeZone,
			Format:     "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}

	app.Get("/", handlers.Welcome)
	app.Get("/health", handlers.HealthCheck)

	StudentRoutes(app)
	CourseRoutes(app)
	EnrollmentRoutes(app)
	GradeRoutes(app)
	EventRoutes(app)

	return app
}
