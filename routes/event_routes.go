package routes

import (
	"github.com/anjiri1684/course_enrollment/middleware"
	"github.com/anjiri1684/course_enrollment/websocket"
	contribws "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func EventRoutes(app *fiber.App) {
	ws := app.Group("/ws", middleware.WebSocketUpgradeRequired())
	ws.Get("/events", contribws.New(websocket.ServeEvents))
}
