package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jfeng32/polypop-backend/app/controllers"
)

func AuthRoutes(a *fiber.App) {
	route := a.Group("/user")
	route.Post("/guest", controllers.Guest)
}
