package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jfeng32/polypop-backend/app/controllers"
)

func RoomRoutes(a *fiber.App) {
	route := a.Group("/room")
	route.Post("/create", controllers.CreateRoom)
	route.Get("/verify", controllers.VerifyRoom)
	route.Get("/all", controllers.GetAllOpenRooms)
	route.Get("/find", controllers.FindOpenRoom)
}
