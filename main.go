package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"

	"github.com/jfeng32/polypop-backend/app/controllers"
	"github.com/jfeng32/polypop-backend/pkg/routes"
	"github.com/jfeng32/polypop-backend/platform/config"
	"github.com/jfeng32/polypop-backend/platform/logging"
	socket "github.com/jfeng32/polypop-backend/platform/sockets"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatal(err)
	}
	logging.Init()

	app := fiber.New()

	app.Use(cors.New())
	routes.AuthRoutes(app)
	routes.RoomRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(config.C.JWTSecret),
	}))

	app.Get("/user/cur", controllers.Cur)
	go socket.CreateSocketIOServer()
	app.Listen(config.C.HTTPAddr)
}
