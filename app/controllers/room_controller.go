package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/jfeng32/polypop-backend/app/models"
	"github.com/jfeng32/polypop-backend/platform/cache"
	"github.com/jfeng32/polypop-backend/platform/database"
	"github.com/jfeng32/polypop-backend/platform/queries"
)

func CreateRoom(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	roomCreateDto := new(models.RoomCreateDto)
	if err := c.BodyParser(roomCreateDto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	conn, err := cache.CreateRedisConnection()
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	defer conn.Close()

	room, err := queries.CreateRoom(roomCreateDto.Name, roomCreateDto.Passcode, db, &conn)
	if err != nil {
		logrus.WithError(err).Error("failed creating room")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{"id": room.Id})
}

func VerifyRoom(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	verifyRoomDto := new(models.VerifyRoomDto)
	if err := c.QueryParser(verifyRoomDto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if !queries.VerifyRoom(verifyRoomDto.Code, db) {
		return c.JSON(fiber.Map{"status": false})
	}
	return c.JSON(fiber.Map{"status": queries.CheckPasscode(verifyRoomDto.Code, verifyRoomDto.Passcode, db)})
}

func GetAllOpenRooms(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	rooms, err := queries.ListOpenRooms(db)
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(rooms)
}

func FindOpenRoom(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	conn, err := cache.CreateRedisConnection()
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	defer conn.Close()

	room, err := queries.FindOpenRoom(db, &conn)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.JSON(fiber.Map{"id": room.Id})
}
