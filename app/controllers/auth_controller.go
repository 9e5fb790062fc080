package controllers

import (
	jwt "github.com/form3tech-oss/jwt-go"
	"github.com/gofiber/fiber/v2"
	uuid "github.com/satori/go.uuid"

	"github.com/jfeng32/polypop-backend/app/models"
	"github.com/jfeng32/polypop-backend/platform/config"
)

// Guest hands out a participant identity. There are no accounts; the
// backend mints the id and a token carrying it.
func Guest(c *fiber.Ctx) error {
	guestDto := new(models.GuestDto)
	if err := c.BodyParser(guestDto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	id := uuid.NewV4().String()
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = id
	claims["name"] = guestDto.Name
	t, err := token.SignedString([]byte(config.C.JWTSecret))
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{"access_token": t, "user_id": id})
}

func Cur(c *fiber.Ctx) error {
	user := c.Locals("user").(*jwt.Token)
	claims := user.Claims.(jwt.MapClaims)
	user_id := claims["user_id"].(string)
	return c.SendString(user_id)
}
