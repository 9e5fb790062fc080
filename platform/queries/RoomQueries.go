package queries

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-pg/pg/v10"
	"github.com/gomodule/redigo/redis"
	"golang.org/x/crypto/bcrypt"

	"github.com/jfeng32/polypop-backend/app/models"
	"github.com/jfeng32/polypop-backend/pkg"
	"github.com/jfeng32/polypop-backend/platform/cache"
)

const maxPlayers = 8

func roomKey(code string) string {
	return fmt.Sprintf("room.%s", code)
}

// CreateRoom registers a room under a fresh join code. A non-empty
// passcode makes the room private; only its bcrypt hash is stored.
func CreateRoom(name string, passcode string, db *pg.DB, conn *redis.Conn) (*models.Room, error) {
	room := &models.Room{Id: pkg.RandCode(4), Name: name, Status: "open"}
	if passcode != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		room.PasscodeHash = string(hash)
	}
	if _, err := db.Model(room).Insert(); err != nil {
		return nil, err
	}
	cache.HSET(roomKey(room.Id), "players", 0, conn)
	cache.HSET(roomKey(room.Id), "status", "open", conn)
	return room, nil
}

func VerifyRoom(code string, db *pg.DB) bool {
	room := &models.Room{Id: code}
	return db.Model(room).WherePK().Select() == nil
}

// CheckPasscode verifies a join attempt against a private room. Rooms
// without a passcode accept anyone.
func CheckPasscode(code string, passcode string, db *pg.DB) bool {
	room := &models.Room{Id: code}
	if err := db.Model(room).WherePK().Select(); err != nil {
		return false
	}
	if room.PasscodeHash == "" {
		return true
	}
	return bcrypt.CompareHashAndPassword([]byte(room.PasscodeHash), []byte(passcode)) == nil
}

func ListOpenRooms(db *pg.DB) ([]models.Room, error) {
	var rooms []models.Room
	err := db.Model(&rooms).Where("status = ?", "open").Select()
	return rooms, err
}

// FindOpenRoom returns the first public room that still has a seat.
func FindOpenRoom(db *pg.DB, conn *redis.Conn) (*models.Room, error) {
	rooms, err := ListOpenRooms(db)
	if err != nil {
		return nil, err
	}
	for i := range rooms {
		if rooms[i].PasscodeHash != "" {
			continue
		}
		val, err := cache.HGET(roomKey(rooms[i].Id), "players", conn)
		if err != nil {
			continue
		}
		count, _ := strconv.Atoi(val)
		if count < maxPlayers {
			return &rooms[i], nil
		}
	}
	return nil, errors.New("no open rooms")
}

func PlayerJoined(code string, conn *redis.Conn) (int, error) {
	return cache.HINCRBY(roomKey(code), "players", 1, conn)
}

func PlayerLeft(code string, conn *redis.Conn) (int, error) {
	return cache.HINCRBY(roomKey(code), "players", -1, conn)
}

func StartRoom(code string, db *pg.DB, conn *redis.Conn) error {
	room := &models.Room{Id: code}
	if _, err := db.Model(room).WherePK().Set("status = ?", "in progress").Update(); err != nil {
		return err
	}
	return cache.HSET(roomKey(code), "status", "in progress", conn)
}

func CleanupRoom(code string, db *pg.DB, conn *redis.Conn) {
	room := &models.Room{Id: code}
	db.Model(room).WherePK().Delete()
	cache.Del(roomKey(code), conn)
}
