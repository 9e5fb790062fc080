package socket

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/jfeng32/polypop-backend/app/models"
	"github.com/jfeng32/polypop-backend/pkg"
	"github.com/jfeng32/polypop-backend/platform/cache"
	"github.com/jfeng32/polypop-backend/platform/config"
	"github.com/jfeng32/polypop-backend/platform/database"
	"github.com/jfeng32/polypop-backend/platform/gateway"
	"github.com/jfeng32/polypop-backend/platform/queries"
	"github.com/jfeng32/polypop-backend/platform/session"
)

func CreateSocketIOServer() {

	server, err := socketio.NewServer(nil)
	if err != nil {
		panic(err)
	}
	db := database.PostgreSQLConnection()
	defer db.Close()

	pool := cache.CreateRedisPool()
	defer pool.Close()

	rooms := session.NewRegistry()

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		return nil
	})

	server.OnEvent("/", "join-room", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		code, ok := result["room"]
		if !ok {
			return
		}
		userId, ok := result["user_id"]
		if !ok {
			s.Emit(models.EventError, "User not authenticated")
			return
		}
		if !queries.VerifyRoom(code, db) {
			s.Emit(models.EventError, "Invalid room")
			return
		}
		if !queries.CheckPasscode(code, result["passcode"], db) {
			s.Emit(models.EventError, "Wrong passcode")
			return
		}

		sess := rooms.GetOrCreate(code, time.Now().UnixNano())
		player, err := sess.Join(userId, result["name"], result["avatar"], s)
		if err != nil {
			s.Emit(models.EventError, err.Error())
			return
		}

		conn := pool.Get()
		defer conn.Close()
		queries.PlayerJoined(code, &conn)

		s.Join(pkg.HostAddress(code))
		s.SetContext(code + "|" + userId)
		s.Emit("joined-room", player.Id)
		logrus.WithFields(logrus.Fields{"room": code, "player": userId}).Info("joined room")
	})

	server.OnEvent("/", "leave-room", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		code := result["room"]
		if sess := rooms.Get(code); sess != nil {
			sess.Leave(result["user_id"])
		}
		conn := pool.Get()
		defer conn.Close()
		if n, err := queries.PlayerLeft(code, &conn); err == nil && n <= 0 {
			rooms.Remove(code)
			queries.CleanupRoom(code, db, &conn)
		}
		s.Leave(pkg.HostAddress(code))
		s.SetContext("")
	})

	server.OnEvent("/", "start-game", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		code := result["room"]
		sess := rooms.Get(code)
		if sess == nil {
			s.Emit(models.EventError, "Unable to start game")
			return
		}
		if err := sess.Start(result["user_id"]); err != nil {
			s.Emit(models.EventError, err.Error())
			return
		}
		conn := pool.Get()
		defer conn.Close()
		queries.StartRoom(code, db, &conn)
	})

	server.OnEvent("/", "start-solo", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		userId, ok := result["user_id"]
		if !ok {
			s.Emit(models.EventError, "User not authenticated")
			return
		}
		bots, err := strconv.Atoi(result["bots"])
		if err != nil || bots < 1 || bots > 7 {
			bots = 3
		}
		human := session.NewHuman(userId, result["name"], result["avatar"], 0)
		sess := session.NewSolo(human, bots, time.Now().UnixNano(), result["autoplay"] == "true")
		rooms.Put(sess)
		sess.Join(userId, "", "", s)
		s.SetContext(sess.Code + "|" + userId)
		sess.Resume()
	})

	server.OnEvent("/", models.EventAction, func(s socketio.Conn, jsonStr string) {
		var env gateway.ActionEnvelope
		if err := json.Unmarshal([]byte(jsonStr), &env); err != nil {
			return // malformed intents are a silent no-op
		}
		sess := rooms.Get(env.Room)
		if sess == nil {
			return
		}
		sink := gateway.Local{Host: sess}
		sink.Submit(env.UserId, env.Action)
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		logrus.WithError(e).Warn("socket error")
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		ctx, _ := s.Context().(string)
		parts := strings.SplitN(ctx, "|", 2)
		if len(parts) == 2 {
			if sess := rooms.Get(parts[0]); sess != nil {
				sess.Leave(parts[1])
			}
			conn := pool.Get()
			defer conn.Close()
			if n, err := queries.PlayerLeft(parts[0], &conn); err == nil && n <= 0 {
				rooms.Remove(parts[0])
				queries.CleanupRoom(parts[0], db, &conn)
			}
		}
		s.LeaveAll()
	})

	go server.Serve()
	defer server.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{config.C.AllowedOrigin},
		AllowCredentials: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", server)
	http.ListenAndServe(config.C.SocketAddr, c.Handler(mux))
}
