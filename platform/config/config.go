package config

import (
	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	HTTPAddr      string `env:"HTTP_ADDR" envDefault:":4101"`
	SocketAddr    string `env:"SOCKET_ADDR" envDefault:":8000"`
	AllowedOrigin string `env:"ALLOWED_ORIGIN" envDefault:"http://localhost:3000"`
	RedisURL      string `env:"REDIS_URL" envDefault:"localhost:6379"`
	DBUser        string `env:"DB_USER"`
	DBAddr        string `env:"DB_ADDR"`
	DBPassword    string `env:"DB_PASSWORD"`
	DBName        string `env:"DB_NAME"`
	JWTSecret     string `env:"JWT_SECRET" envDefault:"secret"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
}

// C is the process-wide configuration, populated by Load at startup.
var C Config

func Load() error {
	return env.Parse(&C)
}
