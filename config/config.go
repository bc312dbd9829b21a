package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig       `envPrefix:"YS_APP_"`
	Server    ServerConfig    `envPrefix:"YS_SERVER_"`
	Log       LogConfig       `envPrefix:"YS_LOG_"`
	Database  DatabaseConfig  `envPrefix:"YS_DB_"`
	Auth      AuthConfig      `envPrefix:"YS_AUTH_"`
	JWT       JWTConfig       `envPrefix:"YS_JWT_"`
	Mail      MailConfig      `envPrefix:"YS_MAIL_"`
	RateLimit RateLimitConfig `envPrefix:"YS_RATELIMIT_"`
}

type AppConfig struct {
	Name string `env:"NAME" envDefault:"yoursport-admin"`
	URL  string `env:"URL" envDefault:"http://localhost:8080"`
}

type ServerConfig struct {
	Port string `env:"PORT" envDefault:"8080"`
	Host string `env:"HOST" envDefault:"localhost"`
}

type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"json"`
	Output string `env:"OUTPUT" envDefault:"stdout"`
}

type DatabaseConfig struct {
	Driver      string `env:"DRIVER" envDefault:"sqlite"`
	DSN         string `env:"DSN" envDefault:"yoursport.db"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"true"`
}

type AuthConfig struct {
	BcryptCost       int           `env:"BCRYPT_COST" envDefault:"10"`
	MinLength        int           `env:"MIN_LENGTH" envDefault:"8"`
	ResetTokenLength int           `env:"RESET_TOKEN_LENGTH" envDefault:"32"`
	ResetTokenExpiry time.Duration `env:"RESET_TOKEN_EXPIRY" envDefault:"1h"`
}

type JWTConfig struct {
	SecretKey     string        `env:"SECRET_KEY"`
	Issuer        string        `env:"ISSUER" envDefault:"yoursport-admin"`
	AccessExpiry  time.Duration `env:"ACCESS_EXPIRY" envDefault:"15m"`
	RefreshExpiry time.Duration `env:"REFRESH_EXPIRY" envDefault:"168h"`
}

type MailConfig struct {
	Enabled  bool   `env:"ENABLED" envDefault:"false"`
	Host     string `env:"HOST"`
	Port     int    `env:"PORT" envDefault:"587"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	From     string `env:"FROM" envDefault:"noreply@yoursport.local"`
}

type RateLimitConfig struct {
	Enabled  bool          `env:"ENABLED" envDefault:"true"`
	Requests int           `env:"REQUESTS" envDefault:"10"`
	Window   time.Duration `env:"WINDOW" envDefault:"1m"`
}

func LoadConfig(cfg any) error {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	return env.Parse(cfg)
}
