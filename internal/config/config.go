package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPServer
	Database
	Redis
	Auth
	Captcha
	Kafka
}

type HTTPServer struct {
	Addr string `env:"HTTP_ADDR" env-default:":8080"`
}

type Database struct {
	// Driver selects the gorm dialector: "sqlite" works against an existing
	// database file, "mysql" for server deployments.
	Driver string `env:"DB_DRIVER" env-default:"sqlite"`
	DSN    string `env:"DB_DSN" env-default:"database.db"`
}

type Redis struct {
	Addr     string `env:"REDIS_ADDR" env-default:"127.0.0.1:6379"`
	Password string `env:"REDIS_PASSWORD" env-default:""`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

type Auth struct {
	AccessSecret  string `env:"JWT_ACCESS_SECRET" env-default:""`
	RefreshSecret string `env:"JWT_REFRESH_SECRET" env-default:""`
}

type Captcha struct {
	Dir string `env:"CAPTCHA_DIR" env-default:"static/captchas"`
}

type Kafka struct {
	// Empty broker list disables activity events.
	Brokers []string `env:"KAFKA_BROKERS" env-default:""`
	Topic   string   `env:"KAFKA_TOPIC" env-default:"tradeboard.activity"`
}

func New() (*Config, error) {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	conf := &Config{}
	if err := cleanenv.ReadEnv(conf); err != nil {
		return nil, fmt.Errorf("cleanenv.ReadEnv: %w", err)
	}
	return conf, nil
}
