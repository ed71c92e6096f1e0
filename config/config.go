package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type (
	APP struct {
		Name string `envconfig:"SERVICE_NAME" default:"ims-dao"`
		Host string `envconfig:"SERVICE_HOST" default:"0.0.0.0"`
		Port string `envconfig:"SERVICE_PORT" default:"8080"`
		Env  string `envconfig:"SERVICE_ENV" default:"development"`
	}
	DB struct {
		User     string `envconfig:"POSTGRES_USER"`
		Password string `envconfig:"POSTGRES_PASSWORD"`
		Name     string `envconfig:"POSTGRES_DB"`
		Host     string `envconfig:"POSTGRES_HOST"`
		Port     string `envconfig:"POSTGRES_PORT" default:"5432"`
		SSLMode  string `envconfig:"POSTGRES_SSLMODE" default:"disable"`

		MaxConns       int32 `envconfig:"POSTGRES_MAX_CONNS" default:"25"`
		MinConns       int32 `envconfig:"POSTGRES_MIN_CONNS" default:"2"`
		MigrateOnStart bool  `envconfig:"POSTGRES_MIGRATE_ON_START" default:"false"`
	}
	Password struct {
		BcryptCost int `envconfig:"PASSWORD_BCRYPT_COST" default:"10"`
	}

	Config struct {
		App      APP
		DB       DB
		Password Password
	}
)

// Load reads .env when present and then the process environment,
// which wins over the file.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	// a missing .env is fine: containers get their config from the environment
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}

	return cfg, nil
}

func (c Config) DBDSN() (string, error) {
	if c.DB.User == "" || c.DB.Name == "" || c.DB.Host == "" || c.DB.Port == "" {
		return "", errors.New("incomplete DB config")
	}

	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DB.User, c.DB.Password),
		Host:     c.DB.Host + ":" + c.DB.Port,
		Path:     "/" + c.DB.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.DB.SSLMode),
	}

	return u.String(), nil
}

func (c Config) Addr() string { return c.App.Host + ":" + c.App.Port }
