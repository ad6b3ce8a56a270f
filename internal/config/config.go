package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	Port     string `validate:"required,numeric"`
	Env      string `validate:"required"`
	LogLevel string
}

// StoreConfig holds the values a new application store starts with
type StoreConfig struct {
	Name            string `validate:"required"`
	DefaultTheme    string `validate:"oneof=light dark"`
	DefaultCategory string `validate:"required"`
}

type CORSConfig struct {
	AllowedOrigins []string
}

// IsDevelopment reports whether the server runs outside production
func (c *Config) IsDevelopment() bool {
	return c.Server.Env != "production"
}

// Validate rejects settings the store or server cannot start with
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func Load() *Config {
	// Values already present in the environment win over .env
	if err := godotenv.Load(); err != nil {
		log.Printf("Info: no .env file loaded: %v", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_ENV", "development")
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("STORE_NAME", "app-store")
	v.SetDefault("STORE_DEFAULT_THEME", "light")
	v.SetDefault("STORE_DEFAULT_CATEGORY", "all")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	return &Config{
		Server: ServerConfig{
			Port:     v.GetString("SERVER_PORT"),
			Env:      v.GetString("SERVER_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		Store: StoreConfig{
			Name:            v.GetString("STORE_NAME"),
			DefaultTheme:    v.GetString("STORE_DEFAULT_THEME"),
			DefaultCategory: v.GetString("STORE_DEFAULT_CATEGORY"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
