package dto

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	DatabaseURL         string
	RabbitMQURL         string
	FirebaseKey         string
	SpotifyClientID     string
	SpotifyClientSecret string
	AppURL              string
}

// LoadConfig reads a .env file when present and then the process
// environment. Only the database URL is mandatory; everything else has a
// usable default or degrades the matching feature.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:                os.Getenv("PORT"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		RabbitMQURL:         os.Getenv("RABBITMQ_URL"),
		FirebaseKey:         os.Getenv("FIREBASE_KEY"),
		SpotifyClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
		SpotifyClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
		AppURL:              os.Getenv("APP_URL"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.AppURL == "" {
		cfg.AppURL = "http://localhost:" + cfg.Port
	}
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is not set")
	}
	return cfg, nil
}

// DecodeFirebaseKey decodes the base64-encoded service account JSON.
func (c Config) DecodeFirebaseKey() ([]byte, error) {
	return base64.StdEncoding.DecodeString(c.FirebaseKey)
}
