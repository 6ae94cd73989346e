// Package config loads the facade's runtime configuration from the
// environment, with optional .env support for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultEndpoint is Cetustek's production invoice API.
const DefaultEndpoint = "https://invoice.cetustek.com.tw/InvoiceMultiWeb/InvoiceAPI"

// Config encapsulates all runtime configuration knobs.
type Config struct {
	Cetustek CetustekSettings
	Server   ServerSettings
	Log      LogSettings
}

type CetustekSettings struct {
	Endpoint    string
	RentID      string
	SiteCode    string
	APIPassword string
	Timeout     time.Duration
}

type ServerSettings struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

type LogSettings struct {
	Level string
}

// Load reads configuration from the environment. A .env file in the working
// directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Cetustek: CetustekSettings{
			Endpoint:    getEnv("CETUSTEK_ENDPOINT", DefaultEndpoint),
			RentID:      os.Getenv("CETUSTEK_RENT_ID"),
			SiteCode:    os.Getenv("CETUSTEK_SITE_CODE"),
			APIPassword: os.Getenv("CETUSTEK_API_PASSWORD"),
			Timeout:     getDuration("CETUSTEK_TIMEOUT", 30*time.Second),
		},
		Server: ServerSettings{
			Address:      getEnv("CETUSTEK_LISTEN_ADDR", ":8080"),
			ReadTimeout:  getDuration("CETUSTEK_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDuration("CETUSTEK_WRITE_TIMEOUT", 60*time.Second),
			Debug:        getBool("CETUSTEK_DEBUG", false),
		},
		Log: LogSettings{
			Level: getEnv("CETUSTEK_LOG_LEVEL", "info"),
		},
	}

	if cfg.Cetustek.RentID == "" {
		return nil, fmt.Errorf("CETUSTEK_RENT_ID is required")
	}
	if cfg.Cetustek.SiteCode == "" {
		return nil, fmt.Errorf("CETUSTEK_SITE_CODE is required")
	}
	if cfg.Cetustek.APIPassword == "" {
		return nil, fmt.Errorf("CETUSTEK_API_PASSWORD is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
