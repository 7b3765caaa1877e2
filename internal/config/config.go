package config

import (
	"os"
	"strings"
)

const (
	DefaultAddr           = ":3000"
	DefaultAllowedOrigins = "http://localhost:5173"
)

type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string
	// AllowedOrigins is the comma separated CORS and websocket origin list.
	AllowedOrigins string
	Debug          bool
}

// Load reads CHESS_ADDR, CHESS_ALLOWED_ORIGINS and CHESS_DEBUG, falling back to defaults.
func Load() Config {
	return Config{
		Addr:           getenv("CHESS_ADDR", DefaultAddr),
		AllowedOrigins: getenv("CHESS_ALLOWED_ORIGINS", DefaultAllowedOrigins),
		Debug:          os.Getenv("CHESS_DEBUG") == "1",
	}
}

func (c Config) Origins() []string {
	var origins []string
	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
