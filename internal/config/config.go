package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Runtime settings for the server and db tool. Every field has a default
// except DatabaseURL and RedisURL, whose absence selects SQLite and log-only
// order publishing respectively. RateLimitRPS <= 0 turns rate limiting off.
type Config struct {
	Port           string
	DBPath         string
	DatabaseURL    string
	SeedPath       string
	MapName        string
	RedisURL       string
	OrderChannel   string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads .env when present and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	return Config{
		Port:           Get("PORT", "8080"),
		DBPath:         Get("DB_PATH", "data/app.db"),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SeedPath:       Get("SEED_PATH", "data/seeds/layouts.yaml"),
		MapName:        Get("MAP_NAME", "downtown"),
		RedisURL:       strings.TrimSpace(os.Getenv("REDIS_URL")),
		OrderChannel:   Get("ORDER_CHANNEL", "orders:dispatched"),
		RateLimitRPS:   GetFloat("RATE_LIMIT_RPS", 50),
		RateLimitBurst: GetInt("RATE_LIMIT_BURST", 100),
	}
}

func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetInt falls back on missing or unparsable values and logs the latter.
func GetInt(key string, fallback int) int {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: %s=%q is not an integer, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func GetFloat(key string, fallback float64) float64 {
	v := Get(key, "")
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("config: %s=%q is not a number, using %g", key, v, fallback)
		return fallback
	}
	return f
}
