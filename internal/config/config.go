// Package config loads settings from a .env file and the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Log     LogConfig
	Solver  SolverConfig
	Browser BrowserConfig
	Server  ServerConfig
	Auth    AuthConfig
	Daily   DailyConfig
}

// LogConfig holds logging-related configuration.
type LogConfig struct {
	Level  string
	Format string // "json" or "console"
}

// SolverConfig holds solving-related configuration.
type SolverConfig struct {
	WordsFile   string // empty: embedded list
	OpeningWord string
	MaxRetries  int
	Seed        uint64 // 0: random
}

// BrowserConfig holds the term.ooo driver configuration.
type BrowserConfig struct {
	BaseURL  string
	Headless bool
	Bin      string // browser binary; empty lets rod download or find one
	Settle   time.Duration
	Timeout  time.Duration
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string
	ClientOrigin string
	DBPath       string // empty: in-memory history
}

// AuthConfig holds the solve API credentials.
type AuthConfig struct {
	JWTSecret         string
	JWTExpiresDays    int
	AdminPasswordHash string
	Secure            bool // set Secure/SameSite=None on cookies
}

// DailyConfig holds daily puzzle configuration.
type DailyConfig struct {
	Salt string
}

// Load reads .env (if present) and then the environment.
func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Solver: SolverConfig{
			WordsFile:   getEnv("WORDS_FILE", ""),
			OpeningWord: getEnv("OPENING_WORD", "areio"),
			MaxRetries:  getEnvInt("MAX_RETRIES", 5),
			Seed:        uint64(getEnvInt("SEED", 0)),
		},
		Browser: BrowserConfig{
			BaseURL:  getEnv("TERMO_BASE_URL", "https://term.ooo"),
			Headless: getEnvBool("BROWSER_HEADLESS", true),
			Bin:      getEnv("BROWSER_BIN", ""),
			Settle:   time.Duration(getEnvInt("BROWSER_SETTLE_MS", 1400)) * time.Millisecond,
			Timeout:  time.Duration(getEnvInt("BROWSER_TIMEOUT_SECONDS", 300)) * time.Second,
		},
		Server: ServerConfig{
			Port:         getEnv("PORT", "5175"),
			ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
			DBPath:       getEnv("DB_PATH", ""),
		},
		Auth: AuthConfig{
			JWTSecret:         getEnv("JWT_SECRET", "dev_secret_change_me"),
			JWTExpiresDays:    getEnvInt("JWT_EXPIRES_DAYS", 14),
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			Secure:            getEnv("NODE_ENV", "") == "production",
		},
		Daily: DailyConfig{
			Salt: getEnv("DAILY_SALT", "local_dev_salt"),
		},
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
