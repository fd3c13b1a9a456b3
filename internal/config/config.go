package config

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	PublicBaseURL   string
}

// Enabled reports whether enough settings are present to talk to the bucket.
func (c R2Config) Enabled() bool {
	return c.AccountID != "" && c.AccessKeyID != "" && c.SecretAccessKey != "" && c.BucketName != ""
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

func (c GoogleConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

type Config struct {
	Port        string
	Environment string

	DBDriver string
	DB_URL   string

	SessionSecret string
	SessionTTL    time.Duration

	// CodeWord unlocks membership when submitted at the members area.
	CodeWord   string
	BcryptCost int

	ArchiveURLTTL time.Duration

	CorsConfig cors.Options
	R2         R2Config
	Google     GoogleConfig
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load reads the env file named by ENV_FILE (default .env) and then the
// process environment.
func Load() Config {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("No", envFile, "file found, relying on environment variables")
	}

	return Config{
		Port:          getEnv("PORT", "8080"),
		Environment:   getEnv("ENV", "development"),
		DBDriver:      getEnv("DB_DRIVER", "postgres"),
		DB_URL:        getEnv("DB_URL", ""),
		SessionSecret: getEnv("SESSION_SECRET", "not-so-secret-now-is-it?"),
		SessionTTL:    getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		CodeWord:      getEnv("MEMBERSHIP_CODE_WORD", "Jodii"),
		BcryptCost:    getEnvAsInt("BCRYPT_COST", 10),
		ArchiveURLTTL: getEnvAsDuration("ARCHIVE_URL_TTL", 15*time.Minute),
		CorsConfig:    CorsConfig(getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"})),
		R2: R2Config{
			AccountID:       getEnv("R2_ACCOUNT_ID", ""),
			AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnv("R2_BUCKET_NAME", ""),
			Region:          getEnv("R2_REGION", "auto"),
			PublicBaseURL:   getEnv("R2_PUBLIC_BASE_URL", ""),
		},
		Google: GoogleConfig{
			ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			RedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/auth/google/callback"),
		},
	}
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		log.Printf("Invalid integer for %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return n
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || d <= 0 {
		log.Printf("Invalid duration for %s=%q, using %s", key, value, fallback)
		return fallback
	}
	return d
}

func getEnvAsList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func CorsConfig(origins []string) cors.Options {
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
}
