// Package config reads the service settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/iggarsaudev/career-hub/internal/qr"
)

const (
	SourcePostgres = "postgres"
	SourceAPI      = "api"
	SourceFile     = "file"

	StoreMemory   = "memory"
	StoreFS       = "fs"
	StoreS3       = "s3"
	StorePostgres = "postgres"
)

type S3 struct {
	Bucket       string
	Prefix       string
	Region       string
	Endpoint     string
	AccessKey    string
	SecretKey    string
	UsePathStyle bool
}

type Config struct {
	Port        string
	DatabaseURL string

	ContentSource string
	ContentAPIURL string
	ContentFile   string

	CVStore    string
	CVStoreDir string
	S3         S3

	AdminEmail        string
	AdminPassword     string
	AdminPasswordHash string
	JWTSecret         string
	JWTIssuer         string
	JWTTTLMinutes     int

	ChromePath           string
	RenderTimeoutSeconds int
	RenderAttempts       int
	RenderBackoffMillis  int
	AvatarFallback       bool
	PortfolioURLDefault  string

	LogLevel string
}

// Load reads the environment. A .env in the working directory is used when
// present; explicitly named files must exist.
func Load(files ...string) (Config, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Config{}, fmt.Errorf("load env files: %w", err)
		}
	} else {
		// Try to load .env if it exists; ignore error if file not found
		_ = godotenv.Load()
	}

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		ContentSource: getEnv("CONTENT_SOURCE", SourcePostgres),
		ContentAPIURL: os.Getenv("CONTENT_API_URL"),
		ContentFile:   os.Getenv("CONTENT_FILE"),

		CVStore:    getEnv("CV_STORE", StoreFS),
		CVStoreDir: getEnv("CV_STORE_DIR", "./data"),
		S3: S3{
			Bucket:       os.Getenv("S3_BUCKET"),
			Prefix:       getEnv("S3_PREFIX", "cv/"),
			Region:       getEnv("S3_REGION", "us-east-1"),
			Endpoint:     os.Getenv("S3_ENDPOINT"),
			AccessKey:    os.Getenv("S3_ACCESS_KEY"),
			SecretKey:    os.Getenv("S3_SECRET_KEY"),
			UsePathStyle: getEnvBool("S3_USE_PATH_STYLE", false),
		},

		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:         getEnv("JWT_ISSUER", "career-hub"),
		JWTTTLMinutes:     getEnvInt("JWT_TTL_MINUTES", 60),

		ChromePath:           os.Getenv("CHROME_PATH"),
		RenderTimeoutSeconds: getEnvInt("RENDER_TIMEOUT_SECONDS", 60),
		RenderAttempts:       getEnvInt("RENDER_ATTEMPTS", 3),
		RenderBackoffMillis:  getEnvInt("RENDER_BACKOFF_MS", 1000),
		AvatarFallback:       getEnvBool("AVATAR_FALLBACK", true),
		PortfolioURLDefault:  getEnv("PORTFOLIO_URL_DEFAULT", qr.DefaultPortfolioURL),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
	return cfg, nil
}

// Validate reports settings that cannot work together.
func (c Config) Validate() error {
	var errs []error
	switch c.ContentSource {
	case SourcePostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("CONTENT_SOURCE=postgres requires DATABASE_URL"))
		}
	case SourceAPI:
		if c.ContentAPIURL == "" {
			errs = append(errs, errors.New("CONTENT_SOURCE=api requires CONTENT_API_URL"))
		}
	case SourceFile:
		if c.ContentFile == "" {
			errs = append(errs, errors.New("CONTENT_SOURCE=file requires CONTENT_FILE"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown CONTENT_SOURCE %q", c.ContentSource))
	}

	switch c.CVStore {
	case StoreMemory:
	case StoreFS:
		if c.CVStoreDir == "" {
			errs = append(errs, errors.New("CV_STORE=fs requires CV_STORE_DIR"))
		}
	case StoreS3:
		if c.S3.Bucket == "" {
			errs = append(errs, errors.New("CV_STORE=s3 requires S3_BUCKET"))
		}
		if (c.S3.AccessKey == "") != (c.S3.SecretKey == "") {
			errs = append(errs, errors.New("S3_ACCESS_KEY and S3_SECRET_KEY must be set together"))
		}
	case StorePostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("CV_STORE=postgres requires DATABASE_URL"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown CV_STORE %q", c.CVStore))
	}

	if c.JWTTTLMinutes <= 0 {
		errs = append(errs, errors.New("JWT_TTL_MINUTES must be positive"))
	}
	if c.RenderTimeoutSeconds <= 0 {
		errs = append(errs, errors.New("RENDER_TIMEOUT_SECONDS must be positive"))
	}
	if c.RenderAttempts <= 0 {
		errs = append(errs, errors.New("RENDER_ATTEMPTS must be positive"))
	}
	return errors.Join(errs...)
}

// AdminConfigured reports whether an admin login is possible.
func (c Config) AdminConfigured() bool {
	return c.AdminEmail != "" && (c.AdminPassword != "" || c.AdminPasswordHash != "")
}

func (c Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLMinutes) * time.Minute
}

func (c Config) RenderTimeout() time.Duration {
	return time.Duration(c.RenderTimeoutSeconds) * time.Second
}

func (c Config) RenderBackoff() time.Duration {
	return time.Duration(c.RenderBackoffMillis) * time.Millisecond
}

// NeedsDatabase reports whether any component reads Postgres.
func (c Config) NeedsDatabase() bool {
	return c.ContentSource == SourcePostgres || c.CVStore == StorePostgres
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
