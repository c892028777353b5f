package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	StorageMemory = "memory"
	StorageS3     = "s3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Port string

	LogLevel  string
	LogFormat string
	AppName   string

	DBDriver string
	DBDSN    string

	JWTSecret    string // vacío => modo dev (header X-Debug-User-ID)
	JWTTTL       time.Duration
	AccessPolicy string

	StorageBackend    string
	S3Bucket          string
	S3BaseURL         string
	S3Region          string
	S3Endpoint        string
	S3UsePathStyle    bool
	S3AccessKeyID     string
	S3SecretAccessKey string
	MaxUploadBytes    int64
}

// Load lee .env si existe y después el entorno. No valida: eso es Validate.
func Load() (*Config, error) {
	// .env es opcional; en prod las variables vienen del entorno
	_ = godotenv.Load()

	ttl, err := loadDuration("JWT_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	pathStyle, err := loadBool("S3_USE_PATH_STYLE", false)
	if err != nil {
		return nil, err
	}
	maxMB, err := loadInt("MAX_UPLOAD_MB", 10)
	if err != nil {
		return nil, err
	}

	return &Config{
		Port: getEnv("PORT", "8080"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
		AppName:   getEnv("APP_NAME", "cat-collector"),

		DBDriver: strings.ToLower(getEnv("DB_DRIVER", DriverMemory)),
		DBDSN:    getEnv("DB_DSN", ""),

		JWTSecret:    getEnv("JWT_SECRET", ""),
		JWTTTL:       ttl,
		AccessPolicy: getEnv("ACCESS_POLICY", "owner"),

		StorageBackend:    strings.ToLower(getEnv("STORAGE_BACKEND", StorageMemory)),
		S3Bucket:          getEnv("S3_BUCKET", ""),
		S3BaseURL:         getEnv("S3_BASE_URL", "https://s3.us-east-1.amazonaws.com/"),
		S3Region:          getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
		S3UsePathStyle:    pathStyle,
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		MaxUploadBytes:    int64(maxMB) << 20,
	}, nil
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverMemory:
	case DriverPostgres, DriverSQLite:
		if strings.TrimSpace(c.DBDSN) == "" {
			return fmt.Errorf("%w: DB_DSN is required for DB_DRIVER=%s", ErrInvalidConfig, c.DBDriver)
		}
	default:
		return fmt.Errorf("%w: DB_DRIVER must be memory, postgres or sqlite", ErrInvalidConfig)
	}

	switch c.StorageBackend {
	case StorageMemory:
	case StorageS3:
		if strings.TrimSpace(c.S3Bucket) == "" {
			return fmt.Errorf("%w: S3_BUCKET is required for STORAGE_BACKEND=s3", ErrInvalidConfig)
		}
		if (c.S3AccessKeyID == "") != (c.S3SecretAccessKey == "") {
			return fmt.Errorf("%w: S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY go together", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: STORAGE_BACKEND must be memory or s3", ErrInvalidConfig)
	}

	if c.JWTTTL <= 0 {
		return fmt.Errorf("%w: JWT_TTL must be positive", ErrInvalidConfig)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("%w: MAX_UPLOAD_MB must be positive", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return strings.TrimSpace(val)
	}
	return defaultVal
}

func loadInt(key string, defValue int) (int, error) {
	value := getEnv(key, "")
	if value == "" {
		return defValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	return n, nil
}

func loadBool(key string, defValue bool) (bool, error) {
	value := getEnv(key, "")
	if value == "" {
		return defValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	return b, nil
}

func loadDuration(key string, defValue time.Duration) (time.Duration, error) {
	value := getEnv(key, "")
	if value == "" {
		return defValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	return d, nil
}
