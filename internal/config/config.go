package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddr string
	LogDev     bool

	StoreDriver  string
	StoreTimeout time.Duration
	SlotKey      string
	SQLitePath   string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AdminPassword string
	JWTSecret     string

	UseS3         bool
	S3Bucket      string
	S3Region      string
	CloudFrontURL string

	PropertyID        string
	PropertyName      string
	PropertyComplex   string
	PropertyAddress   string
	PreserveCreatedAt bool
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),
		LogDev:     getBool("LOG_DEV", false),

		StoreDriver:  getEnv("STORE_DRIVER", "sqlite"),
		StoreTimeout: getDuration("STORE_TIMEOUT", 3*time.Second),
		SlotKey:      getEnv("SLOT_KEY", "lotte_castle_images"),
		SQLitePath:   getEnv("SQLITE_PATH", "gallery.db"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "gallery"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getInt("REDIS_DB", 0),

		AdminPassword: getEnv("ADMIN_PASSWORD", "1234"),
		JWTSecret:     getEnv("JWT_SECRET", ""),

		UseS3:         getBool("USE_S3", false),
		S3Bucket:      getEnv("S3_BUCKET", ""),
		S3Region:      getEnv("S3_REGION", ""),
		CloudFrontURL: getEnv("CLOUDFRONT_URL", ""),

		PropertyID:        getEnv("PROPERTY_ID", "p1"),
		PropertyName:      getEnv("PROPERTY_NAME", "엔젤부동산"),
		PropertyComplex:   getEnv("PROPERTY_COMPLEX", "전체 매물 분석"),
		PropertyAddress:   getEnv("PROPERTY_ADDRESS", "경상남도 창원시 의창구"),
		PreserveCreatedAt: getBool("PRESERVE_CREATED_AT", false),
	}

	log.Println("✅ Config loaded")
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
