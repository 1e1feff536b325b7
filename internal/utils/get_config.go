package utils

import (
	"gopkg.in/yaml.v2"
	"log"
	"os"
	"strconv"
	"sync"
)

type Config struct {
	// Server configuration
	AppPort          string `yaml:"APP_PORT"`
	CORSAllowOrigins string `yaml:"CORS_ALLOW_ORIGINS"`
	RateLimitMax     string `yaml:"RATE_LIMIT_MAX"`
	LogFile          string `yaml:"LOG_FILE"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBSSLMode  string `yaml:"DB_SSLMODE"`
	DBTimeZone string `yaml:"DB_TIMEZONE"`

	// JWT configuration
	JWTSecret     string `yaml:"JWT_SECRET"`
	JWTIssuer     string `yaml:"JWT_ISSUER"`
	JWTTTLMinutes string `yaml:"JWT_TTL_MINUTES"`

	// AWS S3 configuration
	AWSS3Bucket   string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region   string `yaml:"AWS_S3_REGION"`
	AWSAccessKey  string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey  string `yaml:"AWS_SECRET_KEY"`
	AWSS3Endpoint string `yaml:"AWS_S3_ENDPOINT"`

	// Mail configuration
	AppURL           string `yaml:"APP_URL"`
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`
}

var (
	config   Config
	configMu sync.RWMutex
)

var defaults = map[string]string{
	"APP_PORT":           "5000",
	"CORS_ALLOW_ORIGINS": "*",
	"RATE_LIMIT_MAX":     "20",
	"LOG_FILE":           "./logs/app.log",
	"DB_HOST":            "localhost",
	"DB_PORT":            "5432",
	"DB_NAME":            "wine_diary",
	"DB_SSLMODE":         "disable",
	"DB_TIMEZONE":        "UTC",
	"JWT_ISSUER":         "WINE-DIARY",
	"JWT_TTL_MINUTES":    "120",
	"AWS_S3_REGION":      "us-east-1",
	"SMTP_PORT":          "587",
	"SMTP_SENDER_NAME":   "Wine Diary",
}

// LoadConfig reads the YAML file at path. A missing file is not fatal:
// values then come from the environment and defaults.
func LoadConfig(path string) {
	var loaded Config

	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err := yaml.Unmarshal(file, &loaded); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	configMu.Lock()
	config = loaded
	configMu.Unlock()
}

// GetConfig resolves key from the environment, then the YAML file, then the
// built-in defaults.
func GetConfig(key string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	configMu.RLock()
	v := config.lookup(key)
	configMu.RUnlock()

	if v != "" {
		return v
	}
	return defaults[key]
}

// GetConfigInt is GetConfig parsed as an integer, falling back to def.
func GetConfigInt(key string, def int) int {
	n, err := strconv.Atoi(GetConfig(key))
	if err != nil {
		return def
	}
	return n
}

func (c Config) lookup(key string) string {
	switch key {
	case "APP_PORT":
		return c.AppPort
	case "CORS_ALLOW_ORIGINS":
		return c.CORSAllowOrigins
	case "RATE_LIMIT_MAX":
		return c.RateLimitMax
	case "LOG_FILE":
		return c.LogFile
	case "DB_USER":
		return c.DBUser
	case "DB_NAME":
		return c.DBName
	case "DB_PASSWORD":
		return c.DBPassword
	case "DB_PORT":
		return c.DBPort
	case "DB_HOST":
		return c.DBHost
	case "DB_SSLMODE":
		return c.DBSSLMode
	case "DB_TIMEZONE":
		return c.DBTimeZone
	case "JWT_SECRET":
		return c.JWTSecret
	case "JWT_ISSUER":
		return c.JWTIssuer
	case "JWT_TTL_MINUTES":
		return c.JWTTTLMinutes
	case "AWS_S3_BUCKET":
		return c.AWSS3Bucket
	case "AWS_S3_REGION":
		return c.AWSS3Region
	case "AWS_ACCESS_KEY":
		return c.AWSAccessKey
	case "AWS_SECRET_KEY":
		return c.AWSSecretKey
	case "AWS_S3_ENDPOINT":
		return c.AWSS3Endpoint
	case "APP_URL":
		return c.AppURL
	case "SMTP_HOST":
		return c.SMTPHost
	case "SMTP_PORT":
		return c.SMTPPort
	case "SMTP_SENDER_NAME":
		return c.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return c.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return c.SMTPAuthPassword
	default:
		return ""
	}
}
