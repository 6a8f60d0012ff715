package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type SMSConfig struct {
	APIURL string
	APIKey string
}

type PaystackConfig struct {
	SecretKey string
	BaseURL   string
}

type Config struct {
	Env  string
	Port string

	DBURL string

	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessExpiryMin    int
	RefreshExpiryMin   int
	RotateRefreshToken bool

	OTPLength      int
	OTPExpiryMin   int
	OTPMaxAttempts int

	RefreshCookieName     string
	RefreshCookieSecure   bool
	RefreshCookieSameSite string

	DefaultRegion  string
	AllowedRegions []string

	SMTP     SMTPConfig
	SMS      SMSConfig
	Paystack PaystackConfig

	DonationPoints int

	LogLevel string
	LogDev   bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded:", err)
	}

	return &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		DBURL: mustGetEnv("DB_URL"),

		AccessTokenSecret:  mustGetEnv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: mustGetEnv("REFRESH_TOKEN_SECRET"),
		AccessExpiryMin:    getEnvAsInt("ACCESS_TOKEN_EXPIRY", 15),
		RefreshExpiryMin:   getEnvAsInt("REFRESH_TOKEN_EXPIRY", 10080),
		RotateRefreshToken: getEnvAsBool("ROTATE_REFRESH_TOKENS", true),

		OTPLength:      getEnvAsInt("OTP_LENGTH", 6),
		OTPExpiryMin:   getEnvAsInt("OTP_EXPIRY", 10),
		OTPMaxAttempts: getEnvAsInt("OTP_MAX_ATTEMPTS", 5),

		RefreshCookieName:     getEnv("REFRESH_COOKIE_NAME", "hb_refresh"),
		RefreshCookieSecure:   getEnvAsBool("REFRESH_COOKIE_SECURE", true),
		RefreshCookieSameSite: getEnv("REFRESH_COOKIE_SAMESITE", "Strict"),

		DefaultRegion:  getEnv("DEFAULT_REGION", "KE"),
		AllowedRegions: getEnvAsSlice("ALLOWED_REGIONS", []string{"KE"}),

		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "localhost"),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "noreply@hummingbirds.co"),
		},
		SMS: SMSConfig{
			APIURL: getEnv("SMS_API_URL", ""),
			APIKey: getEnv("SMS_API_KEY", ""),
		},
		Paystack: PaystackConfig{
			SecretKey: mustGetEnv("PAYSTACK_SECRET_KEY"),
			BaseURL:   getEnv("PAYSTACK_BASE_URL", "https://api.paystack.co"),
		},

		DonationPoints: getEnvAsInt("DONATION_POINTS", 5),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogDev:   getEnvAsBool("LOG_DEV", false),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %t", key, defaultVal)
		return defaultVal
	}
	return val
}

func getEnvAsSlice(key string, defaultVal []string) []string {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}

	parts := strings.Split(valStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
