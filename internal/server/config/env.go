package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file in
// the working directory is loaded first, if present; real environment
// variables win over .env values (godotenv does not overwrite existing keys).
//
// Recognized variables:
//
//	ADDRESS          HTTP bind address (e.g. ":8080")
//	DATABASE_DSN     PostgreSQL DSN
//	APP_ENV          "development" or "production"
//	JWT_SECRET       HMAC secret for signing tokens
//	TOKEN_VALIDITY   access token lifetime, Go duration (e.g. "1h")
//	S3_ACCESS_KEY / S3_SECRET_KEY / S3_BUCKET / S3_REGION / S3_BASE_ENDPOINT
func parseEnv(config *Config) {
	_ = godotenv.Load()

	setString := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	setString(&config.Addr, "ADDRESS")
	setString(&config.DatabaseDSN, "DATABASE_DSN")
	setString(&config.Env, "APP_ENV")
	setString(&config.SecretKey, "JWT_SECRET")

	if v, ok := os.LookupEnv("TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}

	setString(&config.S3AccessKey, "S3_ACCESS_KEY")
	setString(&config.S3SecretKey, "S3_SECRET_KEY")
	setString(&config.S3Bucket, "S3_BUCKET")
	setString(&config.S3Region, "S3_REGION")
	setString(&config.S3BaseEndpoint, "S3_BASE_ENDPOINT")
}
