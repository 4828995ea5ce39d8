package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	DB       DBConfig
	S3       S3Config
	Log      LogConfig
	Session  SessionConfig
	Analysis AnalysisConfig
	Email    EmailConfig
	CORS     CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds AWS S3 settings for staged photo storage.
type S3Config struct {
	Region         string `mapstructure:"region"`
	Bucket         string `mapstructure:"bucket"`
	Endpoint       string `mapstructure:"endpoint"`
	AccessKey      string `mapstructure:"access_key"`
	SecretKey      string `mapstructure:"secret_key"`
	MaxPhotoSizeMB int64  `mapstructure:"max_photo_size_mb"`
	PresignExpiry  int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SessionConfig holds wizard session token settings.
type SessionConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// AnalysisConfig holds settings for the external inspection-analysis API.
type AnalysisConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	Variant     string `mapstructure:"variant"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// Timeout returns the client-side submission abort ceiling.
func (a *AnalysisConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSecs) * time.Second
}

// EmailConfig holds report-share email delivery settings.
type EmailConfig struct {
	Provider        string `mapstructure:"provider"`
	Region          string `mapstructure:"region"`
	FromAddress     string `mapstructure:"from_address"`
	FromName        string `mapstructure:"from_name"`
	MinistryAddress string `mapstructure:"ministry_address"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the FAHS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FAHS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "fahs")
	v.SetDefault("db.password", "fahs_secret")
	v.SetDefault("db.name", "fahs_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "me-south-1")
	v.SetDefault("s3.bucket", "fahs-photos")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_photo_size_mb", 15)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Session defaults
	v.SetDefault("session.secret", "change-me-in-production")
	v.SetDefault("session.expiry", "2h")
	v.SetDefault("session.issuer", "fahs")

	// Analysis defaults. The write timeout of the server does not bound the
	// outbound call; the analysis host may need minutes on a cold start.
	v.SetDefault("analysis.base_url", "https://restaurant-inspection-api.onrender.com")
	v.SetDefault("analysis.variant", "four_photo")
	v.SetDefault("analysis.timeout_secs", 300)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "me-south-1")
	v.SetDefault("email.from_address", "noreply@fahs.sa")
	v.SetDefault("email.from_name", "Fahs")
	v.SetDefault("email.ministry_address", "")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":            "FAHS_SERVER_PORT",
		"server.read_timeout":    "FAHS_SERVER_READ_TIMEOUT",
		"server.write_timeout":   "FAHS_SERVER_WRITE_TIMEOUT",
		"server.environment":     "FAHS_SERVER_ENVIRONMENT",
		"db.host":                "FAHS_DB_HOST",
		"db.port":                "FAHS_DB_PORT",
		"db.user":                "FAHS_DB_USER",
		"db.password":            "FAHS_DB_PASSWORD",
		"db.name":                "FAHS_DB_NAME",
		"db.sslmode":             "FAHS_DB_SSLMODE",
		"db.max_open":            "FAHS_DB_MAX_OPEN",
		"db.max_idle":            "FAHS_DB_MAX_IDLE",
		"s3.region":              "FAHS_S3_REGION",
		"s3.bucket":              "FAHS_S3_BUCKET",
		"s3.endpoint":            "FAHS_S3_ENDPOINT",
		"s3.access_key":          "FAHS_S3_ACCESS_KEY",
		"s3.secret_key":          "FAHS_S3_SECRET_KEY",
		"s3.max_photo_size_mb":   "FAHS_S3_MAX_PHOTO_SIZE_MB",
		"s3.presign_expiry":      "FAHS_S3_PRESIGN_EXPIRY",
		"log.level":              "FAHS_LOG_LEVEL",
		"log.format":             "FAHS_LOG_FORMAT",
		"session.secret":         "FAHS_SESSION_SECRET",
		"session.expiry":         "FAHS_SESSION_EXPIRY",
		"session.issuer":         "FAHS_SESSION_ISSUER",
		"analysis.base_url":      "FAHS_ANALYSIS_BASE_URL",
		"analysis.variant":       "FAHS_ANALYSIS_VARIANT",
		"analysis.timeout_secs":  "FAHS_ANALYSIS_TIMEOUT_SECS",
		"email.provider":         "FAHS_EMAIL_PROVIDER",
		"email.region":           "FAHS_EMAIL_REGION",
		"email.from_address":     "FAHS_EMAIL_FROM_ADDRESS",
		"email.from_name":        "FAHS_EMAIL_FROM_NAME",
		"email.ministry_address": "FAHS_EMAIL_MINISTRY_ADDRESS",
		"cors.allowed_origins":   "FAHS_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if FAHS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("FAHS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:         v.GetString("s3.region"),
		Bucket:         v.GetString("s3.bucket"),
		Endpoint:       v.GetString("s3.endpoint"),
		AccessKey:      v.GetString("s3.access_key"),
		SecretKey:      v.GetString("s3.secret_key"),
		MaxPhotoSizeMB: v.GetInt64("s3.max_photo_size_mb"),
		PresignExpiry:  v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Session = SessionConfig{
		Secret: v.GetString("session.secret"),
		Expiry: v.GetDuration("session.expiry"),
		Issuer: v.GetString("session.issuer"),
	}
	cfg.Analysis = AnalysisConfig{
		BaseURL:     strings.TrimRight(v.GetString("analysis.base_url"), "/"),
		Variant:     v.GetString("analysis.variant"),
		TimeoutSecs: v.GetInt("analysis.timeout_secs"),
	}
	cfg.Email = EmailConfig{
		Provider:        v.GetString("email.provider"),
		Region:          v.GetString("email.region"),
		FromAddress:     v.GetString("email.from_address"),
		FromName:        v.GetString("email.from_name"),
		MinistryAddress: v.GetString("email.ministry_address"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
