package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every runtime setting of the API and the seeder.
type Config struct {
	AppName string
	Port    string

	// Database
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBTimeZone  string

	// Auth
	JWTSecret string
	JWTTTL    time.Duration

	LogLevel string

	// Redis (rate limiting). Empty RedisAddr disables it.
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	RateLimit       int
	RateLimitWindow time.Duration

	// Kafka (domain events). Empty KafkaBrokers disables publishing.
	KafkaBrokers     []string
	KafkaTopicPrefix string
}

// NewViper returns a viper instance bound to the process environment with defaults applied.
func NewViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("app_name", "Bank Sampah API v1.0")
	v.SetDefault("port", "3000")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_name", "banksampah")
	v.SetDefault("db_timezone", "Asia/Jakarta")
	v.SetDefault("jwt_ttl", "1h")
	v.SetDefault("log_level", "info")
	v.SetDefault("redis_db", 0)
	v.SetDefault("rate_limit", 20)
	v.SetDefault("rate_limit_window", "1m")
	v.SetDefault("kafka_topic_prefix", "banksampah")

	return v
}

// Load reads .env (if present) and the environment into a Config.
func Load() (*Config, error) {
	// .env is optional; plain environment variables still apply
	_ = godotenv.Load()

	v := NewViper()

	ttl, err := time.ParseDuration(v.GetString("jwt_ttl"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	window, err := time.ParseDuration(v.GetString("rate_limit_window"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW: %w", err)
	}

	cfg := &Config{
		AppName:          v.GetString("app_name"),
		Port:             v.GetString("port"),
		DatabaseURL:      v.GetString("database_url"),
		DBHost:           v.GetString("db_host"),
		DBPort:           v.GetString("db_port"),
		DBUser:           v.GetString("db_user"),
		DBPassword:       v.GetString("db_password"),
		DBName:           v.GetString("db_name"),
		DBTimeZone:       v.GetString("db_timezone"),
		JWTSecret:        v.GetString("jwt_secret"),
		JWTTTL:           ttl,
		LogLevel:         v.GetString("log_level"),
		RedisAddr:        v.GetString("redis_addr"),
		RedisPassword:    v.GetString("redis_password"),
		RedisDB:          v.GetInt("redis_db"),
		RateLimit:        v.GetInt("rate_limit"),
		RateLimitWindow:  window,
		KafkaBrokers:     splitList(v.GetString("kafka_brokers")),
		KafkaTopicPrefix: v.GetString("kafka_topic_prefix"),
	}

	return cfg, nil
}

// DSN returns DATABASE_URL when set, otherwise a key/value DSN built from the DB_* settings.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBTimeZone,
	)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
