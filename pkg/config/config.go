package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App            AppConfig
	Server         ServerConfig
	Database       DatabaseConfig
	JWT            JWTConfig
	Redis          RedisConfig
	Recommendation RecommendationConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port         string
	AllowOrigins []string
}

type DatabaseConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	AutoMigrate bool
}

type JWTConfig struct {
	SecretKey string
}

type RedisConfig struct {
	Enabled       bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

type RecommendationConfig struct {
	CacheTTL         time.Duration
	Oversample       int
	DefaultLimit     int
	MaxLimit         int
	MinCategories    int
	AnalyticsTTL     time.Duration
	AnalyticsTimeout time.Duration
	MemoryCacheSize  int
	BreakerFailures  int
	BreakerTimeout   time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Diverse Recommendation API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			AllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:8080")),
		},
		Database: DatabaseConfig{
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnv("DB_PORT", "5432"),
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", ""),
			Name:        getEnv("DB_NAME", "diverse_market"),
			SSLMode:     getEnv("DB_SSL_MODE", "disable"),
			AutoMigrate: getBool("DB_AUTO_MIGRATE", false),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Redis: RedisConfig{
			Enabled:       getBool("REDIS_ENABLED", true),
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
		Recommendation: RecommendationConfig{
			CacheTTL:         getDuration("RECO_CACHE_TTL", 300*time.Second),
			Oversample:       getInt("RECO_OVERSAMPLE", 5),
			DefaultLimit:     getInt("RECO_DEFAULT_LIMIT", 10),
			MaxLimit:         getInt("RECO_MAX_LIMIT", 50),
			MinCategories:    getInt("RECO_MIN_CATEGORIES", 3),
			AnalyticsTTL:     getDuration("RECO_ANALYTICS_TTL", 30*24*time.Hour),
			AnalyticsTimeout: getDuration("RECO_ANALYTICS_TIMEOUT", 5*time.Second),
			MemoryCacheSize:  getInt("RECO_MEMORY_CACHE_SIZE", 1024),
			BreakerFailures:  getInt("RECO_BREAKER_FAILURES", 5),
			BreakerTimeout:   getDuration("RECO_BREAKER_TIMEOUT", 30*time.Second),
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	if err := cfg.Recommendation.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (r RecommendationConfig) Validate() error {
	if r.CacheTTL <= 0 {
		return errors.New("recommendation cache ttl must be positive")
	}
	if r.AnalyticsTTL <= 0 {
		return errors.New("recommendation analytics ttl must be positive")
	}
	if r.Oversample < 1 {
		return errors.New("recommendation oversample must be at least 1")
	}
	if r.MaxLimit < 1 || r.MaxLimit > 50 {
		return errors.New("recommendation max limit must be within [1, 50]")
	}
	if r.DefaultLimit < 1 || r.DefaultLimit > r.MaxLimit {
		return errors.New("recommendation default limit must be within [1, max limit]")
	}
	if r.MinCategories < 0 {
		return errors.New("recommendation min categories must not be negative")
	}
	if r.BreakerFailures < 1 {
		return errors.New("recommendation breaker failures must be at least 1")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultVal
}

func getBool(key string, defaultVal bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return defaultVal
}

// getDuration accepts Go durations ("90s") or plain seconds ("300").
func getDuration(key string, defaultVal time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultVal
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
