package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	MongoURI  string
	MongoDB   string
	RedisAddr string
	RedisPass string
	JWTSecret string
	HTTPPort  string

	TMDBAPIKey  string
	TMDBBaseURL string

	MLServiceURL string
	MLUserSpace  int

	UpstreamTimeout time.Duration
	RecCacheTTL     time.Duration
	TMDBCacheTTL    time.Duration

	SnapshotDir    string
	SnapshotMaxAge time.Duration

	CORSOrigins  []string
	RateLimitRPM int

	LogLevel  string
	LogFormat string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "movie_recommendation"),
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass: getEnv("REDIS_PASSWORD", ""),
		JWTSecret: getEnv("JWT_SECRET", "super-secret"),
		HTTPPort:  getEnv("HTTP_PORT", "5001"),

		TMDBAPIKey:  getEnv("TMDB_API_KEY", ""),
		TMDBBaseURL: getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),

		MLServiceURL: getEnv("ML_SERVICE_URL", "http://localhost:5000"),
		MLUserSpace:  getEnvInt("ML_USER_SPACE", 610),

		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		RecCacheTTL:     getEnvDuration("REC_CACHE_TTL", time.Hour),
		TMDBCacheTTL:    getEnvDuration("TMDB_CACHE_TTL", 24*time.Hour),

		SnapshotDir:    getEnv("SNAPSHOT_DIR", "data/snapshots"),
		SnapshotMaxAge: getEnvDuration("SNAPSHOT_MAX_AGE", 24*time.Hour),

		CORSOrigins:  getEnvList("CORS_ORIGINS", []string{"http://localhost:3000"}),
		RateLimitRPM: getEnvInt("RATE_LIMIT_RPM", 120),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Debug().Str("key", key).Msg("[config] variable no seteada, usando valor por defecto")
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("[config] entero inválido, usando valor por defecto")
		return def
	}
	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("[config] duración inválida, usando valor por defecto")
		return def
	}
	return d
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
