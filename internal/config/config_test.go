package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("ML_USER_SPACE", "")
	t.Setenv("UPSTREAM_TIMEOUT", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg := Load()

	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, 610, cfg.MLUserSpace)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("MONGO_DB", "movies_test")
	t.Setenv("ML_USER_SPACE", "1000")
	t.Setenv("REC_CACHE_TTL", "90s")
	t.Setenv("CORS_ORIGINS", "http://a.local, http://b.local ,")

	cfg := Load()

	assert.Equal(t, "movies_test", cfg.MongoDB)
	assert.Equal(t, 1000, cfg.MLUserSpace)
	assert.Equal(t, 90*time.Second, cfg.RecCacheTTL)
	assert.Equal(t, []string{"http://a.local", "http://b.local"}, cfg.CORSOrigins)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("ML_USER_SPACE", "lots")
	t.Setenv("SNAPSHOT_MAX_AGE", "yesterday")

	cfg := Load()

	assert.Equal(t, 610, cfg.MLUserSpace)
	assert.Equal(t, 24*time.Hour, cfg.SnapshotMaxAge)
}
