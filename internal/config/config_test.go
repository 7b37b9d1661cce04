package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("PGDATABASE", "nc_news_test")
	for _, key := range []string{"DATABASE_URL", "PORT", "PGHOST", "PGPORT", "PGUSER", "PGPASSWORD", "PGSSLMODE", "CACHE_TTL", "CACHE_ENABLED", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "nc_news_test", cfg.Database.Name)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=nc_news_test sslmode=disable", cfg.Database.GetDSN())
}

func TestLoad_MissingDatabase(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("PGDATABASE", "")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.EqualError(t, err, "PGDATABASE or DATABASE_URL not set")
}

func TestLoad_DatabaseURLWins(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/news?sslmode=require")
	t.Setenv("DB_MAX_OPEN_CONNS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@db:5432/news?sslmode=require", cfg.Database.GetDSN())
	assert.Equal(t, 2, cfg.Database.MaxOpenConns)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	contents := []byte("PGDATABASE=from_file\nPORT=7070\nCORS_ALLOWED_ORIGINS=http://a.test, http://b.test\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.staging"), contents, 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	t.Setenv("ENV", "staging")
	// registered with t.Setenv so godotenv's writes are undone afterwards
	t.Setenv("PGDATABASE", "")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	os.Unsetenv("PGDATABASE")
	os.Unsetenv("PORT")
	os.Unsetenv("CORS_ALLOWED_ORIGINS")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "from_file", cfg.Database.Name)
	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
}

func TestGetDurationEnv_InvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_TIMEOUT", "soon")
	assert.Equal(t, 3*time.Second, getDurationEnv("SOME_TIMEOUT", 3*time.Second))
}
