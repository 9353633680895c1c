package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, env, body string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(body), 0o600))
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	dir := writeConfig(t, Test, `
database:
  driver: sqlite
  path: ":memory:"
`)

	conf, err := Load(Test, dir)
	require.NoError(t, err)

	assert.Equal(t, Test, conf.Environment)
	assert.Equal(t, "sqlite", conf.Database.Driver)
	assert.Equal(t, ":memory:", conf.Database.Path)
	assert.Equal(t, 30*time.Second, conf.Server.ReadTimeout)
	assert.Equal(t, 30*time.Minute, conf.Database.ConnMaxLifetime)
	assert.Equal(t, 200*time.Millisecond, conf.Database.SlowQuery)

	assert.Equal(t, int64(10<<20), conf.Ingest.MaxFileBytes)
	assert.Equal(t, 5000, conf.Ingest.MaxRows)
	assert.Equal(t, 500, conf.Ingest.ChunkSize)
	assert.Equal(t, "alipay", conf.Dedup.PreferredSource)
	assert.Equal(t, 100000, conf.Dedup.MaxCandidates)

	loc, err := conf.Ingest.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Shanghai", loc.String())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	dir := writeConfig(t, Test, `
ingest:
  maxRows: 200
dedup:
  preferredSource: wechat
`)
	t.Setenv("BP_INGEST_MAX_ROWS", "100")
	t.Setenv("BP_INGEST_TIME_ZONE", "UTC")
	t.Setenv("BP_DB_DRIVER", "sqlite")
	t.Setenv("BP_DB_SLOW_QUERY_MS", "50")

	conf, err := Load(Test, dir)
	require.NoError(t, err)

	assert.Equal(t, 100, conf.Ingest.MaxRows)
	assert.Equal(t, "UTC", conf.Ingest.TimeZone)
	assert.Equal(t, "sqlite", conf.Database.Driver)
	assert.Equal(t, 50*time.Millisecond, conf.Database.SlowQuery)
	assert.Equal(t, "wechat", conf.Dedup.PreferredSource)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("Unknown preferred source", func(t *testing.T) {
		dir := writeConfig(t, Test, "dedup:\n  preferredSource: paypal\n")
		_, err := Load(Test, dir)
		assert.ErrorContains(t, err, "preferredSource")
	})

	t.Run("Unknown zone", func(t *testing.T) {
		dir := writeConfig(t, Test, "ingest:\n  timeZone: Mars/Olympus\n")
		_, err := Load(Test, dir)
		assert.ErrorContains(t, err, "timeZone")
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(Production, t.TempDir())
		assert.Error(t, err)
	})
}
