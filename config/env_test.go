package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, loadFromFiles(filepath.Join(dir, "missing.json"), filepath.Join(dir, "missing.env")))

	assert.Equal(t, "mongodb://localhost:27017", get("MONGO_URI", ""))
	assert.Equal(t, "product_catalog", get("DATABASE_NAME", ""))
	assert.Equal(t, "0.0.0.0", get("SERVER_ADDRESS", ""))
	assert.Equal(t, "8080", get("SERVER_PORT", ""))
	assert.Equal(t, "", get("REDIS_ADDR", ""))
}

func TestDotEnvOverridesJSON(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeFile(t, dir, "app.json", `{"server_port":"9000","database_name":"from_json","ignored":42}`)
	envPath := writeFile(t, dir, ".env", "# comment\nSERVER_PORT=\"9100\"\nbroken line\n")

	require.NoError(t, loadFromFiles(jsonPath, envPath))

	assert.Equal(t, "9100", get("SERVER_PORT", ""))
	assert.Equal(t, "from_json", get("DATABASE_NAME", ""))
}

func TestEnvironmentWins(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "MONGO_URI=mongodb://dotenv:27017\n")
	t.Setenv("MONGO_URI", "mongodb://environ:27017")

	require.NoError(t, loadFromFiles(filepath.Join(dir, "missing.json"), envPath))

	assert.Equal(t, "mongodb://environ:27017", get("MONGO_URI", ""))
}

func TestMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeFile(t, dir, "app.json", `{not json`)

	err := loadFromFiles(jsonPath, filepath.Join(dir, "missing.env"))
	assert.ErrorContains(t, err, "decode")
}

func TestDuration(t *testing.T) {
	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "CACHE_TTL=5m\nMONGO_TIMEOUT=nonsense\n")
	require.NoError(t, loadFromFiles(filepath.Join(dir, "missing.json"), envPath))

	assert.Equal(t, 5*time.Minute, duration("CACHE_TTL", time.Second))
	assert.Equal(t, 3*time.Second, duration("MONGO_TIMEOUT", 3*time.Second))
}
