package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	defaultMongoURI      = "mongodb://localhost:27017"
	defaultDatabaseName  = "product_catalog"
	defaultServerAddress = "0.0.0.0"
	defaultServerPort    = "8080"
	defaultAppEnv        = "local"
	defaultCacheTTL      = 60 * time.Second
	defaultMongoTimeout  = 10 * time.Second
)

// keys lists every setting the process environment may override.
var keys = []string{
	"MONGO_URI",
	"DATABASE_NAME",
	"SERVER_ADDRESS",
	"SERVER_PORT",
	"APP_ENV",
	"REDIS_ADDR",
	"REDIS_PASSWORD",
	"CACHE_TTL",
	"MONGO_TIMEOUT",
}

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

// Load merges config/app.json, .env and the process environment (in that
// order, later sources win) on top of the built-in defaults. Only the first
// call does any work.
func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

// Reload re-reads every source regardless of earlier loads.
func Reload() error {
	loadOnce.Do(func() {})
	return loadFromFiles("config/app.json", ".env")
}

func defaultValues() map[string]string {
	return map[string]string{
		"MONGO_URI":      defaultMongoURI,
		"DATABASE_NAME":  defaultDatabaseName,
		"SERVER_ADDRESS": defaultServerAddress,
		"SERVER_PORT":    defaultServerPort,
		"APP_ENV":        defaultAppEnv,
		"REDIS_ADDR":     "",
		"REDIS_PASSWORD": "",
	}
}

func MongoURI() string {
	_ = Load()
	return get("MONGO_URI", defaultMongoURI)
}

// DatabaseName is the database served by the HTTP API.
func DatabaseName() string {
	_ = Load()
	return get("DATABASE_NAME", defaultDatabaseName)
}

func ServerAddress() string {
	_ = Load()
	return get("SERVER_ADDRESS", defaultServerAddress)
}

func ServerPort() string {
	_ = Load()
	return get("SERVER_PORT", defaultServerPort)
}

// ListenAddr joins ServerAddress and ServerPort.
func ListenAddr() string {
	return ServerAddress() + ":" + ServerPort()
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// RedisAddr returns "" when no cache is configured.
func RedisAddr() string {
	_ = Load()
	return get("REDIS_ADDR", "")
}

func RedisPassword() string {
	_ = Load()
	return get("REDIS_PASSWORD", "")
}

func CacheTTL() time.Duration {
	_ = Load()
	return duration("CACHE_TTL", defaultCacheTTL)
}

func MongoTimeout() time.Duration {
	_ = Load()
	return duration("MONGO_TIMEOUT", defaultMongoTimeout)
}

func duration(key string, fallback time.Duration) time.Duration {
	raw := get(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	mergeEnviron(loaded)

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}

		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

func mergeEnviron(out map[string]string) {
	for _, key := range keys {
		if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			out[key] = strings.TrimSpace(v)
		}
	}
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}

	return fallback
}

// Get reads any config key by name with an optional fallback.
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}
