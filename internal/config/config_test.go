package config

import (
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.DatabaseDriver())
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	path := writeFile(t, "config.yaml", `
server:
  port: "9090"
database:
  driver: postgres
  host: db.internal
  dbname: registrar
  user: reader
logging:
  level: debug
  format: text
`)
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("DB_HOST", "db.override")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "db.override", cfg.Database.Host)
	assert.Equal(t, "registrar", cfg.Database.DBName)
	assert.Equal(t, "reader", cfg.Database.User)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown driver", "database:\n  driver: oracle\n", "unsupported database driver"},
		{"sqlite without path", "database:\n  driver: sqlite\n", "database path is required"},
		{"bad timeout", "database:\n  connect_timeout: soon\n", "connect timeout"},
		{"broken yaml", "server: [", "failed to parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, "config.yaml", tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadConfig_SQLiteFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", "/tmp/courses.db")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.DatabaseDriver())
	assert.Equal(t, "/tmp/courses.db", cfg.Database.Path)
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "root"
	cfg.Database.Password = "p@ss:word"
	cfg.Database.ConnectTimeout = "1500ms"

	dsn, err := url.Parse(cfg.GetPostgresConnectionString())
	require.NoError(t, err)

	assert.Equal(t, "postgres", dsn.Scheme)
	assert.Equal(t, "localhost:5432", dsn.Host)
	assert.Equal(t, "/njit", dsn.Path)
	assert.Equal(t, "root", dsn.User.Username())
	password, _ := dsn.User.Password()
	assert.Equal(t, "p@ss:word", password)
	assert.Equal(t, "disable", dsn.Query().Get("sslmode"))
	assert.Equal(t, "2", dsn.Query().Get("connect_timeout"))
}

func TestLoadEnvFile(t *testing.T) {
	path := writeFile(t, ".env", "COURSESEARCH_TEST_VAR=from-file\n")
	t.Setenv("COURSESEARCH_TEST_VAR", "")
	os.Unsetenv("COURSESEARCH_TEST_VAR")

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv("COURSESEARCH_TEST_VAR"))

	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "absent.env")))
	assert.NoError(t, LoadEnvFile(""))
}

func TestProcessStructFields_RejectsNonStringField(t *testing.T) {
	t.Setenv("COURSESEARCH_TEST_PORT", "8080")

	var target struct {
		Port int `env:"COURSESEARCH_TEST_PORT"`
	}
	err := processStructFields(&target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported field type: int")
}
