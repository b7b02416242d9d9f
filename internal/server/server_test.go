package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursesearch/internal/bootstrap"
	"github.com/yigit/coursesearch/internal/db/dbtest"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dbPath := dbtest.NewCourseStore(t, dbtest.SampleCourses()...)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
server:
  mode: production
database:
  driver: sqlite
logging:
  level: error
`), 0o600))
	t.Setenv("DB_PATH", dbPath)

	srv, err := NewServer(bootstrap.Options{ConfigPath: configPath})
	require.NoError(t, err)
	return srv
}

func TestServer_SearchEndToEnd(t *testing.T) {
	srv := newTestServer(t)

	form := url.Values{"semester": {"Fall2023"}}
	req := httptest.NewRequest(http.MethodPost, "/SearchServlet", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t,
		"<html><body><h3>Course List:</h3><ul><li>CS100 Fall2023 Intro</li><li>CS200 Fall2023 Data Structures</li></ul></body></html>",
		rec.Body.String())
}

func TestServer_Ping(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pong")
}

func TestNewServer_InvalidConfig(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	_, err := NewServer(bootstrap.Options{ConfigPath: filepath.Join(t.TempDir(), "none.yaml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestServer_ShutdownBeforeRun(t *testing.T) {
	srv := newTestServer(t)
	assert.NoError(t, srv.Shutdown(context.Background()))
}
