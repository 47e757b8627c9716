package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/StungEye-RRC/boredgamegeek/internal/config"
	"github.com/StungEye-RRC/boredgamegeek/internal/platform/logging"
)

func TestNewHTTPServer_MemoryStorage(t *testing.T) {
	cfg := config.Config{
		HTTPAddr:           ":0",
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Second,
		StorageDriver:      config.StorageMemory,
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		CORSAllowedOrigins: []string{"*"},
	}

	srv, closer, err := NewHTTPServer(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}
	defer closer.Close()

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/games/1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected seeded game, got status %d: %s", rec.Code, rec.Body.String())
	}
}

func TestNewHTTPServer_UnknownStorage(t *testing.T) {
	if _, _, err := NewHTTPServer(config.Config{StorageDriver: "sqlite"}, nil); err == nil {
		t.Fatalf("expected error for unknown storage driver")
	}
}
