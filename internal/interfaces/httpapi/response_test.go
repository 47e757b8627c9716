package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/StungEye-RRC/boredgamegeek/internal/domain/game"
	"github.com/StungEye-RRC/boredgamegeek/internal/usecase"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if got, _ := body["apiVersion"].(string); got != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %v", body["apiVersion"])
	}
	return body
}

func TestWriteSuccess_GoogleEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected content type %q", got)
	}

	body := decodeEnvelope(t, rec)
	if _, ok := body["data"]; !ok {
		t.Fatalf("expected data key in success response")
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("did not expect error key in success response")
	}
}

func TestWriteError_ValidationMessageVerbatim(t *testing.T) {
	rec := httptest.NewRecorder()
	err := fmt.Errorf("%w: %w", usecase.ErrInvalidInput, &game.ValidationError{Message: "A name must be provided."})
	writeError(context.Background(), rec, err)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	errorObj, ok := decodeEnvelope(t, rec)["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["message"].(string); got != "A name must be provided." {
		t.Fatalf("expected verbatim validation message, got %q", got)
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid input", err: fmt.Errorf("%w: bad id", usecase.ErrInvalidInput), want: http.StatusBadRequest},
		{name: "not found", err: fmt.Errorf("%w: game id=3", usecase.ErrNotFound), want: http.StatusNotFound},
		{name: "unsupported media type", err: fmt.Errorf("%w: got \"text/plain\"", errUnsupportedMediaType), want: http.StatusUnsupportedMediaType},
		{name: "conflict", err: fmt.Errorf("%w: %w", usecase.ErrConflict, game.ErrConstraintViolation), want: http.StatusConflict},
		{name: "storage", err: errors.New("pq: connection refused"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.err)
			if got.HTTPStatus != tt.want {
				t.Fatalf("mapError(%v)=%d want=%d", tt.err, got.HTTPStatus, tt.want)
			}
		})
	}
}

func TestMapError_InternalHidesCause(t *testing.T) {
	got := mapError(errors.New("pq: password authentication failed"))
	if got.Message != "internal server error" {
		t.Fatalf("internal error leaked cause: %q", got.Message)
	}
}
