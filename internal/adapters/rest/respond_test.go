package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ewilliams-labs/moodreel/internal/core/domain"
	"github.com/ewilliams-labs/moodreel/internal/logging"
)

func TestWriteServiceError(t *testing.T) {
	prev := log.Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})
	var buf bytes.Buffer
	logging.InitWriter(&buf, "info", false)

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{"invalid input", fmt.Errorf("service: %w", domain.ErrInvalidInput), http.StatusBadRequest, errCodeInvalidInput},
		{"no story", domain.ErrNoCurrentStory, http.StatusNotFound, errCodeNoCurrentStory},
		{"not found", domain.ErrNotFound, http.StatusNotFound, errCodeNotFound},
		{"duplicate", domain.ErrDuplicate, http.StatusConflict, errCodeDuplicate},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError, errCodeInternal},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, tt.err)

			if rec.Code != tt.wantCode {
				t.Errorf("expected status %d, got %d", tt.wantCode, rec.Code)
			}
			var body errorResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Code != tt.wantErr {
				t.Errorf("expected code %s, got %s", tt.wantErr, body.Code)
			}
		})
	}

	out := buf.String()
	if !strings.Contains(out, `"component":"rest"`) || !strings.Contains(out, "disk on fire") {
		t.Errorf("expected the internal error to be logged, got %q", out)
	}
}
