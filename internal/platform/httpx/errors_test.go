package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/melodex/melodex/internal/shared"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{shared.ErrValidation, http.StatusBadRequest},
		{shared.ErrEmailTaken, http.StatusBadRequest},
		{shared.ErrInvalidCredentials, http.StatusUnauthorized},
		{shared.ErrTokenInvalid, http.StatusUnauthorized},
		{shared.ErrForbidden, http.StatusForbidden},
		{shared.ErrNotFound, http.StatusNotFound},
		{shared.ErrAlreadyInPlaylist, http.StatusConflict},
		{shared.ErrRateLimited, http.StatusTooManyRequests},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		RespondError(rec, tc.err)
		if rec.Code != tc.want {
			t.Errorf("RespondError(%v) status = %d, want %d", tc.err, rec.Code, tc.want)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("body not JSON: %v", err)
		}
		if body["error"] == "" {
			t.Errorf("RespondError(%v) returned empty error message", tc.err)
		}
	}
}

func TestRespondErrorUnwrapsWrappedErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, fmt.Errorf("add song: %w", shared.ErrAlreadyInPlaylist))
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestRespondErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, errors.New("pq: connection refused"))
	var body map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["error"] != "internal error" {
		t.Fatalf("internal errors must not leak detail, got %q", body["error"])
	}
}
