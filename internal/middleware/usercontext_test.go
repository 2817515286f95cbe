package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Naiem890/momentum/internal/request"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestUserContext(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantID     bool
	}{
		{name: "valid uuid", header: id.String(), wantStatus: http.StatusOK, wantID: true},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "malformed uuid", header: "not-a-uuid", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotID uuid.UUID
			var gotOK bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotID, gotOK = request.UserIDFromContext(r)
				w.WriteHeader(http.StatusOK)
			})

			handler := UserContext(zap.NewNop())(next)

			r := httptest.NewRequest("GET", "/api/v1/habits", nil)
			if tt.header != "" {
				r.Header.Set(UserIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantID {
				if !gotOK {
					t.Fatal("expected identity in context")
				}
				if gotID != id {
					t.Errorf("context user id = %s, want %s", gotID, id)
				}
			} else if gotOK {
				t.Error("handler must not run without a valid identity")
			}
		})
	}
}
