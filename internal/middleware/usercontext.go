package middleware

import (
	"net/http"

	logpkg "github.com/Naiem890/momentum/internal/logger"
	"github.com/Naiem890/momentum/internal/request"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserIDHeader carries the caller identity. The API trusts the fronting
// proxy to set it; there is no authentication layer here.
const UserIDHeader = "X-User-ID"

// UserContext extracts the caller identity from the X-User-ID header and
// attaches it to the request context. Requests without a parseable UUID
// are rejected before reaching the handlers.
func UserContext(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(UserIDHeader)
			if raw == "" {
				http.Error(w, "missing "+UserIDHeader+" header", http.StatusUnauthorized)
				return
			}

			userID, err := uuid.Parse(raw)
			if err != nil {
				logger.Warn("invalid_user_id_header",
					zap.String("value", logpkg.SanitizeUserID(raw)),
					zap.String("path", logpkg.SanitizePath(r.URL.Path)),
				)
				http.Error(w, "invalid "+UserIDHeader+" header", http.StatusBadRequest)
				return
			}

			ctx := request.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
