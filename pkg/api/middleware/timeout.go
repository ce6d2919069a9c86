package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"densityhq/callisto/pkg/api/types"
)

// Timeout enforces a per-request deadline via context.WithTimeout. When the
// deadline is exceeded before the handler finishes, a 504 response is written
// and the handler's context is cancelled.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			done := make(chan struct{})

			go func() {
				defer close(done)
				next.ServeHTTP(w, r.WithContext(ctx))
			}()

			select {
			case <-done:
				return

			case <-ctx.Done():
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					errResp := types.NewErrorResponse(types.CodeRequestTimeout,
						"request took too long to complete")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusGatewayTimeout)
					_ = json.NewEncoder(w).Encode(errResp)
				}
			}
		})
	}
}
