package middleware

import (
	"encoding/json"
	"net/http"

	"herald/internal/core/event"
	"herald/internal/core/report"
	"herald/internal/logger"
)

// Recover turns handler panics into EventUnhandledError publications and a
// 500 response. This includes panics raised by bus subscribers, since they
// propagate out of Publish into the handler that published.
func Recover(bus *event.Bus, log logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				evt := report.Capture(bus, r.Method+" "+r.URL.Path, rec)
				log.Error("http: panic recovered", "id", evt.ID.String(), "path", r.URL.Path)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"message": "Something went wrong",
					"data":    map[string]string{"error_id": evt.ID.String()},
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
