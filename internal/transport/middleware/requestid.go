package middleware

import (
	"net/http"

	"fintrack/pkg/logger"

	"github.com/google/uuid"
)

// TraceIDHeader carries the request correlation id. Clients may supply
// their own; otherwise one is generated.
const TraceIDHeader = "X-Trace-ID"

// RequestID tags each request with a trace id, attaches it to the request
// logger and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := logger.With(r.Context(), "traceID", traceID)
		w.Header().Set(TraceIDHeader, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
