package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	chiMid "github.com/go-chi/chi/v5/middleware"
)

type logEntry struct {
	Timestamp  string `json:"ts"`
	Level      string `json:"level"`
	Message    string `json:"msg"`
	Method     string `json:"method"`
	Path       string `json:"path"`
	Status     int    `json:"status"`
	DurationMs int64  `json:"duration_ms"`
	RemoteIP   string `json:"remote_ip,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
}

// Logger emits a structured JSON log per request through the standard logger.
func Logger(next http.Handler) http.Handler {
	return RequestLogger(log.Default())(next)
}

// RequestLogger emits a structured JSON log per request to l.
func RequestLogger(l *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rid := chiMid.GetReqID(r.Context())
			if rid != "" {
				r = r.WithContext(WithRequestID(r.Context(), rid))
			}
			rw := NewResponseRecorder(w)
			next.ServeHTTP(rw, r)

			e := logEntry{
				Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
				Level:      levelFor(rw.Status()),
				Message:    "request",
				Method:     r.Method,
				Path:       r.URL.Path,
				Status:     rw.Status(),
				DurationMs: time.Since(start).Milliseconds(),
				RemoteIP:   clientIP(r),
				RequestID:  rid,
			}
			b, _ := json.Marshal(e)
			l.Println(string(b))
		})
	}
}

func levelFor(status int) string {
	switch {
	case status >= 500:
		return "error"
	case status >= 400:
		return "warn"
	default:
		return "info"
	}
}

// clientIP expects chi's RealIP to have already rewritten RemoteAddr.
func clientIP(r *http.Request) string {
	host := r.RemoteAddr
	if strings.HasPrefix(host, "[") {
		if i := strings.Index(host, "]"); i != -1 {
			return host[1:i]
		}
	}
	if strings.Count(host, ":") == 1 {
		return host[:strings.LastIndex(host, ":")]
	}
	return host
}
