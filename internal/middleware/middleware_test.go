package middleware

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chiMid "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"
)

func TestRequestLoggerWritesJSON(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	var seenID string
	h := chiMid.RequestID(RequestLogger(log.New(&out, "", 0))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID, _ = RequestID(r.Context())
		w.WriteHeader(http.StatusNotFound)
	})))

	req := httptest.NewRequest(http.MethodGet, "/projects/missing", nil)
	req.RemoteAddr = "203.0.113.7:51000"
	h.ServeHTTP(httptest.NewRecorder(), req)

	var e logEntry
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out.String())), &e))
	require.Equal(t, "request", e.Message)
	require.Equal(t, "warn", e.Level)
	require.Equal(t, http.MethodGet, e.Method)
	require.Equal(t, "/projects/missing", e.Path)
	require.Equal(t, http.StatusNotFound, e.Status)
	require.Equal(t, "203.0.113.7", e.RemoteIP)
	require.NotEmpty(t, e.RequestID)
	require.Equal(t, e.RequestID, seenID)
}

func TestResponseRecorderDefaultsToOK(t *testing.T) {
	t.Parallel()

	rec := NewResponseRecorder(httptest.NewRecorder())
	_, err := rec.Write([]byte("hi"))
	require.NoError(t, err)
	rec.WriteHeader(http.StatusTeapot)
	require.Equal(t, http.StatusOK, rec.Status())
}

func TestLevelFor(t *testing.T) {
	t.Parallel()

	require.Equal(t, "info", levelFor(http.StatusOK))
	require.Equal(t, "info", levelFor(http.StatusFound))
	require.Equal(t, "warn", levelFor(http.StatusNotFound))
	require.Equal(t, "error", levelFor(http.StatusInternalServerError))
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{
		"198.51.100.2:443": "198.51.100.2",
		"[2001:db8::1]:80": "2001:db8::1",
		"2001:db8::1":      "2001:db8::1",
		"198.51.100.2":     "198.51.100.2",
	} {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = in
		require.Equal(t, want, clientIP(r), in)
	}
}

func TestCacheControl(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	CacheControl("public, max-age=300")(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, "public, max-age=300", rec.Header().Get("Cache-Control"))
}
