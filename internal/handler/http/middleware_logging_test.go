package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/agent-chat/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// requestWithBufferLogger attaches a logger writing into buf the same way
// withTraceID does.
func requestWithBufferLogger(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		status       int
		body         string
		wantContains []string
	}{
		{
			name:   "POST /chat 200",
			method: http.MethodPost,
			path:   "/chat",
			status: http.StatusOK,
			body:   `{"response":"ok"}`,
			wantContains: []string{
				`"method":"POST"`,
				`"uri":"/chat"`,
				`"status":200`,
				`"duration":`,
				`"size":17`,
			},
		},
		{
			name:   "GET /health 500",
			method: http.MethodGet,
			path:   "/health",
			status: http.StatusInternalServerError,
			wantContains: []string{
				`"method":"GET"`,
				`"status":500`,
				`"size":0`,
			},
		},
		{
			name:   "no explicit WriteHeader is logged as 200",
			method: http.MethodGet,
			path:   "/api/version",
			wantContains: []string{
				`"status":200`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			})

			req := requestWithBufferLogger(tt.method, tt.path, &buf)
			h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_PassesResponseThrough(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Custom", "1")
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, requestWithBufferLogger(http.MethodGet, "/", &buf))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "1", rr.Header().Get("X-Custom"))
	assert.Equal(t, "short and stout", rr.Body.String())
}
