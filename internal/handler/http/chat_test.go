package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/agent-chat/internal/service"
	"github.com/MKhiriev/agent-chat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postChat(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.chat(rec, req)
	return rec
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Detail
}

func TestChat_Success(t *testing.T) {
	chat := &stubChatService{reply: "line one\nline two"}
	h := newHandlerWithStubs(chat, &stubAppInfoService{})

	rec := postChat(h, `{"message":"  hello  "}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "line one\nline two", resp.Response)
	assert.Equal(t, "  hello  ", chat.message, "message must reach the service verbatim")
	assert.Equal(t, 1, chat.calls)
}

func TestChat_ExtraFieldsIgnored(t *testing.T) {
	chat := &stubChatService{reply: "ok"}
	h := newHandlerWithStubs(chat, &stubAppInfoService{})

	rec := postChat(h, `{"message":"status","user_id":"u-1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "status", chat.message)
}

func TestChat_BadRequests(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantDetail string
	}{
		{name: "empty body", body: "", wantDetail: ErrEmptyRequestBody.Error()},
		{name: "not json", body: "hello", wantDetail: ErrMalformedRequest.Error()},
		{name: "missing message", body: `{"text":"hi"}`, wantDetail: ErrMissingMessage.Error()},
		{name: "message is not a string", body: `{"message":42}`, wantDetail: ErrMalformedRequest.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chat := &stubChatService{reply: "unused"}
			h := newHandlerWithStubs(chat, &stubAppInfoService{})

			rec := postChat(h, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decodeDetail(t, rec), tt.wantDetail)
			assert.Zero(t, chat.calls, "service must not be called for invalid requests")
		})
	}
}

func TestChat_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "validation failure",
			err:        fmt.Errorf("%w: empty message", service.ErrInvalidDataProvided),
			wantStatus: http.StatusBadRequest,
			wantDetail: "invalid data provided: empty message",
		},
		{
			name:       "responder failure",
			err:        errors.New("model unavailable"),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "Error processing request: model unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithStubs(&stubChatService{err: tt.err}, &stubAppInfoService{})

			rec := postChat(h, `{"message":"hi"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantDetail, decodeDetail(t, rec))
		})
	}
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"empty body", ErrEmptyRequestBody, http.StatusBadRequest},
		{"wrapped malformed", fmt.Errorf("%w: eof", ErrMalformedRequest), http.StatusBadRequest},
		{"missing message", ErrMissingMessage, http.StatusBadRequest},
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
