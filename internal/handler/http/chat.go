package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/agent-chat/internal/logger"
	"github.com/MKhiriev/agent-chat/internal/utils"
	"github.com/MKhiriev/agent-chat/models"
	"github.com/tidwall/gjson"
)

const maxChatBodyBytes = 1 << 20

func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	request, err := decodeChatRequest(w, r)
	if err != nil {
		log.Err(err).Msg("invalid chat request")
		h.writeError(w, r, err)
		return
	}

	reply, err := h.services.ChatService.Reply(r.Context(), request.Message)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.ChatResponse{Response: reply}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing chat response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if _, writeErr := utils.WriteDetail(w, detailFromError(err, status), status); writeErr != nil {
		logger.FromRequest(r).Err(writeErr).Msg("error writing error response")
	}
}

// decodeChatRequest reads the body once, checks the JSON shape with gjson
// and only then unmarshals it.
func decodeChatRequest(w http.ResponseWriter, r *http.Request) (models.ChatRequest, error) {
	var request models.ChatRequest
	if r.Body == nil {
		return request, ErrEmptyRequestBody
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxChatBodyBytes))
	if err != nil {
		return request, fmt.Errorf("%w: %w", ErrMalformedRequest, err)
	}
	if len(body) == 0 {
		return request, ErrEmptyRequestBody
	}
	if !gjson.ValidBytes(body) {
		return request, ErrMalformedRequest
	}
	if !gjson.GetBytes(body, "message").Exists() {
		return request, ErrMissingMessage
	}

	if err = json.Unmarshal(body, &request); err != nil {
		return request, fmt.Errorf("%w: %w", ErrMalformedRequest, err)
	}

	return request, nil
}
