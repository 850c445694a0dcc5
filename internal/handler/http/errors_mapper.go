package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/agent-chat/internal/app"
	"github.com/MKhiriev/agent-chat/internal/service"
)

var errorStatusMap = map[error]int{
	ErrEmptyRequestBody: http.StatusBadRequest,
	ErrMalformedRequest: http.StatusBadRequest,
	ErrMissingMessage:   http.StatusBadRequest,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// detailFromError renders the `detail` body field. Server-side failures keep
// the prefix clients already match on.
func detailFromError(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return app.MsgErrorProcessingRequest + ": " + err.Error()
	}
	return err.Error()
}
