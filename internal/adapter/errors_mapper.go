package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorDetail(resp.Body())

	var kind error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		kind = ErrBadRequest
	case http.StatusNotFound:
		kind = ErrNotFound
	case http.StatusInternalServerError:
		kind = ErrInternalServerError
	case http.StatusBadGateway:
		kind = ErrBadGateway
	case http.StatusServiceUnavailable:
		kind = ErrServiceUnavailable
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: %w: http %d: %s", ErrRequestFailed, ErrUnexpectedStatus, resp.StatusCode(), body)
	}

	if body == "" {
		return fmt.Errorf("%w: %w", ErrRequestFailed, kind)
	}
	return fmt.Errorf("%w: %w: %s", ErrRequestFailed, kind, body)
}

// errorDetail prefers the agent's {"detail": ...} field and falls back to the
// raw trimmed body.
func errorDetail(body []byte) string {
	if gjson.ValidBytes(body) {
		if detail := gjson.GetBytes(body, "detail"); detail.Exists() {
			return strings.TrimSpace(detail.String())
		}
	}
	return strings.TrimSpace(string(body))
}
