package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// handleResponse maps a completed vault response to either a decoded JSON
// object or a typed error.
//
// Mapping, in order:
//   - 204 No Content → (nil, nil): the success sentinel for zero results;
//   - 424 / 410      → ErrSignatureInvalid, message taken from the body
//     when one is present;
//   - 403 / 404      → ErrNotFound;
//   - anything else, including other non-2xx statuses, falls through to
//     generic body parsing: the body must be valid non-empty JSON decoding
//     to an object (ErrEmptyBody / ErrMalformedResponse otherwise); an
//     "errors" field is joined and surfaced as ErrAPIErrors; otherwise the
//     decoded object is the success value.
func handleResponse(resp *resty.Response) (map[string]any, error) {
	if resp.StatusCode() == http.StatusNoContent {
		return nil, nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusFailedDependency, http.StatusGone:
		if body != "" {
			return nil, fmt.Errorf("%w: %s", ErrSignatureInvalid, body)
		}
		return nil, ErrSignatureInvalid
	case http.StatusForbidden, http.StatusNotFound:
		return nil, fmt.Errorf("%w: http %d", ErrNotFound, resp.StatusCode())
	}

	if body == "" {
		return nil, fmt.Errorf("%w: http %d", ErrEmptyBody, resp.StatusCode())
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(decoded) == 0 {
		return nil, fmt.Errorf("%w: http %d", ErrEmptyBody, resp.StatusCode())
	}

	if rawErrors, ok := decoded["errors"]; ok {
		return nil, fmt.Errorf("%w: %s", ErrAPIErrors, joinErrors(rawErrors))
	}

	return decoded, nil
}

// joinErrors flattens the "errors" field of an error body into one string.
// The vault emits either a list of strings or a map of field → messages.
func joinErrors(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, "; ")
	case map[string]any:
		parts := make([]string, 0, len(v))
		for field, message := range v {
			parts = append(parts, fmt.Sprintf("%s: %s", field, joinErrors(message)))
		}
		return strings.Join(parts, "; ")
	default:
		return fmt.Sprint(v)
	}
}
