package shared

import (
	"encoding/json"
	"net/http"
)

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// DecodeTaskPayload decodes a request body into an untyped field map for
// payload validation. A missing, empty or malformed body yields an empty
// map rather than an error; the validator then decides what is actually
// required (a create without a title still fails, an update becomes a no-op).
func DecodeTaskPayload(r *http.Request) map[string]any {
	var payload map[string]any
	if err := DecodeJSON(r, &payload); err != nil || payload == nil {
		return map[string]any{}
	}
	return payload
}
