package httputil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// ParseJSON decodes JSON from the request body into the given destination.
// It limits the request body size to prevent abuse.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	return nil
}

// PathID parses the {id} path value as a positive integer.
func PathID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
