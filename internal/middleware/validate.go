package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"litmark/internal/httputil"
)

// Schema is a declarative body schema: ozzo key rules applied to the decoded
// JSON object. Unknown keys are allowed; required/format checks come from the
// rules themselves.
type Schema []*validation.KeyRules

// ValidateBody enforces the schema on the JSON request body before the
// handler runs. The first violation short-circuits with 400; the body is
// restored so the handler can decode it again. Multipart bodies pass through
// untouched; routes accepting uploads validate their form fields in the
// handler and service layers.
func ValidateBody(schema Schema) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
				next.ServeHTTP(w, r)
				return
			}

			raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
			if err != nil {
				httputil.RespondError(w, http.StatusBadRequest, "Unable to read request body")
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(raw))

			var body map[string]interface{}
			if err := json.Unmarshal(raw, &body); err != nil {
				httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
				return
			}

			if err := validation.Validate(body, validation.Map(schema...).AllowExtraKeys()); err != nil {
				httputil.RespondError(w, http.StatusBadRequest, err.Error())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// PositiveInteger validates that a JSON number is a positive whole number.
// JSON numbers decode to float64, so the integer check is explicit.
var PositiveInteger = validation.By(func(value interface{}) error {
	if value == nil {
		return nil
	}
	f, ok := value.(float64)
	if !ok || f != float64(int64(f)) || f < 1 {
		return errNotPositiveInteger
	}
	return nil
})

var errNotPositiveInteger = validation.NewError("validation_positive_integer", "must be a positive integer")
