package httputil

import (
	"encoding/json"
	"net/http"
)

// envelope is the uniform response wrapper: {success, data|message}.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// RespondData writes a success envelope carrying data.
// It marshals first so a failed encode never produces a partial response
// after headers are sent.
func RespondData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

// RespondMessage writes a success envelope carrying a human-readable message.
func RespondMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: true, Message: message})
}

// RespondError writes a failure envelope with a human-readable message.
func RespondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: false, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, env envelope) {
	payload, err := json.Marshal(env)
	if err != nil {
		// Fallback to plain text if JSON encoding fails
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}
