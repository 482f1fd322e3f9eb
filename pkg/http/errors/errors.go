package errors

import (
	"encoding/json"
	"net/http"
)

// Envelope is the error payload every endpoint returns on failure.
type Envelope struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

var messages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusUnauthorized:        "the client must authenticate",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusRequestTimeout:      "request time out",
	http.StatusUnprocessableEntity: "request cannot be processed",
	http.StatusInternalServerError: "internal server error",
	http.StatusNotImplemented:      "not implemented",
	http.StatusServiceUnavailable:  "service unavailable",
	http.StatusGatewayTimeout:      "gateway timeout",
}

// Message returns the canonical message for a mapped status code.
// Unmapped codes fall back to the stdlib status text.
func Message(status int) string {
	if msg, ok := messages[status]; ok {
		return msg
	}
	return http.StatusText(status)
}

// Respond writes the error envelope for the given status code.
func Respond(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{
		Success: false,
		Error:   status,
		Message: Message(status),
	})
}

// RespondNotFound writes the 404 envelope.
func RespondNotFound(w http.ResponseWriter) {
	Respond(w, http.StatusNotFound)
}

// RespondUnprocessable writes the 422 envelope.
func RespondUnprocessable(w http.ResponseWriter) {
	Respond(w, http.StatusUnprocessableEntity)
}

// RespondInternalError writes the 500 envelope.
func RespondInternalError(w http.ResponseWriter) {
	Respond(w, http.StatusInternalServerError)
}

// RespondMethodNotAllowed writes the 405 envelope.
func RespondMethodNotAllowed(w http.ResponseWriter) {
	Respond(w, http.StatusMethodNotAllowed)
}
