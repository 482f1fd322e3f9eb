package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWritesEnvelope(t *testing.T) {
	cases := map[int]string{
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

	for status, message := range cases {
		rec := httptest.NewRecorder()
		Respond(rec, status)

		assert.Equal(t, status, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var env Envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.False(t, env.Success)
		assert.Equal(t, status, env.Error)
		assert.Equal(t, message, env.Message)
	}
}

func TestMessageFallsBackToStatusText(t *testing.T) {
	assert.Equal(t, http.StatusText(http.StatusTeapot), Message(http.StatusTeapot))
}
