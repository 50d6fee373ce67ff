package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"  // 4xx
	StatusError   = "error" // 5xx
)

const (
	MsgInternal   = "Internal Server Error"
	MsgNoToken    = "Unauthorized - No token provided"
	MsgBadToken   = "Invalid token"
	MsgForbidden  = "This role is not authorized"
	MsgNotFound   = "This resource is not available"
	MsgBadPayload = "Invalid request body"
)

// Envelope is the body of every API response.
type Envelope struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Data    any               `json:"data,omitempty"`
	Code    int               `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// WriteData writes {"status":"success","data":data}.
func WriteData(w http.ResponseWriter, code int, data any) {
	WriteJSON(w, code, Envelope{Status: StatusSuccess, Data: data})
}

// WriteMessage writes {"status":"success","message":msg}.
func WriteMessage(w http.ResponseWriter, code int, msg string) {
	WriteJSON(w, code, Envelope{Status: StatusSuccess, Message: msg})
}

// WriteFailure writes the error envelope. 5xx codes get status "error",
// everything else "fail".
func WriteFailure(w http.ResponseWriter, code int, msg string, details map[string]string) {
	status := StatusFail
	if code >= http.StatusInternalServerError {
		status = StatusError
	}
	WriteJSON(w, code, Envelope{Status: status, Message: msg, Code: code, Details: details})
}

// ErrBadPayload is returned by DecodeJSON for unreadable bodies.
var ErrBadPayload = errors.New("bad_payload")

// DecodeJSON reads at most maxBytes of JSON from r into v. Unknown fields are
// ignored.
func DecodeJSON(r *http.Request, v any, maxBytes int64) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return nil
}
