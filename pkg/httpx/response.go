package httpx

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets headers preventing caching of sensitive responses.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// Message is the {"message": ...} envelope used for simple confirmations and
// errors.
type Message struct {
	Message string `json:"message"`
}

// WriteMessage writes a Message envelope.
func WriteMessage(w http.ResponseWriter, code int, msg string) {
	WriteJSON(w, code, Message{Message: msg})
}
