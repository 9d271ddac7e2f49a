package handlers

import (
	"encoding/json"
	"net/http"
)

func jsonResponse(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	jsonResponse(w, ErrorResponse{Error: msg}, status)
}

// ErrorResponse is the body of every failed API call. Kind and Stage are set
// when a translation run failed.
type ErrorResponse struct {
	Error    string   `json:"error"`
	Kind     string   `json:"kind,omitempty"`
	Stage    string   `json:"stage,omitempty"`
	Messages []string `json:"messages,omitempty"`
}
