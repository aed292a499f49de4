package common

import (
	"encoding/json"
	"net/http"
)

type errorBody struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// WriteError maps an error kind to its HTTP status and a user-safe message.
func WriteError(w http.ResponseWriter, err error) {
	WriteJSON(w, HTTPStatus(err), errorBody{Error: PublicMessage(err)})
}
