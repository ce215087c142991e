// Package response writes JSON bodies. Success bodies are the resource
// itself; errors are {"code": <status>, "message": "..."}.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/shashiranjanraj/catalog/pkg/apperr"
)

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Success sends a 200 with v as the body.
func Success(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusOK, v)
}

// Created sends a 201 with v as the body.
func Created(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusCreated, v)
}

// Error sends a JSON error body.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, errorBody{Code: status, Message: message})
}

// FromError maps err through apperr and sends it.
func FromError(w http.ResponseWriter, err error) {
	Error(w, apperr.HTTPStatus(err), apperr.Message(err))
}

// NotFound sends a 404.
func NotFound(w http.ResponseWriter) {
	Error(w, http.StatusNotFound, "Not Found")
}
