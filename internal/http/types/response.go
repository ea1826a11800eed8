// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every API endpoint answers with.
type Response struct {
	Data    any                 `json:"data,omitempty"`
	Message string              `json:"message"`
	Status  int                 `json:"status"`
	Meta    *Pagination         `json:"_meta,omitempty"`
	Errors  map[string]string   `json:"errors,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type Pagination struct {
	Page int64 `json:"page"`
	Size int64 `json:"size"`
}

// WriteJSON writes data wrapped in the response envelope.
func WriteJSON(w http.ResponseWriter, status int, message string, data any) {
	write(w, &Response{Data: data, Message: message, Status: status})
}

// WritePage writes a paginated list.
func WritePage(w http.ResponseWriter, message string, data any, page, size int64) {
	write(w, &Response{
		Data:    data,
		Message: message,
		Status:  http.StatusOK,
		Meta:    &Pagination{Page: page, Size: size},
	})
}

// WriteError writes an error envelope without data.
func WriteError(w http.ResponseWriter, status int, message string) {
	write(w, &Response{Message: message, Status: status})
}

// WriteErrorDetails writes an error envelope carrying per-key details, for example the
// offending ids of a rejected batch.
func WriteErrorDetails(w http.ResponseWriter, status int, message string, details map[string][]string) {
	write(w, &Response{Message: message, Status: status, Details: details})
}

// WriteValidationError writes the per-field messages produced by DecodeAndValidate.
func WriteValidationError(w http.ResponseWriter, fields map[string]string) {
	write(w, &Response{Message: "validation failed", Status: http.StatusBadRequest, Errors: fields})
}

func write(w http.ResponseWriter, r *Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(r.Status)
	_ = json.NewEncoder(w).Encode(r)
}
