// Package handlers holds the response envelope helpers shared by all
// handler packages. Every response, success or failure, is wrapped as
// {"success": bool, ...}; failures carry only a client-safe msg.
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// M is shorthand for envelope payload fields
type M map[string]interface{}

// WriteSuccess writes {"success":true} merged with the given fields
func WriteSuccess(w http.ResponseWriter, fields M) {
	body := M{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	writeJSON(w, http.StatusOK, body)
}

// WriteFailure writes {"success":false,"msg":...} with the given status.
// msg must already be client-safe; internal error detail never goes here.
func WriteFailure(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, M{"success": false, "msg": msg})
}

func writeJSON(w http.ResponseWriter, status int, body M) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
