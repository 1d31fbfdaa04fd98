package handlers

import "net/http"

// NewRootHandler returns the greeting served at /.
// @Summary Greeting
// @Tags system
// @Produce plain
// @Success 200 {string} string "Hello Library API!"
// @Router / [get]
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeText(w, http.StatusOK, "Hello Library API!")
	}
}
