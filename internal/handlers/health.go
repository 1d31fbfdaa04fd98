package handlers

import (
	"net/http"

	"github.com/sbilibin2017/library-api/internal/models"
)

// NewHealthHandler reports liveness together with the deployment mode.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func NewHealthHandler(environment string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.HealthResponse{Status: "ok", Environment: environment})
	}
}
