package models

// HealthResponse reports liveness and the deployment mode
// swagger:model HealthResponse
type HealthResponse struct {
	// example: ok
	Status string `json:"status"`
	// example: development
	Environment string `json:"environment"`
}

// ErrorResponse is returned when request validation fails
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: Invalid request
	Error string `json:"error"`

	// Failing fields mapped to the rule they broke
	Fields map[string]string `json:"fields,omitempty"`
}
