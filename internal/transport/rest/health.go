package rest

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"
)

// HealthResponse is the liveness body; clients only check Status.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ReadinessResponse struct {
	Status    string    `json:"status"`
	CheckedAt time.Time `json:"checked_at"`
	Database  string    `json:"database"`
}

type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// healthCheckHandler just says the service is up.
func (h *HealthHandler) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HealthResponse{
		Status:  "OK",
		Message: "Backend is running",
	})
}

// readinessHandler checks the database connection.
func (h *HealthHandler) readinessHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := ReadinessResponse{
		Status:    "OK",
		CheckedAt: time.Now(),
		Database:  "up",
	}
	statusCode := http.StatusOK

	if err := h.db.PingContext(ctx); err != nil {
		resp.Status = "unhealthy"
		resp.Database = err.Error()
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}
