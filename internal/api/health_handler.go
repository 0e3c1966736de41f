package api

import (
	"net/http"

	"github.com/phrazzld/tasktrack-api/internal/api/shared"
)

// HealthStatusResponse is the payload of the health endpoints.
type HealthStatusResponse struct {
	Status string `json:"status"`
}

// Healthz handles GET /healthz requests. It reports process liveness only
// and intentionally touches neither the database nor the cache.
func Healthz(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthStatusResponse{Status: "ok"})
}

// Readyz handles GET /readyz requests.
func Readyz(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthStatusResponse{Status: "ready"})
}
