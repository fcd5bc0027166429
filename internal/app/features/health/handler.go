// internal/app/features/health/handler.go
package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mnogodumalon/kurs70/internal/app/system/dataservice"
	"github.com/mnogodumalon/kurs70/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Source     dataservice.Pinger
	SourceName string
	Log        *zap.Logger
}

// NewHandler constructs a health Handler for the configured data source.
// name identifies the source kind ("livingapps" or "mongo") in the response.
func NewHandler(src dataservice.Pinger, name string, logger *zap.Logger) *Handler {
	return &Handler{
		Source:     src,
		SourceName: name,
		Log:        logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status     string `json:"status"`
	DataSource string `json:"data_source"`
	Connection string `json:"connection"`
	Message    string `json:"message,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "data_source":"livingapps", "connection":"connected" }
//
// On ping failure: 503 and
//
//	{ "status":"error", "connection":"disconnected", "message":"Data source unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:     "ok",
		DataSource: h.SourceName,
		Connection: "connected",
	}

	if h.Source == nil {
		resp.Connection = "unchecked"
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	if err := h.Source.Ping(ctx); err != nil {
		h.Log.Error("health-check: data source ping failed",
			zap.String("data_source", h.SourceName),
			zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Connection = "disconnected"
		resp.Message = "Data source unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	_ = json.NewEncoder(w).Encode(resp)
}
