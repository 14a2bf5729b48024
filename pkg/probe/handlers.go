package probe

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/probekit/probekit/pkg/errors"
)

// EntryResponse is the wire representation of a single probe entry.
type EntryResponse struct {
	Status     string         `json:"status"`
	Message    string         `json:"message,omitempty"`
	Error      string         `json:"error,omitempty"`
	DurationMS float64        `json:"duration_ms"`
	Details    map[string]any `json:"details,omitempty"`
}

// ReportResponse is the wire representation of an orchestration report.
type ReportResponse struct {
	ID         string                   `json:"id"`
	Status     string                   `json:"status"`
	DurationMS float64                  `json:"duration_ms"`
	Probes     map[string]EntryResponse `json:"probes"`
}

// NewReportResponse converts a report into its wire representation.
func NewReportResponse(report *Report) ReportResponse {
	probes := make(map[string]EntryResponse, len(report.Entries))
	for name, entry := range report.Entries {
		resp := EntryResponse{
			Status:     entry.Status.String(),
			Message:    entry.Message,
			DurationMS: float64(entry.Duration) / float64(time.Millisecond),
			Details:    entry.Details,
		}
		if entry.Err != nil {
			resp.Error = entry.Err.Error()
		}
		probes[name] = resp
	}
	return ReportResponse{
		ID:         report.ID,
		Status:     report.Status.String(),
		DurationMS: float64(report.Duration) / float64(time.Millisecond),
		Probes:     probes,
	}
}

// LivenessHandler returns an HTTP handler that responds to liveness probes.
// It always returns 200 OK without running any registered probe.
//
// Kubernetes liveness probes should use this endpoint. If this fails,
// Kubernetes will restart the pod.
//
// Example usage:
//
//	http.HandleFunc("/health/live", probe.LivenessHandler())
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		response := map[string]string{
			"status": "alive",
		}

		// Encode response (ignore error - if encoding fails, empty response is sent)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// ReportHandler returns an HTTP handler that runs the orchestrator and
// writes the aggregated report as JSON.
//
// A "tag" query parameter restricts the run to registrations carrying that
// tag; without it every registration runs. Healthy and Degraded reports
// return 200 OK, Unhealthy reports return 503 Service Unavailable. A
// disconnecting client cancels the run and no report is written.
//
// Example usage:
//
//	orch := probe.New(catalog, cache, cfg.Probes)
//	http.HandleFunc("/health/ready", probe.ReportHandler(orch))
func ReportHandler(orch *Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter Filter
		if tag := r.URL.Query().Get("tag"); tag != "" {
			filter = ByTag(tag)
		}

		report, err := orch.Run(r.Context(), filter)
		if err != nil {
			if r.Context().Err() != nil {
				// Client went away; nothing useful to write.
				return
			}
			errors.WriteHTTPError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if report.Status == StatusUnhealthy {
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.WriteHeader(http.StatusOK)
		}

		// Encode response (ignore error - if encoding fails, empty response is sent)
		_ = json.NewEncoder(w).Encode(NewReportResponse(report))
	}
}

// RegisterHandlers mounts the standard health endpoints on mux:
// /health/live for liveness and /health/ready for the full report.
func RegisterHandlers(mux *http.ServeMux, orch *Orchestrator) {
	mux.HandleFunc("/health/live", LivenessHandler())
	mux.HandleFunc("/health/ready", ReportHandler(orch))
}
