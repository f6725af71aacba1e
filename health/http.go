package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// LivenessHandler always answers 200 OK.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

// ReadinessHandler runs the checks and answers 200 unless one is unhealthy.
func ReadinessHandler(agg *Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		report := agg.Run(ctx)

		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(statusCode(report.Status))
		switch report.Status {
		case StatusHealthy:
			_, _ = w.Write([]byte("OK"))
		case StatusDegraded:
			_, _ = w.Write([]byte("DEGRADED"))
		default:
			_, _ = w.Write([]byte("UNHEALTHY"))
		}
	}
}

// ReportResponse is the JSON body of the detailed endpoint.
type ReportResponse struct {
	Status    string          `json:"status"`
	Timestamp string          `json:"timestamp"`
	Checks    []CheckResponse `json:"checks,omitempty"`
}

// CheckResponse is the JSON form of one NamedResult.
type CheckResponse struct {
	Name     string         `json:"name"`
	Status   string         `json:"status"`
	Message  string         `json:"message,omitempty"`
	Duration string         `json:"duration,omitempty"`
	Details  map[string]any `json:"details,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// NewReportResponse renders report as JSON-ready values.
func NewReportResponse(report Report) ReportResponse {
	resp := ReportResponse{
		Status:    report.Status.String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    make([]CheckResponse, 0, len(report.Results)),
	}
	for _, nr := range report.Results {
		check := CheckResponse{
			Name:     nr.Name,
			Status:   nr.Status.String(),
			Message:  nr.Message,
			Duration: nr.Duration.String(),
			Details:  nr.Details,
		}
		if nr.Error != nil {
			check.Error = nr.Error.Error()
		}
		resp.Checks = append(resp.Checks, check)
	}
	return resp
}

// DetailedHandler runs the checks and answers with a ReportResponse.
func DetailedHandler(agg *Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		report := agg.Run(ctx)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode(report.Status))
		_ = json.NewEncoder(w).Encode(NewReportResponse(report))
	}
}

// RegisterHandlers registers /healthz, /readyz and /health on mux.
func RegisterHandlers(mux *http.ServeMux, agg *Aggregator) {
	mux.HandleFunc("/healthz", LivenessHandler())
	mux.HandleFunc("/readyz", ReadinessHandler(agg))
	mux.HandleFunc("/health", DetailedHandler(agg))
}

func statusCode(s Status) int {
	if s == StatusUnhealthy {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
