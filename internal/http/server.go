// Package http exposes the analysis pipeline as a JSON API for an
// external orchestration layer.
package http

import (
	"net/http"

	"firecost/internal/agent"
	"firecost/internal/dataset"
	"firecost/internal/middleware/trace"
	"firecost/internal/session"
)

// Server bundles the pipeline dependencies behind HTTP handlers.
type Server struct {
	analyst  *agent.Analyst
	sessions *session.Manager
	source   dataset.Source
	tracer   *trace.Middleware
}

// NewServer builds the HTTP server with routing and tracing middleware.
func NewServer(addr string, analyst *agent.Analyst, sessions *session.Manager, source dataset.Source) *http.Server {
	s := &Server{
		analyst:  analyst,
		sessions: sessions,
		source:   source,
		tracer:   trace.NewMiddleware(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/records", s.handleRecords)
	mux.HandleFunc("/api/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/summary", s.handleSummary)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/readyz", s.handleHealth)

	return &http.Server{
		Addr:    addr,
		Handler: s.tracer.Middleware(mux),
	}
}
