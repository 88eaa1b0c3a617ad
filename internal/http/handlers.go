package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"firecost/internal/agent"
	"firecost/internal/dataset"
	"firecost/internal/insights"
	"firecost/internal/session"
)

const maxBodyBytes = 1 << 16 // 64KB, requests are tiny

type (
	recordDTO struct {
		Region   string  `json:"region"`
		Category string  `json:"category"`
		Cost     float64 `json:"cost"`
		Hours    float64 `json:"hours"`
		Year     int     `json:"year"`
	}

	bucketDTO struct {
		Region     string  `json:"region"`
		Category   string  `json:"category"`
		TotalCost  float64 `json:"total_cost"`
		TotalHours float64 `json:"total_hours"`
	}

	analyzeRequest struct {
		Year      int    `json:"year"`
		TopN      int    `json:"top_n"`
		Compact   bool   `json:"compact"`
		SessionID string `json:"session_id"`
	}

	analyzeResponse struct {
		SessionID string      `json:"session_id"`
		Year      int         `json:"year"`
		Compacted bool        `json:"compacted"`
		Buckets   []bucketDTO `json:"buckets"`
		Table     string      `json:"table"`
		Insights  string      `json:"insights"`
		Narrative string      `json:"narrative"`
	}
)

// handleRecords returns the raw synthetic dataset for a year.
func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	year, err := parseYear(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	records := s.source.Load(year)
	dtos := make([]recordDTO, len(records))
	for i, rec := range records {
		dtos[i] = recordDTO{
			Region:   rec.Region,
			Category: rec.Category,
			Cost:     rec.Cost,
			Hours:    rec.Hours,
			Year:     rec.Year,
		}
	}

	// The Source contract does not promise a non-empty dataset; fall back
	// to the requested or default year when there is nothing to read it from.
	if year == 0 {
		year = dataset.DefaultYear
	}
	if len(records) > 0 {
		year = records[0].Year
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"year":    year,
		"records": dtos,
	})
}

// handleAnalyze runs the full pipeline for a session.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "request body too large or unreadable")
		return
	}

	var req analyzeRequest
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			slog.WarnContext(r.Context(), "Malformed analyze request", "error", err)
			writeError(w, http.StatusBadRequest, "malformed JSON body")
			return
		}
	}
	if req.Year < 0 {
		writeError(w, http.StatusBadRequest, "year must be positive")
		return
	}

	sess := s.sessions.GetOrCreate(req.SessionID)

	analysis, err := s.analyst.Analyze(r.Context(), sess, agent.AnalyzeRequest{
		Year:    req.Year,
		TopN:    req.TopN,
		Compact: req.Compact,
	})
	if err != nil {
		switch {
		case errors.Is(err, insights.ErrInvalidTopN):
			writeError(w, http.StatusBadRequest, insights.ErrInvalidTopN.Error())
		case errors.Is(err, insights.ErrNoData):
			writeError(w, http.StatusUnprocessableEntity, insights.NoDataMessage)
		default:
			slog.ErrorContext(r.Context(), "Analysis failed", "error", err, "session_id", sess.ID())
			writeError(w, http.StatusInternalServerError, "analysis failed")
		}
		return
	}

	buckets := make([]bucketDTO, len(analysis.Buckets))
	for i, b := range analysis.Buckets {
		buckets[i] = bucketDTO{
			Region:     b.Region,
			Category:   b.Category,
			TotalCost:  b.TotalCost,
			TotalHours: b.TotalHours,
		}
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		SessionID: analysis.SessionID,
		Year:      analysis.Year,
		Compacted: analysis.Compacted,
		Buckets:   buckets,
		Table:     analysis.Report.Table,
		Insights:  analysis.Report.Insights,
		Narrative: analysis.Narrative,
	})
}

// handleSummary reads a session's summary memory.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id := r.URL.Query().Get("session_id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	sess, ok := s.sessions.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, session.NoSummaryMessage)
		return
	}

	summary, ok := s.analyst.LastSummary(r.Context(), sess)
	if !ok {
		writeError(w, http.StatusNotFound, session.NoSummaryMessage)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"session_id": id,
		"summary":    summary,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"requests": s.tracer.GetMetrics().TotalRequests,
	})
}
