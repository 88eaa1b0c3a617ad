package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// parseYear extracts the year query parameter; zero means "use default".
func parseYear(r *http.Request) (int, error) {
	v := strings.TrimSpace(r.URL.Query().Get("year"))
	if v == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid year '%s': must be a number", v)
	}
	if year < 1 {
		return 0, fmt.Errorf("invalid year %d: must be positive", year)
	}
	return year, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
