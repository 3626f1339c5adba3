package web

import (
	"encoding/json"
	"net/http"
	"time"
)

type cacheEntry struct {
	Kind      string    `json:"kind"`
	Bytes     int       `json:"bytes"`
	FetchedAt time.Time `json:"fetched_at"`
}

// handleCache reports what the dataset cache holds, so a preview session
// can tell stale data from a broken build.
func (s *Server) handleCache(w http.ResponseWriter, r *http.Request) {
	if s.Store == nil {
		writeJSON(w, []any{})
		return
	}
	infos, err := s.Store.Summary()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	entries := make([]cacheEntry, len(infos))
	for i, info := range infos {
		entries[i] = cacheEntry{Kind: info.Kind, Bytes: info.Bytes, FetchedAt: info.FetchedAt}
	}
	writeJSON(w, entries)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	// Wildcard CORS is fine for a local dev tool.
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if v == nil {
		_, _ = w.Write([]byte("[]"))
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}
