package stats

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// summaryResponse is the body of GET /api/stats.
type summaryResponse struct {
	Total  int     `json:"total"`
	Counts []Count `json:"counts"`
}

// RegisterRoutes mounts GET /api/stats on the given router.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Get("/api/stats", handleSummary(store))
}

func handleSummary(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var since time.Time
		if v := r.URL.Query().Get("since"); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				http.Error(w, "invalid since: must be RFC3339", http.StatusBadRequest)
				return
			}
			since = t
		}

		counts, err := store.Summary(r.Context(), since)
		if err != nil {
			log.Printf("stats: summary: %v", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		total := 0
		for _, c := range counts {
			total += c.Count
		}
		if counts == nil {
			counts = []Count{}
		}

		writeJSON(w, http.StatusOK, summaryResponse{Total: total, Counts: counts})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
