package services

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
)

// serviceSummary is one entry of GET /api/services.
type serviceSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// serviceDetail is the body of GET /api/services/{id}.
type serviceDetail struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Summary  string    `json:"summary"`
	Sections []Section `json:"sections"`
	Content  string    `json:"content"`
}

// RegisterRoutes mounts service endpoints under /api/services.
func RegisterRoutes(r chi.Router, reg *Registry) {
	r.Route("/api/services", func(r chi.Router) {
		r.Get("/", handleList(reg))
		r.Get("/{id}", handleGet(reg))
	})
}

func handleList(reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := lo.Map(reg.List(), func(s Service, _ int) serviceSummary {
			return serviceSummary{ID: s.ID, Title: s.Title}
		})
		writeJSON(w, http.StatusOK, out)
	}
}

func handleGet(reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		page, err := reg.Page(id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			log.Printf("services: render %s: %v", id, err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		sections := page.Sections
		if sections == nil {
			sections = []Section{}
		}
		writeJSON(w, http.StatusOK, serviceDetail{
			ID:       page.ID,
			Title:    page.Title,
			Summary:  page.Summary,
			Sections: sections,
			Content:  page.HTML,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
