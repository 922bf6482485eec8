package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// ErrNotFound is returned for unknown service ids.
var ErrNotFound = errors.New("service not found")

// Service is one entry of the modal content table.
type Service struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Markdown string `json:"-"`
}

// Registry is a static table of service content keyed by id. It is not
// modified after construction.
type Registry struct {
	byID     map[string]Service
	renderer *Renderer
}

// New builds a Registry. Duplicate or empty ids are rejected.
func New(services []Service) (*Registry, error) {
	r := &Registry{
		byID:     make(map[string]Service, len(services)),
		renderer: NewRenderer(),
	}
	for _, s := range services {
		if s.ID == "" {
			return nil, fmt.Errorf("service with title %q has no id", s.Title)
		}
		if _, ok := r.byID[s.ID]; ok {
			return nil, fmt.Errorf("duplicate service id %q", s.ID)
		}
		r.byID[s.ID] = s
	}
	return r, nil
}

// Lookup returns the service with the given id.
func (r *Registry) Lookup(id string) (Service, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// List returns all services sorted by id.
func (r *Registry) List() []Service {
	out := lo.Values(r.byID)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of services.
func (r *Registry) Len() int { return len(r.byID) }

// Render returns the HTML body for the service's modal.
func (r *Registry) Render(id string) (string, error) {
	s, ok := r.byID[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return r.renderer.Render(s.Markdown)
}

// Merge returns a new Registry where services from overlay replace same-id
// services of r and new ids are added.
func (r *Registry) Merge(overlay []Service) *Registry {
	merged := &Registry{
		byID:     make(map[string]Service, len(r.byID)+len(overlay)),
		renderer: r.renderer,
	}
	for id, s := range r.byID {
		merged.byID[id] = s
	}
	for _, s := range overlay {
		merged.byID[s.ID] = s
	}
	return merged
}
