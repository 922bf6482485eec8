package services

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Section is one second-level heading of a service page.
type Section struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Page is a rendered service with the parts the modal needs.
type Page struct {
	Service
	HTML     string
	Summary  string
	Sections []Section
}

// Page renders a service and extracts its summary and section outline.
func (r *Registry) Page(id string) (*Page, error) {
	svc, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	html, err := r.renderer.Render(svc.Markdown)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing rendered %s: %w", id, err)
	}

	p := &Page{
		Service: svc,
		HTML:    html,
		Summary: strings.TrimSpace(doc.Find("p").First().Text()),
	}
	doc.Find("h2").Each(func(_ int, s *goquery.Selection) {
		anchor, _ := s.Attr("id")
		p.Sections = append(p.Sections, Section{
			ID:    anchor,
			Title: strings.TrimSpace(s.Text()),
		})
	})
	return p, nil
}
