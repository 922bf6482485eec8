package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyID        = errors.New("category id is empty")
	ErrDuplicateID    = errors.New("duplicate category id")
	ErrNoKeywords     = errors.New("category has no keywords")
	ErrInvalidKeyword = errors.New("invalid keyword")
	ErrEmptyResponse  = errors.New("category response is empty")
)

// Category is a named topic with trigger keywords and one canned response.
type Category struct {
	ID       string   `yaml:"id" json:"id"`
	Keywords []string `yaml:"keywords" json:"keywords"`
	Response string   `yaml:"response" json:"response"`
}

// Matches reports whether any keyword is a substring of the already
// lowercased text.
func (c Category) Matches(normalized string) bool {
	for _, kw := range c.Keywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}

// Catalog is an immutable, ordered set of categories. The order is the
// match priority: the first matching category wins.
type Catalog struct {
	categories []Category
	index      map[string]int
}

// New validates the categories and builds a Catalog preserving their order.
func New(categories []Category) (*Catalog, error) {
	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
	}

	for i, cat := range categories {
		if err := validate(cat); err != nil {
			return nil, fmt.Errorf("category %d (%q): %w", i, cat.ID, err)
		}
		if _, ok := c.index[cat.ID]; ok {
			return nil, fmt.Errorf("category %q: %w", cat.ID, ErrDuplicateID)
		}

		kws := make([]string, len(cat.Keywords))
		copy(kws, cat.Keywords)
		cat.Keywords = kws

		c.index[cat.ID] = len(c.categories)
		c.categories = append(c.categories, cat)
	}

	return c, nil
}

func validate(cat Category) error {
	if strings.TrimSpace(cat.ID) == "" {
		return ErrEmptyID
	}
	if len(cat.Keywords) == 0 {
		return ErrNoKeywords
	}
	for _, kw := range cat.Keywords {
		if kw == "" {
			return fmt.Errorf("%w: empty keyword", ErrInvalidKeyword)
		}
		if kw != strings.ToLower(kw) {
			return fmt.Errorf("%w: %q is not lowercase", ErrInvalidKeyword, kw)
		}
	}
	if strings.TrimSpace(cat.Response) == "" {
		return ErrEmptyResponse
	}
	return nil
}

// Load builds the compiled-in catalog.
func Load() (*Catalog, error) {
	return New(defaultCategories)
}

// MustLoad is like Load but panics if the compiled-in table is malformed.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}

// CategoriesInOrder returns the categories in authored order. Callers get
// their own copy and must not re-sort it for matching.
func (c *Catalog) CategoriesInOrder() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		kws := make([]string, len(cat.Keywords))
		copy(kws, cat.Keywords)
		cat.Keywords = kws
		out[i] = cat
	}
	return out
}

// Get returns the category with the given id.
func (c *Catalog) Get(id string) (Category, bool) {
	i, ok := c.index[id]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// Len returns the number of categories.
func (c *Catalog) Len() int { return len(c.categories) }

// IDs returns the category ids in match order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.categories))
	for i, cat := range c.categories {
		ids[i] = cat.ID
	}
	return ids
}

// Each calls fn for every category in match order until fn returns false.
// fn must not modify the category's keyword slice.
func (c *Catalog) Each(fn func(Category) bool) {
	for _, cat := range c.categories {
		if !fn(cat) {
			return
		}
	}
}
