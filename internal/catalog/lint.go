package catalog

import "strings"

// Shadow describes a keyword that can never select its own category because
// every text containing it also contains a keyword of an earlier category.
type Shadow struct {
	CategoryID string
	Keyword    string
	ShadowedBy string
	ByKeyword  string
}

// Shadowed lists unreachable keywords in match order.
func Shadowed(c *Catalog) []Shadow {
	var out []Shadow
	for i, cat := range c.categories {
		for _, kw := range cat.Keywords {
			if s, ok := shadowOf(c.categories[:i], kw); ok {
				s.CategoryID = cat.ID
				s.Keyword = kw
				out = append(out, s)
			}
		}
	}
	return out
}

func shadowOf(earlier []Category, kw string) (Shadow, bool) {
	for _, prev := range earlier {
		for _, pk := range prev.Keywords {
			if strings.Contains(kw, pk) {
				return Shadow{ShadowedBy: prev.ID, ByKeyword: pk}, true
			}
		}
	}
	return Shadow{}, false
}
