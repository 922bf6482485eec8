package dispatcher

import (
	"strings"

	"github.com/circuitstrategies/circuitbot/internal/catalog"
)

// Kind identifies which branch of the resolution produced a response.
type Kind string

const (
	KindCategory  Kind = "category"
	KindGreeting  Kind = "greeting"
	KindGratitude Kind = "gratitude"
	KindFarewell  Kind = "farewell"
	KindDefault   Kind = "default"
)

// Result is the outcome of resolving one utterance.
type Result struct {
	Kind       Kind   `json:"kind"`
	CategoryID string `json:"topic,omitempty"`
	Response   string `json:"response"`
}

type heuristic struct {
	kind     Kind
	tokens   []string
	response string
}

// heuristics are only consulted when no category matched, in this order.
var heuristics = []heuristic{
	{
		kind:     KindGreeting,
		tokens:   []string{"hello", "hi", "hey"},
		response: "Hello! I'm the Circuit Strategies assistant. Ask me about our AI services, pricing, or how to get in touch.",
	},
	{
		kind:     KindGratitude,
		tokens:   []string{"thank"},
		response: "You're welcome! Is there anything else you'd like to know about our AI solutions?",
	},
	{
		kind:     KindFarewell,
		tokens:   []string{"bye", "goodbye"},
		response: "Goodbye! Thanks for visiting Circuit Strategies. Reach out any time at " + catalog.ContactEmail + ".",
	},
}

// DefaultResponse is returned when neither a category nor a heuristic matched.
const DefaultResponse = "Thank you for your question! I can tell you about our AI Chatbots, Voice Agents, " +
	"Process Automation, Sales & Marketing AI, Ethical AI Consulting, AI regulations and insights, " +
	"pricing, and how to contact us. What would you like to know? You can also reach us at " +
	catalog.ContactEmail + " or call our toll-free number " + catalog.ContactPhone + "."

// Dispatcher maps utterances to responses using a fixed catalog. It holds no
// mutable state and is safe for concurrent use.
type Dispatcher struct {
	catalog *catalog.Catalog
}

// New creates a Dispatcher over the given catalog.
func New(c *catalog.Catalog) *Dispatcher {
	return &Dispatcher{catalog: c}
}

// Catalog returns the catalog the dispatcher matches against.
func (d *Dispatcher) Catalog() *catalog.Catalog { return d.catalog }

// Resolve returns the response for an utterance.
func (d *Dispatcher) Resolve(utterance string) string {
	return d.Match(utterance).Response
}

// Match resolves an utterance and reports which branch answered.
//
// Matching is raw substring containment on the lowercased text: no trimming,
// no tokenization. The first category in catalog order with any matching
// keyword wins, then the greeting, gratitude and farewell heuristics, then
// DefaultResponse.
func (d *Dispatcher) Match(utterance string) Result {
	normalized := strings.ToLower(utterance)

	var res Result
	found := false
	d.catalog.Each(func(cat catalog.Category) bool {
		if cat.Matches(normalized) {
			res = Result{Kind: KindCategory, CategoryID: cat.ID, Response: cat.Response}
			found = true
			return false
		}
		return true
	})
	if found {
		return res
	}

	for _, h := range heuristics {
		if containsAny(normalized, h.tokens) {
			return Result{Kind: h.kind, Response: h.response}
		}
	}

	return Result{Kind: KindDefault, Response: DefaultResponse}
}

func containsAny(s string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}
