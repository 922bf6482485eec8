package dispatcher

import (
	"strings"
	"testing"

	"github.com/circuitstrategies/circuitbot/internal/catalog"
)

func newDefault(t *testing.T) *Dispatcher {
	t.Helper()
	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}
	return New(c)
}

func heuristicResponse(t *testing.T, kind Kind) string {
	t.Helper()
	for _, h := range heuristics {
		if h.kind == kind {
			return h.response
		}
	}
	t.Fatalf("no heuristic of kind %q", kind)
	return ""
}

func categoryResponse(t *testing.T, d *Dispatcher, id string) string {
	t.Helper()
	cat, ok := d.Catalog().Get(id)
	if !ok {
		t.Fatalf("no category %q", id)
	}
	return cat.Response
}

func TestResolveScenarios(t *testing.T) {
	d := newDefault(t)

	tests := []struct {
		input    string
		wantKind Kind
		wantID   string
	}{
		{"What are your prices?", KindCategory, "pricing"},
		{"thanks a lot", KindGratitude, ""},
		{"HELLO there", KindGreeting, ""},
		{"goodbyeee", KindFarewell, ""},
		{"", KindDefault, ""},
		{"What services do you offer?", KindCategory, "services"},
		{"Tell me about ethical AI", KindCategory, "ethical-ai"},
		{"How can AI help my business?", KindCategory, "business-value"},
		{"Do you build voice agents?", KindCategory, "voice-agents"},
		{"what is your email", KindCategory, "contact"},
		{"can I book a demo", KindCategory, "consultation"},
		{"GDPR", KindCategory, "regulations"},
		{"hmm", KindDefault, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := d.Match(tt.input)
			if got.Kind != tt.wantKind {
				t.Fatalf("Match(%q).Kind = %q, want %q", tt.input, got.Kind, tt.wantKind)
			}
			if got.CategoryID != tt.wantID {
				t.Errorf("Match(%q).CategoryID = %q, want %q", tt.input, got.CategoryID, tt.wantID)
			}
			if got.Response != d.Resolve(tt.input) {
				t.Errorf("Resolve and Match disagree for %q", tt.input)
			}
		})
	}
}

func TestResolvePricingVerbatim(t *testing.T) {
	d := newDefault(t)
	if got, want := d.Resolve("What are your prices?"), categoryResponse(t, d, "pricing"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveGratitude(t *testing.T) {
	d := newDefault(t)
	if got, want := d.Resolve("thanks a lot"), heuristicResponse(t, KindGratitude); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveEmptyReturnsDefault(t *testing.T) {
	d := newDefault(t)
	if got := d.Resolve(""); got != DefaultResponse {
		t.Errorf("Resolve(\"\") = %q, want default", got)
	}
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	d := newDefault(t)
	want := heuristicResponse(t, KindGreeting)
	for _, in := range []string{"HELLO there", "Hello there", "hello there"} {
		if got := d.Resolve(in); got != want {
			t.Errorf("Resolve(%q) = %q, want greeting", in, got)
		}
	}
}

func TestResolveLooseSubstring(t *testing.T) {
	d := newDefault(t)

	if got, want := d.Resolve("goodbyeee"), heuristicResponse(t, KindFarewell); got != want {
		t.Errorf("goodbyeee: got %q, want farewell", got)
	}
	// "hi" appears inside "this".
	if got, want := d.Resolve("this"), heuristicResponse(t, KindGreeting); got != want {
		t.Errorf("this: got %q, want greeting", got)
	}
	// "voice" appears inside "invoices".
	if got := d.Match("invoices"); got.CategoryID != "voice-agents" {
		t.Errorf("invoices: got %q, want voice-agents", got.CategoryID)
	}
}

func TestResolveDeterministic(t *testing.T) {
	d := newDefault(t)
	inputs := []string{"", "hi", "price", "random words", "GOODBYE", "what about pricing for chatbots"}
	for _, in := range inputs {
		first := d.Resolve(in)
		for i := 0; i < 5; i++ {
			if got := d.Resolve(in); got != first {
				t.Fatalf("Resolve(%q) changed between calls", in)
			}
		}
	}
}

func TestEveryKeywordSelectsItsCategory(t *testing.T) {
	d := newDefault(t)
	cats := d.Catalog().CategoriesInOrder()

	for i, cat := range cats {
		for _, kw := range cat.Keywords {
			input := "... " + kw + " ..."

			earlier := false
			for _, prev := range cats[:i] {
				if prev.Matches(strings.ToLower(input)) {
					earlier = true
					break
				}
			}
			if earlier {
				continue
			}

			if got := d.Resolve(input); got != cat.Response {
				t.Errorf("keyword %q: got response of another branch, want category %q", kw, cat.ID)
			}
		}
	}
}

func TestCatalogOrderPrecedence(t *testing.T) {
	d := newDefault(t)
	// Both "chatbot" and "pricing" match; chatbots comes first.
	if got := d.Match("what about pricing for chatbots"); got.CategoryID != "chatbots" {
		t.Errorf("got %q, want chatbots", got.CategoryID)
	}

	c, err := catalog.New([]catalog.Category{
		{ID: "first", Keywords: []string{"shared"}, Response: "first"},
		{ID: "second", Keywords: []string{"shared", "extra"}, Response: "second"},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	custom := New(c)
	if got := custom.Resolve("a shared extra keyword"); got != "first" {
		t.Errorf("got %q, want first", got)
	}
	if got := custom.Resolve("only extra"); got != "second" {
		t.Errorf("got %q, want second", got)
	}
}

func TestCategoryBeatsHeuristics(t *testing.T) {
	d := newDefault(t)
	// "hi" is a greeting token but "price" matches a category first.
	got := d.Match("hi, what is the price?")
	if got.Kind != KindCategory || got.CategoryID != "pricing" {
		t.Errorf("got %+v, want pricing category", got)
	}
}

func TestHeuristicOrder(t *testing.T) {
	d := newDefault(t)
	// Greeting is checked before gratitude and farewell.
	if got := d.Match("hey thanks bye"); got.Kind != KindGreeting {
		t.Errorf("got %q, want greeting", got.Kind)
	}
	if got := d.Match("thanks, bye"); got.Kind != KindGratitude {
		t.Errorf("got %q, want gratitude", got.Kind)
	}
}

func TestDefaultResponseMentionsContact(t *testing.T) {
	if !strings.Contains(DefaultResponse, catalog.ContactEmail) {
		t.Error("default response should include the contact email")
	}
}
