package css_test

import (
	"errors"
	"testing"

	"cssel/css"
)

// apply runs a sequence of mutator steps, failing the test on the first error.
func apply(t *testing.T, s *css.Selector, steps ...func() (*css.Selector, error)) *css.Selector {
	t.Helper()
	for i, step := range steps {
		if _, err := step(); err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
	}
	return s
}

func TestSelector_CompoundRendering(t *testing.T) {
	tests := []struct {
		name string
		sel  func(t *testing.T) *css.Selector
		want string
	}{
		{
			name: "id with classes",
			sel: func(t *testing.T) *css.Selector {
				s := css.ID("main")
				return apply(t, s,
					func() (*css.Selector, error) { return s.Class("container") },
					func() (*css.Selector, error) { return s.Class("editable") },
				)
			},
			want: "#main.container.editable",
		},
		{
			name: "element attribute pseudo-class",
			sel: func(t *testing.T) *css.Selector {
				s := css.Element("a")
				return apply(t, s,
					func() (*css.Selector, error) { return s.Attr(`href$=".png"`) },
					func() (*css.Selector, error) { return s.PseudoClass("focus") },
				)
			},
			want: `a[href$=".png"]:focus`,
		},
		{
			name: "all six categories",
			sel: func(t *testing.T) *css.Selector {
				s := css.Element("div")
				return apply(t, s,
					func() (*css.Selector, error) { return s.ID("nav-bar") },
					func() (*css.Selector, error) { return s.Class("shadow") },
					func() (*css.Selector, error) { return s.Attr("hidden") },
					func() (*css.Selector, error) { return s.PseudoClass("hover") },
					func() (*css.Selector, error) { return s.PseudoElement("first-line") },
				)
			},
			want: "div#nav-bar.shadow[hidden]:hover::first-line",
		},
		{
			name: "single element",
			sel:  func(t *testing.T) *css.Selector { return css.Element("table") },
			want: "table",
		},
		{
			name: "single pseudo-element",
			sel:  func(t *testing.T) *css.Selector { return css.PseudoElement("after") },
			want: "::after",
		},
		{
			name: "opaque pseudo-class body",
			sel:  func(t *testing.T) *css.Selector { return css.PseudoClass("nth-of-type(2n+1)") },
			want: ":nth-of-type(2n+1)",
		},
		{
			name: "zero value renders empty",
			sel:  func(t *testing.T) *css.Selector { return &css.Selector{} },
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.sel(t).Stringify()
			if got != tt.want {
				t.Errorf("Stringify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelector_RepeatedClassesKeepInsertionOrder(t *testing.T) {
	s := css.Class("alpha")
	apply(t, s,
		func() (*css.Selector, error) { return s.Class("beta") },
		func() (*css.Selector, error) { return s.Class("alpha") },
		func() (*css.Selector, error) { return s.Class("gamma") },
	)
	if got, want := s.Stringify(), ".alpha.beta.alpha.gamma"; got != want {
		t.Errorf("Stringify() = %q, want %q", got, want)
	}
}

func TestSelector_RepeatedAttrsAndPseudoClasses(t *testing.T) {
	s := css.Attr("type=checkbox")
	apply(t, s,
		func() (*css.Selector, error) { return s.Attr("checked") },
		func() (*css.Selector, error) { return s.PseudoClass("focus") },
		func() (*css.Selector, error) { return s.PseudoClass("valid") },
	)
	if got, want := s.Stringify(), "[type=checkbox][checked]:focus:valid"; got != want {
		t.Errorf("Stringify() = %q, want %q", got, want)
	}
}

func TestSelector_OrderViolations(t *testing.T) {
	tests := []struct {
		name  string
		first func() *css.Selector
		next  func(s *css.Selector) (*css.Selector, error)
	}{
		{
			name:  "element after id",
			first: func() *css.Selector { return css.ID("x") },
			next:  func(s *css.Selector) (*css.Selector, error) { return s.Element("a") },
		},
		{
			name:  "id after class",
			first: func() *css.Selector { return css.Class("box") },
			next:  func(s *css.Selector) (*css.Selector, error) { return s.ID("x") },
		},
		{
			name:  "class after attribute",
			first: func() *css.Selector { return css.Attr("disabled") },
			next:  func(s *css.Selector) (*css.Selector, error) { return s.Class("box") },
		},
		{
			name:  "attribute after pseudo-class",
			first: func() *css.Selector { return css.PseudoClass("hover") },
			next:  func(s *css.Selector) (*css.Selector, error) { return s.Attr("disabled") },
		},
		{
			name:  "pseudo-class after pseudo-element",
			first: func() *css.Selector { return css.PseudoElement("before") },
			next:  func(s *css.Selector) (*css.Selector, error) { return s.PseudoClass("hover") },
		},
		{
			name:  "element after pseudo-element",
			first: func() *css.Selector { return css.PseudoElement("before") },
			next:  func(s *css.Selector) (*css.Selector, error) { return s.Element("p") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.first()
			before := s.Stringify()

			got, err := tt.next(s)
			if !errors.Is(err, css.ErrOrder) {
				t.Fatalf("expected ErrOrder, got %v", err)
			}
			if got != s {
				t.Error("mutator must return the receiver")
			}
			if after := s.Stringify(); after != before {
				t.Errorf("failed call changed state: %q -> %q", before, after)
			}
		})
	}
}

func TestSelector_SameCategoryAfterFailedCallStillAllowed(t *testing.T) {
	s := css.Class("first")
	if _, err := s.ID("nope"); !errors.Is(err, css.ErrOrder) {
		t.Fatalf("expected ErrOrder, got %v", err)
	}
	// the instance is intact, continuing at a valid category works
	if _, err := s.Class("second"); err != nil {
		t.Fatalf("unexpected error after recovery: %v", err)
	}
	if got, want := s.Stringify(), ".first.second"; got != want {
		t.Errorf("Stringify() = %q, want %q", got, want)
	}
}

func TestSelector_UniqueViolations(t *testing.T) {
	tests := []struct {
		name string
		run  func() (*css.Selector, error)
	}{
		{
			name: "second id",
			run: func() (*css.Selector, error) {
				s := css.ID("x")
				return s.ID("y")
			},
		},
		{
			name: "second element",
			run: func() (*css.Selector, error) {
				s := css.Element("table")
				return s.Element("div")
			},
		},
		{
			name: "second pseudo-element",
			run: func() (*css.Selector, error) {
				s := css.PseudoElement("after")
				return s.PseudoElement("before")
			},
		},
		{
			name: "second id with valid calls in between",
			run: func() (*css.Selector, error) {
				s := css.Element("div")
				if _, err := s.ID("main"); err != nil {
					return s, err
				}
				return s.ID("other")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.run(); !errors.Is(err, css.ErrUnique) {
				t.Fatalf("expected ErrUnique, got %v", err)
			}
		})
	}
}

func TestSelector_UniqueFailureLeavesValueIntact(t *testing.T) {
	s := css.ID("main")
	if _, err := s.ID("other"); !errors.Is(err, css.ErrUnique) {
		t.Fatalf("expected ErrUnique, got %v", err)
	}
	if got, want := s.Stringify(), "#main"; got != want {
		t.Errorf("Stringify() = %q, want %q", got, want)
	}
}

func TestSelector_ErrorMessages(t *testing.T) {
	// messages are part of the consumer contract
	const orderMsg = "Selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element"
	const uniqueMsg = "Element, id and pseudo-element should not occur more than one time inside the selector"

	if css.ErrOrder.Error() != orderMsg {
		t.Errorf("ErrOrder message = %q", css.ErrOrder.Error())
	}
	if css.ErrUnique.Error() != uniqueMsg {
		t.Errorf("ErrUnique message = %q", css.ErrUnique.Error())
	}
}

func TestCombine_Rendering(t *testing.T) {
	left := css.Element("div")
	apply(t, left, func() (*css.Selector, error) { return left.ID("main") })

	sel := css.Combine(left, "~", css.Element("span"))
	if got, want := sel.Stringify(), "div#main ~ span"; got != want {
		t.Errorf("Stringify() = %q, want %q", got, want)
	}
	if !sel.IsCombined() {
		t.Error("IsCombined() = false for a combination")
	}
}

func TestCombine_NestsArbitrarilyDeep(t *testing.T) {
	a, b, c := css.Element("em"), css.Class("note"), css.ID("footer")

	sel := css.Combine(css.Combine(a, "+", b), ">", c)
	want := a.Stringify() + " + " + b.Stringify() + " > " + c.Stringify()
	if got := sel.Stringify(); got != want {
		t.Errorf("Stringify() = %q, want %q", got, want)
	}
	if got, want := sel.Stringify(), "em + .note > #footer"; got != want {
		t.Errorf("Stringify() = %q, want %q", got, want)
	}
}

func TestCombine_SpaceTokenYieldsDescendantSpacing(t *testing.T) {
	sel := css.Combine(css.Element("ul"), " ", css.Element("li"))
	// one space on each side of the verbatim token, so a space token renders
	// the literal descendant combinator
	if got, want := sel.Stringify(), "ul   li"; got != want {
		t.Errorf("Stringify() = %q, want %q", got, want)
	}
}

func TestCombine_MutatorsOnCombinationAreRejected(t *testing.T) {
	sel := css.Combine(css.Element("div"), ">", css.Element("p"))
	before := sel.Stringify()

	if _, err := sel.Class("late"); !errors.Is(err, css.ErrOrder) {
		t.Fatalf("expected ErrOrder, got %v", err)
	}
	if after := sel.Stringify(); after != before {
		t.Errorf("failed call changed state: %q -> %q", before, after)
	}
}

func TestSelector_StringifyIsIdempotent(t *testing.T) {
	s := css.Element("a")
	apply(t, s, func() (*css.Selector, error) { return s.PseudoClass("visited") })

	first := s.Stringify()
	for range 3 {
		if got := s.Stringify(); got != first {
			t.Fatalf("Stringify() changed between calls: %q vs %q", first, got)
		}
	}
	if s.String() != first {
		t.Errorf("String() = %q, want %q", s.String(), first)
	}
}
