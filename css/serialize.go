package css

import "strings"

// implements the reverse operation Selector -> selector text

// Stringify renders the selector as CSS selector text. It is pure and
// idempotent and never fails; an empty selector renders as "".
//
// A combination renders as "left combinator right" with exactly one space on
// each side of the token. When the token itself is a single space the three
// spaces all survive, the token is never normalized.
func (s *Selector) Stringify() string {
	if s.combined != nil {
		return s.combined.left.Stringify() + " " + s.combined.combinator + " " + s.combined.right.Stringify()
	}
	if s.simple == nil {
		return ""
	}

	sp := s.simple
	var b strings.Builder
	if sp.hasElement {
		b.WriteString(sp.element)
	}
	if sp.hasID {
		b.WriteByte('#')
		b.WriteString(sp.id)
	}
	for _, name := range sp.classes {
		b.WriteByte('.')
		b.WriteString(name)
	}
	for _, body := range sp.attrs {
		b.WriteByte('[')
		b.WriteString(body)
		b.WriteByte(']')
	}
	for _, body := range sp.pseudoClasses {
		b.WriteByte(':')
		b.WriteString(body)
	}
	if sp.hasPseudoElement {
		b.WriteString("::")
		b.WriteString(sp.pseudoElement)
	}
	return b.String()
}

// String makes Selector a fmt.Stringer.
func (s *Selector) String() string {
	return s.Stringify()
}
