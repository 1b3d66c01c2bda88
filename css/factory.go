package css

// Seed constructors, one per simple-selector kind. Each returns a fresh
// selector holding a single part. Seeding cannot violate ordering (an empty
// selector has no category reached) or uniqueness (nothing is set yet), so
// these never fail.

// Element starts a selector with an element name.
func Element(name string) *Selector {
	s, _ := (&Selector{}).Element(name)
	return s
}

// ID starts a selector with an id.
func ID(name string) *Selector {
	s, _ := (&Selector{}).ID(name)
	return s
}

// Class starts a selector with a class name.
func Class(name string) *Selector {
	s, _ := (&Selector{}).Class(name)
	return s
}

// Attr starts a selector with a raw attribute-selector body.
func Attr(body string) *Selector {
	s, _ := (&Selector{}).Attr(body)
	return s
}

// PseudoClass starts a selector with a raw pseudo-class body.
func PseudoClass(body string) *Selector {
	s, _ := (&Selector{}).PseudoClass(body)
	return s
}

// PseudoElement starts a selector with a pseudo-element name.
func PseudoElement(name string) *Selector {
	s, _ := (&Selector{}).PseudoElement(name)
	return s
}

// Combine joins two built selectors with a combinator token. The token is
// taken verbatim and neither it nor the children are validated. Since both
// children must exist before the call the resulting tree cannot contain
// cycles.
func Combine(left *Selector, combinator string, right *Selector) *Selector {
	return &Selector{combined: &combined{left: left, combinator: combinator, right: right}}
}
