// Package css builds CSS selectors from typed parts.
//
// A Selector accumulates simple-selector fragments (element, id, classes,
// attributes, pseudo-classes, pseudo-element) through chainable mutators and
// enforces the CSS grammar order between them as parts are added. Two built
// selectors can be joined with a combinator token into a tree which renders
// back to selector text. Parsing existing CSS text is out of scope.
package css

import "errors"

// Fixed consumer-facing messages - callers are expected to surface these as-is.
var (
	// ErrOrder is returned when selector parts are added out of the required
	// category order.
	ErrOrder = errors.New("Selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element")

	// ErrUnique is returned on a second element, id or pseudo-element within
	// the same selector.
	ErrUnique = errors.New("Element, id and pseudo-element should not occur more than one time inside the selector")
)

// category ranks simple-selector parts in the order CSS requires them.
type category int

const (
	catNone category = iota
	catElement
	catID
	catClass
	catAttr
	catPseudoClass
	catPseudoElement
)

// simple holds accumulated fragments of a single compound selector. Singleton
// categories use presence flags so that an explicitly set empty value still
// counts as occupied.
type simple struct {
	element       string
	id            string
	classes       []string
	attrs         []string
	pseudoClasses []string
	pseudoElement string

	hasElement       bool
	hasID            bool
	hasPseudoElement bool

	// highest category touched so far, guards part ordering
	last category
}

// combined joins two already built selectors with a combinator token. The
// token is kept verbatim - it is the caller's business what goes between the
// children.
type combined struct {
	left       *Selector
	combinator string
	right      *Selector
}

// Selector is a single node of a selector expression: either a compound
// selector under construction or a combination of two built selectors.
// At most one of the two internal forms is ever populated.
//
// The zero value is an empty compound selector ready for use. Mutators return
// the receiver so valid call sequences chain; a violating call returns
// ErrOrder or ErrUnique and leaves the selector exactly as it was.
type Selector struct {
	simple   *simple
	combined *combined
}

// advance checks that adding a part of category c keeps the required order
// and returns the compound state to mutate. It performs no state change.
func (s *Selector) advance(c category) (*simple, error) {
	if s.combined != nil {
		// a combination is past all categories and stays inert
		return nil, ErrOrder
	}
	if s.simple == nil {
		s.simple = &simple{}
	}
	if s.simple.last > c {
		return nil, ErrOrder
	}
	return s.simple, nil
}

// Element sets the element name. At most one element per selector.
func (s *Selector) Element(name string) (*Selector, error) {
	sp, err := s.advance(catElement)
	if err != nil {
		return s, err
	}
	if sp.hasElement {
		return s, ErrUnique
	}
	sp.element, sp.hasElement = name, true
	sp.last = catElement
	return s, nil
}

// ID sets the id. At most one id per selector.
func (s *Selector) ID(name string) (*Selector, error) {
	sp, err := s.advance(catID)
	if err != nil {
		return s, err
	}
	if sp.hasID {
		return s, ErrUnique
	}
	sp.id, sp.hasID = name, true
	sp.last = catID
	return s, nil
}

// Class appends a class name. Repetition is allowed, insertion order is kept.
func (s *Selector) Class(name string) (*Selector, error) {
	sp, err := s.advance(catClass)
	if err != nil {
		return s, err
	}
	sp.classes = append(sp.classes, name)
	sp.last = catClass
	return s, nil
}

// Attr appends a raw attribute-selector body, rendered wrapped in brackets.
// The body is not validated.
func (s *Selector) Attr(body string) (*Selector, error) {
	sp, err := s.advance(catAttr)
	if err != nil {
		return s, err
	}
	sp.attrs = append(sp.attrs, body)
	sp.last = catAttr
	return s, nil
}

// PseudoClass appends a raw pseudo-class body. The body is not validated, so
// functional forms like "nth-child(2n)" pass through verbatim.
func (s *Selector) PseudoClass(body string) (*Selector, error) {
	sp, err := s.advance(catPseudoClass)
	if err != nil {
		return s, err
	}
	sp.pseudoClasses = append(sp.pseudoClasses, body)
	sp.last = catPseudoClass
	return s, nil
}

// PseudoElement sets the pseudo-element name. At most one per selector.
func (s *Selector) PseudoElement(name string) (*Selector, error) {
	sp, err := s.advance(catPseudoElement)
	if err != nil {
		return s, err
	}
	if sp.hasPseudoElement {
		return s, ErrUnique
	}
	sp.pseudoElement, sp.hasPseudoElement = name, true
	sp.last = catPseudoElement
	return s, nil
}

// IsCombined reports whether the selector is a combination of two selectors
// rather than a compound selector.
func (s *Selector) IsCombined() bool {
	return s.combined != nil
}
