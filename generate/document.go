// Package generate builds CSS selectors described by a YAML document and
// writes the rendered selector text out.
package generate

import (
	"bytes"
	"errors"
	"fmt"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"cssel/css"
)

// Parts lists simple-selector fragments for one compound selector. The
// builder applies categories in grammar order, so a decodable parts block
// cannot trip the ordering rules of the css package.
type Parts struct {
	Element       string   `yaml:"element,omitempty"`
	ID            string   `yaml:"id,omitempty"`
	Classes       []string `yaml:"classes,omitempty"`
	Attrs         []string `yaml:"attrs,omitempty"`
	PseudoClasses []string `yaml:"pseudo_classes,omitempty"`
	PseudoElement string   `yaml:"pseudo_element,omitempty"`
}

// Combination joins two nodes with a combinator token. The token goes to
// css.Combine verbatim.
type Combination struct {
	Combinator string `yaml:"combinator"`
	Left       *Node  `yaml:"left"`
	Right      *Node  `yaml:"right"`
}

// Node describes a single selector node, holding exactly one of the two
// shapes.
type Node struct {
	Parts   *Parts       `yaml:"parts,omitempty"`
	Combine *Combination `yaml:"combine,omitempty"`
}

// Entry is a named top-level selector of the document.
type Entry struct {
	Name string `yaml:"name,omitempty"`
	Node `yaml:",inline"`
}

// Document is a parsed selector description.
type Document struct {
	Version   int     `yaml:"version"`
	Selectors []Entry `yaml:"selectors"`
}

// Result is a single rendered selector.
type Result struct {
	Name string
	Text string
}

var errNodeShape = errors.New("selector node must have exactly one of 'parts' or 'combine'")

// LoadDocument decodes a selector document, rejecting unknown fields.
func LoadDocument(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode selector document: %w", err)
	}
	if doc.Version != 1 {
		return nil, fmt.Errorf("unsupported selector document version %d", doc.Version)
	}
	return &doc, nil
}

// Build renders every entry of the document, collecting failures so one bad
// entry does not hide the rest. Successful results keep document order.
func (d *Document) Build() ([]Result, error) {
	var errs error
	results := make([]Result, 0, len(d.Selectors))
	for i := range d.Selectors {
		e := &d.Selectors[i]
		sel, err := e.build()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("selector %s: %w", e.describe(i), err))
			continue
		}
		results = append(results, Result{Name: e.Name, Text: sel.Stringify()})
	}
	return results, errs
}

func (e *Entry) describe(i int) string {
	if e.Name != "" {
		return fmt.Sprintf("%q", e.Name)
	}
	return fmt.Sprintf("#%d", i+1)
}

func (n *Node) build() (*css.Selector, error) {
	switch {
	case n.Parts != nil && n.Combine == nil:
		return n.Parts.build()
	case n.Combine != nil && n.Parts == nil:
		return n.Combine.build()
	default:
		return nil, errNodeShape
	}
}

func (p *Parts) build() (*css.Selector, error) {
	sel := &css.Selector{}
	if p.Element != "" {
		if _, err := sel.Element(p.Element); err != nil {
			return nil, err
		}
	}
	if p.ID != "" {
		if _, err := sel.ID(p.ID); err != nil {
			return nil, err
		}
	}
	for _, name := range p.Classes {
		if _, err := sel.Class(name); err != nil {
			return nil, err
		}
	}
	for _, body := range p.Attrs {
		if _, err := sel.Attr(body); err != nil {
			return nil, err
		}
	}
	for _, body := range p.PseudoClasses {
		if _, err := sel.PseudoClass(body); err != nil {
			return nil, err
		}
	}
	if p.PseudoElement != "" {
		if _, err := sel.PseudoElement(p.PseudoElement); err != nil {
			return nil, err
		}
	}
	return sel, nil
}

func (c *Combination) build() (*css.Selector, error) {
	if c.Left == nil || c.Right == nil {
		return nil, errors.New("combine requires both 'left' and 'right' nodes")
	}
	left, err := c.Left.build()
	if err != nil {
		return nil, err
	}
	right, err := c.Right.build()
	if err != nil {
		return nil, err
	}
	return css.Combine(left, c.Combinator, right), nil
}
