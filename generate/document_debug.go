package generate

import "cssel/utils/debug"

// String returns a readable tree of the whole document. It exists solely for
// manual inspection during debugging.
func (d *Document) String() string {
	if d == nil {
		return "<nil Document>"
	}

	tw := debug.NewTreeWriter()
	tw.Line(0, "Selector document: version %d, %d entries", d.Version, len(d.Selectors))
	for i := range d.Selectors {
		e := &d.Selectors[i]
		tw.Line(1, "Entry[%d] name=%q", i+1, e.Name)
		dumpNode(tw, 2, &e.Node)
	}
	return tw.String()
}

func dumpNode(tw *debug.TreeWriter, depth int, n *Node) {
	switch {
	case n.Parts != nil:
		p := n.Parts
		tw.Line(depth, "parts")
		if p.Element != "" {
			tw.Quoted(depth+1, "element", p.Element)
		}
		if p.ID != "" {
			tw.Quoted(depth+1, "id", p.ID)
		}
		for _, name := range p.Classes {
			tw.Quoted(depth+1, "class", name)
		}
		for _, body := range p.Attrs {
			tw.Quoted(depth+1, "attr", body)
		}
		for _, body := range p.PseudoClasses {
			tw.Quoted(depth+1, "pseudo-class", body)
		}
		if p.PseudoElement != "" {
			tw.Quoted(depth+1, "pseudo-element", p.PseudoElement)
		}
	case n.Combine != nil:
		tw.Line(depth, "combine")
		tw.Quoted(depth+1, "combinator", n.Combine.Combinator)
		if n.Combine.Left != nil {
			tw.Line(depth+1, "left")
			dumpNode(tw, depth+2, n.Combine.Left)
		}
		if n.Combine.Right != nil {
			tw.Line(depth+1, "right")
			dumpNode(tw, depth+2, n.Combine.Right)
		}
	default:
		tw.Line(depth, "<empty node>")
	}
}
