// pattern: Functional Core

package tree

// IDGen hands out item ids in increasing order. Each tree owns its own
// generator so separately built trees never share or reuse ids.
type IDGen struct {
	next int
}

// NewIDGen returns a generator whose first id is start.
func NewIDGen(start int) *IDGen {
	return &IDGen{next: start}
}

// Next returns a fresh id.
func (g *IDGen) Next() int {
	id := g.next
	g.next++
	return id
}

// Peek returns the id the next call to Next will hand out.
func (g *IDGen) Peek() int {
	return g.next
}

// Leaf creates a childless item with a fresh id.
func (g *IDGen) Leaf(title string) *Item {
	return &Item{ID: g.Next(), Title: title}
}

// Branch creates an item owning children. It starts open when it has any.
// Arguments are evaluated before the call, so children built inline get
// lower ids than their parent; use Build for parent-first numbering.
func (g *IDGen) Branch(title string, children ...*Item) *Item {
	return &Item{
		ID:       g.Next(),
		Title:    title,
		Open:     len(children) > 0,
		Children: children,
	}
}
