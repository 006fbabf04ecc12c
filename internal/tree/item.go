// pattern: Functional Core

package tree

// Item is a single node of the tree. An item owns its children; there are
// no parent back-references.
type Item struct {
	ID       int
	Title    string
	Open     bool
	Children []*Item
}

// IsLeaf reports whether the item has no children.
func (i *Item) IsLeaf() bool {
	return len(i.Children) == 0
}

// Outline is a literal description of a subtree, without ids.
type Outline struct {
	Title    string
	Children []Outline
}

// Leaf describes a childless node.
func Leaf(title string) Outline {
	return Outline{Title: title}
}

// Branch describes a node with children.
func Branch(title string, children ...Outline) Outline {
	return Outline{Title: title, Children: children}
}

// Build turns an outline into items, numbering them depth-first with each
// parent ahead of its children. Branches with children start open.
func Build(gen *IDGen, o Outline) *Item {
	item := &Item{
		ID:    gen.Next(),
		Title: o.Title,
		Open:  len(o.Children) > 0,
	}
	if len(o.Children) > 0 {
		item.Children = make([]*Item, 0, len(o.Children))
		for _, child := range o.Children {
			item.Children = append(item.Children, Build(gen, child))
		}
	}
	return item
}
