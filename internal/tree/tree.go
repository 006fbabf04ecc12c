// pattern: Functional Core

package tree

import (
	"errors"
	"fmt"
)

// ErrItemNotFound is returned when an id does not exist anywhere in the tree.
var ErrItemNotFound = errors.New("item not found")

// Tree is a rooted, ordered tree of items. The root itself is never shown;
// its children are the top-level rows.
type Tree struct {
	Root *Item
	gen  *IDGen
}

// New wraps root in a Tree. gen is the generator that numbered root and is
// kept so later ids stay unique; it may be nil.
func New(root *Item, gen *IDGen) *Tree {
	return &Tree{Root: root, gen: gen}
}

// FromOutline numbers o with a fresh generator starting at zero.
func FromOutline(o Outline) *Tree {
	gen := NewIDGen(0)
	return New(Build(gen, o), gen)
}

// IDGen returns the generator owned by the tree.
func (t *Tree) IDGen() *IDGen {
	return t.gen
}

// FirstID returns the id of the root's first child, or the root id when the
// root has no children.
func (t *Tree) FirstID() int {
	if len(t.Root.Children) == 0 {
		return t.Root.ID
	}
	return t.Root.Children[0].ID
}

// FindWithParent looks for id among visible items only: the search never
// enters a closed branch. Top-level items report the root as their parent.
func (t *Tree) FindWithParent(id int) (item, parent *Item, ok bool) {
	return findVisible(t.Root, id)
}

func findVisible(parent *Item, id int) (*Item, *Item, bool) {
	for _, child := range parent.Children {
		if child.ID == id {
			return child, parent, true
		}
		if child.Open {
			if item, p, ok := findVisible(child, id); ok {
				return item, p, true
			}
		}
	}
	return nil, nil, false
}

// Find looks for id anywhere below the root, including inside closed
// branches.
func (t *Tree) Find(id int) (*Item, bool) {
	return findAny(t.Root.Children, id)
}

func findAny(items []*Item, id int) (*Item, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
		if found, ok := findAny(item.Children, id); ok {
			return found, true
		}
	}
	return nil, false
}

// AppendTitle appends suffix to the title of the item with the given id.
func (t *Tree) AppendTitle(id int, suffix string) error {
	item, ok := t.Find(id)
	if !ok {
		return fmt.Errorf("append title to item %d: %w", id, ErrItemNotFound)
	}
	item.Title += suffix
	return nil
}

// MustAppendTitle is like AppendTitle but panics when the id is unknown.
// Ids never come from user input, so a miss is a programming error.
func (t *Tree) MustAppendTitle(id int, suffix string) {
	if err := t.AppendTitle(id, suffix); err != nil {
		panic(err)
	}
}

// SetOpen expands or collapses the visible branch with the given id. It
// reports whether anything changed; leaves and hidden items are left alone.
func (t *Tree) SetOpen(id int, open bool) bool {
	item, _, ok := t.FindWithParent(id)
	if !ok || item.IsLeaf() || item.Open == open {
		return false
	}
	item.Open = open
	return true
}

// Toggle flips the open state of the visible branch with the given id.
func (t *Tree) Toggle(id int) bool {
	item, _, ok := t.FindWithParent(id)
	if !ok || item.IsLeaf() {
		return false
	}
	item.Open = !item.Open
	return true
}

// Walk calls fn for every visible item in render order, depth-first, with
// top-level items at depth 0. Children of closed branches are skipped.
func (t *Tree) Walk(fn func(item *Item, depth int)) {
	walk(t.Root.Children, 0, fn)
}

func walk(items []*Item, depth int, fn func(*Item, int)) {
	for _, item := range items {
		fn(item, depth)
		if item.Open {
			walk(item.Children, depth+1, fn)
		}
	}
}

// Visible returns the visible items in render order.
func (t *Tree) Visible() []*Item {
	var items []*Item
	t.Walk(func(item *Item, _ int) {
		items = append(items, item)
	})
	return items
}
