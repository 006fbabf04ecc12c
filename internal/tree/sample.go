// pattern: Functional Core

package tree

import "fmt"

// SampleOutline is the fixed tree shown at startup.
func SampleOutline() Outline {
	top := []Outline{
		Branch("Item 1",
			Leaf("Item 1.1"),
			Branch("Item 1.2",
				Leaf("Item 1.2.1"),
				Leaf("Item 1.2.2"),
				Leaf("Item 1.2.3"),
				Leaf("Item 1.2.4"),
			),
			Leaf("Item 1.3"),
		),
	}
	for i := 2; i <= 6; i++ {
		top = append(top, Leaf(fmt.Sprintf("Item %d", i)))
	}
	return Branch("Root", top...)
}

// Sample builds the startup tree with ids starting at zero for the root.
func Sample() *Tree {
	return FromOutline(SampleOutline())
}
