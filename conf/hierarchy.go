package conf

import (
	"fmt"
	"iter"
	"strings"
)

// Node is one level of the expanded configuration hierarchy: either a
// scalar leaf holding a raw value, or an ordered mapping from path
// segment to child Node.
type Node struct {
	value    string
	leaf     bool
	order    []string
	children map[string]*Node
}

// HierarchyError reports a structural collision between two keys, where
// one key names a scalar on a path the other key uses as a prefix.
type HierarchyError struct {
	Key      string
	Conflict string
}

func (e *HierarchyError) Error() string {
	return fmt.Sprintf("key %q collides with %q: a scalar and a subtree cannot share a path", e.Key, e.Conflict)
}

// Hierarchy expands the store into a Node tree by splitting each key on
// '.'. Each segment becomes one nesting level; the final segment holds
// the scalar value. If a key's prefix path is already occupied by a
// scalar, or a key names a path that already has nested children, a
// HierarchyError is returned naming both colliding keys.
func (s *Store) Hierarchy() (*Node, error) {
	root := newBranch()

	for key, value := range s.All() {
		err := root.insert(key, value)
		if err != nil {
			return nil, err
		}
	}

	return root, nil
}

// IsLeaf reports whether the node holds a scalar value.
func (n *Node) IsLeaf() bool {
	return n.leaf
}

// Value returns the scalar value of a leaf node, or "" for a branch.
func (n *Node) Value() string {
	return n.value
}

// Len returns the number of direct children of a branch node.
func (n *Node) Len() int {
	return len(n.order)
}

// Children returns an iterator over (segment, child) pairs in the order
// the segments were first introduced by the store.
func (n *Node) Children() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		for _, segment := range n.order {
			if !yield(segment, n.children[segment]) {
				return
			}
		}
	}
}

// Flatten folds the tree back into dot-keyed entries in tree order. For
// stores without path collisions this reproduces the parsed pairs.
func (n *Node) Flatten() []Entry {
	var entries []Entry

	n.flatten("", &entries)

	return entries
}

func (n *Node) flatten(prefix string, entries *[]Entry) {
	if n.leaf {
		*entries = append(*entries, Entry{Key: prefix, Value: n.value})

		return
	}

	for segment, child := range n.Children() {
		path := segment
		if prefix != "" {
			path = prefix + "." + segment
		}

		child.flatten(path, entries)
	}
}

func newBranch() *Node {
	return &Node{children: make(map[string]*Node)}
}

func newLeaf(value string) *Node {
	return &Node{value: value, leaf: true}
}

func (n *Node) insert(key, value string) error {
	segments := strings.Split(key, ".")
	current := n

	for i, segment := range segments[:len(segments)-1] {
		child, ok := current.children[segment]
		if !ok {
			child = newBranch()
			current.order = append(current.order, segment)
			current.children[segment] = child
		}

		if child.leaf {
			return &HierarchyError{Key: key, Conflict: strings.Join(segments[:i+1], ".")}
		}

		current = child
	}

	last := segments[len(segments)-1]

	existing, ok := current.children[last]
	if ok {
		if !existing.leaf {
			return &HierarchyError{Key: key, Conflict: existing.firstLeafPath(key)}
		}

		// Store keys are unique, so this only happens when Hierarchy is
		// fed the same key twice through direct Node use.
		existing.value = value

		return nil
	}

	current.order = append(current.order, last)
	current.children[last] = newLeaf(value)

	return nil
}

// firstLeafPath names one concrete key under the subtree rooted at n,
// used to report which existing key a new scalar collides with.
func (n *Node) firstLeafPath(prefix string) string {
	for !n.leaf {
		segment := n.order[0]
		prefix += "." + segment
		n = n.children[segment]
	}

	return prefix
}
