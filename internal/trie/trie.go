// Package trie implements the prefix tree used for sequence handler
// lookup with longest-match semantics.
package trie

// Tree is a byte-keyed prefix tree mapping sequences to values.
// The zero value is not usable; create trees with New.
type Tree[V any] struct {
	root *node[V]
	size int
}

type node[V any] struct {
	children map[byte]*node[V]
	terminal bool
	value    V
}

// New creates an empty tree.
func New[V any]() *Tree[V] {
	return &Tree[V]{root: &node[V]{}}
}

// Len returns the number of sequences stored in the tree.
func (t *Tree[V]) Len() int {
	return t.size
}

// Insert stores value under the given sequence, creating intermediate
// nodes as needed. Inserting the same sequence again overwrites the
// stored value; the structure itself is unchanged.
func (t *Tree[V]) Insert(seq string, value V) {
	n := t.root
	for i := 0; i < len(seq); i++ {
		c := seq[i]
		if n.children == nil {
			n.children = make(map[byte]*node[V])
		}
		child, ok := n.children[c]
		if !ok {
			child = &node[V]{}
			n.children[c] = child
		}
		n = child
	}
	if !n.terminal {
		t.size++
	}
	n.terminal = true
	n.value = value
}

// Search looks up an exact sequence.
func (t *Tree[V]) Search(seq string) (V, bool) {
	n := t.root
	for i := 0; i < len(seq); i++ {
		child, ok := n.children[seq[i]]
		if !ok {
			var zero V
			return zero, false
		}
		n = child
	}
	if !n.terminal {
		var zero V
		return zero, false
	}
	return n.value, true
}

// LongestMatch walks the tree and text simultaneously starting at
// offset and returns the longest sequence that matches there. A
// terminal reached deeper in the walk always replaces an earlier one,
// so a longer match wins over any of its prefixes. Returns ok=false
// when no inserted sequence starts at offset.
func (t *Tree[V]) LongestMatch(text string, offset int) (length int, value V, ok bool) {
	n := t.root
	for i := offset; i < len(text); i++ {
		child, found := n.children[text[i]]
		if !found {
			break
		}
		n = child
		if n.terminal {
			length = i - offset + 1
			value = n.value
			ok = true
		}
	}
	return length, value, ok
}
