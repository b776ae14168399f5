package treecrdt

import "cmp"

// OpMove is a single move operation: "at time Timestamp, make Child a
// child of Parent with metadata Metadata." Move and create are the same
// operation — if Child does not yet exist in the tree, applying this op
// creates it; if it does, applying this op relocates (or, with an
// unchanged Parent, renames) it.
//
// In a filesystem analogy, Parent and Child are inodes of a directory and
// a file within it; Metadata carries the filename, so renaming a file is
// just a Move to the same parent with new metadata.
type OpMove[ID, M comparable, A cmp.Ordered] struct {
	Timestamp Clock[A] `json:"timestamp"`
	Parent    ID       `json:"parent"`
	Metadata  M        `json:"metadata"`
	Child     ID       `json:"child"`
}

// NewOpMove constructs an OpMove from its four fields.
func NewOpMove[ID, M comparable, A cmp.Ordered](ts Clock[A], parent ID, metadata M, child ID) OpMove[ID, M, A] {
	return OpMove[ID, M, A]{Timestamp: ts, Parent: parent, Metadata: metadata, Child: child}
}

// FromLogOpMove reconstructs the OpMove a LogOpMove was produced from,
// discarding its oldp field. redo uses this to replay an entry through do
// again after the tree state it depends on has changed.
func FromLogOpMove[ID, M comparable, A cmp.Ordered](l LogOpMove[ID, M, A]) OpMove[ID, M, A] {
	return OpMove[ID, M, A]{
		Timestamp: l.Timestamp,
		Parent:    l.Parent,
		Metadata:  l.Metadata,
		Child:     l.Child,
	}
}
