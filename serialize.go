package treecrdt

import (
	"cmp"
	"encoding/json"
)

// The wire layout is: Clock = {actor, counter}, TreeNode =
// {parent, metadata}, OpMove = {timestamp, parent, metadata, child},
// LogOpMove = OpMove's fields plus {oldp}, State = {log, tree}. Clock,
// TreeNode and OpMove get there for free from their exported, tagged
// fields; LogOpMove and Tree need custom (Un)MarshalJSON because the
// first has an optional nested field and the second's map-of-maps
// internals aren't meant to be exposed directly. Wire compatibility is
// not promised beyond this schema.

type logOpMoveWire[ID, M comparable, A cmp.Ordered] struct {
	Timestamp Clock[A]         `json:"timestamp"`
	Parent    ID               `json:"parent"`
	Metadata  M                `json:"metadata"`
	Child     ID               `json:"child"`
	OldParent *TreeNode[ID, M] `json:"oldp"`
}

// MarshalJSON encodes l as OpMove's fields plus oldp, with oldp encoded
// as null when the child did not previously exist.
func (l LogOpMove[ID, M, A]) MarshalJSON() ([]byte, error) {
	w := logOpMoveWire[ID, M, A]{
		Timestamp: l.Timestamp,
		Parent:    l.Parent,
		Metadata:  l.Metadata,
		Child:     l.Child,
	}
	if l.OldParentOK {
		w.OldParent = &l.OldParent
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes l from the layout MarshalJSON produces.
func (l *LogOpMove[ID, M, A]) UnmarshalJSON(data []byte) error {
	var w logOpMoveWire[ID, M, A]
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	l.Timestamp = w.Timestamp
	l.Parent = w.Parent
	l.Metadata = w.Metadata
	l.Child = w.Child
	if w.OldParent != nil {
		l.OldParent = *w.OldParent
		l.OldParentOK = true
	} else {
		l.OldParent = TreeNode[ID, M]{}
		l.OldParentOK = false
	}
	return nil
}

// treeTriple is one (child, node) entry; Tree marshals as a flat slice of
// these rather than exposing its internal triples/children maps.
type treeTriple[ID, M comparable] struct {
	Child ID             `json:"child"`
	Node  TreeNode[ID, M] `json:"node"`
}

// MarshalJSON encodes t as {"triples": [...]}, one entry per child in the
// tree; the derived children index is not part of the wire format since
// it is fully determined by the triples.
func (t *Tree[ID, M]) MarshalJSON() ([]byte, error) {
	triples := make([]treeTriple[ID, M], 0, len(t.triples))
	for child, node := range t.triples {
		triples = append(triples, treeTriple[ID, M]{Child: child, Node: node})
	}
	return json.Marshal(struct {
		Triples []treeTriple[ID, M] `json:"triples"`
	}{Triples: triples})
}

// UnmarshalJSON rebuilds t from the layout MarshalJSON produces, via
// AddNode so the derived children index comes back in sync.
func (t *Tree[ID, M]) UnmarshalJSON(data []byte) error {
	var w struct {
		Triples []treeTriple[ID, M] `json:"triples"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	t.triples = make(map[ID]TreeNode[ID, M], len(w.Triples))
	t.children = make(map[ID]map[ID]struct{})
	for _, tr := range w.Triples {
		t.AddNode(tr.Child, tr.Node)
	}
	return nil
}

type stateWire[ID, M comparable, A cmp.Ordered] struct {
	Log  []LogOpMove[ID, M, A] `json:"log"`
	Tree *Tree[ID, M]          `json:"tree"`
}

// MarshalJSON encodes s as {"log": [...], "tree": {...}}.
func (s *State[ID, M, A]) MarshalJSON() ([]byte, error) {
	return json.Marshal(stateWire[ID, M, A]{Log: s.log, Tree: s.tree})
}

// UnmarshalJSON rebuilds s from the layout MarshalJSON produces. It
// returns ErrLogNotDescending if the decoded log does not satisfy the
// strictly-descending-by-timestamp invariant apply relies on — wire data
// from outside this package is not trusted to uphold it on its own.
func (s *State[ID, M, A]) UnmarshalJSON(data []byte) error {
	w := stateWire[ID, M, A]{Tree: NewTree[ID, M]()}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	s.log = w.Log
	s.tree = w.Tree
	if !s.LogDescending() {
		return ErrLogNotDescending
	}
	return nil
}
