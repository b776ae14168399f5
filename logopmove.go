package treecrdt

import "cmp"

// LogOpMove is an applied OpMove augmented with the child's prior
// location. OldParent is the zero TreeNode and OldParentOK is false when
// the child did not exist before this op was applied; otherwise OldParent
// holds the (parent, metadata) the child had immediately before.
//
// Every applied op gets a LogOpMove pushed onto the log, including ops
// State.do rejects for would-be-cycle or self-move reasons — the log
// entry is produced regardless so that replaying it (undo then redo) is
// deterministic across replicas that saw the op arrive against different
// tree states.
type LogOpMove[ID, M comparable, A cmp.Ordered] struct {
	Timestamp   Clock[A]
	Parent      ID
	Metadata    M
	Child       ID
	OldParent   TreeNode[ID, M]
	OldParentOK bool
}

// NewLogOpMove builds the LogOpMove for op, given the child's TreeNode
// before op was applied (ok is false if the child had no prior entry).
func NewLogOpMove[ID, M comparable, A cmp.Ordered](op OpMove[ID, M, A], oldParent TreeNode[ID, M], ok bool) LogOpMove[ID, M, A] {
	return LogOpMove[ID, M, A]{
		Timestamp:   op.Timestamp,
		Parent:      op.Parent,
		Metadata:    op.Metadata,
		Child:       op.Child,
		OldParent:   oldParent,
		OldParentOK: ok,
	}
}
