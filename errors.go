package treecrdt

import "errors"

// ErrLogNotDescending indicates a deserialized log does not satisfy the
// strictly-descending-by-timestamp invariant apply maintains by
// construction. State.UnmarshalJSON returns it when the decoded log
// fails State.LogDescending, so a replica never starts running against
// corrupted or hand-edited wire data.
var ErrLogNotDescending = errors.New("treecrdt: log is not strictly descending by timestamp")
