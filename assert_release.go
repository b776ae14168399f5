//go:build !debug

package treecrdt

import "github.com/golang/glog"

// onDuplicateTimestamp is the release-build counterpart to
// assert_debug.go: rather than panicking, it logs a warning and lets
// apply treat the op as a no-op. An application that triggers this has a
// clock-management bug, but a replicated tree shouldn't crash a process
// over it.
func onDuplicateTimestamp[A comparable](actor A, counter uint64) {
	glog.Warningf("treecrdt: apply called with timestamp already at log head (actor=%v, counter=%d); ignoring as a no-op", actor, counter)
}
