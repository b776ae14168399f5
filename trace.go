package treecrdt

import "github.com/golang/glog"

// traceRejectedMove logs, at verbosity level 1, why do() left the tree
// unmodified for a self-move or would-be-cycle op. glog.V(1) is a no-op
// unless the process was started with -v=1 or higher, so this never
// costs anything on the hot path of an ordinary apply; it exists purely
// to make concurrent cycle-forming moves debuggable without
// instrumenting call sites by hand.
func traceRejectedMove[A, ID any](actor A, counter uint64, parent, child ID) {
	if glog.V(1) {
		glog.Infof("treecrdt: do() rejected move (actor=%v, counter=%d): parent=%v child=%v would introduce a cycle or self-move", actor, counter, parent, child)
	}
}
