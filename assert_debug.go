//go:build debug

package treecrdt

import "fmt"

// onDuplicateTimestamp is invoked when apply sees an incoming op whose
// timestamp equals the log head's. Timestamps are required to be unique
// across every op a replica ever applies (uniqueness comes from pairing a
// Lamport counter with an actor, so this should only happen if an
// application reused a clock value). Debug builds (built with
// -tags debug) panic with a diagnostic so the bug surfaces immediately in
// tests; see assert_release.go for the release behavior.
func onDuplicateTimestamp[A comparable](actor A, counter uint64) {
	panic(fmt.Sprintf("treecrdt: apply called with timestamp already at log head (actor=%v, counter=%d) — timestamps must be unique per replica", actor, counter))
}
