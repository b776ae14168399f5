package treecrdt

import "cmp"

// Clock is a Lamport timestamp paired with an actor identity. It gives a
// total order across replicas: two clocks with equal counters are ordered
// by their actor, so no two distinct operations submitted through apply
// ever compare equal.
//
// A is constrained to cmp.Ordered rather than a hand-rolled Less interface
// — any of Go's built-in ordered kinds (string, int, uint64, ...) works as
// an actor identity without extra plumbing.
type Clock[A cmp.Ordered] struct {
	Actor   A      `json:"actor"`
	Counter uint64 `json:"counter"`
}

// NewClock creates a clock for actor starting at counter 0.
func NewClock[A cmp.Ordered](actor A) Clock[A] {
	return Clock[A]{Actor: actor}
}

// Inc returns a new clock for the same actor with the counter incremented
// by one. It is pure: c itself is left unchanged.
func (c Clock[A]) Inc() Clock[A] {
	return Clock[A]{Actor: c.Actor, Counter: c.Counter + 1}
}

// Tick increments c's counter in place and returns the new value. This is
// the one mutating method on Clock; it exists for a Replica's local clock,
// which must be ticked before minting each new local operation. Per the
// concurrency model, a single Clock value must never have Tick called on
// it from more than one goroutine at a time.
func (c *Clock[A]) Tick() Clock[A] {
	c.Counter++
	return *c
}

// Merge returns a new clock for c's actor whose counter is the larger of
// c's and other's. This is the Lamport-clock merge rule: observing a
// remote timestamp advances the local clock to be strictly not-behind it.
func (c Clock[A]) Merge(other Clock[A]) Clock[A] {
	return Clock[A]{Actor: c.Actor, Counter: max(c.Counter, other.Counter)}
}

// Compare orders c against other: by counter first, then by actor when
// counters tie. It returns a negative number, zero, or a positive number
// following the same convention as cmp.Compare, and is a strict total
// order — two clocks compare equal only when both actor and counter
// match.
func (c Clock[A]) Compare(other Clock[A]) int {
	if c.Counter != other.Counter {
		if c.Counter < other.Counter {
			return -1
		}
		return 1
	}
	return cmp.Compare(c.Actor, other.Actor)
}

// Less reports whether c sorts strictly before other under Compare.
func (c Clock[A]) Less(other Clock[A]) bool {
	return c.Compare(other) < 0
}

// Equal reports whether c and other have the same actor and counter.
func (c Clock[A]) Equal(other Clock[A]) bool {
	return c.Compare(other) == 0
}
