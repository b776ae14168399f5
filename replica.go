package treecrdt

import "cmp"

// Replica is the collaborator that owns an
// actor identity, a State, a local Clock ticked before minting each local
// op, and a map of the latest timestamp observed from every actor it has
// seen an op from (including itself). The causally stable threshold for
// log truncation — the newest point before which no op with a smaller
// timestamp can still arrive — is the minimum of that map.
//
// Replica does not transport anything: callers are responsible for
// getting the OpMove values a Replica produces (via Tick+NewOpMove) to
// other replicas, and for feeding in whatever a peer replica hands back,
// by whatever means they like.
type Replica[ID, M comparable, A cmp.Ordered] struct {
	actor    A
	state    *State[ID, M, A]
	clock    Clock[A]
	lastSeen map[A]Clock[A]
}

// NewReplica creates a replica owned by actor, with a fresh empty State
// and local clock.
func NewReplica[ID, M comparable, A cmp.Ordered](actor A) *Replica[ID, M, A] {
	return &Replica[ID, M, A]{
		actor:    actor,
		state:    NewState[ID, M, A](),
		clock:    NewClock[A](actor),
		lastSeen: make(map[A]Clock[A]),
	}
}

// Actor returns this replica's actor identity.
func (r *Replica[ID, M, A]) Actor() A { return r.actor }

// State returns the replica's underlying State, for direct use by callers
// that want apply/tree/log access beyond what Replica itself exposes.
func (r *Replica[ID, M, A]) State() *State[ID, M, A] { return r.state }

// Tick advances the replica's local clock by one and returns the new
// value, ready to stamp a locally originated OpMove. A single Replica's
// clock must not be ticked concurrently from multiple goroutines.
func (r *Replica[ID, M, A]) Tick() Clock[A] {
	return r.clock.Tick()
}

// Apply applies op to the replica's State and folds op's timestamp into
// the replica's bookkeeping: the local clock merges with it (so the next
// Tick is never behind anything this replica has seen), and lastSeen
// records it as the newest timestamp observed from op's actor.
func (r *Replica[ID, M, A]) Apply(op OpMove[ID, M, A]) {
	r.state.Apply(op)
	r.observe(op.Timestamp)
}

// ApplyMany applies each op in ops in turn, exactly as repeated calls to
// Apply would.
func (r *Replica[ID, M, A]) ApplyMany(ops []OpMove[ID, M, A]) {
	for _, op := range ops {
		r.Apply(op)
	}
}

func (r *Replica[ID, M, A]) observe(ts Clock[A]) {
	r.clock = r.clock.Merge(ts)
	if seen, ok := r.lastSeen[ts.Actor]; !ok || seen.Compare(ts) < 0 {
		r.lastSeen[ts.Actor] = ts
	}
}

// CausalThreshold returns the minimum of every actor's last-observed
// timestamp, and whether that minimum is defined at all (it isn't if the
// replica has not yet applied any op from any actor). This is the point
// before which no future op can arrive, because every known actor has
// already been observed at or past it.
func (r *Replica[ID, M, A]) CausalThreshold() (Clock[A], bool) {
	var min Clock[A]
	first := true
	for _, ts := range r.lastSeen {
		if first || ts.Compare(min) < 0 {
			min = ts
			first = false
		}
	}
	return min, !first
}

// TruncateLog computes the current causal-stability threshold and
// truncates the replica's log before it, returning the number of entries
// removed and whether anything was removed. A no-op (returns 0, false)
// if no threshold is defined yet.
func (r *Replica[ID, M, A]) TruncateLog() (removed int, ok bool) {
	threshold, thresholdOK := r.CausalThreshold()
	if !thresholdOK {
		return 0, false
	}
	return r.state.TruncateLogBefore(threshold)
}
