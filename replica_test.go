package treecrdt

import "testing"

func TestReplica_TickAdvancesAndMergesClock(t *testing.T) {
	r := NewReplica[string, string, string]("r1")
	first := r.Tick()
	if first.Counter != 1 {
		t.Fatalf("first Tick() = %+v, want Counter=1", first)
	}

	remote := NewOpMove(Clock[string]{Actor: "r2", Counter: 10}, "root", "m", "x")
	r.Apply(remote)

	second := r.Tick()
	if second.Counter != 11 {
		t.Fatalf("Tick() after observing counter=10 = %+v, want Counter=11", second)
	}
}

func TestReplica_CausalThreshold(t *testing.T) {
	r := NewReplica[string, string, string]("r1")
	if _, ok := r.CausalThreshold(); ok {
		t.Fatalf("a replica with no applied ops should have no causal threshold")
	}

	r.Apply(NewOpMove(Clock[string]{Actor: "r1", Counter: 5}, "root", "m", "a"))
	r.Apply(NewOpMove(Clock[string]{Actor: "r2", Counter: 2}, "root", "m", "b"))

	threshold, ok := r.CausalThreshold()
	if !ok || threshold.Actor != "r2" || threshold.Counter != 2 {
		t.Fatalf("CausalThreshold() = %+v, %v; want {r2 2}, true", threshold, ok)
	}
}

func TestReplica_TruncateLogUsesCausalThreshold(t *testing.T) {
	r := NewReplica[string, string, string]("r1")
	for _, counter := range []uint64{10, 20, 30, 40} {
		r.Apply(NewOpMove(Clock[string]{Actor: "r1", Counter: counter}, "root", "m", "n"))
	}
	// r2 has only been seen at counter 25: the stable threshold is
	// min(r1@40, r2@25) == r2@25, so only r1's ops strictly below it go.
	r.Apply(NewOpMove(Clock[string]{Actor: "r2", Counter: 25}, "root", "m", "p"))

	removed, ok := r.TruncateLog()
	if removed != 2 || !ok {
		t.Fatalf("removed, ok = %d, %v; want 2, true (r1@10 and r1@20 are strictly below r2@25)", removed, ok)
	}
}

func TestReplica_TruncateLogNoOpWithoutThreshold(t *testing.T) {
	r := NewReplica[string, string, string]("r1")
	if removed, ok := r.TruncateLog(); removed != 0 || ok {
		t.Fatalf("TruncateLog() with no observations = %d, %v; want 0, false", removed, ok)
	}
}
