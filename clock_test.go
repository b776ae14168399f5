package treecrdt

import "testing"

func TestClock_IncIncrementsOnlyCounter(t *testing.T) {
	c := Clock[string]{Actor: "r1", Counter: 4}
	got := c.Inc()
	want := Clock[string]{Actor: "r1", Counter: 5}
	if got != want {
		t.Errorf("Inc() = %+v, want %+v", got, want)
	}
	if c.Counter != 4 {
		t.Errorf("Inc() mutated receiver: %+v", c)
	}
}

func TestClock_Tick(t *testing.T) {
	c := NewClock("r1")
	got := c.Tick()
	if got.Counter != 1 || c.Counter != 1 {
		t.Errorf("Tick() = %+v, receiver = %+v; want both Counter=1", got, c)
	}
	c.Tick()
	if c.Counter != 2 {
		t.Errorf("second Tick() left Counter=%d, want 2", c.Counter)
	}
}

func TestClock_Merge(t *testing.T) {
	a := Clock[string]{Actor: "r1", Counter: 2}
	b := Clock[string]{Actor: "r2", Counter: 7}
	got := a.Merge(b)
	if got.Actor != "r1" || got.Counter != 7 {
		t.Errorf("Merge() = %+v, want actor r1 counter 7", got)
	}
}

func TestClock_TotalOrder(t *testing.T) {
	cases := []struct {
		a, b Clock[string]
		want int
	}{
		{Clock[string]{"r1", 1}, Clock[string]{"r1", 2}, -1},
		{Clock[string]{"r1", 2}, Clock[string]{"r1", 1}, 1},
		{Clock[string]{"r1", 3}, Clock[string]{"r1", 3}, 0},
		{Clock[string]{"r1", 5}, Clock[string]{"r2", 5}, -1}, // counter tie, r1 < r2
		{Clock[string]{"r2", 5}, Clock[string]{"r1", 5}, 1},
	}
	for _, c := range cases {
		if got := c.a.Compare(c.b); sign(got) != sign(c.want) {
			t.Errorf("%+v.Compare(%+v) = %d, want sign %d", c.a, c.b, got, c.want)
		}
		// antisymmetry
		if rev := c.b.Compare(c.a); sign(rev) != -sign(c.want) {
			t.Errorf("%+v.Compare(%+v) = %d, want opposite sign of forward compare", c.b, c.a, rev)
		}
	}
}

func TestClock_EqualOnlyWhenActorAndCounterMatch(t *testing.T) {
	a := Clock[string]{Actor: "r1", Counter: 3}
	b := Clock[string]{Actor: "r1", Counter: 3}
	c := Clock[string]{Actor: "r2", Counter: 3}
	if !a.Equal(b) {
		t.Errorf("expected %+v == %+v", a, b)
	}
	if a.Equal(c) {
		t.Errorf("expected %+v != %+v", a, c)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
