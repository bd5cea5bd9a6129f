package resource

import (
	"errors"
	"testing"
)

func TestResource_Lifecycle(t *testing.T) {
	r := New[[]string]()

	if _, state := r.Get(); state != StateIdle {
		t.Errorf("new resource state = %s, expected idle", state)
	}

	gen := r.Begin()
	if !r.Loading() {
		t.Error("resource should be loading after Begin")
	}

	if !r.Resolve(gen, []string{"milk", "bread"}) {
		t.Fatal("Resolve with current generation should apply")
	}
	value, state := r.Get()
	if state != StateReady {
		t.Errorf("state = %s, expected ready", state)
	}
	if len(value) != 2 {
		t.Errorf("value = %v, expected two entries", value)
	}
}

func TestResource_Fail(t *testing.T) {
	r := New[int]()

	gen := r.Begin()
	failure := errors.New("network down")
	if !r.Fail(gen, failure) {
		t.Fatal("Fail with current generation should apply")
	}

	if _, state := r.Get(); state != StateFailed {
		t.Error("state should be failed")
	}
	if !errors.Is(r.Err(), failure) {
		t.Errorf("Err() = %v, expected the recorded failure", r.Err())
	}

	// A new fetch clears the recorded error.
	r.Begin()
	if r.Err() != nil {
		t.Error("Begin should clear the previous error")
	}
}

func TestResource_StaleCompletionIsDropped(t *testing.T) {
	r := New[string]()

	stale := r.Begin()
	fresh := r.Begin()

	if r.Resolve(stale, "old response") {
		t.Error("stale Resolve should be dropped")
	}
	if r.Fail(stale, errors.New("old failure")) {
		t.Error("stale Fail should be dropped")
	}

	if !r.Resolve(fresh, "new response") {
		t.Fatal("current generation should apply")
	}
	if value, state := r.Get(); state != StateReady || value != "new response" {
		t.Errorf("resource = (%q, %s), expected the fresh payload", value, state)
	}
}

func TestResource_SetReplacesWholesale(t *testing.T) {
	r := New[[]int]()
	gen := r.Begin()
	r.Resolve(gen, []int{1, 2, 3})

	r.Set([]int{9})
	if value := r.Value(); len(value) != 1 || value[0] != 9 {
		t.Errorf("Set should replace the value wholesale, got %v", value)
	}

	// A fetch that was in flight before Set must no longer apply.
	if r.Resolve(gen, []int{1, 2, 3}) {
		t.Error("completion from before Set should be dropped")
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateIdle, "idle"},
		{StateLoading, "loading"},
		{StateReady, "ready"},
		{StateFailed, "failed"},
		{State(42), "unknown"},
	}

	for _, test := range tests {
		if result := test.state.String(); result != test.expected {
			t.Errorf("State(%d).String() = %s, expected %s", test.state, result, test.expected)
		}
	}
}
