package engine

import "testing"

func TestEventInvokeOrder(t *testing.T) {
	var e Event[bool]
	var calls []string

	e.AddListener(func(v bool) { calls = append(calls, "a") })
	e.AddListener(func(v bool) { calls = append(calls, "b") })

	e.Invoke(true)

	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Errorf("listeners called as %v, want [a b]", calls)
	}
}

func TestEventRemoveListener(t *testing.T) {
	var e Event[int]
	sum := 0

	id := e.AddListener(func(v int) { sum += v })
	e.AddListener(func(v int) { sum += 10 * v })

	e.RemoveListener(id)
	e.Invoke(1)

	if sum != 10 {
		t.Errorf("sum = %d, want 10 after removing the first listener", sum)
	}
	if e.GetListenerCount() != 1 {
		t.Errorf("GetListenerCount() = %d, want 1", e.GetListenerCount())
	}

	e.RemoveAllListeners()
	e.Invoke(1)
	if sum != 10 {
		t.Error("RemoveAllListeners should stop all callbacks")
	}
}

func TestEventIgnoresNilCallback(t *testing.T) {
	var e Event[string]
	if id := e.AddListener(nil); id != 0 {
		t.Errorf("AddListener(nil) = %d, want 0", id)
	}
	if e.GetListenerCount() != 0 {
		t.Error("nil callback should not be registered")
	}
}
