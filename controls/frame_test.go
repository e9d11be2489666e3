package controls

import "testing"

func TestFrameLoopRunsInOrder(t *testing.T) {
	loop := NewFrameLoop()
	var order []int
	loop.Schedule(func() { order = append(order, 1) })
	loop.Schedule(func() { order = append(order, 2) })

	loop.Tick()
	loop.Tick()

	want := []int{1, 2, 1, 2}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, order)
		}
	}
}

func TestFrameLoopCancelDuringTick(t *testing.T) {
	loop := NewFrameLoop()
	ran := false
	var second TaskID
	loop.Schedule(func() { loop.Cancel(second) })
	second = loop.Schedule(func() { ran = true })

	loop.Tick()

	if ran {
		t.Error("Task cancelled earlier in the same tick still ran")
	}
	if loop.Len() != 1 {
		t.Errorf("Expected 1 task left, got %d", loop.Len())
	}
}

func TestFrameLoopScheduleDuringTick(t *testing.T) {
	loop := NewFrameLoop()
	count := 0
	scheduled := false
	loop.Schedule(func() {
		if !scheduled {
			scheduled = true
			loop.Schedule(func() { count++ })
		}
	})

	loop.Tick()
	if count != 0 {
		t.Errorf("Task scheduled during a tick ran in that tick")
	}
	loop.Tick()
	if count != 1 {
		t.Errorf("Expected new task to run on the next tick, ran %d times", count)
	}
}

func TestFrameLoopIgnoresNestedTick(t *testing.T) {
	loop := NewFrameLoop()
	count := 0
	loop.Schedule(func() {
		count++
		loop.Tick()
	})

	loop.Tick()

	if count != 1 {
		t.Errorf("Expected nested Tick to be ignored, task ran %d times", count)
	}
}

func TestFrameLoopCancelUnknown(t *testing.T) {
	loop := NewFrameLoop()
	loop.Schedule(func() {})
	loop.Cancel(99)
	if loop.Len() != 1 {
		t.Errorf("Expected cancelling an unknown id to do nothing, have %d tasks", loop.Len())
	}
}

func TestListenerListRemoveDuringEmit(t *testing.T) {
	var l listenerList
	var calls []string
	var second ListenerID
	l.add(func(Event) {
		calls = append(calls, "first")
		l.remove(second)
	})
	second = l.add(func(Event) { calls = append(calls, "second") })
	l.add(func(Event) {
		calls = append(calls, "third")
		l.add(func(Event) { calls = append(calls, "late") })
	})

	l.emit(Event{})

	// the snapshot still holds second and not late
	want := []string{"first", "second", "third"}
	if len(calls) != len(want) {
		t.Fatalf("Expected %v, got %v", want, calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, calls)
		}
	}
	if l.len() != 3 {
		t.Errorf("Expected 3 listeners after emit, got %d", l.len())
	}
}

func TestListenerIDsNeverZero(t *testing.T) {
	var l listenerList
	if id := l.add(func(Event) {}); id == 0 {
		t.Error("Expected a non-zero listener id")
	}
	if l.remove(0) {
		t.Error("Removing the zero id should find nothing")
	}
}
