package vec

import "testing"

func TestPushPop(t *testing.T) {
	var v Vec[int]
	if !v.Empty() {
		t.Fatalf("new Vec should be empty")
	}
	for i := 0; i < 5; i++ {
		v.Push(i)
	}
	if v.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", v.Len())
	}
	for i := 4; i >= 0; i-- {
		got := v.Pop()
		if got != i {
			t.Errorf("Pop() = %d, want %d", got, i)
		}
	}
	if !v.Empty() {
		t.Fatalf("Vec should be empty after draining")
	}
}

func TestTopDoesNotRemove(t *testing.T) {
	var v Vec[string]
	v.Push("a")
	v.Push("b")
	if got := v.Top(); got != "b" {
		t.Fatalf("Top() = %q, want %q", got, "b")
	}
	if v.Len() != 2 {
		t.Fatalf("Top() must not remove, Len() = %d, want 2", v.Len())
	}
}

func TestClearKeepsCapacity(t *testing.T) {
	var v Vec[int]
	for i := 0; i < 100; i++ {
		v.Push(i)
	}
	v.Clear()
	if v.Len() != 0 {
		t.Fatalf("Len() after Clear() = %d, want 0", v.Len())
	}
	if cap(v.data) < 100 {
		t.Fatalf("cap after Clear() = %d, want at least 100", cap(v.data))
	}
	v.Push(1)
	if v.At(0) != 1 {
		t.Fatalf("At(0) = %d, want 1", v.At(0))
	}
}

func TestAtSet(t *testing.T) {
	var v Vec[int]
	v.Push(10)
	v.Push(20)
	v.Set(0, 99)
	if v.At(0) != 99 {
		t.Errorf("At(0) = %d, want 99", v.At(0))
	}
	if v.At(1) != 20 {
		t.Errorf("At(1) = %d, want 20", v.At(1))
	}
}
