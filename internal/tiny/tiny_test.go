package tiny

import "testing"

func TestVec16PushAndAt(t *testing.T) {
	var v Vec16[int]
	for i := 0; i < 16; i++ {
		v.Push(i * 10)
	}
	if v.Len() != 16 {
		t.Fatalf("Len() = %d, expected 16", v.Len())
	}
	for i := 0; i < 16; i++ {
		if v.At(i) != i*10 {
			t.Errorf("At(%d) = %d, expected %d", i, v.At(i), i*10)
		}
	}
}

func TestVec16OverflowPanics(t *testing.T) {
	var v Vec16[int]
	for i := 0; i < 16; i++ {
		v.Push(i)
	}
	defer func() {
		if recover() == nil {
			t.Error("17th Push should panic")
		}
	}()
	v.Push(16)
}

func TestVec16Clear(t *testing.T) {
	var v Vec16[string]
	v.Push("a")
	v.Push("b")
	v.Clear()
	if v.Len() != 0 {
		t.Errorf("Len() after Clear = %d", v.Len())
	}
	v.Push("c")
	if v.At(0) != "c" {
		t.Errorf("At(0) after Clear+Push = %q", v.At(0))
	}
}

func TestVec16ContainsIndexOf(t *testing.T) {
	var v Vec16[int]
	v.Push(3)
	v.Push(7)
	v.Push(11)
	if !Contains(&v, 7) {
		t.Error("Contains(7) should be true")
	}
	if Contains(&v, 8) {
		t.Error("Contains(8) should be false")
	}
	if got := IndexOf(&v, 11); got != 2 {
		t.Errorf("IndexOf(11) = %d, expected 2", got)
	}
	if got := IndexOf(&v, 99); got != -1 {
		t.Errorf("IndexOf(99) = %d, expected -1", got)
	}
}

func TestString(t *testing.T) {
	s := NewString("Hello")
	s.Append(", world")
	if s.String() != "Hello, world" {
		t.Errorf("String() = %q", s.String())
	}
	if s.Len() != 12 {
		t.Errorf("Len() = %d", s.Len())
	}
}

func TestStringOverflowPanics(t *testing.T) {
	var s String
	for i := 0; i < 128; i++ {
		s.Append("x")
	}
	defer func() {
		if recover() == nil {
			t.Error("appending past capacity should panic")
		}
	}()
	s.Append("y")
}

func TestBitSet16(t *testing.T) {
	var b BitSet16
	b.Set(0)
	b.Set(5)
	b.Set(15)
	if !b.Has(0) || !b.Has(5) || !b.Has(15) {
		t.Error("set bits should be reported")
	}
	if b.Has(1) {
		t.Error("unset bit reported")
	}
	if b.Count() != 3 {
		t.Errorf("Count() = %d, expected 3", b.Count())
	}
	b.Clear(5)
	if b.Has(5) || b.Count() != 2 {
		t.Error("Clear(5) did not clear")
	}
}
