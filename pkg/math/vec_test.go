package math

import "testing"

func TestVec3Add(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	got := a.Add(b)
	want := Vec3{5, 7, 9}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{2, 3, 6}
	got := v.Length()
	want := float32(7)
	if got != want {
		t.Errorf("Vec3.Length() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 12}
	l := v.Normalize().Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero vector Normalize() = %v, want zero", got)
	}
}

func TestVec3Distance(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{1, 3, 4}
	got := a.Distance(b)
	want := float32(5)
	if got != want {
		t.Errorf("Vec3.Distance() = %v, want %v", got, want)
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, 5, -2}
	b := Vec3{3, 2, -4}
	if got := a.Min(b); got != (Vec3{1, 2, -4}) {
		t.Errorf("Vec3.Min() = %v", got)
	}
	if got := a.Max(b); got != (Vec3{3, 5, -2}) {
		t.Errorf("Vec3.Max() = %v", got)
	}
}

func TestFromSliceRoundTrip(t *testing.T) {
	buf := []float32{0, 0, 0, 1, 2, 3, 0, 0, 0}
	got := FromSlice(buf, 1)
	want := Vec3{1, 2, 3}
	if got != want {
		t.Errorf("FromSlice(buf, 1) = %v, want %v", got, want)
	}
	want.Scale(2).ToSlice(buf, 2)
	if got := FromSlice(buf, 2); got != (Vec3{2, 4, 6}) {
		t.Errorf("ToSlice round trip = %v", got)
	}
}

func TestSmoothstep(t *testing.T) {
	cases := []struct {
		in, want float32
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{2, 1},
	}
	for _, c := range cases {
		if got := Smoothstep(c.in); got != c.want {
			t.Errorf("Smoothstep(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestSmoothstepMonotonic(t *testing.T) {
	prev := float32(0)
	for i := 0; i <= 100; i++ {
		x := float32(i) / 100
		s := Smoothstep(x)
		if s < prev {
			t.Fatalf("Smoothstep not monotonic at x=%v: %v < %v", x, s, prev)
		}
		prev = s
	}
}

func TestMat4InverseRoundTrip(t *testing.T) {
	m := LookAt(Vec3{3, 4, 5}, Vec3{}, Vec3{0, 1, 0})
	id := m.Mul(m.Inverse())
	want := Identity()
	for i := 0; i < 16; i++ {
		d := id[i] - want[i]
		if d < -1e-4 || d > 1e-4 {
			t.Fatalf("M * M^-1 element %d = %f, want %f", i, id[i], want[i])
		}
	}
}
