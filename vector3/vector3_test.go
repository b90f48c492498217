package vector3_test

import (
	"math"
	"testing"

	"github.com/theoCanji/hull3d/vector3"
)

func TestDotCross(t *testing.T) {
	x := vector3.New(1, 0, 0)
	y := vector3.New(0, 1, 0)
	z := vector3.New(0, 0, 1)

	if got := x.Dot(y); got != 0 {
		t.Errorf("x.Dot(y) = %v; want 0", got)
	}
	if got := x.Cross(y); got != z {
		t.Errorf("x.Cross(y) = %v; want %v", got, z)
	}
}

func TestLength(t *testing.T) {
	v := vector3.New(3, 4, 0)
	if got := v.Length(); got != 5 {
		t.Errorf("Length() = %v; want 5", got)
	}
}

func TestCentroid(t *testing.T) {
	pts := []vector3.Vec3{
		vector3.New(0, 0, 0),
		vector3.New(2, 0, 0),
		vector3.New(1, 3, 0),
	}
	c := vector3.Centroid(pts...)
	want := vector3.New(1, 1, 0)
	if c != want {
		t.Errorf("Centroid() = %v; want %v", c, want)
	}
	if got := vector3.Centroid(); got != (vector3.Vec3{}) {
		t.Errorf("Centroid() of nothing = %v; want zero vector", got)
	}
}

// TestVisible anchors the orientation predicate to the unit-tetrahedron
// base face used throughout the hull package's end-to-end scenarios.
func TestVisible(t *testing.T) {
	p1 := vector3.New(0, 0, 0)
	p2 := vector3.New(1, 0, 0)
	p3 := vector3.New(0, 1, 0)

	// Outward normal of (p1,p2,p3) by the right-hand rule is +Z, so a query
	// point above the plane (positive Z) is visible, one below is not.
	above := vector3.New(0, 0, 1)
	below := vector3.New(0, 0, -1)
	coplanar := vector3.New(0.25, 0.25, 0)

	if !vector3.Visible(p1, p2, p3, above) {
		t.Error("expected above-plane point to be visible")
	}
	if vector3.Visible(p1, p2, p3, below) {
		t.Error("expected below-plane point to be not visible")
	}
	if vector3.Visible(p1, p2, p3, coplanar) {
		t.Error("expected coplanar point to be not visible")
	}
}

func TestVisible_NearCoplanarIsNotVisible(t *testing.T) {
	p1 := vector3.New(0, 0, 0)
	p2 := vector3.New(1, 0, 0)
	p3 := vector3.New(0, 1, 0)
	q := vector3.New(0.25, 0.25, vector3.EpsilonVisibility/2)

	if vector3.Visible(p1, p2, p3, q) {
		t.Error("expected a near-coplanar point within epsilon to be not visible")
	}
}

func TestIsDegenerateNormal(t *testing.T) {
	if !vector3.IsDegenerateNormal(vector3.New(0, 0, 0)) {
		t.Error("zero vector must be degenerate")
	}
	if vector3.IsDegenerateNormal(vector3.New(1, 0, 0)) {
		t.Error("unit vector must not be degenerate")
	}
}

func TestOrientOutward(t *testing.T) {
	p1 := vector3.New(0, 0, 0)
	p2 := vector3.New(1, 0, 0)
	p3 := vector3.New(0, 1, 0)
	interior := vector3.New(0, 0, -1) // below the plane: raw normal (+Z) already points away.

	a, b, c := vector3.OrientOutward(p1, p2, p3, interior)
	if a != p1 || b != p2 || c != p3 {
		t.Errorf("expected no reorder when raw normal already points outward, got %v %v %v", a, b, c)
	}

	interiorAbove := vector3.New(0, 0, 1) // above the plane: raw normal points toward interior, must swap.
	a, b, c = vector3.OrientOutward(p1, p2, p3, interiorAbove)
	if a != p1 || b != p3 || c != p2 {
		t.Errorf("expected (p1,p3,p2) after swap, got %v %v %v", a, b, c)
	}

	// Whichever orientation is returned, its outward normal must point away from interior.
	normal := b.Sub(a).Cross(c.Sub(a))
	centroid := vector3.Centroid(a, b, c)
	if normal.Dot(centroid.Sub(interiorAbove)) < 0 {
		t.Error("OrientOutward must yield a normal pointing away from interior")
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := vector3.New(1, 2, 3)
	b := vector3.New(4, 5, 6)
	if got := a.Add(b); got != vector3.New(5, 7, 9) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a); got != vector3.New(3, 3, 3) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != vector3.New(2, 4, 6) {
		t.Errorf("Scale = %v", got)
	}
	if math.Abs(a.Length()*a.Length()-a.LengthSquared()) > 1e-12 {
		t.Errorf("Length()^2 != LengthSquared()")
	}
}
