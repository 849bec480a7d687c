package spatial

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
)

func vecAlmostEqual(a, b r3.Vector, tol float64) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol && math.Abs(a.Z-b.Z) < tol
}

func TestZeroOrientationIsIdentity(t *testing.T) {
	v := r3.Vector{X: 1, Y: -2, Z: 3}
	o := NewZeroOrientation()

	if got := o.Rotate(v); !vecAlmostEqual(got, v, 1e-12) {
		t.Errorf("identity rotation moved vector: %+v", got)
	}
	if got := o.RotateInv(v); !vecAlmostEqual(got, v, 1e-12) {
		t.Errorf("identity inverse rotation moved vector: %+v", got)
	}
}

func TestZeroValueBehavesAsIdentity(t *testing.T) {
	var o Orientation
	v := r3.Vector{X: 0.5, Y: 0.5, Z: -1}
	if got := o.Rotate(v); !vecAlmostEqual(got, v, 1e-12) {
		t.Errorf("zero-value orientation moved vector: %+v", got)
	}
}

func TestNewOrientationRejectsDegenerate(t *testing.T) {
	if _, err := NewOrientation(0, 0, 0, 0); err == nil {
		t.Error("expected error for zero quaternion")
	}
	if _, err := NewOrientation(math.NaN(), 0, 0, 1); err == nil {
		t.Error("expected error for NaN quaternion")
	}
}

func TestNewOrientationNormalizes(t *testing.T) {
	o, err := NewOrientation(2, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	q := o.Quaternion()
	if math.Abs(q.Real-1) > 1e-12 {
		t.Errorf("expected normalized identity, got %+v", q)
	}
}

func TestYawRotatesXToY(t *testing.T) {
	o := NewOrientationFromEuler(0, 0, math.Pi/2)
	got := o.Rotate(r3.Vector{X: 1})
	if !vecAlmostEqual(got, r3.Vector{Y: 1}, 1e-12) {
		t.Errorf("yaw pi/2 of x = %+v, want y", got)
	}
}

func TestRotateRoundTrip(t *testing.T) {
	o := NewOrientationFromEuler(0.4, -0.7, 1.9)
	v := r3.Vector{X: 1.5, Y: -0.25, Z: 0.75}

	back := o.RotateInv(o.Rotate(v))
	if !vecAlmostEqual(back, v, 1e-12) {
		t.Errorf("round trip drifted: %+v vs %+v", back, v)
	}
}

func TestEulerRoundTrip(t *testing.T) {
	wantRoll, wantPitch, wantYaw := 0.3, -0.5, 2.1
	o := NewOrientationFromEuler(wantRoll, wantPitch, wantYaw)

	roll, pitch, yaw := o.EulerAngles()
	if math.Abs(roll-wantRoll) > 1e-12 ||
		math.Abs(pitch-wantPitch) > 1e-12 ||
		math.Abs(yaw-wantYaw) > 1e-12 {
		t.Errorf("euler round trip: got (%g, %g, %g)", roll, pitch, yaw)
	}
}
