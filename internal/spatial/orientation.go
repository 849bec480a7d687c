// Package spatial provides the rotation type used to express vehicle
// attitude. An [Orientation] is a unit quaternion mapping body-frame
// vectors into the world frame.
package spatial

import (
	"errors"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// ErrDegenerateRotation indicates a quaternion with zero or NaN norm,
// which has no well-defined inverse.
var ErrDegenerateRotation = errors.New("spatial: degenerate rotation (zero or NaN norm)")

// Orientation is a unit rotation from body frame to world frame.
// The zero value behaves as the identity rotation.
type Orientation struct {
	q quat.Number
}

// NewZeroOrientation returns the identity rotation.
func NewZeroOrientation() Orientation {
	return Orientation{q: quat.Number{Real: 1}}
}

// NewOrientation builds an Orientation from quaternion components,
// normalizing them. Degenerate input is rejected rather than silently
// producing a rotation that cannot invert.
func NewOrientation(w, x, y, z float64) (Orientation, error) {
	q := quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z}
	n := quat.Abs(q)
	if n == 0 || math.IsNaN(n) {
		return Orientation{}, ErrDegenerateRotation
	}
	return Orientation{q: quat.Scale(1/n, q)}, nil
}

// NewOrientationFromEuler builds an Orientation from intrinsic ZYX
// (yaw-pitch-roll) Euler angles in radians.
func NewOrientationFromEuler(roll, pitch, yaw float64) Orientation {
	sr, cr := math.Sincos(roll / 2)
	sp, cp := math.Sincos(pitch / 2)
	sy, cy := math.Sincos(yaw / 2)
	return Orientation{q: quat.Number{
		Real: cr*cp*cy + sr*sp*sy,
		Imag: sr*cp*cy - cr*sp*sy,
		Jmag: cr*sp*cy + sr*cp*sy,
		Kmag: cr*cp*sy - sr*sp*cy,
	}}
}

// Quaternion returns the underlying unit quaternion.
func (o Orientation) Quaternion() quat.Number {
	if o.q == (quat.Number{}) {
		return quat.Number{Real: 1}
	}
	return o.q
}

// Rotate maps a body-frame vector into the world frame (q v q*).
func (o Orientation) Rotate(v r3.Vector) r3.Vector {
	q := o.Quaternion()
	rot := quat.Mul(quat.Mul(q, quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}), quat.Conj(q))
	return r3.Vector{X: rot.Imag, Y: rot.Jmag, Z: rot.Kmag}
}

// RotateInv maps a world-frame vector into the body frame (q* v q).
func (o Orientation) RotateInv(v r3.Vector) r3.Vector {
	q := quat.Conj(o.Quaternion())
	rot := quat.Mul(quat.Mul(q, quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}), quat.Conj(q))
	return r3.Vector{X: rot.Imag, Y: rot.Jmag, Z: rot.Kmag}
}

// EulerAngles returns the intrinsic ZYX roll, pitch and yaw in radians.
func (o Orientation) EulerAngles() (roll, pitch, yaw float64) {
	q := o.Quaternion()
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag

	roll = math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))

	sinp := 2 * (w*y - z*x)
	switch {
	case sinp >= 1:
		pitch = math.Pi / 2
	case sinp <= -1:
		pitch = -math.Pi / 2
	default:
		pitch = math.Asin(sinp)
	}

	yaw = math.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))
	return roll, pitch, yaw
}
