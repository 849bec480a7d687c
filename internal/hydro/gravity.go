package hydro

import (
	"github.com/golang/geo/r3"

	"github.com/auvlab/uwvdyn/internal/spatial"
)

// GravityBuoyancy computes the restoring force and torque for the given
// attitude:
//
//	f   = R^T * [0, 0, W-B]
//	tau = (cg*W - cb*B) x (R^T * [0, 0, 1])
//
// with R the body-to-world rotation. Positive z points up here, the
// opposite of the usual marine-literature convention; the sign is part
// of the contract with the consuming control stack and must not be
// flipped back.
func GravityBuoyancy(o spatial.Orientation, p Parameters) Vec6 {
	up := o.RotateInv(r3.Vector{Z: 1})
	force := o.RotateInv(r3.Vector{Z: p.Weight - p.Buoyancy})
	lever := p.CenterOfGravity.Mul(p.Weight).Sub(p.CenterOfBuoyancy.Mul(p.Buoyancy))
	return NewVec6(force, lever.Cross(up))
}
