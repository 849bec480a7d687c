// Package hydro evaluates the rigid-body hydrodynamic response of an
// underwater vehicle.
//
// The package is a pure, stateless physics evaluator (aside from the
// stored configuration) intended to be driven once per control cycle by
// an outer simulation or control loop:
//
//   - [Model]: holds validated [Parameters] plus the cached inverse of
//     the combined rigid-body + added-mass inertia matrix
//   - [Model.CalcAcceleration]: forward dynamics, efforts to acceleration
//   - [Model.CalcEfforts]: inverse dynamics, acceleration to efforts
//   - [GravityBuoyancy], [DampingCoriolis]: the individual force terms
//
// # Example
//
//	m := hydro.New()
//	a, err := m.CalcAcceleration(control, velocity, spatial.NewZeroOrientation())
//
// # Thread Safety
//
// Configuration replacement and evaluation are guarded internally, so a
// Model may be shared: an update is never observed as new damping
// matrices paired with a stale inertia inverse. The evaluation methods
// allocate no shared intermediate state.
package hydro
