package hydro

import (
	"fmt"
	"sync"

	"github.com/auvlab/uwvdyn/internal/spatial"
)

// Model evaluates the hydrodynamic equations of motion for one vehicle.
// It stores validated [Parameters] together with the cached inverse of
// the inertia matrix; the pair is replaced atomically on update.
type Model struct {
	mu         sync.RWMutex
	params     Parameters
	invInertia Matrix6
}

// New returns a Model configured with [DefaultParameters].
func New() *Model {
	m := &Model{}
	if err := m.SetParameters(DefaultParameters()); err != nil {
		// DefaultParameters always validates.
		panic(err)
	}
	return m
}

// NewWithParameters returns a Model configured with p.
func NewWithParameters(p Parameters) (*Model, error) {
	m := &Model{}
	if err := m.SetParameters(p); err != nil {
		return nil, err
	}
	return m, nil
}

// SetParameters validates p and, on success, replaces the stored
// configuration and recomputes the cached inertia inverse. On failure
// the prior configuration is left untouched.
//
// A singular inertia matrix is not rejected: the cached inverse silently
// degrades to a least-squares pseudo-inverse (see invert6). Checking
// conditioning is the caller's responsibility.
func (m *Model) SetParameters(p Parameters) error {
	if err := p.Validate(); err != nil {
		return err
	}
	stored := p.Clone()
	inv := invert6(stored.Inertia)

	m.mu.Lock()
	m.params = stored
	m.invInertia = inv
	m.mu.Unlock()
	return nil
}

// Parameters returns a deep copy of the current configuration.
func (m *Model) Parameters() Parameters {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.params.Clone()
}

// snapshot returns the stored configuration and inverse as one unit.
// The returned values are never mutated after being stored, so they can
// be read without further locking.
func (m *Model) snapshot() (Parameters, Matrix6) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.params, m.invInertia
}

// CalcAcceleration computes the forward dynamics: the body-frame
// acceleration produced by controlInput at the given velocity and
// attitude,
//
//	a = M^-1 * (u - gravityBuoyancy - dampingCoriolis)
func (m *Model) CalcAcceleration(controlInput, velocity Vec6, o spatial.Orientation) (Vec6, error) {
	if controlInput.HasNaN() {
		return Vec6{}, fmt.Errorf("%w: control input has NaN component", ErrInvalidInput)
	}
	if velocity.HasNaN() {
		return Vec6{}, fmt.Errorf("%w: velocity has NaN component", ErrInvalidInput)
	}

	params, invInertia := m.snapshot()
	net := controlInput.
		Sub(GravityBuoyancy(o, params)).
		Sub(DampingCoriolis(params, velocity))
	return mulMat6(invInertia, net), nil
}

// CalcEfforts computes the inverse dynamics: the efforts required to
// produce acceleration at the given velocity and attitude,
//
//	tau = M*a + gravityBuoyancy + dampingCoriolis
func (m *Model) CalcEfforts(acceleration, velocity Vec6, o spatial.Orientation) (Vec6, error) {
	if acceleration.HasNaN() {
		return Vec6{}, fmt.Errorf("%w: acceleration has NaN component", ErrInvalidInput)
	}
	if velocity.HasNaN() {
		return Vec6{}, fmt.Errorf("%w: velocity has NaN component", ErrInvalidInput)
	}

	params, _ := m.snapshot()
	return mulMat6(params.Inertia, acceleration).
		Add(GravityBuoyancy(o, params)).
		Add(DampingCoriolis(params, velocity)), nil
}
