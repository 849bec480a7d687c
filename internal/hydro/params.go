package hydro

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Fidelity selects which hydrodynamic effects the model evaluates.
type Fidelity int

const (
	// Simple applies linear plus quadratic damping, no Coriolis coupling.
	Simple Fidelity = iota
	// Intermediate adds the Coriolis/centripetal term to Simple damping.
	Intermediate
	// Complex uses one quadratic damping matrix per degree of freedom
	// plus the Coriolis/centripetal term.
	Complex
)

func (f Fidelity) String() string {
	switch f {
	case Simple:
		return "simple"
	case Intermediate:
		return "intermediate"
	case Complex:
		return "complex"
	default:
		return fmt.Sprintf("fidelity(%d)", int(f))
	}
}

// ParseFidelity converts a config-file name into a Fidelity.
func ParseFidelity(name string) (Fidelity, error) {
	switch name {
	case "simple":
		return Simple, nil
	case "intermediate":
		return Intermediate, nil
	case "complex":
		return Complex, nil
	default:
		return 0, fmt.Errorf("%w: unknown fidelity %q", ErrInvalidConfiguration, name)
	}
}

// dampingCount is the required number of damping matrices per fidelity:
// linear + quadratic for Simple and Intermediate, one quadratic matrix
// per degree of freedom for Complex.
func (f Fidelity) dampingCount() int {
	if f == Complex {
		return 6
	}
	return 2
}

// Parameters is the physical configuration of the vehicle. It is a
// value type: the evaluator deep-copies it on store and on read.
type Parameters struct {
	// Inertia is the combined rigid-body + added-mass inertia matrix.
	Inertia Matrix6
	// Damping holds the damping coefficient matrices; count and meaning
	// depend on Fidelity (see Fidelity constants).
	Damping []Matrix6
	// Weight and Buoyancy are the gravity and buoyancy force magnitudes.
	Weight   float64
	Buoyancy float64
	// CenterOfGravity and CenterOfBuoyancy are offsets from the body origin.
	CenterOfGravity  r3.Vector
	CenterOfBuoyancy r3.Vector
	Fidelity         Fidelity
}

// DefaultParameters returns a neutrally-buoyant unit vehicle: identity
// inertia, zero damping, weight and buoyancy of 1, centers at the origin.
func DefaultParameters() Parameters {
	return Parameters{
		Inertia:  Identity6(),
		Damping:  []Matrix6{ZeroMatrix6(), ZeroMatrix6()},
		Weight:   1,
		Buoyancy: 1,
		Fidelity: Simple,
	}
}

// Validate checks the Parameters invariants, wrapping
// [ErrInvalidConfiguration] with the violated field.
func (p Parameters) Validate() error {
	if !isMatrix6(p.Inertia) {
		return fmt.Errorf("%w: inertia matrix must be 6x6", ErrInvalidConfiguration)
	}
	if want := p.Fidelity.dampingCount(); len(p.Damping) != want {
		return fmt.Errorf("%w: %s model needs %d damping matrices, got %d",
			ErrInvalidConfiguration, p.Fidelity, want, len(p.Damping))
	}
	for i, d := range p.Damping {
		if !isMatrix6(d) {
			return fmt.Errorf("%w: damping matrix %d must be 6x6", ErrInvalidConfiguration, i)
		}
	}
	if p.Weight <= 0 {
		return fmt.Errorf("%w: weight must be positive, got %g", ErrInvalidConfiguration, p.Weight)
	}
	if p.Buoyancy <= 0 {
		return fmt.Errorf("%w: buoyancy must be positive, got %g", ErrInvalidConfiguration, p.Buoyancy)
	}
	return nil
}

// Clone deep-copies the Parameters, including every matrix.
func (p Parameters) Clone() Parameters {
	out := p
	if p.Inertia != nil {
		out.Inertia = cloneMatrix6(p.Inertia)
	}
	out.Damping = make([]Matrix6, len(p.Damping))
	for i, d := range p.Damping {
		if d != nil {
			out.Damping[i] = cloneMatrix6(d)
		}
	}
	return out
}
