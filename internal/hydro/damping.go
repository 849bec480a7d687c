package hydro

import "math"

// DampingCoriolis computes the velocity-dependent forces for the stored
// fidelity level. Parameters are trusted to have passed Validate; the
// damping-matrix counts are not rechecked here.
func DampingCoriolis(p Parameters, velocity Vec6) Vec6 {
	switch p.Fidelity {
	case Simple:
		return simpleDamping(p.Damping, velocity)
	case Intermediate:
		return coriolis(p.Inertia, velocity).Add(simpleDamping(p.Damping, velocity))
	case Complex:
		return coriolis(p.Inertia, velocity).Add(generalQuadDamping(p.Damping, velocity))
	default:
		return Vec6{}
	}
}

// coriolis computes the Coriolis/centripetal coupling from McFarland
// [2013] and Fossen [1994]:
//
//	-[ p_lin x v_ang ; p_lin x v_lin + p_ang x v_ang ],  p = M*v
//
// The 6x6 skew operator H(Mv) is never materialized; the cross products
// are equivalent and allocation-free.
func coriolis(inertia Matrix6, velocity Vec6) Vec6 {
	momentum := mulMat6(inertia, velocity)
	lin := momentum.Lin().Cross(velocity.Ang())
	ang := momentum.Lin().Cross(velocity.Lin()).Add(momentum.Ang().Cross(velocity.Ang()))
	return NewVec6(lin, ang).Scale(-1)
}

// simpleDamping applies linear plus quadratic damping (Fossen [1994]):
// D_lin*v + D_quad*(|v| .* v).
func simpleDamping(damping []Matrix6, velocity Vec6) Vec6 {
	var quad Vec6
	for i, c := range velocity {
		quad[i] = math.Abs(c) * c
	}
	return mulMat6(damping[0], velocity).Add(mulMat6(damping[1], quad))
}

// generalQuadDamping sums one full quadratic damping matrix per degree
// of freedom (McFarland [2013]): (sum_i D_i*|v_i|) * v.
func generalQuadDamping(damping []Matrix6, velocity Vec6) Vec6 {
	var total Vec6
	for i, d := range damping {
		total = total.Add(mulMat6(d, velocity).Scale(math.Abs(velocity[i])))
	}
	return total
}
