package hydro_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/auvlab/uwvdyn/internal/hydro"
	"github.com/auvlab/uwvdyn/internal/spatial"
)

// diag6 builds a diagonal Matrix6; test shorthand.
func diag6(d ...float64) hydro.Matrix6 {
	m := hydro.ZeroMatrix6()
	for i, v := range d {
		m.Set(i, i, v)
	}
	return m
}

func testParameters(fidelity hydro.Fidelity) hydro.Parameters {
	p := hydro.DefaultParameters()
	p.Fidelity = fidelity
	p.Weight = 50
	p.Buoyancy = 45
	p.Inertia = diag6(10, 12, 14, 3, 4, 5)
	// Mild added-mass coupling, keeps the matrix well-conditioned.
	p.Inertia.Set(0, 4, 0.5)
	p.Inertia.Set(4, 0, 0.5)
	p.Inertia.Set(1, 3, -0.3)
	p.Inertia.Set(3, 1, -0.3)

	if fidelity == hydro.Complex {
		p.Damping = make([]hydro.Matrix6, 6)
		for i := range p.Damping {
			d := hydro.ZeroMatrix6()
			for j := 0; j < 6; j++ {
				d.Set(i, j, 0.2*float64(j+1))
				d.Set(j, j, 1.5+float64(i))
			}
			p.Damping[i] = d
		}
	} else {
		p.Damping = []hydro.Matrix6{
			diag6(2, 3, 4, 0.5, 0.6, 0.7),
			diag6(8, 9, 10, 1.1, 1.2, 1.3),
		}
	}
	return p
}

var _ = Describe("parameter validation", func() {
	It("rejects a simple model with three damping matrices", func() {
		p := testParameters(hydro.Simple)
		p.Damping = append(p.Damping, hydro.ZeroMatrix6())
		_, err := hydro.NewWithParameters(p)
		Expect(err).To(MatchError(hydro.ErrInvalidConfiguration))
	})

	It("rejects zero weight", func() {
		p := testParameters(hydro.Simple)
		p.Weight = 0
		_, err := hydro.NewWithParameters(p)
		Expect(err).To(MatchError(hydro.ErrInvalidConfiguration))
	})

	It("rejects an intermediate model with six damping matrices", func() {
		p := testParameters(hydro.Complex)
		p.Fidelity = hydro.Intermediate
		_, err := hydro.NewWithParameters(p)
		Expect(err).To(MatchError(hydro.ErrInvalidConfiguration))
	})

	It("accepts a valid simple configuration", func() {
		_, err := hydro.NewWithParameters(testParameters(hydro.Simple))
		Expect(err).NotTo(HaveOccurred())
	})

	It("leaves the stored configuration untouched on failure", func() {
		m, err := hydro.NewWithParameters(testParameters(hydro.Simple))
		Expect(err).NotTo(HaveOccurred())

		bad := testParameters(hydro.Simple)
		bad.Buoyancy = -1
		Expect(m.SetParameters(bad)).To(MatchError(hydro.ErrInvalidConfiguration))

		Expect(m.Parameters().Buoyancy).To(Equal(45.0))
	})
})

var _ = Describe("input validation", func() {
	var m *hydro.Model

	BeforeEach(func() {
		var err error
		m, err = hydro.NewWithParameters(testParameters(hydro.Simple))
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects NaN velocity without touching stored state", func() {
		before := m.Parameters()

		v := hydro.Vec6{math.NaN(), 0, 0, 0, 0, 0}
		_, err := m.CalcAcceleration(hydro.Vec6{}, v, spatial.NewZeroOrientation())
		Expect(err).To(MatchError(hydro.ErrInvalidInput))

		after := m.Parameters()
		Expect(after.Weight).To(Equal(before.Weight))
		Expect(mat6Equal(after.Inertia, before.Inertia)).To(BeTrue())
	})

	It("rejects NaN control input", func() {
		u := hydro.Vec6{0, 0, math.NaN(), 0, 0, 0}
		_, err := m.CalcAcceleration(u, hydro.Vec6{}, spatial.NewZeroOrientation())
		Expect(err).To(MatchError(hydro.ErrInvalidInput))
	})

	It("rejects NaN acceleration in inverse dynamics", func() {
		a := hydro.Vec6{0, 0, 0, 0, 0, math.NaN()}
		_, err := m.CalcEfforts(a, hydro.Vec6{}, spatial.NewZeroOrientation())
		Expect(err).To(MatchError(hydro.ErrInvalidInput))
	})
})

var _ = Describe("gravity and buoyancy", func() {
	It("pushes a heavy vehicle down at identity attitude", func() {
		p := testParameters(hydro.Simple)
		p.CenterOfGravity.Z = 0
		p.CenterOfBuoyancy.Z = 0

		g := hydro.GravityBuoyancy(spatial.NewZeroOrientation(), p)
		Expect(g[hydro.Surge]).To(BeNumerically("~", 0, 1e-12))
		Expect(g[hydro.Sway]).To(BeNumerically("~", 0, 1e-12))
		Expect(g[hydro.Heave]).To(BeNumerically("~", 5, 1e-12))
		Expect(g[hydro.Roll]).To(BeNumerically("~", 0, 1e-12))
		Expect(g[hydro.Pitch]).To(BeNumerically("~", 0, 1e-12))
		Expect(g[hydro.Yaw]).To(BeNumerically("~", 0, 1e-12))
	})

	It("produces a righting torque when rolled", func() {
		p := testParameters(hydro.Simple)
		p.Weight = 50
		p.Buoyancy = 50
		p.CenterOfBuoyancy.Z = 0.1

		g := hydro.GravityBuoyancy(spatial.NewOrientationFromEuler(0.3, 0, 0), p)
		Expect(g[hydro.Roll]).NotTo(BeNumerically("~", 0, 1e-9))
	})
})

var _ = Describe("damping and coriolis", func() {
	It("is exactly zero at zero velocity for every fidelity", func() {
		for _, f := range []hydro.Fidelity{hydro.Simple, hydro.Intermediate, hydro.Complex} {
			d := hydro.DampingCoriolis(testParameters(f), hydro.Vec6{})
			Expect(d).To(Equal(hydro.Vec6{}), "fidelity %s", f)
		}
	})

	It("matches the per-DOF reference sum for the complex model", func() {
		p := testParameters(hydro.Complex)
		v := hydro.Vec6{1.2, -0.4, 0.7, 0.1, -0.25, 0.5}

		// Reference: sum(D_i * |v_i|) assembled as a matrix, then applied.
		var want hydro.Vec6
		for i := 0; i < 6; i++ {
			for j := 0; j < 6; j++ {
				sum := 0.0
				for k := 0; k < 6; k++ {
					sum += p.Damping[k].At(i, j) * math.Abs(v[k])
				}
				want[i] += sum * v[j]
			}
		}
		want = want.Add(referenceCoriolis(p, v))

		got := hydro.DampingCoriolis(p, v)
		for i := range got {
			Expect(got[i]).To(BeNumerically("~", want[i], 1e-9))
		}
	})

	It("adds coriolis coupling between simple and intermediate", func() {
		simple := testParameters(hydro.Simple)
		intermediate := testParameters(hydro.Intermediate)
		v := hydro.Vec6{2, 0, 0, 0, 0, 0.8}

		ds := hydro.DampingCoriolis(simple, v)
		di := hydro.DampingCoriolis(intermediate, v)

		diff := di.Sub(ds)
		want := referenceCoriolis(simple, v)
		for i := range diff {
			Expect(diff[i]).To(BeNumerically("~", want[i], 1e-9))
		}
	})
})

var _ = Describe("forward and inverse dynamics", func() {
	DescribeTable("recovers the control input through a round trip",
		func(fidelity hydro.Fidelity) {
			m, err := hydro.NewWithParameters(testParameters(fidelity))
			Expect(err).NotTo(HaveOccurred())

			u := hydro.Vec6{12, -3, 5.5, 0.4, -1.1, 2.2}
			v := hydro.Vec6{1.1, 0.3, -0.6, 0.05, 0.2, -0.4}
			o := spatial.NewOrientationFromEuler(0.2, -0.35, 1.1)

			a, err := m.CalcAcceleration(u, v, o)
			Expect(err).NotTo(HaveOccurred())

			back, err := m.CalcEfforts(a, v, o)
			Expect(err).NotTo(HaveOccurred())

			for i := range u {
				Expect(back[i]).To(BeNumerically("~", u[i], 1e-9))
			}
		},
		Entry("simple", hydro.Simple),
		Entry("intermediate", hydro.Intermediate),
		Entry("complex", hydro.Complex),
	)
})

// referenceCoriolis recomputes -H(Mv)v directly from the definition.
func referenceCoriolis(p hydro.Parameters, v hydro.Vec6) hydro.Vec6 {
	var momentum hydro.Vec6
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			momentum[i] += p.Inertia.At(i, j) * v[j]
		}
	}
	lin := momentum.Lin().Cross(v.Ang())
	ang := momentum.Lin().Cross(v.Lin()).Add(momentum.Ang().Cross(v.Ang()))
	return hydro.NewVec6(lin, ang).Scale(-1)
}

func mat6Equal(a, b hydro.Matrix6) bool {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			if a.At(i, j) != b.At(i, j) {
				return false
			}
		}
	}
	return true
}
