package config

// Built-in vehicle presets. Inertia values combine rigid-body mass and
// added mass; damping coefficients are rough open-water estimates, good
// enough to exercise each fidelity level with plausible magnitudes.
var Presets = map[string]*Config{
	// Boxy inspection ROV, slightly positively buoyant, metacentric
	// righting arm from the buoyancy center sitting above the origin.
	"boxy-rov": {
		Fidelity:         "simple",
		Weight:           510.0,
		Buoyancy:         518.0,
		CenterOfGravity:  [3]float64{0, 0, -0.02},
		CenterOfBuoyancy: [3]float64{0, 0, 0.06},
		Inertia:          diagRows(85, 98, 110, 9.2, 11.5, 10.8),
		Damping: [][][]float64{
			diagRows(28, 34, 40, 6.5, 7.8, 7.1),
			diagRows(95, 120, 140, 10, 12, 11),
		},
	},
	// Streamlined torpedo-shaped AUV; low surge drag, strong coupling
	// through the Coriolis term at cruise speed.
	"torpedo-auv": {
		Fidelity:         "intermediate",
		Weight:           304.0,
		Buoyancy:         306.0,
		CenterOfGravity:  [3]float64{0, 0, -0.01},
		CenterOfBuoyancy: [3]float64{0, 0, 0.03},
		Inertia:          diagRows(38, 62, 62, 1.1, 8.4, 8.4),
		Damping: [][][]float64{
			diagRows(4.5, 28, 28, 0.8, 5.2, 5.2),
			diagRows(9, 95, 95, 1.5, 14, 14),
		},
		State: StateConfig{
			Velocity: [6]float64{1.5, 0, 0, 0, 0, 0},
		},
	},
	// Survey AUV identified with a full per-DOF quadratic drag model,
	// including off-diagonal surge/pitch and sway/yaw coupling.
	"survey-auv": {
		Fidelity:         "complex",
		Weight:           421.0,
		Buoyancy:         423.0,
		CenterOfGravity:  [3]float64{0, 0, -0.015},
		CenterOfBuoyancy: [3]float64{0, 0, 0.04},
		Inertia:          diagRows(64, 81, 92, 4.6, 9.9, 8.7),
		Damping: [][][]float64{
			withCoupling(diagRows(18, 0, 0, 0, 0, 0), 4, 0, 2.1),
			withCoupling(diagRows(0, 46, 0, 0, 0, 0), 5, 1, 3.4),
			diagRows(0, 0, 52, 0, 0, 0),
			diagRows(0, 0, 0, 2.4, 0, 0),
			withCoupling(diagRows(0, 0, 0, 0, 7.6, 0), 0, 4, 1.8),
			withCoupling(diagRows(0, 0, 0, 0, 0, 6.9), 1, 5, 2.7),
		},
	},
}

// withCoupling sets one off-diagonal entry; preset shorthand.
func withCoupling(rows [][]float64, i, j int, v float64) [][]float64 {
	rows[i][j] = v
	return rows
}

// GetPreset returns the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
