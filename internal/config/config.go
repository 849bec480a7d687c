// Package config loads and saves vehicle model configuration files.
package config

import (
	"fmt"
	"os"

	"github.com/golang/geo/r3"
	"gopkg.in/yaml.v3"

	"github.com/auvlab/uwvdyn/internal/hydro"
	"github.com/auvlab/uwvdyn/internal/spatial"
)

// Config is the yaml schema for a vehicle model plus the evaluation
// state the CLI commands read when no flags override it.
type Config struct {
	Fidelity         string        `yaml:"fidelity"`
	Weight           float64       `yaml:"weight"`
	Buoyancy         float64       `yaml:"buoyancy"`
	CenterOfGravity  [3]float64    `yaml:"center_of_gravity"`
	CenterOfBuoyancy [3]float64    `yaml:"center_of_buoyancy"`
	Inertia          [][]float64   `yaml:"inertia"`
	Damping          [][][]float64 `yaml:"damping"`
	State            StateConfig   `yaml:"state"`
}

// StateConfig carries one evaluation point: body-frame velocity plus
// either a control input (forward dynamics) or an acceleration (inverse
// dynamics), and the vehicle attitude.
type StateConfig struct {
	Velocity     [6]float64        `yaml:"velocity"`
	Control      [6]float64        `yaml:"control"`
	Acceleration [6]float64        `yaml:"acceleration"`
	Orientation  OrientationConfig `yaml:"orientation"`
}

// OrientationConfig is the attitude as ZYX Euler angles in radians.
type OrientationConfig struct {
	Roll  float64 `yaml:"roll"`
	Pitch float64 `yaml:"pitch"`
	Yaw   float64 `yaml:"yaw"`
}

// DefaultConfig mirrors hydro.DefaultParameters: a neutrally-buoyant
// unit vehicle at rest.
func DefaultConfig() *Config {
	return &Config{
		Fidelity: hydro.Simple.String(),
		Weight:   1,
		Buoyancy: 1,
		Inertia:  identityRows(),
		Damping:  [][][]float64{zeroRows(), zeroRows()},
	}
}

// Load reads a yaml config file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as yaml.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Parameters converts the config into hydro.Parameters. Matrix shape
// problems surface here; the count/positivity invariants are checked by
// hydro.Parameters.Validate as usual.
func (c *Config) Parameters() (hydro.Parameters, error) {
	fidelity, err := hydro.ParseFidelity(c.Fidelity)
	if err != nil {
		return hydro.Parameters{}, err
	}

	inertia, err := matrixFromRows(c.Inertia, "inertia")
	if err != nil {
		return hydro.Parameters{}, err
	}

	damping := make([]hydro.Matrix6, len(c.Damping))
	for i, rows := range c.Damping {
		d, err := matrixFromRows(rows, fmt.Sprintf("damping[%d]", i))
		if err != nil {
			return hydro.Parameters{}, err
		}
		damping[i] = d
	}

	return hydro.Parameters{
		Inertia:          inertia,
		Damping:          damping,
		Weight:           c.Weight,
		Buoyancy:         c.Buoyancy,
		CenterOfGravity:  r3.Vector{X: c.CenterOfGravity[0], Y: c.CenterOfGravity[1], Z: c.CenterOfGravity[2]},
		CenterOfBuoyancy: r3.Vector{X: c.CenterOfBuoyancy[0], Y: c.CenterOfBuoyancy[1], Z: c.CenterOfBuoyancy[2]},
		Fidelity:         fidelity,
	}, nil
}

// Orientation returns the configured attitude.
func (c *Config) Orientation() spatial.Orientation {
	o := c.State.Orientation
	return spatial.NewOrientationFromEuler(o.Roll, o.Pitch, o.Yaw)
}

// Velocity returns the configured body-frame velocity.
func (c *Config) Velocity() hydro.Vec6 {
	return hydro.Vec6(c.State.Velocity)
}

// Control returns the configured control input.
func (c *Config) Control() hydro.Vec6 {
	return hydro.Vec6(c.State.Control)
}

// Acceleration returns the configured acceleration.
func (c *Config) Acceleration() hydro.Vec6 {
	return hydro.Vec6(c.State.Acceleration)
}

func matrixFromRows(rows [][]float64, name string) (hydro.Matrix6, error) {
	if len(rows) != 6 {
		return nil, fmt.Errorf("%w: %s needs 6 rows, got %d",
			hydro.ErrInvalidConfiguration, name, len(rows))
	}
	data := make([]float64, 0, 36)
	for i, row := range rows {
		if len(row) != 6 {
			return nil, fmt.Errorf("%w: %s row %d needs 6 columns, got %d",
				hydro.ErrInvalidConfiguration, name, i, len(row))
		}
		data = append(data, row...)
	}
	return hydro.NewMatrix6(data), nil
}

func identityRows() [][]float64 {
	rows := zeroRows()
	for i := range rows {
		rows[i][i] = 1
	}
	return rows
}

func zeroRows() [][]float64 {
	rows := make([][]float64, 6)
	for i := range rows {
		rows[i] = make([]float64, 6)
	}
	return rows
}

// diagRows builds a diagonal matrix in row form; preset shorthand.
func diagRows(d0, d1, d2, d3, d4, d5 float64) [][]float64 {
	rows := zeroRows()
	for i, v := range []float64{d0, d1, d2, d3, d4, d5} {
		rows[i][i] = v
	}
	return rows
}
