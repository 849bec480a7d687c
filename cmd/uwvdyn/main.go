package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/auvlab/uwvdyn/internal/config"
	"github.com/auvlab/uwvdyn/internal/hydro"
	"github.com/auvlab/uwvdyn/internal/spatial"
	"github.com/auvlab/uwvdyn/internal/viz"
)

var (
	configFile string
	preset     string
	velocity   string
	control    string
	accelIn    string
	rpy        string
	// Sweep parameters
	sweepMax    float64
	sweepPoints int
)

// main registers the uwvdyn commands. Every command evaluates the model
// once (or over a static sweep); time integration belongs to the caller
// embedding the hydro package.
func main() {
	rootCmd := &cobra.Command{
		Use:   "uwvdyn",
		Short: "underwater vehicle hydrodynamics evaluator",
		RunE:  runInspect,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use built-in vehicle preset")
	rootCmd.PersistentFlags().StringVar(&velocity, "velocity", "", "body velocity, 6 comma-separated values")
	rootCmd.PersistentFlags().StringVar(&rpy, "rpy", "", "attitude as roll,pitch,yaw (radians)")

	accelCmd := &cobra.Command{
		Use:   "accel",
		Short: "forward dynamics: acceleration from control input",
		RunE:  runAccel,
	}
	accelCmd.Flags().StringVar(&control, "control", "", "control input, 6 comma-separated values")

	effortsCmd := &cobra.Command{
		Use:   "efforts",
		Short: "inverse dynamics: efforts from acceleration",
		RunE:  runEfforts,
	}
	effortsCmd.Flags().StringVar(&accelIn, "acceleration", "", "acceleration, 6 comma-separated values")

	dragCmd := &cobra.Command{
		Use:   "drag [dof]",
		Short: "plot damping force over a velocity sweep",
		Args:  cobra.ExactArgs(1),
		RunE:  runDrag,
	}
	dragCmd.Flags().Float64Var(&sweepMax, "max", 3.0, "sweep limit")
	dragCmd.Flags().IntVar(&sweepPoints, "points", 120, "sweep resolution")

	restoringCmd := &cobra.Command{
		Use:   "restoring [roll|pitch]",
		Short: "plot restoring torque over an attitude sweep",
		Args:  cobra.ExactArgs(1),
		RunE:  runRestoring,
	}
	restoringCmd.Flags().IntVar(&sweepPoints, "points", 120, "sweep resolution")

	paramsCmd := &cobra.Command{
		Use:   "params",
		Short: "show effective model parameters",
		RunE:  runParams,
	}

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "validate a config file",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in vehicle presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Printf("  %s (%s)\n", name, config.GetPreset(name).Fidelity)
			}
			return nil
		},
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "interactive evaluator",
		RunE:  runInspect,
	}

	rootCmd.AddCommand(accelCmd, effortsCmd, dragCmd, restoringCmd, paramsCmd, validateCmd, presetsCmd, inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig applies preset, config file and flag overrides, in that
// order of increasing precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if velocity != "" {
		v, err := parseTuple(velocity, 6)
		if err != nil {
			return nil, fmt.Errorf("--velocity: %w", err)
		}
		copy(cfg.State.Velocity[:], v)
	}
	if rpy != "" {
		a, err := parseTuple(rpy, 3)
		if err != nil {
			return nil, fmt.Errorf("--rpy: %w", err)
		}
		cfg.State.Orientation = config.OrientationConfig{Roll: a[0], Pitch: a[1], Yaw: a[2]}
	}
	if control != "" {
		u, err := parseTuple(control, 6)
		if err != nil {
			return nil, fmt.Errorf("--control: %w", err)
		}
		copy(cfg.State.Control[:], u)
	}
	if accelIn != "" {
		a, err := parseTuple(accelIn, 6)
		if err != nil {
			return nil, fmt.Errorf("--acceleration: %w", err)
		}
		copy(cfg.State.Acceleration[:], a)
	}

	return cfg, nil
}

func buildModel(cfg *config.Config) (*hydro.Model, error) {
	params, err := cfg.Parameters()
	if err != nil {
		return nil, err
	}
	return hydro.NewWithParameters(params)
}

func parseTuple(s string, n int) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("need %d values, got %d", n, len(fields))
	}
	out := make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func runAccel(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	model, err := buildModel(cfg)
	if err != nil {
		return err
	}

	orientation := cfg.Orientation()
	accel, err := model.CalcAcceleration(cfg.Control(), cfg.Velocity(), orientation)
	if err != nil {
		return err
	}

	params := model.Parameters()
	return printBreakdown("ACCEL", accel, cfg.Control(), cfg.Velocity(), orientation, params)
}

func runEfforts(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	model, err := buildModel(cfg)
	if err != nil {
		return err
	}

	orientation := cfg.Orientation()
	efforts, err := model.CalcEfforts(cfg.Acceleration(), cfg.Velocity(), orientation)
	if err != nil {
		return err
	}

	params := model.Parameters()
	return printBreakdown("EFFORT", efforts, cfg.Acceleration(), cfg.Velocity(), orientation, params)
}

func printBreakdown(resultName string, result, input, velocity hydro.Vec6, o spatial.Orientation, params hydro.Parameters) error {
	gravity := hydro.GravityBuoyancy(o, params)
	damping := hydro.DampingCoriolis(params, velocity)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "DOF\t%s\tGRAV/BUOY\tDAMP/CORIOLIS\tINPUT\tVELOCITY\n", resultName)
	for i, name := range hydro.DOFNames {
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			name, result[i], gravity[i], damping[i], input[i], velocity[i])
	}
	return w.Flush()
}

func runDrag(cmd *cobra.Command, args []string) error {
	dof := dofIndex(args[0])
	if dof < 0 {
		return fmt.Errorf("unknown dof %q (want one of %v)", args[0], hydro.DOFNames)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	params, err := cfg.Parameters()
	if err != nil {
		return err
	}
	if err := params.Validate(); err != nil {
		return err
	}

	data := make([]float64, sweepPoints)
	for i := range data {
		speed := -sweepMax + 2*sweepMax*float64(i)/float64(sweepPoints-1)
		var v hydro.Vec6
		v[dof] = speed
		data[i] = hydro.DampingCoriolis(params, v)[dof]
	}

	fmt.Printf("damping force in %s, velocity %.2f..%.2f (%s model)\n\n",
		args[0], -sweepMax, sweepMax, params.Fidelity)
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s damping vs %s velocity", args[0], args[0])),
	))
	return nil
}

func runRestoring(cmd *cobra.Command, args []string) error {
	axis := args[0]
	if axis != "roll" && axis != "pitch" {
		return fmt.Errorf("axis must be roll or pitch, got %q", axis)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	params, err := cfg.Parameters()
	if err != nil {
		return err
	}
	if err := params.Validate(); err != nil {
		return err
	}

	torqueIdx := hydro.Roll
	if axis == "pitch" {
		torqueIdx = hydro.Pitch
	}

	data := make([]float64, sweepPoints)
	for i := range data {
		angle := -math.Pi + 2*math.Pi*float64(i)/float64(sweepPoints-1)
		var o spatial.Orientation
		if axis == "roll" {
			o = spatial.NewOrientationFromEuler(angle, 0, 0)
		} else {
			o = spatial.NewOrientationFromEuler(0, angle, 0)
		}
		data[i] = hydro.GravityBuoyancy(o, params)[torqueIdx]
	}

	fmt.Printf("restoring %s torque, angle -pi..pi (W=%.1f B=%.1f)\n\n", axis, params.Weight, params.Buoyancy)
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s restoring torque vs %s angle", axis, axis)),
	))
	return nil
}

func runParams(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	model, err := buildModel(cfg)
	if err != nil {
		return err
	}
	params := model.Parameters()

	fmt.Printf("fidelity: %s\n", params.Fidelity)
	fmt.Printf("weight: %.3f  buoyancy: %.3f\n", params.Weight, params.Buoyancy)
	fmt.Printf("cg: [%.3f %.3f %.3f]  cb: [%.3f %.3f %.3f]\n",
		params.CenterOfGravity.X, params.CenterOfGravity.Y, params.CenterOfGravity.Z,
		params.CenterOfBuoyancy.X, params.CenterOfBuoyancy.Y, params.CenterOfBuoyancy.Z)
	fmt.Printf("damping matrices: %d\n\n", len(params.Damping))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INERTIA (rigid body + added mass)")
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			fmt.Fprintf(w, "%.3f\t", params.Inertia.At(i, j))
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}
	params, err := cfg.Parameters()
	if err != nil {
		return err
	}
	if err := params.Validate(); err != nil {
		return err
	}
	fmt.Printf("%s: ok (%s model, %d damping matrices)\n", args[0], params.Fidelity, len(params.Damping))
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	model, err := buildModel(cfg)
	if err != nil {
		return err
	}

	o := cfg.State.Orientation
	ins := viz.NewInspector(model, cfg.Velocity(), cfg.Control(), o.Roll, o.Pitch, o.Yaw)
	p := tea.NewProgram(ins)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func dofIndex(name string) int {
	for i, n := range hydro.DOFNames {
		if n == name {
			return i
		}
	}
	return -1
}
