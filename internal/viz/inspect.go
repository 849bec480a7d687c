// Package viz renders the interactive model inspector. There is no
// clock and no integrator here: the inspector re-evaluates the model
// whenever the user edits the state, nothing more.
package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/auvlab/uwvdyn/internal/hydro"
	"github.com/auvlab/uwvdyn/internal/spatial"
)

// Input field groups, cycled with tab.
const (
	groupVelocity = iota
	groupControl
	groupOrientation
	groupCount
)

var groupNames = [groupCount]string{"velocity", "control", "orientation"}

var rpyNames = [3]string{"roll", "pitch", "yaw"}

// Inspector is the bubbletea model for the interactive evaluator.
type Inspector struct {
	model    *hydro.Model
	velocity hydro.Vec6
	control  hydro.Vec6
	rpy      [3]float64
	group    int
	selected int
	step     float64
	showHelp bool
}

// NewInspector builds an Inspector around a configured hydro.Model,
// starting from the given evaluation state.
func NewInspector(m *hydro.Model, velocity, control hydro.Vec6, roll, pitch, yaw float64) Inspector {
	return Inspector{
		model:    m,
		velocity: velocity,
		control:  control,
		rpy:      [3]float64{roll, pitch, yaw},
		step:     0.1,
	}
}

func (ins Inspector) Init() tea.Cmd {
	return nil
}

// Update handles key input; every edit is immediately reflected by View
// re-evaluating the model.
func (ins Inspector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return ins, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return ins, tea.Quit
	case "tab":
		ins.group = (ins.group + 1) % groupCount
		ins.selected = 0
	case "left", "h":
		ins.selected = (ins.selected + ins.groupSize() - 1) % ins.groupSize()
	case "right", "l":
		ins.selected = (ins.selected + 1) % ins.groupSize()
	case "up", "k":
		ins.adjust(ins.step)
	case "down", "j":
		ins.adjust(-ins.step)
	case "+", "=":
		ins.step *= 10
	case "-", "_":
		ins.step /= 10
	case "r":
		ins.velocity = hydro.Vec6{}
		ins.control = hydro.Vec6{}
		ins.rpy = [3]float64{}
	case "?":
		ins.showHelp = !ins.showHelp
	}
	return ins, nil
}

func (ins Inspector) groupSize() int {
	if ins.group == groupOrientation {
		return 3
	}
	return 6
}

func (ins *Inspector) adjust(delta float64) {
	switch ins.group {
	case groupVelocity:
		ins.velocity[ins.selected] += delta
	case groupControl:
		ins.control[ins.selected] += delta
	case groupOrientation:
		ins.rpy[ins.selected] += delta
	}
}

func (ins Inspector) View() string {
	orientation := spatial.NewOrientationFromEuler(ins.rpy[0], ins.rpy[1], ins.rpy[2])
	params := ins.model.Parameters()

	gravity := hydro.GravityBuoyancy(orientation, params)
	damping := hydro.DampingCoriolis(params, ins.velocity)
	accel, err := ins.model.CalcAcceleration(ins.control, ins.velocity, orientation)

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("uwvdyn inspector — %s model, step %g", params.Fidelity, ins.step)))
	b.WriteString("\n")

	inputs := lipgloss.JoinVertical(lipgloss.Left,
		ins.renderGroup(groupVelocity, ins.velocity[:]),
		ins.renderGroup(groupControl, ins.control[:]),
		ins.renderGroup(groupOrientation, ins.rpy[:]),
	)

	var outputs string
	if err != nil {
		outputs = negativeStyle.Render(err.Error())
	} else {
		outputs = lipgloss.JoinVertical(lipgloss.Left,
			renderVec("acceleration", accel),
			renderVec("gravity/buoy", gravity),
			renderVec("damp/coriolis", damping),
		)
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(inputs),
		panelStyle.Render(outputs),
	))

	if ins.showHelp {
		b.WriteString(helpStyle.Render("\ntab: field group  ←/→: field  ↑/↓: adjust  +/-: step size  r: zero state  q: quit"))
	} else {
		b.WriteString(helpStyle.Render("\n?: help  q: quit"))
	}
	b.WriteString("\n")
	return b.String()
}

func (ins Inspector) renderGroup(group int, values []float64) string {
	names := hydro.DOFNames[:]
	if group == groupOrientation {
		names = rpyNames[:]
	}

	var b strings.Builder
	b.WriteString(groupTitleStyle.Render(groupNames[group]))
	b.WriteString("\n")
	for i, v := range values {
		cell := fmt.Sprintf("%s %8.3f  ", names[i], v)
		if group == ins.group && i == ins.selected {
			b.WriteString(selectedStyle.Render(cell))
		} else {
			b.WriteString(valueStyle.Render(cell))
		}
	}
	b.WriteString("\n")
	return b.String()
}

func renderVec(name string, v hydro.Vec6) string {
	var b strings.Builder
	b.WriteString(groupTitleStyle.Render(name))
	b.WriteString("\n")
	for i, c := range v {
		b.WriteString(labelStyle.Render(hydro.DOFNames[i]))
		cell := fmt.Sprintf("%10.4f", c)
		if c < 0 {
			b.WriteString(negativeStyle.Render(cell))
		} else {
			b.WriteString(valueStyle.Render(cell))
		}
		b.WriteString("\n")
	}
	return b.String()
}
