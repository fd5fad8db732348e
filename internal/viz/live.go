// Package viz renders the door simulation live in the terminal: a
// top-down braille view of both leaves, angular velocity charts, and
// an editable parameter panel. It only ever reads snapshots from the
// runner; all state transitions go through the runner's control
// surface.
package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/akl-leul/momentumsimu/internal/door"
	"github.com/akl-leul/momentumsimu/internal/sim"
)

const (
	canvasWidth  = 56
	canvasHeight = 18
	frameRate    = 60
)

type TickMsg time.Time

// paramKeys fixes the panel order; the map form is what the edit keys
// mutate before the whole set is swapped into the runner.
var paramKeys = []string{
	"door mass", "door width", "sliding mass",
	"initial radius", "final radius", "slide duration", "initial omega",
}

// Model is the bubbletea program state for the live view.
type Model struct {
	runner   *sim.Runner
	dt       float64
	canvas   *Canvas
	selected int
	showHelp bool
}

func NewModel(r *sim.Runner, dt float64) Model {
	return Model{
		runner: r,
		dt:     dt,
		canvas: NewCanvas(canvasWidth, canvasHeight),
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.runner.State().Running {
				m.runner.Pause()
			} else {
				m.runner.Start()
			}
		case "r":
			m.runner.Reset()
		case "tab":
			m.selected = (m.selected + 1) % len(paramKeys)
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.runner.State().Running {
			m.runner.Step(m.dt)
		}
		return m, tick()
	}
	return m, nil
}

// adjustParam scales the selected parameter and swaps the whole set
// into the runner. Edits always reset the run; there is no in-flight
// re-derivation.
func (m *Model) adjustParam(factor float64) {
	p := m.runner.Params()
	switch paramKeys[m.selected] {
	case "door mass":
		p.DoorMass *= factor
	case "door width":
		p.DoorWidth *= factor
	case "sliding mass":
		p.SlidingMass *= factor
	case "initial radius":
		p.InitialRadius *= factor
	case "final radius":
		p.FinalRadius *= factor
	case "slide duration":
		p.SlideDuration *= factor
	case "initial omega":
		p.InitialAngularVelocity *= factor
	}
	m.runner.SetParams(p)
}

func paramValue(p door.Params, key string) float64 {
	switch key {
	case "door mass":
		return p.DoorMass
	case "door width":
		return p.DoorWidth
	case "sliding mass":
		return p.SlidingMass
	case "initial radius":
		return p.InitialRadius
	case "final radius":
		return p.FinalRadius
	case "slide duration":
		return p.SlideDuration
	case "initial omega":
		return p.InitialAngularVelocity
	}
	return 0
}

func (m Model) View() string {
	s := m.runner.State()
	m.drawDoors(s)

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("ROTATING DOORS") + "\n")

	status := "IDLE"
	switch {
	case s.Running:
		status = "RUNNING"
	case s.Phase == door.Phase2:
		status = "FINISHED"
	case s.Time > 0:
		status = "PAUSED"
	}
	sb.WriteString(status + "\n\n")

	points := m.runner.Points()
	if len(points) > 1 {
		omegaA := make([]float64, len(points))
		omegaB := make([]float64, len(points))
		for i, pt := range points {
			omegaA[i] = pt.OmegaA
			omegaB[i] = pt.OmegaB
		}
		chart := asciigraph.Plot(omegaA, asciigraph.Height(4), asciigraph.Width(32), asciigraph.Caption("omega A"))
		sb.WriteString(graphStyle.Render(chart) + "\n")
		chart = asciigraph.Plot(omegaB, asciigraph.Height(4), asciigraph.Width(32), asciigraph.Caption("omega B"))
		sb.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	sb.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", s.Time)) + "\n")
	sb.WriteString(labelStyle.Render("Phase") + phaseStyle.Render(string(s.Phase)) + "\n")
	sb.WriteString(labelStyle.Render("A omega") + valueStyle.Render(fmt.Sprintf("%.3f rad/s", s.DoorA.AngularVelocity)) + "\n")
	sb.WriteString(labelStyle.Render("A inertia") + valueStyle.Render(fmt.Sprintf("%.3f kg·m²", s.DoorA.MomentOfInertia)) + "\n")
	sb.WriteString(labelStyle.Render("A momentum") + valueStyle.Render(fmt.Sprintf("%.3f", s.DoorA.AngularMomentum)) + "\n")
	sb.WriteString(labelStyle.Render("B omega") + valueStyle.Render(fmt.Sprintf("%.3f rad/s", s.DoorB.AngularVelocity)) + "\n")
	sb.WriteString(labelStyle.Render("mass radius") + valueStyle.Render(fmt.Sprintf("%.3f m", s.DoorA.MassRadius)) + "\n")

	sb.WriteString("\nPARAMETERS (edits reset the run)\n")
	p := m.runner.Params()
	for i, key := range paramKeys {
		line := fmt.Sprintf("%-15s %7.3f", key, paramValue(p, key))
		if i == m.selected {
			sb.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			sb.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	sb.WriteString(helpStyle.Render("\nSP:Start/Pause R:Reset Q:Quit\nTab:Select ↑↓:Tune ?:Help"))

	main := lipgloss.JoinHorizontal(lipgloss.Top, canvasStyle.Render(m.canvas.String()), statsStyle.Render(sb.String()))
	if m.showHelp {
		return helpOverlay + "\n\n" + main
	}
	return main
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Start/Pause              ║
║  R        - Reset to initial state   ║
║  Tab      - Cycle parameters         ║
║  Up/K     - Increase parameter (+5%) ║
║  Down/J   - Decrease parameter (-5%) ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// drawDoors renders both leaves top-down, hinges on the bottom edge,
// swinging from fully open (pointing up) to the 90° stop.
func (m *Model) drawDoors(s door.State) {
	m.canvas.Clear()

	cw, ch := canvasWidth*2, canvasHeight*4
	leaf := float64(ch) * 0.8
	hingeY := ch - 6
	hingeAX, hingeBX := cw/4-10, 3*cw/4-10

	// Door frames: the 90° stop each leaf swings into.
	m.canvas.DrawLine(hingeAX, hingeY, hingeAX+int(leaf), hingeY)
	m.canvas.DrawLine(hingeBX, hingeY, hingeBX+int(leaf), hingeY)

	drawLeaf := func(hx int, angle float64) (int, int) {
		tipX := hx + int(leaf*math.Sin(angle))
		tipY := hingeY - int(leaf*math.Cos(angle))
		m.canvas.DrawLine(hx, hingeY, tipX, tipY)
		m.canvas.DrawDot(hx, hingeY)
		return tipX, tipY
	}

	drawLeaf(hingeAX, s.DoorA.Angle)
	drawLeaf(hingeBX, s.DoorB.Angle)

	// Sliding mass along door A's leaf.
	p := m.runner.Params()
	if p.DoorWidth > 0 {
		frac := s.DoorA.MassRadius / p.DoorWidth
		if frac > 1 {
			frac = 1
		}
		mx := hingeAX + int(leaf*frac*math.Sin(s.DoorA.Angle))
		my := hingeY - int(leaf*frac*math.Cos(s.DoorA.Angle))
		m.canvas.DrawDot(mx, my)
	}
}

// Run starts the live view for the given parameters.
func Run(p door.Params, dt float64) error {
	prog := tea.NewProgram(NewModel(sim.NewRunner(p), dt))
	_, err := prog.Run()
	return err
}
