package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/olivier-w/dotsheet/internal/mesh"
	"github.com/olivier-w/dotsheet/internal/render"
	"github.com/olivier-w/dotsheet/internal/sim"
	"github.com/olivier-w/dotsheet/internal/surface"
	"github.com/olivier-w/dotsheet/internal/util"
	"go.uber.org/zap"
)

// Lines around the canvas: header above, meter and help below.
const (
	headerLines = 1
	footerLines = 2
)

// grabPad keeps a cell's corners strictly inside the grab radius.
const grabPad = 0.5

// cellPos is a terminal cell.
type cellPos struct{ x, y int }

// Model is the Bubbletea model for the terminal frontend. Input is queued
// as sim events and applied, together with one physics step, on every
// frame tick.
type Model struct {
	sim    *sim.Simulation
	canvas *surface.Braille
	style  render.Style
	title  string
	log    *zap.Logger

	keys  keyMap
	help  help.Model
	meter progress.Model

	// smooths the energy meter so it does not flicker frame to frame
	spring             harmonica.Spring
	meterPos, meterVel float64

	pending []sim.Event

	// last left press, so pressing the same cell again reaches the next
	// point under it
	lastPress cellPos
	pressed   bool

	width    int
	height   int
	quitting bool
}

// New creates a Model drawing s with style.
func New(s *sim.Simulation, style render.Style, title string, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	layout := s.Grid().Layout()
	m := Model{
		sim:    s,
		canvas: surface.NewBraille(layout.Width, layout.Height),
		style:  style,
		title:  title,
		log:    log.Named("ui"),
		keys:   newKeyMap(),
		help:   help.New(),
		meter: progress.New(
			progress.WithScaledGradient("#CBAACB", "#FF8C00"),
			progress.WithoutPercentage(),
		),
		spring: harmonica.NewSpring(harmonica.FPS(int(1/frameInterval.Seconds())), 6.0, 1.0),
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), tea.SetWindowTitle(m.title))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Reset):
			m.pending = append(m.pending, sim.Event{Kind: sim.Reset})
		case key.Matches(msg, m.keys.Pause):
			m.pending = append(m.pending, sim.Event{Kind: sim.TogglePause})
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
		}
		return m, nil

	case tea.MouseMsg:
		if ev, ok := m.pointerEvent(msg); ok {
			m.pending = append(m.pending, ev)
		}
		return m, nil

	case tickMsg:
		m.sim.Frame(m.pending)
		m.pending = nil
		if !m.sim.Running() {
			return m.quit()
		}
		render.Draw(m.canvas, m.sim.Grid(), m.style)
		m.meterPos, m.meterVel = m.spring.Update(m.meterPos, m.meterVel, energyLevel(m.sim.Grid().Stats()))
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.log.Debug("terminal resized",
			zap.Int("width", msg.Width), zap.Int("height", msg.Height))
		return m, nil
	}

	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.sim.Running() {
		m.sim.Handle(sim.Event{Kind: sim.Quit})
	}
	m.quitting = true
	return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
}

func (m *Model) resize() {
	m.help.Width = m.width
	rows := m.height - headerLines - footerLines
	if m.help.ShowAll {
		rows-- // full help wraps onto a second line
	}
	m.canvas.Resize(m.width, max(rows, 1))
	m.pressed = false

	barWidth := m.width - 20
	if barWidth < 10 {
		barWidth = 10
	}
	if barWidth > 60 {
		barWidth = 60
	}
	m.meter.Width = barWidth
}

// grabRadius is the reach of a terminal press. A cell can cover more of
// the world than ClickRadius, so the reach grows to the whole cell.
func (m Model) grabRadius() float64 {
	return max(mesh.ClickRadius, m.canvas.CellRadius()+grabPad)
}

// pointerEvent translates a terminal mouse event into world coordinates.
// Only the left button grabs; any release ends the drag because a single
// pointer is modelled.
func (m *Model) pointerEvent(msg tea.MouseMsg) (sim.Event, bool) {
	x, y := m.canvas.ToWorld(msg.X, msg.Y-headerLines)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return sim.Event{}, false
		}
		at := cellPos{msg.X, msg.Y}
		cycle := m.pressed && at == m.lastPress
		m.lastPress, m.pressed = at, true
		return sim.Event{Kind: sim.PointerDown, X: x, Y: y, Radius: m.grabRadius(), Cycle: cycle}, true
	case tea.MouseActionRelease:
		return sim.Event{Kind: sim.PointerUp}, true
	case tea.MouseActionMotion:
		return sim.Event{Kind: sim.PointerMove, X: x, Y: y}, true
	}
	return sim.Event{}, false
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.canvas.View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("energy "))
	b.WriteString(m.meter.ViewAs(clamp01(m.meterPos)))
	b.WriteString("  ")
	b.WriteString(statusStyle.Render(renderStats(m.sim.Grid().Stats())))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderHeader() string {
	frames := m.sim.Frames()
	status := fmt.Sprintf("frame %d  %s", frames, util.FormatDuration(util.SimTime(frames)))
	if c, ok := m.sim.Dragged(); ok {
		status = fmt.Sprintf("dragging (%d,%d)", c.Row, c.Col)
	}
	line := headerStyle.Render(m.title) + "  " + statusStyle.Render(status)
	if m.sim.Paused() {
		line += "  " + pausedStyle.Render("paused")
	}
	return line
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
