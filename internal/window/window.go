package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/olivier-w/dotsheet/internal/render"
	"github.com/olivier-w/dotsheet/internal/sim"
	"go.uber.org/zap"
)

// ErrDisplay is returned when the window or its renderer cannot be created.
var ErrDisplay = errors.New("display unavailable")

// ticksPerSecond gives the same ~16 ms cadence as the terminal frontend.
const ticksPerSecond = 60

// Game drives a simulation from ebiten's update and draw callbacks.
type Game struct {
	sim     *sim.Simulation
	style   render.Style
	log     *zap.Logger
	pointer sim.PointerTracker
	events  []sim.Event
}

func NewGame(s *sim.Simulation, style render.Style, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{sim: s, style: style, log: log.Named("window")}
}

// Update polls input and runs one frame.
func (g *Game) Update() error {
	g.events = g.events[:0]

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.events = append(g.events, sim.Event{Kind: sim.Reset})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.events = append(g.events, sim.Event{Kind: sim.TogglePause})
	}

	mx, my := ebiten.CursorPosition()
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	g.events = g.pointer.Sample(g.events, float64(mx), float64(my), down)

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.events = append(g.events, sim.Event{Kind: sim.Quit})
	}

	g.sim.Frame(g.events)
	if !g.sim.Running() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	render.Draw(screenSurface{screen}, g.sim.Grid(), g.style)
}

// Layout keeps the logical screen at the grid's surface size; the window
// is not resizable and the sheet never reflows.
func (g *Game) Layout(_, _ int) (int, int) {
	l := g.sim.Grid().Layout()
	return int(l.Width), int(l.Height)
}

// Run opens the window and blocks until the user quits or closes it.
func Run(g *Game, title string) error {
	l := g.sim.Grid().Layout()
	ebiten.SetWindowSize(int(l.Width), int(l.Height))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(ticksPerSecond)

	g.log.Info("opening window",
		zap.Int("width", int(l.Width)), zap.Int("height", int(l.Height)))
	return displayError(g.log, ebiten.RunGame(g))
}

// displayError logs a failed RunGame and wraps it with ErrDisplay.
func displayError(log *zap.Logger, err error) error {
	if err == nil {
		return nil
	}
	log.Error("window failed", zap.Error(err))
	return fmt.Errorf("%w: %w", ErrDisplay, err)
}

// screenSurface draws onto the ebiten screen, which ebiten presents after
// Draw returns.
type screenSurface struct {
	img *ebiten.Image
}

func (s screenSurface) Clear(bg color.RGBA) {
	s.img.Fill(bg)
}

func (s screenSurface) FillCircle(x, y, r float64, c color.RGBA) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), c, true)
}

func (s screenSurface) Present() {}
