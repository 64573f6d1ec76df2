package sim

import (
	"github.com/olivier-w/dotsheet/internal/interact"
	"github.com/olivier-w/dotsheet/internal/mesh"
	"go.uber.org/zap"
)

// Simulation is the whole mutable state of the program: the sheet, the
// drag machine and the loop flags. It is owned by the frame loop and is
// not safe for concurrent use.
type Simulation struct {
	grid *mesh.Grid
	drag interact.Drag
	log  *zap.Logger

	running bool
	paused  bool
	frame   uint64
}

// New builds a running simulation over a freshly laid out grid.
func New(layout mesh.Layout, policy interact.ReleasePolicy, log *zap.Logger) *Simulation {
	if log == nil {
		log = zap.NewNop()
	}
	return &Simulation{
		grid:    mesh.New(layout),
		drag:    interact.Drag{Policy: policy},
		log:     log.Named("sim"),
		running: true,
	}
}

func (s *Simulation) Grid() *mesh.Grid          { return s.grid }
func (s *Simulation) Running() bool             { return s.running }
func (s *Simulation) Paused() bool              { return s.paused }
func (s *Simulation) Frames() uint64            { return s.frame }
func (s *Simulation) DragState() interact.State { return s.drag.State() }

// Dragged returns the cell currently held by the pointer.
func (s *Simulation) Dragged() (mesh.Cell, bool) {
	return s.drag.Cell()
}

// Handle applies a single event.
func (s *Simulation) Handle(ev Event) {
	switch ev.Kind {
	case Quit:
		s.running = false
		s.log.Info("quit requested", zap.Uint64("frame", s.frame))
	case PointerDown:
		radius := ev.Radius
		if radius <= 0 {
			radius = mesh.ClickRadius
		}
		press := s.drag.PressWithin
		if ev.Cycle {
			press = s.drag.PressNext
		}
		if press(s.grid, ev.X, ev.Y, radius) {
			c, _ := s.drag.Cell()
			s.log.Debug("drag started",
				zap.Int("row", c.Row), zap.Int("col", c.Col),
				zap.Float64("x", ev.X), zap.Float64("y", ev.Y))
		}
	case PointerMove:
		s.drag.Move(s.grid, ev.X, ev.Y)
	case PointerUp:
		c, ok := s.drag.Cell()
		if s.drag.Release(s.grid) && ok {
			p := s.grid.At(c)
			s.log.Debug("drag released",
				zap.Int("row", c.Row), zap.Int("col", c.Col),
				zap.Stringer("policy", s.drag.Policy),
				zap.Float64("vx", p.VX), zap.Float64("vy", p.VY))
		}
	case Reset:
		s.drag.Cancel()
		s.grid.Reset()
		s.log.Debug("sheet reset", zap.Uint64("frame", s.frame))
	case TogglePause:
		s.paused = !s.paused
		s.log.Debug("pause toggled", zap.Bool("paused", s.paused))
	}
}

// Frame runs one iteration of the loop: every pending event in arrival
// order, then one physics step unless quit or paused.
func (s *Simulation) Frame(events []Event) {
	for _, ev := range events {
		s.Handle(ev)
	}
	if !s.running || s.paused {
		return
	}
	s.grid.Step()
	s.frame++
}
