package interact

import (
	"fmt"
	"strings"

	"github.com/olivier-w/dotsheet/internal/mesh"
)

// State is the drag machine's state.
type State uint8

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Dragging:
		return "dragging"
	default:
		return "idle"
	}
}

// ReleasePolicy decides what velocity a point keeps when it is let go.
type ReleasePolicy uint8

const (
	// ReleaseKeep leaves whatever velocity the point had before it was
	// grabbed.
	ReleaseKeep ReleasePolicy = iota
	// ReleaseFling sets the velocity to the last pointer movement.
	ReleaseFling
)

// ParseReleasePolicy maps "keep" and "fling" to their policies.
func ParseReleasePolicy(s string) (ReleasePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "keep":
		return ReleaseKeep, nil
	case "fling":
		return ReleaseFling, nil
	}
	return ReleaseKeep, fmt.Errorf("unknown release policy %q (want keep or fling)", s)
}

func (p ReleasePolicy) String() string {
	if p == ReleaseFling {
		return "fling"
	}
	return "keep"
}

// Drag tracks the single point held by the pointer, if any.
type Drag struct {
	Policy ReleasePolicy

	state State
	cell  mesh.Cell

	// most recently grabbed cell, where PressNext resumes its search
	last    mesh.Cell
	hasLast bool

	// last two pointer positions while dragging, for ReleaseFling
	lastX, lastY float64
	prevX, prevY float64
}

func (d *Drag) State() State { return d.state }

// Cell returns the dragged cell; ok is false while idle.
func (d *Drag) Cell() (c mesh.Cell, ok bool) {
	if d.state != Dragging {
		return mesh.Cell{}, false
	}
	return d.cell, true
}

// Press grabs the first point within reach of (x, y). It reports whether a
// drag started. A press while already dragging is ignored.
func (d *Drag) Press(g *mesh.Grid, x, y float64) bool {
	return d.PressWithin(g, x, y, mesh.ClickRadius)
}

// PressWithin is Press with a caller-chosen reach.
func (d *Drag) PressWithin(g *mesh.Grid, x, y, radius float64) bool {
	if d.state == Dragging {
		return false
	}
	c, ok := g.HitTestWithin(x, y, radius)
	if !ok {
		return false
	}
	d.grab(g, c)
	return true
}

// PressNext grabs the next point within reach after the one grabbed last,
// wrapping around, so pressing again at the same spot reaches each point
// there in turn. With nothing grabbed before it behaves like PressWithin.
func (d *Drag) PressNext(g *mesh.Grid, x, y, radius float64) bool {
	if d.state == Dragging {
		return false
	}
	if !d.hasLast {
		return d.PressWithin(g, x, y, radius)
	}
	c, ok := g.HitTestAfter(x, y, radius, d.last)
	if !ok {
		return false
	}
	d.grab(g, c)
	return true
}

func (d *Drag) grab(g *mesh.Grid, c mesh.Cell) {
	d.state = Dragging
	d.cell = c
	d.last, d.hasLast = c, true

	p := g.At(c)
	p.Held = true
	d.lastX, d.lastY = p.X, p.Y
	d.prevX, d.prevY = p.X, p.Y
}

// Move puts the dragged point exactly under the pointer. Its velocity is
// not touched.
func (d *Drag) Move(g *mesh.Grid, x, y float64) {
	if d.state != Dragging {
		return
	}
	p := g.At(d.cell)
	p.X = x
	p.Y = y

	d.prevX, d.prevY = d.lastX, d.lastY
	d.lastX, d.lastY = x, y
}

// Release lets go of the dragged point and returns to Idle. It reports
// whether a point was released.
func (d *Drag) Release(g *mesh.Grid) bool {
	if d.state != Dragging {
		return false
	}
	p := g.At(d.cell)
	p.Held = false
	if d.Policy == ReleaseFling {
		p.VX = d.lastX - d.prevX
		p.VY = d.lastY - d.prevY
	}
	d.state = Idle
	d.cell = mesh.Cell{}
	return true
}

// Cancel drops the drag without touching the grid, used after the grid
// was rebuilt underneath it.
func (d *Drag) Cancel() {
	d.state = Idle
	d.cell = mesh.Cell{}
	d.hasLast = false
}
