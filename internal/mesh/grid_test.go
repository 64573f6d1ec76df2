package mesh

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCentresDefaultLayout(t *testing.T) {
	g := New(DefaultLayout)

	origin := g.At(Cell{0, 0})
	assert.Equal(t, 107.5, origin.X)
	assert.Equal(t, 82.5, origin.Y)

	last := g.At(Cell{29, 39})
	assert.Equal(t, 107.5+39*15, last.X)
	assert.Equal(t, 82.5+29*15, last.Y)
}

func TestNewAnchorsTopCorners(t *testing.T) {
	g := New(DefaultLayout)

	var anchors []Cell
	for r := range g.Rows() {
		for c := range g.Cols() {
			p := g.At(Cell{r, c})
			if p.Anchor {
				anchors = append(anchors, Cell{r, c})
			}
			assert.Equal(t, p.X, p.RestX)
			assert.Equal(t, p.Y, p.RestY)
			assert.Zero(t, p.VX)
			assert.Zero(t, p.VY)
			assert.False(t, p.Held)
		}
	}
	assert.Equal(t, []Cell{{0, 0}, {0, 39}}, anchors)
}

func TestResetRestoresInitialState(t *testing.T) {
	g := New(DefaultLayout)
	want := append([]Point(nil), g.Points()...)

	p := g.At(Cell{4, 7})
	p.X += 30
	p.VY = -2
	p.Held = true
	g.At(Cell{0, 0}).Anchor = false

	g.Reset()
	if diff := cmp.Diff(want, g.Points()); diff != "" {
		t.Errorf("Reset mismatch (-want +got):\n%s", diff)
	}
}

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(DefaultLayout), New(DefaultLayout)
	if diff := cmp.Diff(a.Points(), b.Points()); diff != "" {
		t.Errorf("layouts differ (-first +second):\n%s", diff)
	}
}

func TestContains(t *testing.T) {
	g := New(Layout{Rows: 2, Cols: 3, Spacing: 10, Width: 100, Height: 100})

	assert.True(t, g.Contains(Cell{0, 0}))
	assert.True(t, g.Contains(Cell{1, 2}))
	assert.False(t, g.Contains(Cell{2, 0}))
	assert.False(t, g.Contains(Cell{0, 3}))
	assert.False(t, g.Contains(Cell{-1, 0}))
}

func TestSingleColumnSharesAnchor(t *testing.T) {
	g := New(Layout{Rows: 3, Cols: 1, Spacing: 10, Width: 100, Height: 100})

	require.True(t, g.At(Cell{0, 0}).Anchor)
	assert.False(t, g.At(Cell{1, 0}).Anchor)
	assert.False(t, g.At(Cell{2, 0}).Anchor)
}
