package surface

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// Braille is a terminal canvas. Each cell is a 2x4 braille dot block and
// carries one foreground colour. A fixed-size world is scaled uniformly
// onto the dots and centred.
type Braille struct {
	worldW, worldH float64

	cols, rows int
	cells      []uint8
	colors     []color.RGBA

	scale      float64
	offX, offY float64

	bg       color.RGBA
	styles   map[color.RGBA]lipgloss.Style // lit cells by foreground
	blank    lipgloss.Style
	styledBG color.RGBA
	styled   bool
	output   string
}

func NewBraille(worldW, worldH float64) *Braille {
	return &Braille{
		worldW: worldW,
		worldH: worldH,
		styles: make(map[color.RGBA]lipgloss.Style),
	}
}

// Resize sets the canvas to cols x rows terminal cells.
func (b *Braille) Resize(cols, rows int) {
	cols = max(cols, 0)
	rows = max(rows, 0)
	if cols == b.cols && rows == b.rows {
		return
	}
	b.cols, b.rows = cols, rows
	b.cells = make([]uint8, cols*rows)
	b.colors = make([]color.RGBA, cols*rows)

	dotW := float64(cols * 2)
	dotH := float64(rows * 4)
	b.scale = 0
	if b.worldW > 0 && b.worldH > 0 {
		b.scale = math.Min(dotW/b.worldW, dotH/b.worldH)
	}
	b.offX = (dotW - b.worldW*b.scale) / 2
	b.offY = (dotH - b.worldH*b.scale) / 2
}

func (b *Braille) Size() (cols, rows int) { return b.cols, b.rows }

// ToWorld maps the centre of a terminal cell to world coordinates.
func (b *Braille) ToWorld(cellX, cellY int) (x, y float64) {
	if b.scale == 0 {
		return 0, 0
	}
	dx := float64(cellX*2) + 1
	dy := float64(cellY*4) + 2
	return (dx - b.offX) / b.scale, (dy - b.offY) / b.scale
}

// CellRadius is the world distance from a cell's centre to its corners,
// the farthest a point drawn in that cell can lie from ToWorld's result.
func (b *Braille) CellRadius() float64 {
	if b.scale == 0 {
		return 0
	}
	return math.Hypot(1, 2) / b.scale
}

func (b *Braille) Clear(bg color.RGBA) {
	b.bg = bg
	clear(b.cells)
}

// FillCircle sets every dot whose centre lies inside the circle. A circle
// smaller than one dot still sets the dot under its centre.
func (b *Braille) FillCircle(x, y, r float64, c color.RGBA) {
	if b.scale == 0 {
		return
	}
	cx := b.offX + x*b.scale
	cy := b.offY + y*b.scale
	rd := r * b.scale

	hit := false
	for dy := int(math.Floor(cy - rd)); dy <= int(math.Ceil(cy+rd)); dy++ {
		for dx := int(math.Floor(cx - rd)); dx <= int(math.Ceil(cx+rd)); dx++ {
			ex := float64(dx) + 0.5 - cx
			ey := float64(dy) + 0.5 - cy
			if ex*ex+ey*ey <= rd*rd && b.set(dx, dy, c) {
				hit = true
			}
		}
	}
	if !hit {
		b.set(int(math.Floor(cx)), int(math.Floor(cy)), c)
	}
}

func (b *Braille) set(dx, dy int, c color.RGBA) bool {
	if dx < 0 || dy < 0 || dx >= b.cols*2 || dy >= b.rows*4 {
		return false
	}
	i := (dy/4)*b.cols + dx/2
	b.cells[i] |= 1 << brailleBits[dx%2][dy%4]
	b.colors[i] = c
	return true
}

// Present renders the dots into the string returned by View.
func (b *Braille) Present() {
	b.refreshStyles()
	rows := make([]string, b.rows)
	for row := range b.rows {
		var line strings.Builder
		var run strings.Builder
		var runColor color.RGBA
		runLit := false
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runLit {
				line.WriteString(b.litStyle(runColor).Render(run.String()))
			} else {
				line.WriteString(b.blank.Render(run.String()))
			}
			run.Reset()
		}
		for col := range b.cols {
			i := row*b.cols + col
			pattern := b.cells[i]
			lit := pattern != 0
			if lit != runLit || (lit && b.colors[i] != runColor) {
				flush()
				runLit, runColor = lit, b.colors[i]
			}
			if lit {
				run.WriteRune(rune(0x2800 + int(pattern)))
			} else {
				run.WriteByte(' ')
			}
		}
		flush()
		rows[row] = line.String()
	}
	b.output = strings.Join(rows, "\n")
}

func (b *Braille) View() string {
	return b.output
}

func (b *Braille) refreshStyles() {
	if b.styled && b.styledBG == b.bg {
		return
	}
	clear(b.styles)
	b.blank = lipgloss.NewStyle().Background(lipgloss.Color(hexOf(b.bg)))
	b.styledBG = b.bg
	b.styled = true
}

func (b *Braille) litStyle(fg color.RGBA) lipgloss.Style {
	if s, ok := b.styles[fg]; ok {
		return s
	}
	s := b.blank.Foreground(lipgloss.Color(hexOf(fg)))
	b.styles[fg] = s
	return s
}

func hexOf(c color.RGBA) string {
	cf, _ := colorful.MakeColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	return cf.Hex()
}
