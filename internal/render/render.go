package render

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/olivier-w/dotsheet/internal/mesh"
	"github.com/olivier-w/dotsheet/internal/surface"
)

// heatRange is the displacement, in world units, at which a point is drawn
// fully in the hot colour.
const heatRange = 40.0

// Style holds the colours used to draw the sheet.
type Style struct {
	Background color.RGBA
	Dot        color.RGBA
	Hot        color.RGBA
	Heat       bool // blend Dot toward Hot by displacement from rest
}

// DefaultStyle is lilac dots on black with heat colouring off.
var DefaultStyle = Style{
	Background: color.RGBA{R: 0, G: 0, B: 0, A: 255},
	Dot:        color.RGBA{R: 203, G: 170, B: 203, A: 255},
	Hot:        color.RGBA{R: 255, G: 140, B: 0, A: 255},
}

// ParseStyle builds a Style from hex colour strings.
func ParseStyle(background, dot, hot string, heat bool) (Style, error) {
	var s Style
	for _, c := range []struct {
		dst *color.RGBA
		hex string
	}{
		{&s.Background, background},
		{&s.Dot, dot},
		{&s.Hot, hot},
	} {
		parsed, err := colorful.Hex(c.hex)
		if err != nil {
			return Style{}, fmt.Errorf("parse colour %q: %w", c.hex, err)
		}
		*c.dst = toRGBA(parsed)
	}
	s.Heat = heat
	return s, nil
}

// Draw clears dst, draws every point of g as a filled circle and presents
// the frame. It only reads the grid.
func Draw(dst surface.Surface, g *mesh.Grid, style Style) {
	dst.Clear(style.Background)

	base, _ := colorful.MakeColor(style.Dot)
	hot, _ := colorful.MakeColor(style.Hot)
	points := g.Points()
	for i := range points {
		p := &points[i]
		dst.FillCircle(p.X, p.Y, mesh.DotRadius, pointColor(p, style, base, hot))
	}
	dst.Present()
}

func pointColor(p *mesh.Point, style Style, base, hot colorful.Color) color.RGBA {
	if p.Held {
		return style.Hot
	}
	if !style.Heat {
		return style.Dot
	}
	t := p.Displacement() / heatRange
	if t <= 0 {
		return style.Dot
	}
	if t >= 1 {
		return style.Hot
	}
	return toRGBA(base.BlendLab(hot, t).Clamped())
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
