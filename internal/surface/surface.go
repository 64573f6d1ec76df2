package surface

import "image/color"

// Surface is a drawable frame in world coordinates.
type Surface interface {
	Clear(bg color.RGBA)
	FillCircle(x, y, r float64, c color.RGBA)
	Present()
}
