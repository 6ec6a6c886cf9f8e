package ninepatch

import "image"

// Grid describes the stretchable regions of a 9-Patch as 3x3 grid divided
// by 4 lines.
//
// All distances are measured in source pixels and include the 1px guide
// border on the leading side (X1, Y1) but not on the trailing side (X2, Y2).
type Grid struct {
	// Size specifies the total dimensions of the source, guide border included.
	Size image.Point
	// X1 is the distance in pixels before the stretchable region along the X axis.
	// X2 is the distance in pixels after the stretchable region along the X axis.
	X1, X2 int
	// Y1 is the distance in pixels before the stretchable region along the Y axis.
	// Y2 is the distance in pixels after the stretchable region along the Y axis.
	Y1, Y2 int
}

// gridOf derives the grid from the stretch marks. Both slices must be
// non-empty.
func gridOf(size image.Point, top, left []int) Grid {
	return Grid{
		Size: size,
		X1:   top[0],
		X2:   size.X - 1 - top[len(top)-1],
		Y1:   left[0],
		Y2:   size.Y - 1 - left[len(left)-1],
	}
}

// Static returns the statically known dimensions (the corners).
func (g Grid) Static() image.Point {
	return image.Point{
		X: g.X1 + g.X2,
		Y: g.Y1 + g.Y2,
	}
}

// Band returns the source rectangle of the center tile, which is the
// intersection of the stretchable column and row bands.
func (g Grid) Band() image.Rectangle {
	return image.Rect(g.X1, g.Y1, g.Size.X-1-g.X2, g.Size.Y-1-g.Y2)
}

// Min returns the smallest size Scale accepts: the corners alone, minus
// the one pixel they share with the cropped seam.
func (g Grid) Min() image.Point {
	m := g.Static().Sub(image.Pt(1, 1))
	if m.X < 0 {
		m.X = 0
	}
	if m.Y < 0 {
		m.Y = 0
	}
	return m
}

// Natural returns the size at which Scale reproduces the source without
// its guide border.
func (g Grid) Natural() image.Point {
	return g.Size.Sub(image.Pt(2, 2))
}

// Stretch returns the dimensions the stretchable tiles take for a target
// size (the space between the corners). Callers check the target against
// Min first.
func (g Grid) Stretch(target image.Point) image.Point {
	return target.Sub(g.Static()).Add(image.Pt(1, 1))
}
