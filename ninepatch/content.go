package ninepatch

import "image"

// Inset is the padding, in output pixels, between the edge of a scaled
// 9-Patch and its content area.
type Inset struct {
	Top, Right, Bottom, Left int
}

// Size returns the total horizontal and vertical padding.
func (in Inset) Size() image.Point {
	return image.Point{
		X: in.Left + in.Right,
		Y: in.Top + in.Bottom,
	}
}

// contentOf derives the content inset from the right and bottom marks.
// Positions are shifted by one to account for the cropped guide border.
// Marks on the corner pixels of the border reach past the output, so each
// side is clamped at zero.
func contentOf(size image.Point, right, bottom []int) Inset {
	return Inset{
		Top:    max(right[0]-1, 0),
		Right:  max(size.X-2-bottom[len(bottom)-1], 0),
		Bottom: max(size.Y-2-right[len(right)-1], 0),
		Left:   max(bottom[0]-1, 0),
	}
}

// Fit returns the size to scale the 9-Patch to so that content of the
// given size fits inside the content area. The result never drops below
// the natural size of the source.
func (np *NinePatch) Fit(content image.Point) image.Point {
	var (
		sz      = content.Add(np.Content.Size())
		natural = np.Grid.Natural()
	)
	if sz.X < natural.X {
		sz.X = natural.X
	}
	if sz.Y < natural.Y {
		sz.Y = natural.Y
	}
	return sz
}
