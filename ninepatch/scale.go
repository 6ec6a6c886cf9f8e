package ninepatch

import (
	"image"

	"golang.org/x/image/draw"
)

// edgeEpsilon absorbs float error when a source pixel sits exactly on the
// edge of a destination pixel's footprint.
const edgeEpsilon = 1e-9

// box is the area-averaging kernel. A source pixel lying exactly on the
// footprint edge counts for half, so every destination pixel is covered
// when upscaling by a non-integer factor.
var box = &draw.Kernel{
	Support: 0.5 + edgeEpsilon,
	At: func(t float64) float64 {
		if t < 0.5-edgeEpsilon {
			return 1
		}
		return 0.5
	},
}

// Scale the 9-Patch to exactly w by h pixels.
//
// Corners are copied verbatim. The top and bottom edges stretch
// horizontally, the left and right edges vertically, and the center both
// ways, each resampled with a box filter. The guide border never appears in
// the result.
//
// Sizes below Grid.Min yield an error matching ErrTargetTooSmall.
//
// Scale does not modify the NinePatch and is safe for concurrent use.
func (np *NinePatch) Scale(w, h int) (*image.NRGBA, error) {
	var (
		g      = np.Grid
		target = image.Pt(w, h)
	)
	if m := g.Min(); w < m.X || h < m.Y {
		return nil, &TargetError{Size: target, Min: m}
	}
	var (
		stretch = g.Stretch(target)
		band    = g.Band()
		// Source lines partitioning the 3x3 grid.
		sx = [4]int{0, band.Min.X, band.Max.X, g.Size.X - 1}
		sy = [4]int{0, band.Min.Y, band.Max.Y, g.Size.Y - 1}
		// Destination lines. The stretched tiles are one pixel wider than
		// the space between the corners; the canvas makes up for it with an
		// extra leading row and column at -1, cropped away below.
		dx = [4]int{-1, g.X1 - 1, g.X1 + stretch.X - 1, w}
		dy = [4]int{-1, g.Y1 - 1, g.Y1 + stretch.Y - 1, h}
		canvas = image.NewNRGBA(image.Rect(-1, -1, w, h))
	)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			paste(canvas,
				image.Rect(dx[col], dy[row], dx[col+1], dy[row+1]),
				np.Image,
				image.Rect(sx[col], sy[row], sx[col+1], sy[row+1]),
			)
		}
	}
	return canvas.SubImage(image.Rect(0, 0, w, h)).(*image.NRGBA), nil
}

// paste the sr region of src into the dr region of dst, resampling when
// the sizes differ.
func paste(dst *image.NRGBA, dr image.Rectangle, src *image.NRGBA, sr image.Rectangle) {
	if dr.Empty() {
		return
	}
	if dr.Size() == sr.Size() {
		copyRect(dst, dr, src, sr)
		return
	}
	// A single guide pixel marks a one pixel band.
	if sr.Dx() == 0 {
		sr.Max.X = sr.Min.X + 1
	}
	if sr.Dy() == 0 {
		sr.Max.Y = sr.Min.Y + 1
	}
	box.Scale(dst, dr, src, sr, draw.Src, nil)
}

// copyRect copies pixels row by row, leaving them bit-identical.
func copyRect(dst *image.NRGBA, dr image.Rectangle, src *image.NRGBA, sr image.Rectangle) {
	n := dr.Dx() * 4
	for yy := 0; yy < dr.Dy(); yy++ {
		var (
			d = dst.PixOffset(dr.Min.X, dr.Min.Y+yy)
			s = src.PixOffset(sr.Min.X, sr.Min.Y+yy)
		)
		copy(dst.Pix[d:d+n], src.Pix[s:s+n])
	}
}
