package ninepatch

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	// 9-Patch sources are PNG by convention; the guide pixels must survive
	// decoding losslessly.
	_ "image/png"

	"gioui.org/layout"
)

// GuideColor is the exact color of a 9-Patch guide pixel.
var GuideColor = color.NRGBA{R: 0, G: 0, B: 0, A: 255}

// Marks holds the guide pixel coordinates found along each edge of the
// source, in increasing order.
type Marks struct {
	// Top holds x coordinates along the first row: the stretchable columns.
	Top []int
	// Left holds y coordinates along the first column: the stretchable rows.
	Left []int
	// Right holds y coordinates along the last column: the content rows.
	Right []int
	// Bottom holds x coordinates along the last row: the content columns.
	Bottom []int
}

// Decode reads an image with the registered codecs and parses it as a
// 9-Patch.
func Decode(r io.Reader) (*NinePatch, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return Parse(src)
}

// DecodeFile opens and decodes the 9-Patch image at path.
func DecodeFile(path string) (*NinePatch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening 9-Patch image: %w", err)
	}
	defer f.Close()
	np, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return np, nil
}

// Parse the 9-Patch data from source image.
//
// Only pixels exactly equal to GuideColor are guide marks. Every edge must
// carry at least one, otherwise the error matches ErrMalformedSource.
//
// The source is copied; later changes to src do not affect the NinePatch.
func Parse(src image.Image) (*NinePatch, error) {
	img := copyImage(src)
	size := img.Bounds().Size()
	if size.X < 2 || size.Y < 2 {
		return nil, fmt.Errorf("%w: %dx%d image has no room for a guide border",
			ErrMalformedSource, size.X, size.Y)
	}
	marks := Marks{
		Top:    walk(img, 0, layout.Horizontal),
		Left:   walk(img, 0, layout.Vertical),
		Right:  walk(img, size.X-1, layout.Vertical),
		Bottom: walk(img, size.Y-1, layout.Horizontal),
	}
	for _, edge := range []struct {
		Edge
		marks []int
	}{
		{EdgeTop, marks.Top},
		{EdgeLeft, marks.Left},
		{EdgeRight, marks.Right},
		{EdgeBottom, marks.Bottom},
	} {
		if len(edge.marks) == 0 {
			return nil, &MalformedError{Edge: edge.Edge, Size: size}
		}
	}
	return &NinePatch{
		Image:   img,
		Marks:   marks,
		Grid:    gridOf(size, marks.Top, marks.Left),
		Content: contentOf(size, marks.Right, marks.Bottom),
	}, nil
}

// copyImage copies src into an NRGBA image anchored at the origin.
func copyImage(src image.Image) *image.NRGBA {
	var (
		b   = src.Bounds()
		out = image.NewNRGBA(image.Rectangle{Max: b.Size()})
	)
	for yy := b.Min.Y; yy < b.Max.Y; yy++ {
		for xx := b.Min.X; xx < b.Max.X; xx++ {
			out.Set(xx-b.Min.X, yy-b.Min.Y, src.At(xx, yy))
		}
	}
	return out
}

// walk pixels in the source image along the specified main axis, at offset
// along the cross axis, returning the positions of every guide pixel.
func walk(src *image.NRGBA, offset int, axis layout.Axis) []int {
	var (
		end   = axis.Convert(src.Bounds().Max).X
		marks []int
	)
	for ii := 0; ii < end; ii++ {
		pt := axis.Convert(image.Point{X: ii, Y: offset})
		if src.NRGBAAt(pt.X, pt.Y) == GuideColor {
			marks = append(marks, ii)
		}
	}
	return marks
}
