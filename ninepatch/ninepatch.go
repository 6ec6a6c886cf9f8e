// Package ninepatch implements 9-Patch image scaling and rendering in Gio.
// https://developer.android.com/guide/topics/graphics/drawables#nine-patch
package ninepatch

import (
	"image"
	"log"
	"sync"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// NinePatch is a parsed 9-Patch source. It is immutable once parsed.
type NinePatch struct {
	// Image is the source, guide border included.
	Image *image.NRGBA
	// Marks are the guide pixels found on each edge.
	Marks Marks
	// Grid is the 3x3 partition derived from the top and left marks.
	Grid Grid
	// Content is the padding derived from the right and bottom marks.
	Content Inset
}

// Surface caches the most recent scaling of a NinePatch. It is safe for
// concurrent use.
type Surface struct {
	*NinePatch

	mu   sync.Mutex
	size image.Point
	img  *image.NRGBA
	op   paint.ImageOp
}

// NewSurface wraps np in a Surface.
func NewSurface(np *NinePatch) *Surface {
	return &Surface{NinePatch: np}
}

// Scaled returns the NinePatch scaled to sz. Consecutive calls with the same
// size return the same image.
func (s *Surface) Scaled(sz image.Point) (*image.NRGBA, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.update(sz); err != nil {
		return nil, err
	}
	return s.img, nil
}

// Op returns the image operation for the NinePatch scaled to sz.
func (s *Surface) Op(sz image.Point) (paint.ImageOp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.update(sz); err != nil {
		return paint.ImageOp{}, err
	}
	return s.op, nil
}

func (s *Surface) update(sz image.Point) error {
	if s.img != nil && s.size == sz {
		return nil
	}
	img, err := s.Scale(sz.X, sz.Y)
	if err != nil {
		return err
	}
	s.size, s.img, s.op = sz, img, paint.NewImageOp(img)
	return nil
}

// Rectangle is a 9-Patch themed rectangle container, that lays content in the
// content-area.
type Rectangle struct {
	Surface *Surface
}

// Layout content atop the 9-Patch themed rectangle.
//
// The content is laid out first, inside the content inset, and the surface
// is then scaled to fit around it.
func (r Rectangle) Layout(gtx C, w layout.Widget) D {
	var (
		pad = r.Surface.Content
		cs  = gtx.Constraints
	)
	gtx.Constraints = layout.Constraints{
		Min: clampPt(cs.Min.Sub(pad.Size())),
		Max: clampPt(cs.Max.Sub(pad.Size())),
	}
	macro := op.Record(gtx.Ops)
	off := op.Offset(image.Pt(pad.Left, pad.Top)).Push(gtx.Ops)
	dims := w(gtx)
	off.Pop()
	content := macro.Stop()

	size := cs.Constrain(r.Surface.Fit(dims.Size))
	if src, err := r.Surface.Op(size); err != nil {
		log.Printf("ninepatch: drawing surface: %v", err)
	} else {
		area := clip.Rect{Max: size}.Push(gtx.Ops)
		src.Add(gtx.Ops)
		paint.PaintOp{}.Add(gtx.Ops)
		area.Pop()
	}
	content.Add(gtx.Ops)
	return D{
		Size:     size,
		Baseline: size.Y - pad.Top - dims.Size.Y + dims.Baseline,
	}
}

func clampPt(pt image.Point) image.Point {
	if pt.X < 0 {
		pt.X = 0
	}
	if pt.Y < 0 {
		pt.Y = 0
	}
	return pt
}
