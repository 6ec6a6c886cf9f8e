package ninepatch

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrMalformedSource reports a source image that does not carry the
	// 9-Patch guide pixels needed to partition it.
	ErrMalformedSource = errors.New("ninepatch: malformed source")
	// ErrTargetTooSmall reports a requested size below Grid.Min.
	ErrTargetTooSmall = errors.New("ninepatch: target too small")
	// ErrDecode reports bytes that the registered image codecs could not
	// decode.
	ErrDecode = errors.New("ninepatch: decoding image")
)

// Edge names one side of the 1px guide border.
type Edge uint8

const (
	EdgeTop Edge = iota
	EdgeLeft
	EdgeRight
	EdgeBottom
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	}
	return fmt.Sprintf("Edge(%d)", uint8(e))
}

// MalformedError is returned by Parse when an edge has no guide pixel.
type MalformedError struct {
	Edge Edge
	// Size of the offending source image.
	Size image.Point
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%v: no guide pixel on %v edge of %dx%d image",
		ErrMalformedSource, e.Edge, e.Size.X, e.Size.Y)
}

func (e *MalformedError) Unwrap() error {
	return ErrMalformedSource
}

// TargetError is returned by Scale when the requested size cannot hold the
// four corners.
type TargetError struct {
	Size image.Point
	Min  image.Point
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("%v: requested %dx%d, minimum is %dx%d",
		ErrTargetTooSmall, e.Size.X, e.Size.Y, e.Min.X, e.Min.Y)
}

func (e *TargetError) Unwrap() error {
	return ErrTargetTooSmall
}
