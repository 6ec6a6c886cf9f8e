package ninepatch

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"reflect"
	"strings"
	"testing"
)

// TestParse tests that 9-Patch data is successfully read from a source
// image.
func TestParse(t *testing.T) {
	for _, tt := range []struct {
		Label string
		Src   image.Image
		Marks Marks
		Grid  Grid
	}{
		{
			Label: "contiguous guides",
			Src:   func() image.Image { img, _, _ := fixture(); return img }(),
			Marks: Marks{
				Top:    []int{8, 9, 10, 11, 12, 13},
				Left:   []int{6, 7, 8, 9},
				Right:  []int{4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
				Bottom: []int{5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18},
			},
			Grid: Grid{Size: image.Pt(24, 20), X1: 8, X2: 10, Y1: 6, Y2: 10},
		},
		{
			// Scattered guides: only the outermost marks bound the bands.
			Label: "scattered guides",
			Src: NewImg(image.Pt(30, 30)).
				TopBorder(3, 1).TopBorder(7, 2).TopBorder(20, 1).
				LeftBorder(10, 1).LeftBorder(15, 1).
				RightBorder(2, 1).
				BottomBorder(27, 1),
			Marks: Marks{
				Top:    []int{3, 7, 8, 20},
				Left:   []int{10, 15},
				Right:  []int{2},
				Bottom: []int{27},
			},
			Grid: Grid{Size: image.Pt(30, 30), X1: 3, X2: 9, Y1: 10, Y2: 14},
		},
		{
			Label: "single guide pixel per edge",
			Src: NewImg(image.Pt(20, 20)).
				TopBorder(5, 1).
				LeftBorder(5, 1).
				RightBorder(15, 1).
				BottomBorder(15, 1),
			Marks: Marks{
				Top:    []int{5},
				Left:   []int{5},
				Right:  []int{15},
				Bottom: []int{15},
			},
			Grid: Grid{Size: image.Pt(20, 20), X1: 5, X2: 14, Y1: 5, Y2: 14},
		},
		{
			Label: "non-zero origin",
			Src: func() image.Image {
				outer := NewImg(image.Pt(40, 40))
				inner := outer.SubImage(image.Rect(10, 10, 30, 30)).(*image.NRGBA)
				(&Img{NRGBA: inner}).
					TopBorder(15, 2).
					LeftBorder(12, 3).
					RightBorder(11, 1).
					BottomBorder(13, 4)
				return inner
			}(),
			Marks: Marks{
				Top:    []int{5, 6},
				Left:   []int{2, 3, 4},
				Right:  []int{1},
				Bottom: []int{3, 4, 5, 6},
			},
			Grid: Grid{Size: image.Pt(20, 20), X1: 5, X2: 13, Y1: 2, Y2: 15},
		},
	} {
		t.Run(tt.Label, func(t *testing.T) {
			np, err := Parse(tt.Src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(np.Marks, tt.Marks) {
				t.Fatalf("marks:\n got:{%+v} \nwant:{%+v}\n", np.Marks, tt.Marks)
			}
			if np.Grid != tt.Grid {
				t.Fatalf("grid:\n got:{%+v} \nwant:{%+v}\n", np.Grid, tt.Grid)
			}
			if got, want := np.Image.Bounds(), (image.Rectangle{Max: tt.Grid.Size}); got != want {
				t.Fatalf("bounds: got %v, want %v", got, want)
			}
		})
	}
}

// TestParseMalformed tests that a source missing guides on any edge is
// rejected before it can be scaled.
func TestParseMalformed(t *testing.T) {
	complete := func() *Img {
		return NewImg(image.Pt(10, 10)).
			TopBorder(3, 2).
			LeftBorder(3, 2).
			RightBorder(2, 5).
			BottomBorder(2, 5)
	}
	for _, tt := range []struct {
		Label string
		Src   image.Image
		Edge  Edge
	}{
		{
			Label: "all white top row",
			Src: func() image.Image {
				img := complete()
				img.Fill(image.Rect(0, 0, 10, 1), color.NRGBA{R: 255, G: 255, B: 255, A: 255})
				return img
			}(),
			Edge: EdgeTop,
		},
		{
			Label: "no left guide",
			Src: func() image.Image {
				img := complete()
				img.Fill(image.Rect(0, 1, 1, 9), color.NRGBA{})
				return img
			}(),
			Edge: EdgeLeft,
		},
		{
			Label: "no right guide",
			Src: func() image.Image {
				img := complete()
				img.Fill(image.Rect(9, 0, 10, 10), color.NRGBA{})
				return img
			}(),
			Edge: EdgeRight,
		},
		{
			Label: "no bottom guide",
			Src: func() image.Image {
				img := complete()
				img.Fill(image.Rect(0, 9, 10, 10), color.NRGBA{})
				return img
			}(),
			Edge: EdgeBottom,
		},
		{
			// Only exact opaque black counts.
			Label: "near-black guides",
			Src: NewImg(image.Pt(10, 10)).
				Fill(image.Rect(3, 0, 5, 1), color.NRGBA{A: 254}).
				Fill(image.Rect(6, 0, 7, 1), color.NRGBA{R: 1, A: 255}).
				LeftBorder(3, 2).
				RightBorder(2, 5).
				BottomBorder(2, 5),
			Edge: EdgeTop,
		},
	} {
		t.Run(tt.Label, func(t *testing.T) {
			_, err := Parse(tt.Src)
			if !errors.Is(err, ErrMalformedSource) {
				t.Fatalf("got %v, want ErrMalformedSource", err)
			}
			var merr *MalformedError
			if !errors.As(err, &merr) {
				t.Fatalf("got %T, want *MalformedError", err)
			}
			if merr.Edge != tt.Edge {
				t.Fatalf("edge: got %v, want %v", merr.Edge, tt.Edge)
			}
		})
	}
	t.Run("too small", func(t *testing.T) {
		for _, sz := range []image.Point{{}, {1, 10}, {10, 1}} {
			if _, err := Parse(NewImg(sz)); !errors.Is(err, ErrMalformedSource) {
				t.Fatalf("%v: got %v, want ErrMalformedSource", sz, err)
			}
		}
	})
}

// TestParseCopiesSource tests that the NinePatch does not alias the caller's
// pixels.
func TestParseCopiesSource(t *testing.T) {
	img, _, _ := fixture()
	np := mustParse(t, img)
	before := append([]byte(nil), np.Image.Pix...)
	img.Fill(img.Bounds(), color.NRGBA{R: 9, A: 9})
	if !bytes.Equal(before, np.Image.Pix) {
		t.Fatalf("mutating the source changed the parsed image")
	}
}

func TestDecode(t *testing.T) {
	t.Run("png", func(t *testing.T) {
		img, g, _ := fixture()
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			t.Fatalf("encoding fixture: %v", err)
		}
		np, err := Decode(&buf)
		if err != nil {
			t.Fatalf("decoding: %v", err)
		}
		if np.Grid != g {
			t.Fatalf("\n got:{%+v} \nwant:{%+v}\n", np.Grid, g)
		}
		if !bytes.Equal(np.Image.Pix, img.Pix) {
			t.Fatalf("decoded pixels differ from the encoded fixture")
		}
	})
	t.Run("garbage", func(t *testing.T) {
		_, err := Decode(strings.NewReader("definitely not a png"))
		if !errors.Is(err, ErrDecode) {
			t.Fatalf("got %v, want ErrDecode", err)
		}
		if !errors.Is(err, image.ErrFormat) {
			t.Fatalf("codec error lost from chain: %v", err)
		}
	})
	t.Run("missing file", func(t *testing.T) {
		if _, err := DecodeFile(t.TempDir() + "/nope.9.png"); err == nil {
			t.Fatalf("expected error for missing file")
		}
	})
}
