package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"git.sr.ht/~gioverse/ninechat/ninepatch"
)

func newScaleCmd(a *app) *cobra.Command {
	var (
		output        string
		width, height int
	)
	cmd := &cobra.Command{
		Use:   "scale SRC",
		Short: "Render a 9-Patch at a given size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("width") {
				width = a.cfg.Width
			}
			if !cmd.Flags().Changed("height") {
				height = a.cfg.Height
			}
			np, err := ninepatch.DecodeFile(args[0])
			if err != nil {
				return err
			}
			return a.render(np, image.Pt(width, height), output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "PNG file to write")
	cmd.Flags().IntVarP(&width, "width", "W", 0, "target width in pixels (default from config)")
	cmd.Flags().IntVarP(&height, "height", "H", 0, "target height in pixels (default from config)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func newFitCmd(a *app) *cobra.Command {
	var (
		output  string
		content string
	)
	cmd := &cobra.Command{
		Use:   "fit SRC",
		Short: "Render a 9-Patch sized to hold content of a given size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sz, err := parseSize(content)
			if err != nil {
				return err
			}
			np, err := ninepatch.DecodeFile(args[0])
			if err != nil {
				return err
			}
			return a.render(np, np.Fit(sz), output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "PNG file to write")
	cmd.Flags().StringVarP(&content, "content", "c", "", "content size as WxH")
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}

// render scales np to sz and writes it as PNG.
func (a *app) render(np *ninepatch.NinePatch, sz image.Point, output string) error {
	img, err := np.Scale(sz.X, sz.Y)
	if err != nil {
		return err
	}
	output = a.cfg.Resolve(output)
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	a.log.Printf("wrote %dx%d to %s", sz.X, sz.Y, output)
	return nil
}

// parseSize parses "WxH".
func parseSize(s string) (image.Point, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return image.Point{}, fmt.Errorf("size %q: want WxH", s)
	}
	x, err := strconv.Atoi(w)
	if err != nil {
		return image.Point{}, fmt.Errorf("size %q: width: %w", s, err)
	}
	y, err := strconv.Atoi(h)
	if err != nil {
		return image.Point{}, fmt.Errorf("size %q: height: %w", s, err)
	}
	if x < 0 || y < 0 {
		return image.Point{}, fmt.Errorf("size %q: negative", s)
	}
	return image.Pt(x, y), nil
}
