// SPDX-License-Identifier: Unlicense OR MIT

// Package example is a playground for a fictional dialogue drawn on 9-Patch
// chat bubbles.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"math/rand"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	lorem "github.com/drhodes/golorem"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"git.sr.ht/~gioverse/ninechat/ninepatch"
	"git.sr.ht/~gioverse/ninechat/profile"
	"git.sr.ht/~gioverse/ninechat/res"
)

var profileOpt = flag.String("profile", "none", "create the provided kind of profile. Use one of [none, cpu, mem, block, goroutine, mutex, trace, gio]")

func main() {
	flag.Parse()
	profiler, err := profile.Opt(*profileOpt).Start("")
	if err != nil {
		log.Fatalf("starting profiler: %v", err)
	}
	var (
		// Instantiate the dialogue window.
		w = app.NewWindow(
			app.Title("9-Patch Dialogue"),
			app.Size(unit.Dp(600), unit.Dp(800)),
		)
		// Define an operation list for gio.
		ops op.Ops
		// Instantiate our UI state.
		ui = NewUI()
	)

	go func() {
		// Event loop executes indefinitely, until the app is signalled to quit.
		for event := range w.Events() {
			switch event := event.(type) {
			case system.DestroyEvent:
				profiler.Stop()
				if err := event.Err; err != nil {
					fmt.Printf("error: premature window close: %v\n", err)
					os.Exit(1)
				}
				os.Exit(0)
			case system.FrameEvent:
				gtx := layout.NewContext(&ops, event)
				profiler.Record(gtx)
				ui.Layout(gtx)
				event.Frame(&ops)
			}
		}
	}()
	// Surrender main thread to OS.
	// Necessary for certain platforms.
	app.Main()
}

type (
	C = layout.Context
	D = layout.Dimensions
)

var (
	fonts = gofont.Collection()
	th    = material.NewTheme(fonts)
)

// DeleteIcon is the material design delete indicator.
var DeleteIcon *widget.Icon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.ActionDelete)
	return icon
}()

// ToNRGBA converts a colorful.Color to the nearest representable color.NRGBA.
func ToNRGBA(c colorful.Color) color.NRGBA {
	r, g, b, a := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// Character speaks in the dialogue.
type Character struct {
	Name  string
	Color color.NRGBA
	// Main characters speak from the right.
	Main bool
}

// Message is one line of the dialogue.
type Message struct {
	Author *Character
	Text   string
	Delete widget.Clickable
	// Bubble caches the scaled surface for this message.
	Bubble *ninepatch.Surface
}

// UI manages the state for the entire application's UI.
type UI struct {
	Characters []*Character
	Messages   []*Message
	// Bubbles for main and supporting characters.
	Main, Sub *ninepatch.NinePatch
	// Say adds a line from a random character.
	Say widget.Clickable
	// Dialogue adds scrolling to the messages.
	Dialogue widget.List
}

// NewUI constructs a UI and populates it with dummy data.
func NewUI() *UI {
	ui := &UI{
		Main:     res.MustOpen(res.MainBubble),
		Sub:      res.MustOpen(res.SubBubble),
		Dialogue: widget.List{List: layout.List{Axis: layout.Vertical, ScrollToEnd: true}},
	}
	for ii, name := range []string{"Ada", "Basil", "Cyrus"} {
		ui.Characters = append(ui.Characters, &Character{
			Name:  name,
			Color: ToNRGBA(colorful.Hcl(float64(ii)*120+30, 0.6, 0.45).Clamped()),
			Main:  ii == 0,
		})
	}
	for ii := 0; ii < 12; ii++ {
		ui.say()
	}
	return ui
}

func (ui *UI) say() {
	var (
		author = ui.Characters[rand.Intn(len(ui.Characters))]
		bubble = ui.Sub
	)
	if author.Main {
		bubble = ui.Main
	}
	ui.Messages = append(ui.Messages, &Message{
		Author: author,
		Text:   lorem.Sentence(1, 25),
		Bubble: ninepatch.NewSurface(bubble),
	})
}

// Layout the application UI.
func (ui *UI) Layout(gtx C) D {
	if ui.Say.Clicked() {
		ui.say()
	}
	for ii := 0; ii < len(ui.Messages); ii++ {
		if ui.Messages[ii].Delete.Clicked() {
			ui.Messages = append(ui.Messages[:ii], ui.Messages[ii+1:]...)
			ii--
		}
	}
	return layout.Flex{
		Axis: layout.Vertical,
	}.Layout(gtx,
		layout.Flexed(1, func(gtx C) D {
			return material.List(th, &ui.Dialogue).Layout(gtx, len(ui.Messages), func(gtx C, ii int) D {
				return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
					return ui.layoutMessage(gtx, ui.Messages[ii])
				})
			})
		}),
		layout.Rigid(func(gtx C) D {
			return component.Divider(th).Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx C) D {
				gtx.Constraints.Min.X = gtx.Constraints.Max.X
				return material.Button(th, &ui.Say, "Say something").Layout(gtx)
			})
		}),
	)
}

// layoutMessage lays the author's name above their bubble, with a delete
// button on the far side of the row.
func (ui *UI) layoutMessage(gtx C, msg *Message) D {
	name := material.Body2(th, msg.Author.Name)
	name.Color = msg.Author.Color
	bubble := layout.Rigid(func(gtx C) D {
		return layout.Flex{
			Axis:      layout.Vertical,
			Alignment: alignment(msg.Author.Main),
		}.Layout(gtx,
			layout.Rigid(name.Layout),
			layout.Rigid(func(gtx C) D {
				gtx.Constraints.Max.X = gtx.Constraints.Max.X * 2 / 3
				return ninepatch.Rectangle{Surface: msg.Bubble}.Layout(gtx, func(gtx C) D {
					return material.Body1(th, msg.Text).Layout(gtx)
				})
			}),
		)
	})
	spacer := layout.Flexed(1, func(gtx C) D {
		return D{Size: image.Pt(gtx.Constraints.Max.X, 0)}
	})
	del := layout.Rigid(func(gtx C) D {
		btn := material.IconButton(th, &msg.Delete, DeleteIcon, "Delete message")
		btn.Size = unit.Dp(18)
		btn.Inset = layout.UniformInset(unit.Dp(6))
		btn.Background = color.NRGBA{A: 40}
		return btn.Layout(gtx)
	})
	row := []layout.FlexChild{bubble, spacer, del}
	if msg.Author.Main {
		row = []layout.FlexChild{del, spacer, bubble}
	}
	return layout.Flex{
		Axis:      layout.Horizontal,
		Alignment: layout.Middle,
	}.Layout(gtx, row...)
}

func alignment(main bool) layout.Alignment {
	if main {
		return layout.End
	}
	return layout.Start
}
