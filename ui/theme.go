package ui

import (
	"image/color"
	"strings"

	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/image/font/basicfont"
)

// Theme holds the faces and colours shared by every popup. Buttons use
// coloured nine-slices so no theme fonts need loading.
type Theme struct {
	Face ebtext.Face

	Ink       color.Color
	Muted     color.Color
	Accent    color.Color
	Panel     *imageui.NineSlice
	Backdrop  *imageui.NineSlice
	Button    *widget.ButtonImage
	Primary   *widget.ButtonImage
	ButtonInk *widget.ButtonTextColor
}

func NewTheme() *Theme {
	btn := imageui.NewNineSliceColor(color.NRGBA{R: 0x3d, G: 0x3a, B: 0x50, A: 0xff})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x4f, G: 0x4b, B: 0x66, A: 0xff})
	primary := imageui.NewNineSliceColor(color.NRGBA{R: 0xc8, G: 0x30, B: 0x48, A: 0xff})
	primaryHover := imageui.NewNineSliceColor(color.NRGBA{R: 0xf0, G: 0x60, B: 0x70, A: 0xff})

	return &Theme{
		Face:      ebtext.NewGoXFace(basicfont.Face7x13),
		Ink:       color.NRGBA{R: 0xe8, G: 0xe4, B: 0xf0, A: 0xff},
		Muted:     color.NRGBA{R: 0xa8, G: 0xa4, B: 0xb8, A: 0xff},
		Accent:    color.NRGBA{R: 0xf0, G: 0x60, B: 0x70, A: 0xff},
		Panel:     imageui.NewNineSliceColor(color.NRGBA{R: 0x2a, G: 0x28, B: 0x38, A: 0xf0}),
		Backdrop:  imageui.NewNineSliceColor(color.NRGBA{A: 0x90}),
		Button:    &widget.ButtonImage{Idle: btn, Hover: btnHover, Pressed: btn},
		Primary:   &widget.ButtonImage{Idle: primary, Hover: primaryHover, Pressed: primary},
		ButtonInk: &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
	}
}

func (t *Theme) text(label string, clr color.Color, opts ...widget.WidgetOpt) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, &t.Face, clr),
		widget.TextOpts.WidgetOpts(opts...),
	)
}

func (t *Theme) button(label string, img *widget.ButtonImage, onClick func(), opts ...widget.WidgetOpt) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, &t.Face, t.ButtonInk),
		widget.ButtonOpts.WidgetOpts(opts...),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func centered() widget.WidgetOpt {
	return widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	})
}

func rowCenter() widget.WidgetOpt {
	return widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})
}

// wrapText breaks s into lines of at most width columns.
func wrapText(s string, width int) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.Split(wordwrap.String(s, width), "\n")
}
