package charts

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LegendEntry is one swatch+label pair stamped onto a rendered chart.
type LegendEntry struct {
	Label string
	Color drawing.Color
}

// stampNote draws a small note string onto the image near the bottom-left,
// over a translucent dark background for readability on any chart content.
func stampNote(img image.Image, text string) image.Image {
	if img == nil || text == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	face := basicfont.Face7x13
	pad := 4
	textCol := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	dr := &font.Drawer{Dst: rgba, Src: textCol, Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + 8
	y := b.Max.Y - 6
	bg := image.NewUniform(color.RGBA{A: 190})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}

// stampLegend draws color swatches with labels in the top-right corner.
func stampLegend(img image.Image, entries []LegendEntry) image.Image {
	if img == nil || len(entries) == 0 {
		return img
	}
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(b)
		draw.Draw(rgba, b, img, b.Min, draw.Src)
	}
	face := basicfont.Face7x13
	sw := 10 // swatch edge in px
	rowH := face.Metrics().Height.Ceil() + 4
	width := 0
	meas := &font.Drawer{Face: face}
	for _, e := range entries {
		if w := meas.MeasureString(e.Label).Ceil(); w > width {
			width = w
		}
	}
	boxW := sw + 6 + width + 12
	boxH := rowH*len(entries) + 8
	x0 := b.Max.X - boxW - 10
	y0 := b.Min.Y + 10
	bg := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 235})
	border := image.NewUniform(color.RGBA{R: 180, G: 180, B: 180, A: 255})
	box := image.Rect(x0, y0, x0+boxW, y0+boxH)
	draw.Draw(rgba, box, bg, image.Point{}, draw.Over)
	for _, edge := range []image.Rectangle{
		image.Rect(box.Min.X, box.Min.Y, box.Max.X, box.Min.Y+1),
		image.Rect(box.Min.X, box.Max.Y-1, box.Max.X, box.Max.Y),
		image.Rect(box.Min.X, box.Min.Y, box.Min.X+1, box.Max.Y),
		image.Rect(box.Max.X-1, box.Min.Y, box.Max.X, box.Max.Y),
	} {
		draw.Draw(rgba, edge, border, image.Point{}, draw.Over)
	}
	textCol := image.NewUniform(color.RGBA{R: 60, G: 60, B: 60, A: 255})
	for i, e := range entries {
		rowY := y0 + 4 + i*rowH
		swatch := image.Rect(x0+6, rowY+2, x0+6+sw, rowY+2+sw)
		draw.Draw(rgba, swatch, image.NewUniform(toRGBA(e.Color)), image.Point{}, draw.Over)
		dr := &font.Drawer{Dst: rgba, Src: textCol, Face: face,
			Dot: fixed.Point26_6{X: fixed.I(x0 + 6 + sw + 6), Y: fixed.I(rowY + face.Metrics().Ascent.Ceil())}}
		dr.DrawString(e.Label)
	}
	return rgba
}

func toRGBA(c drawing.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// blank returns a plain white image used when a chart has no plottable data.
func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}
