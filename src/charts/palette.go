// Package charts renders grouped bar charts for the benchmark reports on top
// of go-chart. One group per model, one bar per format; the axis switches to
// log scale when the plotted values span a wide dynamic range. Missing
// measurements are reported back to the caller and annotated onto the image
// rather than being drawn as zero-height bars indistinguishable from real
// zeros.
package charts

import (
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Vanish0314/model-format-comparision/src/types"
)

// formatPalette assigns each format a stable color across every report page.
var formatPalette = map[types.Format]drawing.Color{
	types.FormatFBX:  {R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	types.FormatOBJ:  {R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	types.FormatGLTF: {R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	types.FormatGLB:  {R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
}

// extraPalette covers series that are not formats (e.g. "Size Before" vs
// "Size After" on the per-format stat pages).
var extraPalette = []drawing.Color{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
}

// FormatColor returns the palette color for a format.
func FormatColor(f types.Format) drawing.Color {
	if c, ok := formatPalette[f]; ok {
		return c
	}
	return drawing.Color{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff}
}

// SeriesColor returns the i-th generic series color.
func SeriesColor(i int) drawing.Color {
	return extraPalette[i%len(extraPalette)]
}
