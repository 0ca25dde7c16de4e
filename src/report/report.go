package report

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Vanish0314/model-format-comparision/src/analysis"
	"github.com/Vanish0314/model-format-comparision/src/charts"
	"github.com/Vanish0314/model-format-comparision/src/types"
)

// Generator renders the full report set for one metrics table.
type Generator struct {
	Table       *types.Table
	Formats     []types.Format
	OutDir      string
	ChartWidth  int
	ChartHeight int
	Log         zerolog.Logger
}

// Generate writes every chart page plus the index. Pages with no usable data
// still get written (with a "no plottable data" chart) so index links never
// dangle.
func (g *Generator) Generate() error {
	if len(g.Formats) == 0 {
		g.Formats = types.AllFormats()
	}
	steps := []struct {
		name string
		fn   func() error
	}{
		{"import_time_comparison.html", g.importTimePage},
		{"size_memory_comparison.html", g.sizeMemoryPage},
		{"compression_texture_ratio.html", g.compressionTexturePage},
		{"gltf_glb_comparison.html", g.gltfGlbPage},
		{"model_format_compression_ratio.html", g.modelFormatCompressionPage},
		{"all_format_size_before.html", g.allFormatSizePage(types.MetricSizeBeforeZipMB)},
		{"all_format_size_after.html", g.allFormatSizePage(types.MetricSizeAfterZipMB)},
	}
	for _, s := range steps {
		g.Log.Info().Str("page", s.name).Msg("generating report page")
		if err := s.fn(); err != nil {
			return fmt.Errorf("generate %s: %w", s.name, err)
		}
	}
	for _, f := range g.Formats {
		name := fmt.Sprintf("per_format_%s.html", f)
		g.Log.Info().Str("page", name).Msg("generating report page")
		if err := g.perFormatPage(f); err != nil {
			return fmt.Errorf("generate %s: %w", name, err)
		}
	}
	g.Log.Info().Str("page", "index.html").Msg("generating report page")
	if err := g.indexPage(); err != nil {
		return fmt.Errorf("generate index.html: %w", err)
	}
	return nil
}

// importTimePage compares import times (in seconds) across all formats.
func (g *Generator) importTimePage() error {
	ids, faces, _ := analysis.SelectModelsWithData(g.Table, g.Formats, []types.MetricKey{types.MetricImportTimeMs})
	groups := faceLabels(ids, faces)
	series := make([]charts.Series, 0, len(g.Formats))
	for _, f := range g.Formats {
		vals := analysis.Scale(analysis.ExtractSeries(g.Table, ids, f, types.MetricImportTimeMs), 1.0/1000)
		series = append(series, charts.Series{Name: string(f), Color: charts.FormatColor(f), Values: vals})
	}
	section, err := g.section("", "Import Time (seconds)", groups, series)
	if err != nil {
		return err
	}
	return WriteChartPage(g.OutDir, "import_time_comparison.html", ChartPage{
		Title:       "Import Time Comparison",
		Description: "Comparison of import times across different 3D file formats (log/linear scale, missing data annotated)",
		Charts:      []ChartSection{section},
	})
}

// sizeMemoryPage stacks three charts: size before zip, size after zip, and
// peak import memory.
func (g *Generator) sizeMemoryPage() error {
	keys := []types.MetricKey{types.MetricSizeBeforeZipMB, types.MetricSizeAfterZipMB, types.MetricPeakMemoryMB}
	ids, faces, _ := analysis.SelectModelsWithData(g.Table, g.Formats, keys)
	groups := faceLabels(ids, faces)
	sections := []ChartSection{}
	for _, c := range []struct {
		heading string
		yLabel  string
		key     types.MetricKey
	}{
		{"File Size Before Compression", "Size (MB)", types.MetricSizeBeforeZipMB},
		{"File Size After Compression", "Size (MB)", types.MetricSizeAfterZipMB},
		{"Peak Memory Usage", "Memory (MB)", types.MetricPeakMemoryMB},
	} {
		series := g.formatSeries(ids, c.key)
		section, err := g.section(c.heading, c.yLabel, groups, series)
		if err != nil {
			return err
		}
		sections = append(sections, section)
	}
	return WriteChartPage(g.OutDir, "size_memory_comparison.html", ChartPage{
		Title:       "File Size and Memory Usage Comparison",
		Description: "Comparison of file sizes (before/after compression) and peak memory usage (log/linear scale, missing data annotated)",
		Charts:      sections,
	})
}

// compressionTexturePage pairs the compression ratio chart with the texture
// share chart. Models whose derived ratios are all missing or non-positive
// are re-filtered out after derivation.
func (g *Generator) compressionTexturePage() error {
	keys := []types.MetricKey{types.MetricSizeBeforeZipMB, types.MetricSizeAfterZipMB}
	ids, faces, _ := analysis.SelectModelsWithData(g.Table, g.Formats, keys)
	compression := g.deriveSeries(ids, analysis.CompressionSeries)
	keep := analysis.KeepIndices(seriesValues(compression), len(ids))
	ids = analysis.Subset(ids, keep)
	faces = analysis.Subset(faces, keep)
	compression = subsetSeries(compression, keep)
	texture := g.deriveSeries(ids, analysis.TextureShareSeries)
	groups := faceLabels(ids, faces)

	compSection, err := g.section("Compression Ratio Comparison", "Compression Ratio (%)", groups, compression)
	if err != nil {
		return err
	}
	texSection, err := g.section("Texture Size as Percentage of Total File Size", "Texture Size Ratio (%)", groups, texture)
	if err != nil {
		return err
	}
	return WriteChartPage(g.OutDir, "compression_texture_ratio.html", ChartPage{
		Title:       "Compression Ratio and Texture Size Analysis",
		Description: "Analysis of compression efficiency and texture size proportion (log/linear scale, missing data annotated)",
		Charts:      []ChartSection{compSection, texSection},
	})
}

// gltfGlbPage compares load time and load memory between gltf and glb.
func (g *Generator) gltfGlbPage() error {
	formats := []types.Format{types.FormatGLTF, types.FormatGLB}
	keys := []types.MetricKey{types.MetricLoadTimeMs, types.MetricLoadPeakMemoryMB}
	ids, faces, _ := analysis.SelectModelsWithData(g.Table, formats, keys)
	groups := faceLabels(ids, faces)

	timeSeries := make([]charts.Series, 0, len(formats))
	memSeries := make([]charts.Series, 0, len(formats))
	for _, f := range formats {
		t := analysis.Scale(analysis.ExtractSeries(g.Table, ids, f, types.MetricLoadTimeMs), 1.0/1000)
		m := analysis.ExtractSeries(g.Table, ids, f, types.MetricLoadPeakMemoryMB)
		timeSeries = append(timeSeries, charts.Series{Name: string(f), Color: charts.FormatColor(f), Values: t})
		memSeries = append(memSeries, charts.Series{Name: string(f), Color: charts.FormatColor(f), Values: m})
	}
	timeSection, err := g.section("glTF vs GLB: Load Time Comparison", "Load Time (seconds)", groups, timeSeries)
	if err != nil {
		return err
	}
	memSection, err := g.section("glTF vs GLB: Memory Usage Comparison", "Memory Usage (MB)", groups, memSeries)
	if err != nil {
		return err
	}
	return WriteChartPage(g.OutDir, "gltf_glb_comparison.html", ChartPage{
		Title:       "glTF vs GLB Performance Comparison",
		Description: "Comparison of load time and memory usage between glTF and GLB formats (log/linear scale, missing data annotated)",
		Charts:      []ChartSection{timeSection, memSection},
	})
}

// modelFormatCompressionPage is the dedicated per-model/per-format
// compression ratio chart.
func (g *Generator) modelFormatCompressionPage() error {
	keys := []types.MetricKey{types.MetricSizeBeforeZipMB, types.MetricSizeAfterZipMB}
	ids, faces, _ := analysis.SelectModelsWithData(g.Table, g.Formats, keys)
	compression := g.deriveSeries(ids, analysis.CompressionSeries)
	keep := analysis.KeepIndices(seriesValues(compression), len(ids))
	ids = analysis.Subset(ids, keep)
	faces = analysis.Subset(faces, keep)
	compression = subsetSeries(compression, keep)
	groups := faceLabels(ids, faces)

	section, err := g.section("", "Compression Ratio (%)", groups, compression)
	if err != nil {
		return err
	}
	return WriteChartPage(g.OutDir, "model_format_compression_ratio.html", ChartPage{
		Title:       "Compression Ratio by Model and Format",
		Description: "Compression ratio for each model and each format (log/linear scale, missing data annotated)",
		Charts:      []ChartSection{section},
	})
}

// allFormatSizePage builds the size-before or size-after comparison page.
func (g *Generator) allFormatSizePage(key types.MetricKey) func() error {
	return func() error {
		ids, faces, textures := analysis.SelectModelsWithData(g.Table, g.Formats, []types.MetricKey{key})
		groups := faceTextureLabels(ids, faces, textures)
		series := g.formatSeries(ids, key)
		title := "Size Before Compression Comparison Across Formats"
		filename := "all_format_size_before.html"
		yLabel := "Size Before Compression (MB)"
		if key == types.MetricSizeAfterZipMB {
			title = "Size After Compression Comparison Across Formats"
			filename = "all_format_size_after.html"
			yLabel = "Size After Compression (MB)"
		}
		section, err := g.section("", yLabel, groups, series)
		if err != nil {
			return err
		}
		return WriteChartPage(g.OutDir, filename, ChartPage{
			Title:       title,
			Description: "Size comparison across different formats (log/linear scale, missing data annotated)",
			Charts:      []ChartSection{section},
		})
	}
}

// perFormatPage shows size before/after plus derived ratios for one format.
func (g *Generator) perFormatPage(f types.Format) error {
	keys := []types.MetricKey{types.MetricSizeBeforeZipMB, types.MetricSizeAfterZipMB, types.MetricTextureSizeBeforeZipMB}
	ids, faces, textures := analysis.SelectModelsWithData(g.Table, []types.Format{f}, keys)
	groups := faceTextureLabels(ids, faces, textures)
	series := []charts.Series{
		{Name: "Size Before (MB)", Color: charts.SeriesColor(0), Values: analysis.ExtractSeries(g.Table, ids, f, types.MetricSizeBeforeZipMB)},
		{Name: "Size After (MB)", Color: charts.SeriesColor(1), Values: analysis.ExtractSeries(g.Table, ids, f, types.MetricSizeAfterZipMB)},
		{Name: "Compression (%)", Color: charts.SeriesColor(2), Values: analysis.CompressionSeries(g.Table, ids, f)},
		{Name: "Texture Share (%)", Color: charts.SeriesColor(3), Values: analysis.TextureShareSeries(g.Table, ids, f)},
	}
	section, err := g.section("", "Value", groups, series)
	if err != nil {
		return err
	}
	return WriteChartPage(g.OutDir, fmt.Sprintf("per_format_%s.html", f), ChartPage{
		Title:       fmt.Sprintf("%s Stats", formatDisplay(f)),
		Description: "Size before/after compression, compression ratio, and texture ratio for each model (log/linear scale, missing data annotated)",
		Charts:      []ChartSection{section},
	})
}

// section renders one chart and wraps it with its scale note and missing
// list.
func (g *Generator) section(heading, yLabel string, groups []string, series []charts.Series) (ChartSection, error) {
	rendered, err := charts.Render(charts.BarSpec{
		Title:  heading,
		YLabel: yLabel,
		Groups: groups,
		Series: series,
		Width:  g.ChartWidth,
		Height: g.ChartHeight,
	})
	if err != nil {
		return ChartSection{}, err
	}
	scale := "linear"
	if rendered.LogScale {
		scale = "logarithmic"
	}
	return ChartSection{
		Heading:   heading,
		Src:       dataURI(rendered.PNG),
		ScaleNote: fmt.Sprintf("Note: y-axis is %s scale, missing data listed below the chart", scale),
		Missing:   rendered.Missing,
	}, nil
}

func (g *Generator) formatSeries(ids []string, key types.MetricKey) []charts.Series {
	out := make([]charts.Series, 0, len(g.Formats))
	for _, f := range g.Formats {
		out = append(out, charts.Series{
			Name:   string(f),
			Color:  charts.FormatColor(f),
			Values: analysis.ExtractSeries(g.Table, ids, f, key),
		})
	}
	return out
}

func (g *Generator) deriveSeries(ids []string, derive func(*types.Table, []string, types.Format) []*float64) []charts.Series {
	out := make([]charts.Series, 0, len(g.Formats))
	for _, f := range g.Formats {
		out = append(out, charts.Series{
			Name:   string(f),
			Color:  charts.FormatColor(f),
			Values: derive(g.Table, ids, f),
		})
	}
	return out
}

func seriesValues(series []charts.Series) [][]*float64 {
	out := make([][]*float64, len(series))
	for i, s := range series {
		out[i] = s.Values
	}
	return out
}

func subsetSeries(series []charts.Series, keep []int) []charts.Series {
	out := make([]charts.Series, len(series))
	for i, s := range series {
		out[i] = charts.Series{Name: s.Name, Color: s.Color, Values: analysis.Subset(s.Values, keep)}
	}
	return out
}

func faceLabels(ids []string, faces []int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = fmt.Sprintf("%s (%dk)", shortName(id), faces[i])
	}
	return out
}

func faceTextureLabels(ids []string, faces, textures []int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = fmt.Sprintf("%s (%dk/%d)", shortName(id), faces[i], textures[i])
	}
	return out
}

// shortName trims a model id to its leading token, the way the source data
// names models ("dragon_v2_final" -> "dragon").
func shortName(id string) string {
	for i, r := range id {
		if r == '_' {
			return id[:i]
		}
	}
	return id
}

func formatDisplay(f types.Format) string {
	switch f {
	case types.FormatGLTF:
		return "glTF"
	default:
		return strings.ToUpper(string(f))
	}
}
