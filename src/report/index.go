package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/Vanish0314/model-format-comparision/src/types"
)

type indexModel struct {
	Name         string
	FaceCountK   int
	TextureCount int
	Formats      string
}

type indexCard struct {
	Title       string
	Description string
	Links       []indexLink
}

type indexLink struct {
	Href  string
	Label string
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>3D Model Format Analysis - Summary Report</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 0; padding: 20px; background-color: #f5f5f5; }
        .container { max-width: 1200px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        h1 { color: #333; text-align: center; margin-bottom: 30px; }
        .report-links { display: grid; grid-template-columns: repeat(auto-fit, minmax(300px, 1fr)); gap: 20px; margin-top: 30px; }
        .report-card { background-color: #f8f9fa; padding: 20px; border-radius: 8px; border: 1px solid #e9ecef; }
        .report-card h3 { color: #495057; margin-top: 0; }
        .report-card p { color: #6c757d; margin-bottom: 15px; }
        .report-card a { display: inline-block; padding: 8px 16px; background-color: #007bff; color: white; text-decoration: none; border-radius: 5px; margin: 2px; }
        .report-card a:hover { background-color: #0056b3; }
        .summary-table { margin-top: 30px; width: 100%; border-collapse: collapse; }
        .summary-table th, .summary-table td { padding: 12px; text-align: left; border-bottom: 1px solid #dee2e6; }
        .summary-table th { background-color: #f8f9fa; font-weight: bold; color: #495057; }
        .footer { margin-top: 30px; text-align: center; color: #999; font-size: 14px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>3D Model Format Analysis - Summary Report</h1>
        <h2>Model Information</h2>
        <table class="summary-table">
            <thead>
                <tr><th>Model Name</th><th>Face Count</th><th>Texture Count</th><th>Formats Analyzed</th></tr>
            </thead>
            <tbody>
{{- range .Models}}
                <tr><td>{{.Name}}</td><td>{{.FaceCountK}}k</td><td>{{.TextureCount}}</td><td>{{.Formats}}</td></tr>
{{- end}}
            </tbody>
        </table>
        <h2>Analysis Reports</h2>
        <div class="report-links">
{{- range .Cards}}
            <div class="report-card">
                <h3>{{.Title}}</h3>
                <p>{{.Description}}</p>
{{- range .Links}}
                <a href="{{.Href}}">{{.Label}}</a>
{{- end}}
            </div>
{{- end}}
        </div>
        <div class="footer">{{.Footer}}</div>
    </div>
</body>
</html>
`))

// indexPage writes index.html: the model inventory plus cards linking every
// generated report page.
func (g *Generator) indexPage() error {
	models := make([]indexModel, 0, g.Table.Len())
	for _, id := range g.Table.Order {
		rec := g.Table.Records[id]
		measured := []string{}
		for _, f := range types.AllFormats() {
			if _, ok := rec.Formats[f]; ok {
				measured = append(measured, string(f))
			}
		}
		models = append(models, indexModel{
			Name:         id,
			FaceCountK:   rec.FaceCountK,
			TextureCount: rec.TextureCount,
			Formats:      strings.Join(measured, ", "),
		})
	}
	perFormatLinks := make([]indexLink, 0, len(g.Formats))
	for _, f := range g.Formats {
		perFormatLinks = append(perFormatLinks, indexLink{
			Href:  fmt.Sprintf("per_format_%s.html", f),
			Label: fmt.Sprintf("%s Stats", formatDisplay(f)),
		})
	}
	cards := []indexCard{
		{"Import Time Comparison", "Compare import times across FBX, OBJ, glTF, and GLB formats for different models.",
			[]indexLink{{"import_time_comparison.html", "View Report"}}},
		{"Size & Memory Analysis", "Analyze file sizes (before/after compression) and peak memory usage for each format.",
			[]indexLink{{"size_memory_comparison.html", "View Report"}}},
		{"Compression & Texture Analysis", "Examine compression ratios and texture size proportions across different formats.",
			[]indexLink{{"compression_texture_ratio.html", "View Report"}}},
		{"glTF vs GLB Performance", "Direct comparison of load times and memory usage between glTF and GLB formats.",
			[]indexLink{{"gltf_glb_comparison.html", "View Report"}}},
		{"Per-Format Statistics", "Detailed statistics for each format: size before/after compression, compression ratio, texture ratio.",
			perFormatLinks},
		{"All-Format Size Before Compression", "Compare size before compression across all formats for each model.",
			[]indexLink{{"all_format_size_before.html", "View Report"}}},
		{"All-Format Size After Compression", "Compare size after compression across all formats for each model.",
			[]indexLink{{"all_format_size_after.html", "View Report"}}},
		{"Model-Format Compression Ratio", "Compression ratio for each model and each format.",
			[]indexLink{{"model_format_compression_ratio.html", "View Report"}}},
	}
	if err := os.MkdirAll(g.OutDir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	f, err := os.Create(filepath.Join(g.OutDir, "index.html"))
	if err != nil {
		return fmt.Errorf("create index page: %w", err)
	}
	defer f.Close()
	data := struct {
		Models []indexModel
		Cards  []indexCard
		Footer string
	}{models, cards, footerText}
	if err := indexTmpl.Execute(f, data); err != nil {
		return fmt.Errorf("render index page: %w", err)
	}
	return nil
}
