// Package report turns the aggregated metrics into the static HTML report
// set: one page per comparison chart with the PNG embedded as a base64 data
// URI, plus an index page with the model inventory and links to every page.
package report

import (
	"encoding/base64"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
)

// ChartSection is one rendered chart on a page.
type ChartSection struct {
	Heading   string
	Src       template.URL
	ScaleNote string
	Missing   []string
}

// ChartPage is a report page holding one or more charts.
type ChartPage struct {
	Title       string
	Description string
	Charts      []ChartSection
}

const footerText = "Generated by Model Format Analysis Tool"

var chartPageTmpl = template.Must(template.New("chart").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 0; padding: 20px; background-color: #f5f5f5; }
        .container { max-width: 1200px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        h1 { color: #333; text-align: center; margin-bottom: 10px; }
        h2 { color: #444; text-align: center; }
        .description { text-align: center; color: #666; margin-bottom: 30px; font-size: 16px; }
        .chart-container { text-align: center; margin-bottom: 30px; }
        img { max-width: 100%; height: auto; border: 1px solid #ddd; border-radius: 5px; }
        .note { color: #888; font-size: 13px; text-align: center; }
        .missing { color: #c0392b; font-size: 13px; text-align: center; }
        .footer { margin-top: 30px; text-align: center; color: #999; font-size: 14px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>{{.Title}}</h1>
        <p class="description">{{.Description}}</p>
{{- range .Charts}}
        <div class="chart-container">
{{- if .Heading}}
            <h2>{{.Heading}}</h2>
{{- end}}
            <img src="{{.Src}}" alt="{{if .Heading}}{{.Heading}}{{else}}{{$.Title}}{{end}}">
{{- if .ScaleNote}}
            <p class="note">{{.ScaleNote}}</p>
{{- end}}
{{- if .Missing}}
            <p class="missing">Missing data: {{range $i, $m := .Missing}}{{if $i}}, {{end}}{{$m}}{{end}}</p>
{{- end}}
        </div>
{{- end}}
        <div class="footer">{{.Footer}}</div>
    </div>
</body>
</html>
`))

// WriteChartPage renders a page into dir/filename, creating dir if needed.
func WriteChartPage(dir, filename string, page ChartPage) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report page: %w", err)
	}
	defer f.Close()
	data := struct {
		ChartPage
		Footer string
	}{page, footerText}
	if err := chartPageTmpl.Execute(f, data); err != nil {
		return fmt.Errorf("render report page %s: %w", filename, err)
	}
	return nil
}

// dataURI embeds a PNG as a base64 data URI. The URL type marks it safe for
// html/template, which would otherwise reject data: sources.
func dataURI(pngBytes []byte) template.URL {
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes))
}
