package render

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"refbook/internal/catalog"
)

// The export pages are fixed, so the templates are compiled in instead of
// being read from a layouts directory.
const indexLayout = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Refactoring Reference</title>
</head>
<body>
  <h1>Refactoring Reference</h1>
{{- range .Categories }}
{{- if .Entries }}
  <h2>{{ .Name }}</h2>
  <ul>
  {{- range .Entries }}
    <li><a href="{{ $.BaseURL }}/{{ .ID }}/">{{ .Title }}</a>{{ if .Summary }} &mdash; {{ .Summary }}{{ end }}</li>
  {{- end }}
  </ul>
{{- end }}
{{- end }}
</body>
</html>
`

const entryLayout = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{ .Entry.Title }} &middot; Refactoring Reference</title>
</head>
<body>
  <p><a href="{{ .BaseURL }}/">&larr; Index</a></p>
  <p><em>{{ .Entry.Category }}</em></p>
{{ .Content }}
</body>
</html>
`

var (
	indexTemplate = template.Must(template.New("index").Parse(indexLayout))
	entryTemplate = template.Must(template.New("entry").Parse(entryLayout))
)

// ExportSite renders the catalog as a static HTML site: an index page listing
// every category and one page per entry at <outputDir>/<id>/index.html. The
// output directory is removed and recreated first.
func ExportSite(cat *catalog.Catalog, outputDir, baseURL string) error {
	if err := os.RemoveAll(outputDir); err != nil {
		return fmt.Errorf("failed to remove output directory %q: %w", outputDir, err)
	}
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory %q: %w", outputDir, err)
	}

	if err := writePage(filepath.Join(outputDir, "index.html"), indexTemplate, struct {
		Categories []*catalog.Category
		BaseURL    string
	}{cat.Categories(), baseURL}); err != nil {
		return err
	}

	for _, e := range cat.Entries() {
		content, err := HTMLBody(e.Body)
		if err != nil {
			return fmt.Errorf("failed to render %q: %w", e.ID, err)
		}
		page := filepath.Join(outputDir, e.ID, "index.html")
		if err := os.MkdirAll(filepath.Dir(page), os.ModePerm); err != nil {
			return fmt.Errorf("failed to create directory for %q: %w", e.ID, err)
		}
		if err := writePage(page, entryTemplate, struct {
			Entry   *catalog.Entry
			Content template.HTML
			BaseURL string
		}{e, content, baseURL}); err != nil {
			return err
		}
	}

	return nil
}

func writePage(path string, tpl *template.Template, data any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	if err := tpl.Execute(f, data); err != nil {
		return fmt.Errorf("failed to execute template for %q: %w", path, err)
	}
	return nil
}
