// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns a list of papers into the static HTML digest page.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/pdiddy/paperwatch/pkg/types"
)

// pageTemplate is the full digest document. Two bindings: the paper list and
// the render date. Interpolated text is escaped by html/template's contextual
// auto-escaping.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Daily Microfluidics Picks (Top Journals)</title>
    <script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-gray-50 text-gray-800">
    <div class="max-w-3xl mx-auto py-10 px-4">
        <header class="mb-10 text-center">
            <h1 class="text-3xl font-bold text-blue-800 mb-2">&#129516; Daily Microfluidics Picks</h1>
            <p class="text-sm text-gray-500">Sources: Nature, Science, PNAS | Updated: {{.Today}}</p>
        </header>

{{if .Papers}}
        <div class="space-y-6">
{{range .Papers}}
            <div class="bg-white p-6 rounded-lg shadow-md border-l-4 border-blue-500 hover:shadow-lg transition">
                <div class="flex justify-between items-start mb-2">
                    <span class="bg-blue-100 text-blue-800 text-xs font-semibold px-2.5 py-0.5 rounded">{{.Journal}}</span>
                    <span class="text-gray-400 text-sm">{{.Date}}</span>
                </div>
                <h2 class="text-xl font-bold mb-3">
                    <a href="{{.Link}}" target="_blank" class="hover:text-blue-600 hover:underline">{{.Title}}</a>
                </h2>
                <a href="{{.Link}}" target="_blank" class="text-sm text-blue-500 hover:text-blue-700 font-medium">Read Paper &rarr;</a>
            </div>
{{end}}
        </div>
{{else}}
        <div class="text-center py-20 bg-white rounded-lg shadow">
            <p class="text-gray-500">No new papers from these journals today.</p>
        </div>
{{end}}

        <footer class="mt-10 text-center text-xs text-gray-400">
            Powered by OpenAlex API
        </footer>
    </div>
</body>
</html>
`

var digestTmpl = template.Must(template.New("digest").Parse(pageTemplate))

type pageData struct {
	Papers []types.Paper
	Today  string
}

// Render executes the digest template over papers, dating the page with
// today, and returns the complete UTF-8 HTML document.
func Render(papers []types.Paper, today time.Time) ([]byte, error) {
	var buf bytes.Buffer
	data := pageData{
		Papers: papers,
		Today:  today.Format("2006-01-02"),
	}
	if err := digestTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering digest page: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders papers and overwrites path with the result. Prior
// content is replaced entirely; there is no append and no backup.
func WriteFile(path string, papers []types.Paper, today time.Time) error {
	html, err := Render(papers, today)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, html, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
