package report

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/bharathk2498/migrationgpt/pkg/models/api"
)

type TableConfig struct {
	NameWidth        int
	ValueWidth       int
	UnitWidth        int
	DescriptionWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:        36,
		ValueWidth:       32,
		UnitWidth:        12,
		DescriptionWidth: 60,
	}
}

const textTemplate = `
{{.Title}}
{{.Subtitle}}
{{if not .Window.Start.IsZero}}
Migration Window: {{.Window.Start.Format "2006-01-02"}} to {{.Window.End.Format "2006-01-02"}} ({{.Window.Days}} days){{end}}
Total Cost: {{.Currency}} {{amount .TotalCost}}
{{range .Sections}}
=== {{.Title}} ===
{{range $key, $value := .Summary}}{{$key}}: {{$value}}
{{end}}{{if .Details}}
{{separator}}
{{formatRow "Name" "Value" "Unit" "Description"}}
{{separator}}
{{range .Details}}{{formatRow .Name .Value .Unit .Description}}
{{end}}{{separator}}
{{end}}{{end}}`

type textRenderer struct {
	config TableConfig
}

func newTextRenderer(config TableConfig) *textRenderer {
	return &textRenderer{config: config}
}

func (t *textRenderer) ContentType() string { return "text/plain; charset=utf-8" }

func (t *textRenderer) Render(w io.Writer, analysis api.Analysis) error {
	funcMap := template.FuncMap{
		"formatRow": func(name string, value interface{}, unit string, desc string) string {
			return fmt.Sprintf("| %-*s | %-*s | %-*s | %-*s |",
				t.config.NameWidth, truncate(name, t.config.NameWidth),
				t.config.ValueWidth, truncate(fmt.Sprint(value), t.config.ValueWidth),
				t.config.UnitWidth, truncate(unit, t.config.UnitWidth),
				t.config.DescriptionWidth, truncate(desc, t.config.DescriptionWidth))
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", t.config.NameWidth+2),
				strings.Repeat("-", t.config.ValueWidth+2),
				strings.Repeat("-", t.config.UnitWidth+2),
				strings.Repeat("-", t.config.DescriptionWidth+2))
		},
		"amount": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}

	tmpl, err := template.New("report").Funcs(funcMap).Parse(textTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return tmpl.Execute(w, Build(analysis))
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}
