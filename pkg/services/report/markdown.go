package report

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/bharathk2498/migrationgpt/pkg/adapters"
	"github.com/bharathk2498/migrationgpt/pkg/models/api"
)

const markdownTemplate = `# {{.Title}}

_{{.Subtitle}}_
{{if not .Window.Start.IsZero}}
**Migration window:** {{.Window.Start.Format "2006-01-02"}} to {{.Window.End.Format "2006-01-02"}} ({{.Window.Days}} days)
{{end}}
**Total cost:** {{money .TotalCost .Currency}}
{{range .Sections}}
## {{.Title}}
{{range $key, $value := .Summary}}
- **{{$key}}:** {{$value}}{{end}}
{{if .Details}}
| Name | Value | Unit | Description |
|---|---|---|---|
{{range .Details}}| {{cell .Name}} | {{cell .Value}} | {{cell .Unit}} | {{cell .Description}} |
{{end}}{{end}}{{end}}`

type markdownRenderer struct{}

func (markdownRenderer) ContentType() string { return "text/markdown; charset=utf-8" }

func (markdownRenderer) Render(w io.Writer, analysis api.Analysis) error {
	funcMap := template.FuncMap{
		"money": adapters.FormatCurrency,
		"cell": func(v interface{}) string {
			return strings.ReplaceAll(fmt.Sprint(v), "|", `\|`)
		},
	}

	tmpl, err := template.New("markdown").Funcs(funcMap).Parse(markdownTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return tmpl.Execute(w, Build(analysis))
}
