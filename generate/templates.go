package generate

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
)

//go:embed module.ts.tmpl
var defaultTemplate string

func parseTemplate(name, text string) (*template.Template, error) {
	tmpl, err := template.New(name).Funcs(sprig.FuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("unable to parse template %s: %w", name, err)
	}
	return tmpl, nil
}

// Render expands template with module data.
func (m *Module) Render(tmpl *template.Template) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, m); err != nil {
		return nil, fmt.Errorf("unable to expand template %s: %w", tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}
