// Command columngen writes arena/columns_gen.go: the Values struct, the column
// set and the typed accessors for every attribute the arena tracks.
//
// Adding an attribute means adding a row to the attributes table below and
// running `go generate ./arena`.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

type attribute struct {
	Name  string // column name, also used in debug output
	Field string // exported identifier
	Type  string // Go type of the column value
}

var attributes = []attribute{
	{Name: "position", Field: "Position", Type: "geom.Vector2"},
	{Name: "rotation", Field: "Rotation", Type: "float32"},
	{Name: "light", Field: "Light", Type: "LightParams"},
	{Name: "velocity", Field: "Velocity", Type: "geom.Vector2"},
	{Name: "polygon", Field: "Polygon", Type: "geom.Polygon"},
}

const sourceTemplate = `// Code generated by columngen. DO NOT EDIT.

package arena

import "github.com/plus3/lightstrike/geom"

// Values holds the initial value of every attribute passed to Allocate.
type Values struct {
{{- range .}}
	{{.Field}} Optional[{{.Type}}]
{{- end}}
}

type columns struct {
{{- range .}}
	{{.Name}} Column[{{.Type}}]
{{- end}}
}

// Attribute selectors for Read, Write and ColumnOf.
var (
{{- range .}}
	{{.Field}} = Attribute[{{.Type}}]{name: "{{.Name}}", column: func(c *columns) *Column[{{.Type}}] { return &c.{{.Name}} }}
{{- end}}
)

func newColumns(capacity int) columns {
	return columns{
{{- range .}}
		{{.Name}}: newColumn[{{.Type}}]("{{.Name}}", capacity),
{{- end}}
	}
}

func (c *columns) grow() {
{{- range .}}
	c.{{.Name}}.grow()
{{- end}}
}

func (c *columns) set(index uint32, v Values) {
{{- range .}}
	c.{{.Name}}.set(index, v.{{.Field}})
{{- end}}
}

func (c *columns) clear(index uint32) {
{{- range .}}
	c.{{.Name}}.clear(index)
{{- end}}
}

func (c *columns) present(index uint32) []string {
	var names []string
{{- range .}}
	if c.{{.Name}}.has(index) {
		names = append(names, "{{.Name}}")
	}
{{- end}}
	return names
}

func (c *columns) stats() []ColumnStats {
	return []ColumnStats{
{{- range .}}
		{Name: "{{.Name}}", Len: c.{{.Name}}.Len(), Present: c.{{.Name}}.Present()},
{{- end}}
	}
}
{{range .}}
// {{.Field}} reads the {{.Name}} of the record behind h.
func (a *Arena) {{.Field}}(h Handle) (Optional[{{.Type}}], error) {
	return Read(a, h, {{.Field}})
}

// {{.Field}}Mut returns write access to the {{.Name}} of the record behind h.
func (a *Arena) {{.Field}}Mut(h Handle) (Cell[{{.Type}}], error) {
	return Write(a, h, {{.Field}})
}
{{end -}}
`

var tmpl = template.Must(template.New("columns").Parse(sourceTemplate))

// generate renders and formats the source for attrs.
func generate(filename string, attrs []attribute) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, attrs); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	src, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", filename, err)
	}
	return src, nil
}

func main() {
	output := flag.String("o", "columns_gen.go", "The file to write.")
	flag.Parse()

	src, err := generate(*output, attributes)
	if err != nil {
		log.Fatalf("columngen: %v", err)
	}

	if err := os.WriteFile(*output, src, 0o644); err != nil {
		log.Fatalf("columngen: %v", err)
	}
}
