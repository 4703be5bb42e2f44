// Copyright 2026 go-sorts Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

// Generator renders per-type wrapper functions for one generic sorter.
type Generator struct {
	Package string   // target package name
	Func    string   // generic function to wrap, e.g. "Sort"
	Types   []string // concrete element types
	Output  string   // output file path
}

const fileTemplate = `// Code generated by sortgen; DO NOT EDIT.

// Copyright 2026 go-sorts Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package {{.Package}}
{{range .Wrappers}}
// {{.Name}} is {{.Func}} specialized for []{{.Elem}}.
func {{.Name}}(data []{{.Elem}}) []{{.Elem}} {
	return {{.Func}}(data)
}
{{end}}`

type wrapper struct {
	Name string // wrapper function name, e.g. SortFloat64s
	Func string // wrapped generic function
	Elem string // concrete element type
}

// Run renders the wrapper file, fixes it up with goimports, and writes it.
func (g *Generator) Run() error {
	src, err := g.render()
	if err != nil {
		return err
	}

	formatted, err := imports.Process(g.Output, src, nil)
	if err != nil {
		return fmt.Errorf("formatting %s: %w", g.Output, err)
	}

	if err := os.WriteFile(g.Output, formatted, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", g.Output, err)
	}
	return nil
}

func (g *Generator) render() ([]byte, error) {
	if len(g.Types) == 0 {
		return nil, fmt.Errorf("no element types given")
	}

	wrappers := make([]wrapper, 0, len(g.Types))
	for _, t := range g.Types {
		wrappers = append(wrappers, wrapper{
			Name: g.Func + typeSuffix(t),
			Func: g.Func,
			Elem: t,
		})
	}

	tmpl := template.Must(template.New("wrappers").Parse(fileTemplate))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct {
		Package  string
		Wrappers []wrapper
	}{g.Package, wrappers}); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", g.Output, err)
	}
	return buf.Bytes(), nil
}

// typeSuffix converts an element type to the plural function suffix used by
// the stdlib sort package: "int" -> "Ints", "float64" -> "Float64s".
func typeSuffix(elemType string) string {
	if elemType == "" {
		return ""
	}
	b := []byte(elemType)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b) + "s"
}
