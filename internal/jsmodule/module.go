// Package jsmodule renders JavaScript modules in either CommonJS or ES module
// syntax from a single format-neutral description.
package jsmodule

import (
	"fmt"
	"strings"
)

// Format is a JavaScript module format.
type Format int

const (
	// CommonJS uses require() bindings and module.exports assignments.
	CommonJS Format = iota

	// ESM uses import declarations and export default.
	ESM
)

// Formats returns every supported format in build order.
func Formats() []Format {
	return []Format{CommonJS, ESM}
}

// String returns the short name used in logs and flags.
func (f Format) String() string {
	switch f {
	case CommonJS:
		return "cjs"
	case ESM:
		return "esm"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Dir returns the package-relative directory holding files of this format.
func (f Format) Dir() string {
	if f == ESM {
		return "esm"
	}
	return ""
}

// Binding is a named import, optionally bound under an alias.
type Binding struct {
	Name  string
	Alias string
}

// Import describes one imported module. Exactly one of Namespace or Names
// should be set.
type Import struct {
	// Source is the module specifier, e.g. "react".
	Source string

	// Namespace binds the whole module: import * as Namespace.
	Namespace string

	// Names are the named bindings: import { Name as Alias }.
	Names []Binding
}

// DefaultExport is the module's default export. Decl, when set, is a
// function declaration exported in place; otherwise Name is exported.
type DefaultExport struct {
	Name string
	Decl string
}

// Module is a format-neutral JavaScript module.
type Module struct {
	Imports []Import
	Body    string
	Default DefaultExport
}

// Render returns the module source in the given format.
func (m *Module) Render(format Format) (string, error) {
	if format != CommonJS && format != ESM {
		return "", fmt.Errorf("unsupported module format %s", format)
	}

	var b strings.Builder

	for _, imp := range m.Imports {
		line, err := renderImport(imp, format)
		if err != nil {
			return "", err
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(m.Imports) > 0 {
		b.WriteString("\n")
	}

	if m.Body != "" {
		b.WriteString(strings.TrimRight(m.Body, "\n"))
		b.WriteString("\n")
	}

	switch {
	case m.Default.Decl != "" && format == ESM:
		b.WriteString("export default " + m.Default.Decl + "\n")
	case m.Default.Decl != "":
		b.WriteString("module.exports = " + m.Default.Decl + "\n")
	case m.Default.Name == "":
		return "", fmt.Errorf("module has no default export")
	case format == ESM:
		b.WriteString("export default " + m.Default.Name + ";\n")
	default:
		b.WriteString("module.exports = " + m.Default.Name + ";\n")
	}

	return b.String(), nil
}

func renderImport(imp Import, format Format) (string, error) {
	src := String(imp.Source)

	if imp.Namespace != "" {
		if len(imp.Names) > 0 {
			return "", fmt.Errorf("import of %s mixes namespace and named bindings", imp.Source)
		}
		if format == ESM {
			return fmt.Sprintf("import * as %s from %s;", imp.Namespace, src), nil
		}
		return fmt.Sprintf("const %s = require(%s);", imp.Namespace, src), nil
	}

	if len(imp.Names) == 0 {
		return "", fmt.Errorf("import of %s has no bindings", imp.Source)
	}

	parts := make([]string, len(imp.Names))
	for i, n := range imp.Names {
		switch {
		case n.Alias == "" || n.Alias == n.Name:
			parts[i] = n.Name
		case format == ESM:
			parts[i] = n.Name + " as " + n.Alias
		default:
			parts[i] = n.Name + ": " + n.Alias
		}
	}
	list := strings.Join(parts, ", ")

	if format == ESM {
		return fmt.Sprintf("import { %s } from %s;", list, src), nil
	}
	return fmt.Sprintf("const { %s } = require(%s);", list, src), nil
}
