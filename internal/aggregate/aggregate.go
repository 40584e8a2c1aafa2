// Package aggregate builds the index modules that re-export every component.
package aggregate

import (
	"fmt"
	"strings"

	"github.com/opmodel/icongen/internal/jsmodule"
)

// Index returns the index module for a format. Each component is re-exported
// under its identifier from its own module file.
func Index(identifiers []string, format jsmodule.Format) string {
	return lines(identifiers, func(id string) string {
		if format == jsmodule.ESM {
			return fmt.Sprintf("export { default as %[1]s } from './%[1]s.js'", id)
		}
		return fmt.Sprintf("module.exports.%[1]s = require(\"./%[1]s.js\")", id)
	})
}

// Declarations returns the aggregate type declaration. It always uses ES
// module syntax and extensionless specifiers.
func Declarations(identifiers []string) string {
	return lines(identifiers, func(id string) string {
		return fmt.Sprintf("export { default as %[1]s } from './%[1]s'", id)
	})
}

func lines(identifiers []string, line func(string) string) string {
	var b strings.Builder
	for _, id := range identifiers {
		b.WriteString(line(id))
		b.WriteString("\n")
	}
	return b.String()
}
