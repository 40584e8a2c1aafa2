package transform

import "strings"

// splitDecls splits an inline style attribute into property/value pairs,
// skipping empty or malformed declarations.
func splitDecls(css string) [][2]string {
	var out [][2]string
	for _, decl := range strings.Split(css, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		value = strings.TrimSpace(value)
		if prop == "" || value == "" {
			continue
		}
		out = append(out, [2]string{prop, value})
	}
	return out
}
