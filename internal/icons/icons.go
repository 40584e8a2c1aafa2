// Package icons reads icon sources and derives their component identifiers.
package icons

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iancoleman/strcase"

	oerrors "github.com/opmodel/icongen/internal/errors"
)

// DefaultSuffix is appended to every component identifier.
const DefaultSuffix = "Icon"

// Source is one icon read from the icon directory.
type Source struct {
	// FileName is the base name of the icon file, e.g. "arrow-left.svg".
	FileName string

	// Markup is the raw SVG text.
	Markup string

	// Identifier is the component name, e.g. "ArrowLeftIcon".
	Identifier string
}

// Identifier derives the component identifier for an icon file name:
// the base name without its .svg extension in PascalCase, plus suffix.
func Identifier(fileName, suffix string) string {
	base := strings.TrimSuffix(filepath.Base(fileName), ".svg")
	return strcase.ToCamel(base) + suffix
}

// Read loads every file in dir, in file name order. Subdirectories are
// skipped. Two files that map to the same identifier are rejected.
func Read(dir, suffix string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, oerrors.NewIOError("reading icon directory", dir, err)
	}

	sources := make([]Source, 0, len(entries))
	seen := make(map[string]string, len(entries))

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, oerrors.NewIOError("reading icon", path, err)
		}

		id := Identifier(e.Name(), suffix)
		if prev, ok := seen[id]; ok {
			return nil, oerrors.NewConfigError(
				fmt.Sprintf("icons %q and %q both map to component %s", prev, e.Name(), id),
				"rename one of the icon files",
			)
		}
		seen[id] = e.Name()

		sources = append(sources, Source{
			FileName:   e.Name(),
			Markup:     string(data),
			Identifier: id,
		})
	}

	return sources, nil
}

// Identifiers returns the identifiers of sources in order.
func Identifiers(sources []Source) []string {
	ids := make([]string, len(sources))
	for i, s := range sources {
		ids[i] = s.Identifier
	}
	return ids
}
