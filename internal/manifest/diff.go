package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	"github.com/tidwall/gjson"
)

// Change is an exports entry whose targets differ.
type Change struct {
	Pattern string
	Diff    string
}

// DiffResult lists how a manifest's exports differ from the desired map.
type DiffResult struct {
	Added    []string
	Removed  []string
	Modified []Change

	// Reordered holds the desired order of the entries present in both maps
	// when the manifest lists them in a different order. Nil otherwise.
	Reordered []string
}

// IsEmpty returns true if there are no changes.
func (r *DiffResult) IsEmpty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Modified) == 0 && len(r.Reordered) == 0
}

// Diff compares the exports key of a manifest against desired. A string
// valued exports key is treated as the "." entry.
func Diff(current []byte, desired Exports, useColor bool) (*DiffResult, error) {
	if err := validate(current); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	existing, order := currentEntries(current)
	result := &DiffResult{}
	wanted := make(map[string]bool, len(desired))

	for _, entry := range desired {
		wanted[entry.Pattern] = true

		raw, ok := existing[entry.Pattern]
		if !ok {
			result.Added = append(result.Added, entry.Pattern)
			continue
		}

		target, err := json.Marshal(entry.Target)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", entry.Pattern, err)
		}

		d, err := diffDocuments([]byte(raw), target, useColor)
		if err != nil {
			return nil, fmt.Errorf("comparing %s: %w", entry.Pattern, err)
		}
		if d != "" {
			result.Modified = append(result.Modified, Change{Pattern: entry.Pattern, Diff: d})
		}
	}

	var kept []string
	for _, pattern := range order {
		if !wanted[pattern] {
			result.Removed = append(result.Removed, pattern)
			continue
		}
		kept = append(kept, pattern)
	}

	var shared []string
	for _, pattern := range desired.Patterns() {
		if _, ok := existing[pattern]; ok {
			shared = append(shared, pattern)
		}
	}
	if !slices.Equal(kept, shared) {
		result.Reordered = shared
	}

	return result, nil
}

func currentEntries(manifest []byte) (map[string]string, []string) {
	entries := make(map[string]string)
	var order []string

	v := gjson.GetBytes(manifest, exportsKey)
	switch {
	case !v.Exists():
	case v.IsObject():
		v.ForEach(func(key, value gjson.Result) bool {
			entries[key.String()] = value.Raw
			order = append(order, key.String())
			return true
		})
	default:
		entries["."] = v.Raw
		order = append(order, ".")
	}

	return entries, order
}

// diffDocuments returns a rendered dyff report of two JSON/YAML documents,
// or "" when they are equal.
func diffDocuments(from, to []byte, useColor bool) (string, error) {
	fromInput, err := loadInput("current", from)
	if err != nil {
		return "", err
	}
	toInput, err := loadInput("desired", to)
	if err != nil {
		return "", err
	}

	report, err := dyff.CompareInputFiles(fromInput, toInput)
	if err != nil {
		return "", err
	}
	if len(report.Diffs) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}
	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

func loadInput(name string, data []byte) (ytbx.InputFile, error) {
	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, fmt.Errorf("parsing %s: %w", name, err)
	}
	return ytbx.InputFile{Location: name, Documents: docs}, nil
}
