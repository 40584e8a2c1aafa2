// Package manifest shapes the package.json of a generated icon package.
package manifest

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Target holds the resolution targets of one exports entry, keyed by
// condition. Field order is the order conditions are matched in.
type Target struct {
	Types   string `json:"types,omitempty" yaml:"types,omitempty"`
	Import  string `json:"import,omitempty" yaml:"import,omitempty"`
	Require string `json:"require,omitempty" yaml:"require,omitempty"`
	Default string `json:"default,omitempty" yaml:"default,omitempty"`
}

// Entry maps a subpath pattern to its targets.
type Entry struct {
	Pattern string
	Target  Target
}

// Exports is an ordered package exports map.
type Exports []Entry

// DefaultExports returns the exports map of a generated icon package.
// CommonJS files live at the package root, ES modules under esm/, and
// declarations only at the root.
func DefaultExports() Exports {
	return Exports{
		{".", Target{Types: "./index.d.ts", Import: "./esm/index.js", Require: "./index.js"}},
		{"./package.json", Target{Default: "./package.json"}},
		{"./*", Target{Types: "./*.d.ts", Import: "./esm/*.js", Require: "./*.js"}},
		{"./*.js", Target{Types: "./*.d.ts", Import: "./esm/*.js", Require: "./*.js"}},
		// esm/ is an implementation detail kept importable for consumers
		// that reached into it directly. It has no require target.
		{"./esm/*", Target{Types: "./*.d.ts", Import: "./esm/*.js"}},
		{"./esm/*.js", Target{Types: "./*.d.ts", Import: "./esm/*.js"}},
	}
}

// Patterns returns the entry patterns in order.
func (e Exports) Patterns() []string {
	out := make([]string, len(e))
	for i, entry := range e {
		out[i] = entry.Pattern
	}
	return out
}

// MarshalJSON encodes the map as a JSON object preserving entry order.
func (e Exports) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range e {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Pattern)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(entry.Target)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the map as a YAML mapping preserving entry order.
func (e Exports) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, entry := range e {
		var value yaml.Node
		if err := value.Encode(entry.Target); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: entry.Pattern},
			&value,
		)
	}
	return node, nil
}

// Resolve maps a package subpath such as "./ArrowLeftIcon" to a file for
// the first matching condition, following the Node.js rules: an exact key
// wins, otherwise the pattern with the longest prefix before "*" (and then
// the longest key) is used.
func (e Exports) Resolve(subpath string, conditions ...string) (string, bool) {
	for _, entry := range e {
		if entry.Pattern == subpath {
			return entry.Target.pick(conditions, "")
		}
	}

	var candidates []Entry
	for _, entry := range e {
		prefix, suffix, ok := strings.Cut(entry.Pattern, "*")
		if !ok || strings.Contains(suffix, "*") {
			continue
		}
		if len(subpath) >= len(entry.Pattern) &&
			strings.HasPrefix(subpath, prefix) &&
			strings.HasSuffix(subpath, suffix) {
			candidates = append(candidates, entry)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		bi := strings.Index(candidates[i].Pattern, "*")
		bj := strings.Index(candidates[j].Pattern, "*")
		if bi != bj {
			return bi > bj
		}
		return len(candidates[i].Pattern) > len(candidates[j].Pattern)
	})

	best := candidates[0]
	prefix, suffix, _ := strings.Cut(best.Pattern, "*")
	match := subpath[len(prefix) : len(subpath)-len(suffix)]
	return best.Target.pick(conditions, match)
}

func (t Target) pick(conditions []string, match string) (string, bool) {
	ordered := []struct {
		name   string
		target string
	}{
		{"types", t.Types},
		{"import", t.Import},
		{"require", t.Require},
		{"default", t.Default},
	}

	for _, c := range ordered {
		if c.target == "" || !contains(conditions, c.name) {
			continue
		}
		return strings.ReplaceAll(c.target, "*", match), true
	}
	return "", false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
