package manifest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultExports_Order(t *testing.T) {
	assert.Equal(t, []string{
		".",
		"./package.json",
		"./*",
		"./*.js",
		"./esm/*",
		"./esm/*.js",
	}, DefaultExports().Patterns())
}

func TestExports_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Exports{
		{".", Target{Types: "./index.d.ts", Import: "./esm/index.js", Require: "./index.js"}},
		{"./package.json", Target{Default: "./package.json"}},
	})
	require.NoError(t, err)

	assert.Equal(t,
		`{".":{"types":"./index.d.ts","import":"./esm/index.js","require":"./index.js"},`+
			`"./package.json":{"default":"./package.json"}}`,
		string(data))
}

func TestExports_MarshalYAML(t *testing.T) {
	data, err := yaml.Marshal(DefaultExports()[:2])
	require.NoError(t, err)

	expected := `.:
    types: ./index.d.ts
    import: ./esm/index.js
    require: ./index.js
./package.json:
    default: ./package.json
`
	assert.Equal(t, expected, string(data))
}

func TestExports_Resolve(t *testing.T) {
	exports := DefaultExports()

	tests := []struct {
		name       string
		subpath    string
		conditions []string
		want       string
		ok         bool
	}{
		{"root import", ".", []string{"import", "default"}, "./esm/index.js", true},
		{"root require", ".", []string{"require", "default"}, "./index.js", true},
		{"root types first", ".", []string{"types", "import"}, "./index.d.ts", true},
		{"package.json", "./package.json", []string{"require", "default"}, "./package.json", true},
		{"icon import", "./ArrowLeftIcon", []string{"import", "default"}, "./esm/ArrowLeftIcon.js", true},
		{"icon require", "./ArrowLeftIcon", []string{"require", "default"}, "./ArrowLeftIcon.js", true},
		{"icon with extension", "./ArrowLeftIcon.js", []string{"require", "default"}, "./ArrowLeftIcon.js", true},
		{"icon types", "./ArrowLeftIcon.js", []string{"types"}, "./ArrowLeftIcon.d.ts", true},
		{"esm path", "./esm/ArrowLeftIcon", []string{"import"}, "./esm/ArrowLeftIcon.js", true},
		{"esm path with extension", "./esm/ArrowLeftIcon.js", []string{"import"}, "./esm/ArrowLeftIcon.js", true},
		{"esm path types", "./esm/ArrowLeftIcon.js", []string{"types"}, "./ArrowLeftIcon.d.ts", true},
		{"esm path has no require", "./esm/ArrowLeftIcon", []string{"require", "default"}, "", false},
		{"no matching condition", ".", []string{"browser"}, "", false},
		{"outside map", "../other", []string{"import"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := exports.Resolve(tt.subpath, tt.conditions...)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
