package jsmodule

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "cjs", CommonJS.String())
	assert.Equal(t, "esm", ESM.String())
	assert.Equal(t, "", CommonJS.Dir())
	assert.Equal(t, "esm", ESM.Dir())
	assert.Equal(t, []Format{CommonJS, ESM}, Formats())
}

func TestModuleRender_NamespaceImport(t *testing.T) {
	m := &Module{
		Imports: []Import{{Source: "react", Namespace: "React"}},
		Body:    "const ArrowLeftIcon = React.forwardRef(render);",
		Default: DefaultExport{Name: "ArrowLeftIcon"},
	}

	esm, err := m.Render(ESM)
	require.NoError(t, err)
	assert.Equal(t, `import * as React from "react";

const ArrowLeftIcon = React.forwardRef(render);
export default ArrowLeftIcon;
`, esm)

	cjs, err := m.Render(CommonJS)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(cjs, `const React = require("react")`))
	assert.True(t, strings.HasSuffix(cjs, "module.exports = ArrowLeftIcon;\n"))
}

func TestModuleRender_NamedImportsWithAliases(t *testing.T) {
	m := &Module{
		Imports: []Import{{
			Source: "vue",
			Names: []Binding{
				{Name: "openBlock", Alias: "_openBlock"},
				{Name: "h"},
			},
		}},
		Default: DefaultExport{Decl: "function render(_ctx, _cache) {\n  return null\n}"},
	}

	esm, err := m.Render(ESM)
	require.NoError(t, err)
	assert.Equal(t, `import { openBlock as _openBlock, h } from "vue";

export default function render(_ctx, _cache) {
  return null
}
`, esm)

	cjs, err := m.Render(CommonJS)
	require.NoError(t, err)
	assert.Equal(t, `const { openBlock: _openBlock, h } = require("vue");

module.exports = function render(_ctx, _cache) {
  return null
}
`, cjs)
}

func TestModuleRender_Errors(t *testing.T) {
	tests := []struct {
		name   string
		module Module
		format Format
	}{
		{"no default export", Module{}, ESM},
		{"unknown format", Module{Default: DefaultExport{Name: "X"}}, Format(9)},
		{"empty import", Module{Imports: []Import{{Source: "vue"}}, Default: DefaultExport{Name: "X"}}, ESM},
		{
			"mixed import",
			Module{
				Imports: []Import{{Source: "vue", Namespace: "Vue", Names: []Binding{{Name: "h"}}}},
				Default: DefaultExport{Name: "X"},
			},
			CommonJS,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.module.Render(tt.format)
			assert.Error(t, err)
		})
	}
}
