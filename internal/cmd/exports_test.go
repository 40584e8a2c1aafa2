package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	oerrors "github.com/opmodel/icongen/internal/errors"
)

func TestExports_YAML(t *testing.T) {
	workspace(t)

	out, err := execute(t, "exports")
	require.NoError(t, err)

	assert.Contains(t, out, "./package.json:\n    default: ./package.json\n")
	assert.Contains(t, out, "./esm/*.js:\n")
}

func TestExports_JSON(t *testing.T) {
	workspace(t)

	out, err := execute(t, "exports", "-o", "json")
	require.NoError(t, err)

	var keys []string
	gjson.Parse(out).ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	assert.Equal(t, []string{".", "./package.json", "./*", "./*.js", "./esm/*", "./esm/*.js"}, keys)
	assert.False(t, gjson.Get(out, `\./esm/\*.require`).Exists())
}

func TestExports_InvalidFormat(t *testing.T) {
	workspace(t)

	_, err := execute(t, "exports", "-o", "toml")
	assertExitCode(t, err, oerrors.ExitConfigError)
}
