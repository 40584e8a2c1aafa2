package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/icongen/internal/errors"
	"github.com/opmodel/icongen/internal/testutil"
)

func TestNewBuildCmd(t *testing.T) {
	cmd := NewBuildCmd()

	assert.Equal(t, "build <package>", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	for _, name := range []string{"icons", "root", "suffix", "concurrency", "dry-run"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestBuild_MissingPackage(t *testing.T) {
	dir := workspace(t, "react")

	_, err := execute(t, "build")
	assertExitCode(t, err, oerrors.ExitConfigError)

	assert.Equal(t, []string{"package.json"}, testutil.ListFiles(t, filepath.Join(dir, "react")))
}

func TestBuild_UnsupportedPackage(t *testing.T) {
	workspace(t, "svelte")

	_, err := execute(t, "build", "svelte")
	assertExitCode(t, err, oerrors.ExitConfigError)
}

func TestBuild_React(t *testing.T) {
	dir := workspace(t, "react")

	_, err := execute(t, "build", "react")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "react", "ArrowLeftIcon.js"))
	assert.FileExists(t, filepath.Join(dir, "react", "ArrowLeftIcon.d.ts"))
	assert.FileExists(t, filepath.Join(dir, "react", "esm", "ArrowLeftIcon.js"))
	assert.FileExists(t, filepath.Join(dir, "react", "esm", "package.json"))
}

func TestBuild_Flags(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "svgs/arrow-left.svg", arrowLeftSVG)
	testutil.WriteFile(t, dir, "packages/vue/package.json", `{"name":"@icons/vue"}`)
	t.Chdir(dir)

	_, err := execute(t, "build", "vue", "--icons", "./svgs", "--root", "./packages", "--suffix", "Glyph", "--concurrency", "2")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "packages", "vue", "ArrowLeftGlyph.js"))
}

func TestBuild_EnvConfig(t *testing.T) {
	dir := workspace(t, "react")
	t.Setenv("ICONGEN_SUFFIX", "Svg")

	_, err := execute(t, "build", "react")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "react", "ArrowLeftSvg.js"))
}

func TestBuild_ConfigFile(t *testing.T) {
	dir := workspace(t)
	testutil.WriteFile(t, dir, "src/arrow-left.svg", arrowLeftSVG)
	testutil.WriteFile(t, dir, "out/react/package.json", `{"name":"@icons/react"}`)
	testutil.WriteFile(t, dir, "build.yaml", "iconsDir: ./src\nrootDir: ./out\n")

	_, err := execute(t, "build", "react", "--config", "build.yaml")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "out", "react", "ArrowLeftIcon.js"))
}

func TestBuild_DryRun(t *testing.T) {
	dir := workspace(t, "react")

	out, err := execute(t, "build", "react", "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, out, "ArrowLeftIcon.js")
	assert.Contains(t, out, "esm/package.json")
	assert.NoFileExists(t, filepath.Join(dir, "react", "ArrowLeftIcon.js"))
}

func TestBuild_TransformError(t *testing.T) {
	dir := workspace(t, "react")
	testutil.WriteFile(t, dir, "icons/broken.svg", `<svg><path d="M0 0">`)

	_, err := execute(t, "build", "react")
	assertExitCode(t, err, oerrors.ExitTransformError)
	assert.NoFileExists(t, filepath.Join(dir, "react", "ArrowLeftIcon.js"))
}

func TestBuild_MissingIconsDir(t *testing.T) {
	workspace(t, "react")

	_, err := execute(t, "build", "react", "--icons", "./nope")
	assertExitCode(t, err, oerrors.ExitIOError)
}
