package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	oerrors "github.com/opmodel/icongen/internal/errors"
	"github.com/opmodel/icongen/internal/icons"
	"github.com/opmodel/icongen/internal/jsmodule"
	"github.com/opmodel/icongen/internal/testutil"
	"github.com/opmodel/icongen/internal/transform"
)

const (
	arrowLeftSVG = `<svg xmlns="http://www.w3.org/2000/svg" fill="none" viewBox="0 0 24 24" stroke-width="1.5" stroke="currentColor" aria-hidden="true">
  <path stroke-linecap="round" stroke-linejoin="round" d="M10.5 19.5 3 12m0 0 7.5-7.5M3 12h18"/>
</svg>
`
	xMarkSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 20 20" fill="currentColor" aria-hidden="true">
  <path d="M6.28 5.22a.75.75 0 0 0-1.06 1.06L8.94 10l-3.72 3.72a.75.75 0 1 0 1.06 1.06L10 11.06l3.72 3.72a.75.75 0 1 0 1.06-1.06L11.06 10l3.72-3.72a.75.75 0 0 0-1.06-1.06L10 8.94 6.28 5.22Z"/>
</svg>
`
)

// setupWorkspace lays out an icons directory and a package directory holding
// a base manifest, a README and stale output from an earlier build.
func setupWorkspace(t *testing.T, pkg string) (root, iconsDir string) {
	t.Helper()
	root = t.TempDir()
	iconsDir = filepath.Join(root, "icons")

	testutil.WriteFile(t, iconsDir, "arrow-left.svg", arrowLeftSVG)
	testutil.WriteFile(t, iconsDir, "x-mark.svg", xMarkSVG)

	pkgDir := filepath.Join(root, pkg)
	testutil.WriteFile(t, pkgDir, "package.json", `{"name":"@icons/`+pkg+`","version":"2.0.0","license":"MIT"}`)
	testutil.WriteFile(t, pkgDir, "README.md", "# icons\n")
	testutil.WriteFile(t, pkgDir, "esm/LICENSE", "MIT\n")
	testutil.WriteFile(t, pkgDir, "StaleIcon.js", "stale\n")
	testutil.WriteFile(t, pkgDir, "esm/StaleIcon.js", "stale\n")
	return root, iconsDir
}

func readFile(t *testing.T, parts ...string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(parts...))
	require.NoError(t, err)
	return string(data)
}

// snapshot returns every file under dir keyed by relative path.
func snapshot(t *testing.T, dir string) map[string]string {
	t.Helper()
	files := make(map[string]string)
	err := filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return files
}

func rootEntries(t *testing.T, root string) []string {
	t.Helper()
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names
}

func TestRun_React(t *testing.T) {
	root, iconsDir := setupWorkspace(t, "react")

	result, err := New(Options{Package: "react", IconsDir: iconsDir, RootDir: root}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "react", result.Package)
	assert.Equal(t, 2, result.Icons)
	assert.Len(t, result.Files, 14)

	pkgDir := filepath.Join(root, "react")

	cjs := readFile(t, pkgDir, "ArrowLeftIcon.js")
	assert.True(t, strings.HasPrefix(cjs, `const React = require("react");`))
	assert.True(t, strings.HasSuffix(cjs, "module.exports = ArrowLeftIcon;\n"))

	esm := readFile(t, pkgDir, "esm", "ArrowLeftIcon.js")
	assert.True(t, strings.HasPrefix(esm, `import * as React from "react";`))
	assert.True(t, strings.HasSuffix(esm, "export default ArrowLeftIcon;\n"))

	dts := readFile(t, pkgDir, "ArrowLeftIcon.d.ts")
	assert.Contains(t, dts, "React.ForwardRefExoticComponent")
	assert.Equal(t, dts, readFile(t, pkgDir, "esm", "ArrowLeftIcon.d.ts"))

	index := readFile(t, pkgDir, "index.js")
	assert.Equal(t, 1, strings.Count(index, `module.exports.ArrowLeftIcon = require("./ArrowLeftIcon.js")`))
	assert.Equal(t, 1, strings.Count(index, `module.exports.XMarkIcon = require("./XMarkIcon.js")`))

	esmIndex := readFile(t, pkgDir, "esm", "index.js")
	assert.Equal(t, 1, strings.Count(esmIndex, `export { default as ArrowLeftIcon } from './ArrowLeftIcon.js'`))
	assert.Equal(t, 1, strings.Count(esmIndex, `export { default as XMarkIcon } from './XMarkIcon.js'`))

	assert.Contains(t, readFile(t, pkgDir, "index.d.ts"), `export { default as XMarkIcon } from './XMarkIcon'`)

	assert.JSONEq(t, `{"type":"module","sideEffects":false}`, readFile(t, pkgDir, "esm", "package.json"))
}

func TestRun_ManifestMerged(t *testing.T) {
	root, iconsDir := setupWorkspace(t, "react")

	_, err := New(Options{Package: "react", IconsDir: iconsDir, RootDir: root}).Run(context.Background())
	require.NoError(t, err)

	pkg := readFile(t, root, "react", "package.json")
	var keys []string
	gjson.Parse(pkg).ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	assert.Equal(t, []string{"name", "version", "license", "exports"}, keys)
	assert.Equal(t, "2.0.0", gjson.Get(pkg, "version").String())
	assert.Equal(t, "./index.js", gjson.Get(pkg, `exports.\..require`).String())
	assert.False(t, gjson.Get(pkg, `exports.\./esm/\*.require`).Exists())
}

func TestRun_ClearsStaleOutputAndKeepsPreserved(t *testing.T) {
	root, iconsDir := setupWorkspace(t, "react")

	_, err := New(Options{Package: "react", IconsDir: iconsDir, RootDir: root}).Run(context.Background())
	require.NoError(t, err)

	pkgDir := filepath.Join(root, "react")
	assert.NoFileExists(t, filepath.Join(pkgDir, "StaleIcon.js"))
	assert.NoFileExists(t, filepath.Join(pkgDir, "esm", "StaleIcon.js"))
	assert.Equal(t, "# icons\n", readFile(t, pkgDir, "README.md"))
	assert.Equal(t, "MIT\n", readFile(t, pkgDir, "esm", "LICENSE"))

	// No staging or backup directories are left next to the package.
	assert.ElementsMatch(t, []string{"icons", "react"}, rootEntries(t, root))
}

func TestRun_KeepsPackageDirMode(t *testing.T) {
	for _, mode := range []os.FileMode{0o755, 0o750} {
		t.Run(mode.String(), func(t *testing.T) {
			root, iconsDir := setupWorkspace(t, "react")
			pkgDir := filepath.Join(root, "react")
			require.NoError(t, os.Chmod(pkgDir, mode))

			_, err := New(Options{Package: "react", IconsDir: iconsDir, RootDir: root}).Run(context.Background())
			require.NoError(t, err)

			info, err := os.Stat(pkgDir)
			require.NoError(t, err)
			assert.Equal(t, mode, info.Mode().Perm())
		})
	}
}

func TestRun_Vue(t *testing.T) {
	root, iconsDir := setupWorkspace(t, "vue")

	result, err := New(Options{Package: "vue", IconsDir: iconsDir, RootDir: root, Concurrency: 1}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Icons)

	pkgDir := filepath.Join(root, "vue")
	assert.Contains(t, readFile(t, pkgDir, "XMarkIcon.js"), "module.exports = function render(_ctx, _cache) {")
	assert.Contains(t, readFile(t, pkgDir, "esm", "XMarkIcon.js"), "export default function render(_ctx, _cache) {")
	assert.Contains(t, readFile(t, pkgDir, "XMarkIcon.d.ts"), "FunctionalComponent<HTMLAttributes & VNodeProps>")
}

func TestRun_Idempotent(t *testing.T) {
	root, iconsDir := setupWorkspace(t, "react")
	p := New(Options{Package: "react", IconsDir: iconsDir, RootDir: root})

	_, err := p.Run(context.Background())
	require.NoError(t, err)
	first := snapshot(t, filepath.Join(root, "react"))

	_, err = p.Run(context.Background())
	require.NoError(t, err)
	second := snapshot(t, filepath.Join(root, "react"))

	assert.Equal(t, first, second)
}

func TestRun_TransformFailureLeavesPackageUntouched(t *testing.T) {
	root, iconsDir := setupWorkspace(t, "react")
	testutil.WriteFile(t, iconsDir, "broken.svg", `<svg><path d="M0 0">`)
	before := snapshot(t, filepath.Join(root, "react"))

	_, err := New(Options{Package: "react", IconsDir: iconsDir, RootDir: root}).Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrTransform)

	assert.Equal(t, before, snapshot(t, filepath.Join(root, "react")))
	assert.ElementsMatch(t, []string{"icons", "react"}, rootEntries(t, root))
}

func TestRun_CancelledLeavesPackageUntouched(t *testing.T) {
	root, iconsDir := setupWorkspace(t, "react")
	before := snapshot(t, filepath.Join(root, "react"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Options{Package: "react", IconsDir: iconsDir, RootDir: root}).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, before, snapshot(t, filepath.Join(root, "react")))
	assert.ElementsMatch(t, []string{"icons", "react"}, rootEntries(t, root))
}

func TestRun_MissingManifest(t *testing.T) {
	root := t.TempDir()
	iconsDir := filepath.Join(root, "icons")
	testutil.WriteFile(t, iconsDir, "arrow-left.svg", arrowLeftSVG)

	_, err := New(Options{Package: "react", IconsDir: iconsDir, RootDir: root}).Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrConfig)
	assert.Equal(t, []string{"icons"}, rootEntries(t, root))
}

func TestRun_UnsupportedPackage(t *testing.T) {
	root, iconsDir := setupWorkspace(t, "svelte")

	_, err := New(Options{Package: "svelte", IconsDir: iconsDir, RootDir: root}).Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrConfig)
	assert.FileExists(t, filepath.Join(root, "svelte", "StaleIcon.js"))
}

func TestRun_MissingIconsDir(t *testing.T) {
	root, _ := setupWorkspace(t, "react")

	_, err := New(Options{Package: "react", IconsDir: filepath.Join(root, "nope"), RootDir: root}).Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrIO)
}

func TestRun_DryRun(t *testing.T) {
	root, iconsDir := setupWorkspace(t, "react")
	before := snapshot(t, filepath.Join(root, "react"))

	result, err := New(Options{Package: "react", IconsDir: iconsDir, RootDir: root, DryRun: true}).Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, result.Files, 14)
	assert.Equal(t, "ArrowLeftIcon.d.ts", result.Files[0].Path)
	assert.Equal(t, before, snapshot(t, filepath.Join(root, "react")))
	assert.ElementsMatch(t, []string{"icons", "react"}, rootEntries(t, root))
}

func TestRender_SubManifestFailureStartsNoTasks(t *testing.T) {
	orig := subManifest
	t.Cleanup(func() { subManifest = orig })
	subManifest = func(jsmodule.Format) (string, []byte, bool, error) {
		return "", nil, false, errors.New("encoding sub-manifest")
	}

	adapter, err := transform.For(transform.React)
	require.NoError(t, err)
	sources := []icons.Source{{FileName: "x-mark.svg", Identifier: "XMarkIcon", Markup: xMarkSVG}}
	out := newMemSink()

	p := New(Options{Package: "react"})
	err = p.render(context.Background(), adapter, sources, out)
	require.Error(t, err)
	assert.Empty(t, out.files())
}

func TestVerify_MissingTarget(t *testing.T) {
	p := New(Options{Package: "react"})
	assert.Equal(t, filepath.Join(".", "react"), p.Dir())

	err := verify(nil, []string{"ArrowLeftIcon"}, []File{{Path: "index.js"}})
	require.Error(t, err)
}
