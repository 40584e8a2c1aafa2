// Package pipeline builds a framework icon package from a directory of icons.
package pipeline

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/opmodel/icongen/internal/aggregate"
	"github.com/opmodel/icongen/internal/icons"
	"github.com/opmodel/icongen/internal/jsmodule"
	"github.com/opmodel/icongen/internal/manifest"
	"github.com/opmodel/icongen/internal/output"
	"github.com/opmodel/icongen/internal/transform"
	"github.com/opmodel/icongen/internal/typedecl"
)

// Options configures a pipeline run.
type Options struct {
	// Package is the framework package to build ("react" or "vue").
	Package string

	// IconsDir holds the .svg icon sources.
	IconsDir string

	// RootDir contains the package directories.
	RootDir string

	// Suffix is appended to every component identifier.
	Suffix string

	// Concurrency bounds the number of render tasks in flight.
	// Zero means runtime.GOMAXPROCS(0).
	Concurrency int

	// DryRun renders every artifact in memory and leaves the disk alone.
	DryRun bool
}

// File is one artifact of a build, relative to the package directory.
type File struct {
	Path string
	Size int
}

// Result summarizes a run.
type Result struct {
	Package  string
	Dir      string
	Icons    int
	Files    []File
	Duration time.Duration
}

// Pipeline builds one package.
type Pipeline struct {
	opts Options
	log  *log.Logger
}

// New creates a Pipeline, filling defaults for unset options.
func New(opts Options) *Pipeline {
	if opts.Suffix == "" {
		opts.Suffix = icons.DefaultSuffix
	}
	if opts.RootDir == "" {
		opts.RootDir = "."
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = runtime.GOMAXPROCS(0)
	}
	return &Pipeline{opts: opts, log: output.PackageLogger(opts.Package)}
}

// Dir returns the package directory the pipeline writes.
func (p *Pipeline) Dir() string {
	return filepath.Join(p.opts.RootDir, p.opts.Package)
}

// Run builds the package.
//
// Phase sequence:
//  1. PREPARE: resolve the framework adapter, load the base manifest, read icons
//  2. STAGE:   create a staging tree beside the package and copy preserved files
//  3. RENDER:  fan out component, declaration, index and sub-manifest tasks
//  4. VERIFY:  check every exports target resolves to a rendered file
//  5. COMMIT:  swap the staging tree into place
//
// Any failure before COMMIT removes the staging tree and leaves the package
// directory as it was.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	adapter, err := p.adapter()
	if err != nil {
		return nil, err
	}

	base, err := manifest.Load(filepath.Join(p.Dir(), manifest.FileName))
	if err != nil {
		return nil, err
	}

	sources, err := icons.Read(p.opts.IconsDir, p.opts.Suffix)
	if err != nil {
		return nil, err
	}
	p.log.Debug("read icons", "dir", p.opts.IconsDir, "count", len(sources))

	exports := manifest.DefaultExports()
	merged, err := manifest.Merge(base, exports)
	if err != nil {
		return nil, err
	}

	var out sink
	var st *stage
	if p.opts.DryRun {
		out = newMemSink()
	} else {
		st, err = newStage(p.Dir())
		if err != nil {
			return nil, err
		}
		// Discard is a no-op once the stage is committed.
		defer st.discard()

		if err := st.copyPreserved(); err != nil {
			return nil, err
		}
		out = st
	}

	if err := p.render(ctx, adapter, sources, out); err != nil {
		return nil, err
	}
	if err := out.write(manifest.FileName, merged); err != nil {
		return nil, err
	}

	files := out.files()
	if err := verify(exports, icons.Identifiers(sources), files); err != nil {
		return nil, err
	}

	if st != nil {
		if err := st.commit(); err != nil {
			return nil, err
		}
		p.log.Debug("committed package", "dir", p.Dir())
	}

	return &Result{
		Package:  p.opts.Package,
		Dir:      p.Dir(),
		Icons:    len(sources),
		Files:    files,
		Duration: time.Since(start),
	}, nil
}

func (p *Pipeline) adapter() (transform.Adapter, error) {
	fw, err := transform.ParseFramework(p.opts.Package)
	if err != nil {
		return nil, err
	}
	return transform.For(fw)
}

var subManifest = manifest.SubManifest

// render writes every generated artifact to out. Each task owns a distinct
// path. The first failure cancels the remaining tasks.
func (p *Pipeline) render(ctx context.Context, adapter transform.Adapter, sources []icons.Source, out sink) error {
	fw := adapter.Framework()
	ids := icons.Identifiers(sources)

	if err := out.prepare(formatDirs()); err != nil {
		return err
	}

	// Sub-manifests are resolved before any task starts.
	subs := make(map[jsmodule.Format][]byte)
	subPaths := make(map[jsmodule.Format]string)
	for _, format := range jsmodule.Formats() {
		rel, content, ok, err := subManifest(format)
		if err != nil {
			return err
		}
		if ok {
			subs[format] = content
			subPaths[format] = rel
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Concurrency)

	task := func(rel string, produce func() (string, error)) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			content, err := produce()
			if err != nil {
				return err
			}
			return out.write(rel, []byte(content))
		})
	}

	for _, format := range jsmodule.Formats() {
		dir := format.Dir()

		for _, src := range sources {
			task(path.Join(dir, src.Identifier+".js"), func() (string, error) {
				p.log.Debug("rendering component", "icon", src.FileName, "format", format)
				return adapter.Render(src.Markup, src.Identifier, format)
			})
			task(path.Join(dir, src.Identifier+".d.ts"), func() (string, error) {
				return typedecl.Component(fw, src.Identifier)
			})
		}

		task(path.Join(dir, "index.js"), func() (string, error) {
			return aggregate.Index(ids, format), nil
		})
		task(path.Join(dir, "index.d.ts"), func() (string, error) {
			return aggregate.Declarations(ids), nil
		})

		if content, ok := subs[format]; ok {
			task(subPaths[format], func() (string, error) { return string(content), nil })
		}
	}

	return g.Wait()
}

func formatDirs() []string {
	var dirs []string
	for _, format := range jsmodule.Formats() {
		if format.Dir() != "" {
			dirs = append(dirs, format.Dir())
		}
	}
	return dirs
}

// verify checks that the exports map resolves the package root, the
// manifest and every component to a file in files.
func verify(exports manifest.Exports, ids []string, files []File) error {
	present := make(map[string]bool, len(files))
	for _, f := range files {
		present["./"+f.Path] = true
	}

	check := func(subpath string, conditions ...string) error {
		target, ok := exports.Resolve(subpath, conditions...)
		if !ok {
			return fmt.Errorf("exports: %s does not resolve for %v", subpath, conditions)
		}
		if !present[target] {
			return fmt.Errorf("exports: %s resolves to missing file %s", subpath, target)
		}
		return nil
	}

	subpaths := []string{"."}
	for _, id := range ids {
		subpaths = append(subpaths, "./"+id, "./"+id+".js")
	}

	for _, sp := range subpaths {
		for _, c := range []string{"import", "require", "types"} {
			if err := check(sp, c); err != nil {
				return err
			}
		}
	}
	for _, id := range ids {
		if err := check("./esm/"+id, "import"); err != nil {
			return err
		}
	}
	return check("./package.json", "require", "default")
}

func sortFiles(files []File) {
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
}
