package pipeline

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	oerrors "github.com/opmodel/icongen/internal/errors"
)

// preserved names survive a rebuild at any depth of the package directory.
var preserved = map[string]bool{
	"package.json": true,
	"README.md":    true,
	"LICENSE":      true,
	"CHANGELOG.md": true,
}

// stage is a staging tree created beside the package directory. Artifacts are
// written into it and the whole tree replaces the package directory on commit.
type stage struct {
	target string
	dir    string

	mu        sync.Mutex
	written   map[string]int
	committed bool
}

func newStage(target string) (*stage, error) {
	parent := filepath.Dir(target)
	dir, err := os.MkdirTemp(parent, "."+filepath.Base(target)+"-staging-")
	if err != nil {
		return nil, oerrors.NewIOError("creating staging directory", parent, err)
	}

	// MkdirTemp creates 0700; the committed tree takes the package's mode.
	mode := fs.FileMode(0o755)
	if info, err := os.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(dir, mode); err != nil {
		_ = os.RemoveAll(dir)
		return nil, oerrors.NewIOError("setting staging directory mode", dir, err)
	}
	return &stage{target: target, dir: dir, written: make(map[string]int)}, nil
}

// copyPreserved copies preserved files from the package directory into the
// stage, keeping their relative paths and modes.
func (s *stage) copyPreserved() error {
	return filepath.WalkDir(s.target, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return oerrors.NewIOError("scanning package directory", p, err)
		}
		if !d.Type().IsRegular() || !preserved[d.Name()] {
			return nil
		}

		rel, err := filepath.Rel(s.target, p)
		if err != nil {
			return oerrors.NewIOError("resolving preserved file", p, err)
		}
		if err := copyFile(p, filepath.Join(s.dir, rel)); err != nil {
			return oerrors.NewIOError("copying preserved file", p, err)
		}
		return nil
	})
}

func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func (s *stage) prepare(dirs []string) error {
	for _, d := range dirs {
		p := filepath.Join(s.dir, filepath.FromSlash(d))
		if err := os.MkdirAll(p, 0o755); err != nil {
			return oerrors.NewIOError("creating directory", p, err)
		}
	}
	return nil
}

func (s *stage) write(rel string, data []byte) error {
	p := filepath.Join(s.dir, filepath.FromSlash(rel))
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return oerrors.NewIOError("writing file", p, err)
	}

	s.mu.Lock()
	s.written[rel] = len(data)
	s.mu.Unlock()
	return nil
}

func (s *stage) files() []File {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]File, 0, len(s.written))
	for rel, size := range s.written {
		out = append(out, File{Path: rel, Size: size})
	}
	sortFiles(out)
	return out
}

// commit swaps the stage into place: the package directory moves to a backup
// path, the stage takes its name, and the backup is removed. If the second
// rename fails the backup is moved back.
func (s *stage) commit() error {
	backup := s.dir + "-old"

	if err := os.Rename(s.target, backup); err != nil {
		return oerrors.NewIOError("moving package directory aside", s.target, err)
	}
	if err := os.Rename(s.dir, s.target); err != nil {
		if restoreErr := os.Rename(backup, s.target); restoreErr != nil {
			return oerrors.NewIOError("restoring package directory", backup, restoreErr)
		}
		return oerrors.NewIOError("moving staged package into place", s.target, err)
	}
	s.committed = true

	if err := os.RemoveAll(backup); err != nil {
		return oerrors.NewIOError("removing previous package", backup, err)
	}
	return nil
}

// discard removes the stage unless it was committed.
func (s *stage) discard() {
	if s.committed {
		return
	}
	_ = os.RemoveAll(s.dir)
}
