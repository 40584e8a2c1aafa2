package pipeline

import (
	"sync"
)

// sink receives rendered artifacts by package-relative slash path.
type sink interface {
	// prepare creates the given subdirectories before any write.
	prepare(dirs []string) error

	// write stores one artifact. Safe for concurrent use with distinct paths.
	write(rel string, data []byte) error

	// files lists every artifact written so far, sorted by path.
	files() []File
}

// memSink keeps artifacts in memory for dry runs.
type memSink struct {
	mu      sync.Mutex
	content map[string][]byte
}

func newMemSink() *memSink {
	return &memSink{content: make(map[string][]byte)}
}

func (m *memSink) prepare([]string) error { return nil }

func (m *memSink) write(rel string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.content[rel] = data
	return nil
}

func (m *memSink) files() []File {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]File, 0, len(m.content))
	for rel, data := range m.content {
		out = append(out, File{Path: rel, Size: len(data)})
	}
	sortFiles(out)
	return out
}
