// Package session owns the host-side bookkeeping around the parsing
// pipeline: file admission, reading source text into memory, and a
// registry mapping each open document to its delivery state.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// MaxFileSize is the admission cap; larger files are rejected before
// their text is ever read.
const MaxFileSize = 100 << 20 // 100 MiB

var allowedExtensions = map[string]bool{
	".csv": true,
	".tsv": true,
}

// Document is one open source file: its full decoded text plus how many
// rows have been delivered to the rendering surface so far. The parsing
// pipeline itself is stateless; Delivered is the caller-owned load state
// that fuels each load-more request.
type Document struct {
	Path      string
	Text      string
	Delivered int
}

// Registry maps document paths to their open Document. It replaces any
// notion of a process-wide "current document": every consumer attaches
// explicitly and multiple documents can be open at once.
type Registry struct {
	mu   sync.Mutex
	docs map[string]*Document
}

func NewRegistry() *Registry {
	return &Registry{docs: make(map[string]*Document)}
}

// Open returns the Document registered for path, admitting and reading
// the file on first use. A second Open for the same path attaches to the
// existing Document, preserving its delivery state.
func (r *Registry) Open(path string) (*Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if doc, ok := r.docs[path]; ok {
		return doc, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := Admit(path, info.Size()); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	doc := &Document{Path: path, Text: string(data)}
	r.docs[path] = doc
	return doc, nil
}

// Close releases the Document for path; a later Open re-reads the file.
func (r *Registry) Close(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.docs, path)
}

// Admit checks a file against the extension and size gates without
// touching its contents.
func Admit(path string, size int64) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !allowedExtensions[ext] {
		return fmt.Errorf("unsupported file type %q: only .csv and .tsv files can be opened", ext)
	}
	if size > MaxFileSize {
		return fmt.Errorf("file is too large to open (%d bytes, limit is 100 MiB)", size)
	}
	return nil
}
