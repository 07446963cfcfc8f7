package ingest

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ErrUnsupportedFile is returned when no converter handles a file extension.
var ErrUnsupportedFile = errors.New("unsupported file type")

// Registry routes source files to converters by extension.
// Safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	converters map[string]Converter // key: lowercase extension with dot
}

// NewRegistry returns a registry with the standard converters registered.
func NewRegistry() *Registry {
	r := &Registry{converters: make(map[string]Converter)}

	r.Register(NewMarkdownConverter())
	r.Register(NewTextConverter())
	r.Register(NewHTMLConverter())
	r.Register(NewBlocksConverter())

	return r
}

// Register associates c with each of its extensions, replacing any converter
// previously registered for them.
func (r *Registry) Register(c Converter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ext := range c.SupportedExtensions() {
		r.converters[normalizeExt(ext)] = c
	}
}

// Get returns the converter for ext, or nil. Lookup is case-insensitive.
func (r *Registry) Get(ext string) Converter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.converters[normalizeExt(ext)]
}

// ForFile returns the converter for filename's extension.
func (r *Registry) ForFile(filename string) (Converter, error) {
	ext := filepath.Ext(filename)
	c := r.Get(ext)
	if c == nil {
		if ext == "" {
			ext = "(none)"
		}
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, ext)
	}
	return c, nil
}

// Convert converts content using the converter for filename.
func (r *Registry) Convert(ctx context.Context, filename string, content []byte) (string, error) {
	c, err := r.ForFile(filename)
	if err != nil {
		return "", err
	}
	return c.Convert(ctx, content)
}

// SupportedExtensions returns every registered extension, sorted.
func (r *Registry) SupportedExtensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]string, 0, len(r.converters))
	for ext := range r.converters {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
