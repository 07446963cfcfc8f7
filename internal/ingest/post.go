package ingest

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/adrg/frontmatter"
)

// Meta is the frontmatter of a post source file.
type Meta struct {
	Title  string    `yaml:"title,omitempty" json:"title,omitempty"`
	Slug   string    `yaml:"slug,omitempty" json:"slug,omitempty"`
	Author string    `yaml:"author,omitempty" json:"author,omitempty"`
	Tags   []string  `yaml:"tags,omitempty" json:"tags,omitempty"`
	Date   time.Time `yaml:"date,omitempty" json:"date,omitempty"`
	Draft  bool      `yaml:"draft,omitempty" json:"draft"`
}

// IsZero reports whether no frontmatter field is set.
func (m Meta) IsZero() bool {
	return m.Title == "" && m.Slug == "" && m.Author == "" && len(m.Tags) == 0 && m.Date.IsZero() && !m.Draft
}

// Post is a loaded source file.
type Post struct {
	Name      string
	Converter string
	Meta      Meta
	// Body is markdown, or a stored block array for .json sources.
	Body string
}

var defaultRegistry = NewRegistry()

// LoadPost reads and converts the post at path.
func LoadPost(ctx context.Context, path string) (*Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read post: %w", err)
	}
	return ReadPost(ctx, path, data)
}

// ReadPost converts data using the converter chosen by name's extension.
// Frontmatter is split off markdown and text sources before conversion.
func ReadPost(ctx context.Context, name string, data []byte) (*Post, error) {
	return defaultRegistry.ReadPost(ctx, name, data)
}

// ReadPost is the Registry form of the package-level ReadPost.
func (r *Registry) ReadPost(ctx context.Context, name string, data []byte) (*Post, error) {
	c, err := r.ForFile(name)
	if err != nil {
		return nil, err
	}

	post := &Post{Name: name, Converter: c.Name()}

	body := data
	if hasFrontMatter(c) {
		body, err = frontmatter.Parse(bytes.NewReader(data), &post.Meta)
		if err != nil {
			return nil, fmt.Errorf("parse frontmatter: %w", err)
		}
	}

	post.Body, err = c.Convert(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("%s converter: %w", c.Name(), err)
	}
	return post, nil
}

func hasFrontMatter(c Converter) bool {
	switch c.(type) {
	case markdownConverter, textConverter:
		return true
	}
	return false
}
