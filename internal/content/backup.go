package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/roboco-io/postblocks/internal/store"
)

// Backup formats.
const (
	BackupFormatJSON     = "json"
	BackupFormatMarkdown = "markdown"
)

// now is swapped in tests.
var now = time.Now

// Backup is a point-in-time snapshot of post content.
type Backup struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Format    string    `json:"format"`
	CreatedAt time.Time `json:"createdAt"`
	Title     string    `json:"title,omitempty"`
}

// CreateContentBackup snapshots content. Content that starts like a stored
// block array must be one; otherwise ErrInvalidContent is returned.
func CreateContentBackup(content, title string) (*Backup, error) {
	format := BackupFormatMarkdown
	if strings.HasPrefix(content, "[{") {
		format = BackupFormatJSON
		if err := store.ValidateBlocksJSON(content); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
		}
	}

	created := now()
	return &Backup{
		ID:        fmt.Sprintf("backup-%d", created.UnixMilli()),
		Content:   content,
		Format:    format,
		CreatedAt: created,
		Title:     title,
	}, nil
}

// Save writes the backup as <dir>/<id>.json and returns the file path.
func (b *Backup) Save(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal backup: %w", err)
	}

	path := filepath.Join(dir, b.ID+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	return path, nil
}

// LoadBackup reads a backup written by Save.
func LoadBackup(path string) (*Backup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup: %w", err)
	}

	var b Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse backup: %w", err)
	}
	return &b, nil
}
