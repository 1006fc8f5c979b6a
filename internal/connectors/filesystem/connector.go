// Package filesystem provides local file discovery, reading and
// snippet writing, plus a change watcher for watch mode.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/snipper-cli/internal/core/domain"
	"github.com/custodia-labs/snipper-cli/internal/core/ports/driven"
)

// Ensure Connector implements the interfaces.
var (
	_ driven.FileDiscovery = (*Connector)(nil)
	_ driven.FileReader    = (*Connector)(nil)
	_ driven.SnippetWriter = (*Connector)(nil)
)

// Connector is the local filesystem adapter.
type Connector struct{}

// New creates a filesystem connector.
func New() *Connector {
	return &Connector{}
}

// Discover returns the paths of all regular files beneath root whose
// extension matches one of extensions, case-insensitively. Extensions
// are given without a leading dot. Unreadable subtrees are skipped.
func (c *Connector) Discover(ctx context.Context, root string, extensions []string) ([]string, error) {
	wanted := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		wanted[strings.ToLower(strings.TrimPrefix(ext, "."))] = true
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entry: skip it, keep walking siblings.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		if wanted[ext] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return files, nil
}

// ReadText returns the complete contents of the file at path.
func (c *Connector) ReadText(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// WriteOverwrite creates or truncates the file at path. A file whose
// content already equals content is left untouched, so a watch pass
// never observes its own writes.
func (c *Connector) WriteOverwrite(_ context.Context, path, content string) error {
	if existing, err := os.ReadFile(path); err == nil && string(existing) == content {
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteExclusive creates the file at path, failing with
// domain.ErrAlreadyExists when it is already present.
func (c *Connector) WriteExclusive(_ context.Context, path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%s: %w", path, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
