package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// fsVault is a [VaultAdapter] over a plain directory tree, standing in for
// the host application's vault. Paths are slash-separated and relative to
// the vault root; anything trying to climb out of the root is rejected.
type fsVault struct {
	root string
}

// NewFSVault returns a VaultAdapter rooted at dir. The directory is created
// if it does not exist yet.
func NewFSVault(dir string) (VaultAdapter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating vault root: %w", err)
	}
	return &fsVault{root: dir}, nil
}

func (v *fsVault) resolve(rel string) (string, error) {
	cleaned := path.Clean("/" + rel)
	if cleaned == "/" {
		return "", fmt.Errorf("empty vault path %q", rel)
	}
	return filepath.Join(v.root, filepath.FromSlash(strings.TrimPrefix(cleaned, "/"))), nil
}

func (v *fsVault) CreateFolder(ctx context.Context, folder string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full, err := v.resolve(folder)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(full, 0o755); err != nil {
		return fmt.Errorf("error creating folder %s: %w", folder, err)
	}
	return nil
}

func (v *fsVault) Read(ctx context.Context, file string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	full, err := v.resolve(file)
	if err != nil {
		return "", err
	}
	content, err := os.ReadFile(full)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%s: %w", file, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", file, err)
	}
	return string(content), nil
}

func (v *fsVault) Write(ctx context.Context, file, content string) error {
	return v.WriteBinary(ctx, file, []byte(content))
}

func (v *fsVault) WriteBinary(ctx context.Context, file string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full, err := v.resolve(file)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("error creating parent folder for %s: %w", file, err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", file, err)
	}
	return nil
}

func (v *fsVault) Remove(ctx context.Context, file string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full, err := v.resolve(file)
	if err != nil {
		return err
	}
	err = os.Remove(full)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", file, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("error removing %s: %w", file, err)
	}
	return nil
}

// ResourcePath maps a vault path onto the /files/ route the HTTP layer
// serves the vault tree from.
func (v *fsVault) ResourcePath(file string) string {
	return "/files/" + strings.TrimPrefix(path.Clean("/"+file), "/")
}

// Root returns the vault root directory for the static file server.
func Root(adapter VaultAdapter) (string, bool) {
	if fsv, ok := adapter.(*fsVault); ok {
		return fsv.root, true
	}
	return "", false
}
