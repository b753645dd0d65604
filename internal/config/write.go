package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const defaultFileMode os.FileMode = 0o600

// Write replaces the file at path with the serialized document. The content
// goes to a sibling temp file first and is renamed over the target, keeping
// the target's permission bits.
func Write(path string, doc *Document) error {
	if path == "" {
		return fmt.Errorf("%w: config path is required", ErrWrite)
	}
	if doc == nil {
		return fmt.Errorf("%w: nil document", ErrWrite)
	}
	data, err := doc.Marshal()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	perm, err := filePerm(path)
	if err != nil {
		return fmt.Errorf("%w: stat config: %w", ErrWrite, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrWrite, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: chmod(%q): %w", ErrWrite, tmpName, err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: write(%q): %w", ErrWrite, tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: fsync(%q): %w", ErrWrite, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close(%q): %w", ErrWrite, tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: rename to %q: %w", ErrWrite, path, err)
	}
	committed = true
	return nil
}

func filePerm(path string) (os.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultFileMode, nil
		}
		return 0, err
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%s is a directory", path)
	}
	return info.Mode().Perm(), nil
}

// FileStore loads and saves documents on the local filesystem.
type FileStore struct{}

func (FileStore) Load(path string) (*Document, error) {
	return Load(path)
}

func (FileStore) Save(path string, doc *Document) error {
	return Write(path, doc)
}
