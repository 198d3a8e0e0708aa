package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	apperr "graphchat/backend/pkg/errors"
)

// Disk stores uploaded file payloads under a single directory. The graph
// keeps only the path returned by Save.
type Disk struct {
	dir string
}

// NewDisk creates the upload directory if needed.
func NewDisk(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperr.NewStorageFailed(dir, err)
	}
	return &Disk{dir: dir}, nil
}

// Save writes src to a new file named <unix-ms>-<original name> and
// returns its path.
func (d *Disk) Save(name string, src io.Reader) (string, error) {
	path := filepath.Join(d.dir, fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(name)))
	dst, err := os.Create(path)
	if err != nil {
		return "", apperr.NewStorageFailed(path, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", apperr.NewStorageFailed(path, err)
	}
	return path, nil
}

// Load reads a previously saved payload back from disk.
func (d *Disk) Load(path string) ([]byte, error) {
	if err := d.check(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.NewStorageFailed(path, err)
	}
	return data, nil
}

// Remove deletes a previously saved payload.
func (d *Disk) Remove(path string) error {
	if err := d.check(path); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return apperr.NewStorageFailed(path, err)
	}
	return nil
}

// check rejects paths outside the upload directory. Stored paths come back
// from the graph, so a tampered node must not reach the filesystem.
func (d *Disk) check(path string) error {
	rel, err := filepath.Rel(d.dir, filepath.Clean(path))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return apperr.NewStorageFailed(path, fmt.Errorf("path escapes upload directory"))
	}
	return nil
}
