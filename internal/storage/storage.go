// Package storage persists uploaded photo files on local disk under a
// single uploads root. Files are stored per user with server-generated
// names; client-supplied filenames never reach the filesystem.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrFileTooLarge = errors.New("file too large")

const chunkSize = 1 << 20

// Store writes and deletes photo files under a root directory, enforcing
// a size cap on writes and a path traversal guard on deletes.
type Store struct {
	root    string
	maxSize int64
}

// New creates a Store rooted at root with the given per-file size cap.
func New(root string, maxSize int64) *Store {
	return &Store{root: root, maxSize: maxSize}
}

// SavePhoto streams r to disk under the user's photo directory and returns
// the public URL path of the stored file. The file is written in fixed-size
// chunks; the moment the running total exceeds the size cap the write is
// aborted, the partial file removed, and ErrFileTooLarge returned.
func (s *Store) SavePhoto(userID, ext string, r io.Reader) (string, error) {
	dir := filepath.Join(s.root, "photos", userID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload dir: %w", err)
	}

	name := uuid.New().String() + ext
	dst := filepath.Join(dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}

	if err := s.copyCapped(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", err
	}

	return path.Join("/", filepath.Base(s.root), "photos", userID, name), nil
}

func (s *Store) copyCapped(dst io.Writer, src io.Reader) error {
	buf := make([]byte, chunkSize)
	var written int64

	for {
		n, err := src.Read(buf)
		if n > 0 {
			written += int64(n)
			if written > s.maxSize {
				return ErrFileTooLarge
			}
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Remove deletes the file behind a stored URL path. URL paths that resolve
// outside the uploads root are refused; a file that is already gone is not
// an error.
func (s *Store) Remove(urlPath string) error {
	resolved, ok := s.resolve(urlPath)
	if !ok {
		return fmt.Errorf("path %q escapes uploads root", urlPath)
	}

	if err := os.Remove(resolved); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// resolve maps a URL path like /uploads/photos/{user}/{file} onto the
// filesystem and reports whether the result still lies under the root.
// Cleaning happens before the prefix check, so ../ segments cannot smuggle
// a path outside the uploads tree.
func (s *Store) resolve(urlPath string) (string, bool) {
	// Stored URLs are always rooted. A relative path is never something
	// this package produced, so refuse it outright.
	if !strings.HasPrefix(urlPath, "/") {
		return "", false
	}
	cleaned := strings.TrimPrefix(path.Clean(urlPath), "/")

	prefix := filepath.Base(s.root) + "/"
	if !strings.HasPrefix(cleaned, prefix) {
		return "", false
	}
	target := filepath.Join(s.root, filepath.FromSlash(strings.TrimPrefix(cleaned, prefix)))

	base, err := filepath.Abs(s.root)
	if err != nil {
		return "", false
	}
	abs, err := filepath.Abs(target)
	if err != nil {
		return "", false
	}

	rel, err := filepath.Rel(base, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return abs, true
}
