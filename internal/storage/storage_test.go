package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T, maxSize int64) *Store {
	t.Helper()
	root := filepath.Join(t.TempDir(), "uploads")
	return New(root, maxSize)
}

func TestSavePhoto(t *testing.T) {
	store := newTestStore(t, 1<<20)

	url, err := store.SavePhoto("user-1", ".jpg", strings.NewReader("fake image bytes"))
	if err != nil {
		t.Fatalf("SavePhoto() unexpected error: %v", err)
	}

	if !strings.HasPrefix(url, "/uploads/photos/user-1/") {
		t.Errorf("url = %q, want /uploads/photos/user-1/ prefix", url)
	}
	if !strings.HasSuffix(url, ".jpg") {
		t.Errorf("url = %q, want .jpg suffix", url)
	}

	name := filepath.Base(url)
	data, err := os.ReadFile(filepath.Join(store.root, "photos", "user-1", name))
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Errorf("stored content = %q", data)
	}
}

func TestSavePhoto_TooLarge(t *testing.T) {
	store := newTestStore(t, 10)

	_, err := store.SavePhoto("user-1", ".jpg", strings.NewReader("this payload exceeds ten bytes"))
	if err != ErrFileTooLarge {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}

	// No partial file may survive an aborted write.
	entries, err := os.ReadDir(filepath.Join(store.root, "photos", "user-1"))
	if err != nil {
		t.Fatalf("reading upload dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("found %d leftover files after aborted upload", len(entries))
	}
}

func TestSavePhoto_DistinctNames(t *testing.T) {
	store := newTestStore(t, 1<<20)

	url1, err := store.SavePhoto("user-1", ".png", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("SavePhoto() unexpected error: %v", err)
	}
	url2, err := store.SavePhoto("user-1", ".png", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("SavePhoto() unexpected error: %v", err)
	}
	if url1 == url2 {
		t.Error("two uploads should never share a filename")
	}
}

func TestRemove(t *testing.T) {
	store := newTestStore(t, 1<<20)

	url, err := store.SavePhoto("user-1", ".jpg", strings.NewReader("bytes"))
	if err != nil {
		t.Fatalf("SavePhoto() unexpected error: %v", err)
	}

	if err := store.Remove(url); err != nil {
		t.Fatalf("Remove() unexpected error: %v", err)
	}

	name := filepath.Base(url)
	if _, err := os.Stat(filepath.Join(store.root, "photos", "user-1", name)); !os.IsNotExist(err) {
		t.Error("file should be gone after Remove()")
	}
}

func TestRemove_MissingFile(t *testing.T) {
	store := newTestStore(t, 1<<20)

	if err := store.Remove("/uploads/photos/user-1/never-existed.jpg"); err != nil {
		t.Errorf("Remove() of a missing file should be a no-op, got %v", err)
	}
}

func TestRemove_Traversal(t *testing.T) {
	store := newTestStore(t, 1<<20)

	paths := []string{
		"/uploads/../../etc/passwd",
		"/uploads/photos/user-1/../../../secret.txt",
		"/etc/passwd",
		"../uploads/photos/user-1/x.jpg",
	}
	for _, p := range paths {
		if err := store.Remove(p); err == nil {
			t.Errorf("Remove(%q) should refuse paths outside the uploads root", p)
		}
	}
}
