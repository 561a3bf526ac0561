package platform

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestWriteFileExclusive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Foo.java")

	if err := WriteFileExclusive(path, []byte("first"), 0644); err != nil {
		t.Fatalf("first write: %v", err)
	}

	err := WriteFileExclusive(path, []byte("second"), 0644)
	if !errors.Is(err, fs.ErrExist) {
		t.Fatalf("second write error = %v, want fs.ErrExist", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first" {
		t.Errorf("content = %q, want %q", data, "first")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}

func TestWriteFileExclusivePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on Windows")
	}
	path := filepath.Join(t.TempDir(), "Bar.java")
	if err := WriteFileExclusive(path, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("permissions = %o, want %o", perm, 0600)
	}
}

func TestWriteFileExclusiveMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "Baz.java")
	if err := WriteFileExclusive(path, []byte("x"), 0644); err == nil {
		t.Error("expected error when parent directory is missing")
	}
}

func TestWriteExclusiveFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Qux.java")
	if err := writeExclusiveFallback(path, []byte("one"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := writeExclusiveFallback(path, []byte("two"), 0644); !errors.Is(err, fs.ErrExist) {
		t.Errorf("error = %v, want fs.ErrExist", err)
	}
}
