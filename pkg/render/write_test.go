package render

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckTarget_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classroom.yml")
	if err := CheckTarget(path, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckTarget_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classroom.yml")
	if err := os.WriteFile(path, []byte("old"), 0o600); err != nil {
		t.Fatal(err)
	}

	err := CheckTarget(path, false)
	if err == nil {
		t.Fatal("expected error for existing file")
	}
	if !errors.Is(err, ErrExists) {
		t.Fatalf("expected ErrExists, got: %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected error to name the path, got: %v", err)
	}
}

func TestCheckTarget_Force(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classroom.yml")
	if err := os.WriteFile(path, []byte("old"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := CheckTarget(path, true); err != nil {
		t.Fatalf("unexpected error with force: %v", err)
	}
}

func TestWriteFile_CreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".github", "workflows", "classroom.yml")

	if err := WriteFile(path, []byte("name: test\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "name: test\n" {
		t.Errorf("unexpected content %q", string(content))
	}
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classroom.yml")
	if err := WriteFile(path, []byte("first")); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, []byte("second")); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "second" {
		t.Errorf("unexpected content %q", string(content))
	}
}
