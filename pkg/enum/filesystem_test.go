package enum

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
)

// collectPaths runs the enumerator and returns the relative paths it yielded.
func collectPaths(t *testing.T, config Config) []string {
	t.Helper()
	var mu sync.Mutex
	var found []string
	err := NewFilesystemEnumerator(config).Enumerate(context.Background(), func(f File) error {
		rel, err := filepath.Rel(config.Root, f.Path)
		if err != nil || rel == "." {
			rel = filepath.Base(f.Path)
		}
		mu.Lock()
		found = append(found, filepath.ToSlash(rel))
		mu.Unlock()
		return nil
	})
	if err != nil {
		t.Fatalf("enumerate failed: %v", err)
	}
	sort.Strings(found)
	return found
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
}

func equalPaths(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestFilesystemEnumerator(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "file1.txt"), "hello world")
	writeFile(t, filepath.Join(tmpDir, "file2.md"), "test content")
	writeFile(t, filepath.Join(tmpDir, "subdir", "subfile.txt"), "nested content")

	var mu sync.Mutex
	contents := map[string]string{}
	err := NewFilesystemEnumerator(Config{Root: tmpDir}).Enumerate(context.Background(), func(f File) error {
		mu.Lock()
		contents[filepath.Base(f.Path)] = f.Content
		mu.Unlock()
		return nil
	})
	if err != nil {
		t.Fatalf("enumerate failed: %v", err)
	}

	if len(contents) != 3 {
		t.Errorf("expected 3 files, got %d: %v", len(contents), contents)
	}
	if contents["subfile.txt"] != "nested content" {
		t.Errorf("unexpected content: %q", contents["subfile.txt"])
	}
}

func TestFilesystemEnumerator_HiddenFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "visible.txt"), "visible")
	writeFile(t, filepath.Join(tmpDir, ".hidden.txt"), "hidden")
	writeFile(t, filepath.Join(tmpDir, ".hiddendir", "inner.txt"), "inner")

	got := collectPaths(t, Config{Root: tmpDir})
	if want := []string{"visible.txt"}; !equalPaths(got, want) {
		t.Errorf("without hidden: got %v, want %v", got, want)
	}

	got = collectPaths(t, Config{Root: tmpDir, IncludeHidden: true})
	if want := []string{".hidden.txt", ".hiddendir/inner.txt", "visible.txt"}; !equalPaths(got, want) {
		t.Errorf("with hidden: got %v, want %v", got, want)
	}
}

func TestFilesystemEnumerator_MaxFileSize(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "small.txt"), "small")
	writeFile(t, filepath.Join(tmpDir, "large.txt"), "this file is larger than the limit")

	got := collectPaths(t, Config{Root: tmpDir, MaxFileSize: 10})
	if want := []string{"small.txt"}; !equalPaths(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFilesystemEnumerator_BinaryAndInvalidUTF8(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "text.txt"), "plain text")
	writeFile(t, filepath.Join(tmpDir, "binary.bin"), "abc\x00def")
	writeFile(t, filepath.Join(tmpDir, "latin1.txt"), "caf\xe9")

	got := collectPaths(t, Config{Root: tmpDir})
	if want := []string{"text.txt"}; !equalPaths(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFilesystemEnumerator_Gitignore(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".gitignore"), "*.log\nbuild/\n")
	writeFile(t, filepath.Join(tmpDir, "keep.txt"), "keep")
	writeFile(t, filepath.Join(tmpDir, "debug.log"), "ignored")
	writeFile(t, filepath.Join(tmpDir, "build", "out.txt"), "ignored")

	got := collectPaths(t, Config{Root: tmpDir})
	if want := []string{"keep.txt"}; !equalPaths(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFilesystemEnumerator_Extensions(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "README.MD"), "readme")
	writeFile(t, filepath.Join(tmpDir, "notes.txt"), "notes")
	writeFile(t, filepath.Join(tmpDir, "main.go"), "package main")

	got := collectPaths(t, Config{Root: tmpDir, Extensions: []string{"md", ".txt"}})
	if want := []string{"README.MD", "notes.txt"}; !equalPaths(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFilesystemEnumerator_SingleFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ".draft.txt")
	writeFile(t, path, "draft")

	got := collectPaths(t, Config{Root: path})
	if want := []string{".draft.txt"}; !equalPaths(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFilesystemEnumerator_MissingRoot(t *testing.T) {
	err := NewFilesystemEnumerator(Config{Root: filepath.Join(t.TempDir(), "missing")}).
		Enumerate(context.Background(), func(File) error { return nil })
	if err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestFilesystemEnumerator_CallbackError(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a.txt"), "a")

	sentinel := os.ErrPermission
	err := NewFilesystemEnumerator(Config{Root: tmpDir}).Enumerate(context.Background(), func(File) error {
		return sentinel
	})
	if err != sentinel {
		t.Errorf("expected callback error, got %v", err)
	}
}

func TestIsHidden(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{".hidden", true},
		{".git", true},
		{"visible", false},
		{"file.txt", false},
		{".", false},
		{"..", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isHidden(tt.name); got != tt.expected {
				t.Errorf("isHidden(%q) = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestFilesystemEnumerator_ContextCancellation(t *testing.T) {
	tmpDir := t.TempDir()
	for i := 0; i < 10; i++ {
		writeFile(t, filepath.Join(tmpDir, "file"+string(rune('a'+i))+".txt"), "content")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewFilesystemEnumerator(Config{Root: tmpDir}).Enumerate(ctx, func(File) error { return nil })
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
