package archive

import (
	"archive/zip"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// createZip writes archive with given entries, names ending with "/" become
// directories.
func createZip(t *testing.T, entries map[string]string) string {
	t.Helper()
	zipPath := filepath.Join(t.TempDir(), "fonts.zip")

	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer zipFile.Close()

	w := zip.NewWriter(zipFile)
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to create file %s in zip: %v", name, err)
		}
		if _, err := fw.Write([]byte(entries[name])); err != nil {
			t.Fatalf("Failed to write content for %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to finish zip: %v", err)
	}
	return zipPath
}

func TestWalk(t *testing.T) {
	zipPath := createZip(t, map[string]string{
		"css/":            "",
		"css/result.css":  "body {}",
		"css/extra.css":   "p {}",
		"fonts/a.woff2":   "a",
		"readme.txt":      "readme",
	})

	tests := []struct {
		name   string
		prefix string
		want   []string
	}{
		{"everything", "", []string{"css/extra.css", "css/result.css", "fonts/a.woff2", "readme.txt"}},
		{"directory", "css/", []string{"css/extra.css", "css/result.css"}},
		{"no match", "images/", nil},
		{"case sensitive", "CSS/", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var visited []string
			err := Walk(context.Background(), zipPath, tt.prefix, func(f *zip.File) error {
				visited = append(visited, f.Name)
				return nil
			})
			if err != nil {
				t.Fatalf("Walk() error = %v", err)
			}
			if !slices.Equal(visited, tt.want) {
				t.Errorf("visited %v, want %v", visited, tt.want)
			}
		})
	}
}

func TestWalk_EarlyTermination(t *testing.T) {
	zipPath := createZip(t, map[string]string{"a": "1", "b": "2", "c": "3"})
	stop := errors.New("stop")

	count := 0
	err := Walk(context.Background(), zipPath, "", func(*zip.File) error {
		count++
		if count == 2 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("Walk() error = %v, want %v", err, stop)
	}
	if count != 2 {
		t.Errorf("visited %d files, want 2", count)
	}
}

func TestWalk_Cancelled(t *testing.T) {
	zipPath := createZip(t, map[string]string{"a": "1"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Walk(ctx, zipPath, "", func(*zip.File) error {
		t.Error("walkFn must not be called")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Walk() error = %v, want context.Canceled", err)
	}
}

func TestOpen_Invalid(t *testing.T) {
	t.Run("nonexistent file", func(t *testing.T) {
		if _, err := Open("/nonexistent/file.zip"); err == nil {
			t.Error("Expected error for nonexistent file")
		}
	})

	t.Run("invalid zip file", func(t *testing.T) {
		invalidZip := filepath.Join(t.TempDir(), "invalid.zip")
		if err := os.WriteFile(invalidZip, []byte("not a zip file"), 0644); err != nil {
			t.Fatalf("Failed to create invalid zip: %v", err)
		}
		if _, err := Open(invalidZip); err == nil {
			t.Error("Expected error for invalid zip file")
		}
	})

	t.Run("path traversal", func(t *testing.T) {
		zipPath := createZip(t, map[string]string{"css/../../evil.css": "x"})
		if _, err := Open(zipPath); err == nil {
			t.Error("Expected error for unsafe entry")
		}
	})
}

func TestOpen_FS(t *testing.T) {
	zipPath := createZip(t, map[string]string{"fonts/a.woff2": "font data"})
	r, err := Open(zipPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	data, err := fs.ReadFile(r, "fonts/a.woff2")
	if err != nil {
		t.Fatalf("fs.ReadFile() error = %v", err)
	}
	if string(data) != "font data" {
		t.Errorf("got %q", data)
	}
}

func TestReadFile(t *testing.T) {
	zipPath := createZip(t, map[string]string{
		"css/result.css":     "@font-face {}",
		"css/result.css.bak": "old",
	})

	data, err := ReadFile(context.Background(), zipPath, "css/result.css")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "@font-face {}" {
		t.Errorf("got %q", data)
	}

	if _, err := ReadFile(context.Background(), zipPath, "css/absent.css"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile() error = %v, want fs.ErrNotExist", err)
	}
}

func TestIsArchive(t *testing.T) {
	zipPath := createZip(t, map[string]string{"a": "1"})
	if ok, err := IsArchive(zipPath); err != nil || !ok {
		t.Errorf("IsArchive(zip) = %v, %v", ok, err)
	}

	text := filepath.Join(t.TempDir(), "result.css")
	if err := os.WriteFile(text, []byte("/* header */\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if ok, err := IsArchive(text); err != nil || ok {
		t.Errorf("IsArchive(text) = %v, %v", ok, err)
	}

	empty := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if ok, err := IsArchive(empty); err != nil || ok {
		t.Errorf("IsArchive(empty) = %v, %v", ok, err)
	}

	if _, err := IsArchive("/nonexistent/file.zip"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestIsSafePath(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"css/result.css", true},
		{"fonts/a..b.woff2", true},
		{"/etc/passwd", false},
		{`\windows\file`, false},
		{"../up.css", false},
		{"css/../../up.css", false},
	}
	for _, tt := range tests {
		if got := isSafePath(tt.name); got != tt.want {
			t.Errorf("isSafePath(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
