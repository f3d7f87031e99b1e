package generate

import (
	"archive/zip"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/multierr"
)

// writeZip creates archive in dir with entries in the given order.
func writeZip(t *testing.T, dir string, entries ...[2]string) string {
	t.Helper()
	name := filepath.Join(dir, "fonts.zip")
	f, err := os.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for _, e := range entries {
		fw, err := w.Create(e[0])
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write([]byte(e[1])); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestResolveSource(t *testing.T) {
	dir := t.TempDir()
	css := filepath.Join(dir, "result.css")
	if err := os.WriteFile(css, []byte(header), 0644); err != nil {
		t.Fatal(err)
	}
	arc := writeZip(t, dir,
		[2]string{"css/result.css", header},
		[2]string{"css/a.woff2", string(woff2Head())},
	)
	ctx := context.Background()

	t.Run("regular file", func(t *testing.T) {
		s, err := ResolveSource(ctx, css)
		if err != nil {
			t.Fatalf("ResolveSource() error = %v", err)
		}
		if s.InArchive() || s.File != css || s.Name() != "result.css" || s.Dir() != dir {
			t.Errorf("unexpected source %+v", s)
		}
		data, err := s.Read(ctx)
		if err != nil || string(data) != header {
			t.Errorf("Read() = %q, %v", data, err)
		}
	})

	t.Run("file in archive", func(t *testing.T) {
		src := filepath.Join(arc, "css", "result.css")
		s, err := ResolveSource(ctx, src)
		if err != nil {
			t.Fatalf("ResolveSource() error = %v", err)
		}
		if !s.InArchive() || s.File != arc || s.Entry != "css/result.css" || s.Path != src {
			t.Errorf("unexpected source %+v", s)
		}
		if s.Name() != "result.css" || s.Dir() != dir {
			t.Errorf("Name() = %q, Dir() = %q", s.Name(), s.Dir())
		}
		data, err := s.Read(ctx)
		if err != nil || string(data) != header {
			t.Errorf("Read() = %q, %v", data, err)
		}

		fsys, base, closer, err := s.Assets()
		if err != nil {
			t.Fatalf("Assets() error = %v", err)
		}
		defer closer.Close()
		if base != "css" {
			t.Errorf("base = %q, want css", base)
		}
		errs := multierr.Errors(CheckAssets(fsys, base, []Face{
			{Binding: "_font0", AssetPath: "a.woff2"},
			{Binding: "_font1", AssetPath: "b.woff2"},
		}))
		if len(errs) != 1 || !errors.Is(errs[0], fs.ErrNotExist) {
			t.Errorf("unexpected asset problems: %v", errs)
		}
	})

	t.Run("missing entry in archive", func(t *testing.T) {
		s, err := ResolveSource(ctx, filepath.Join(arc, "css", "absent.css"))
		if err != nil {
			t.Fatalf("ResolveSource() error = %v", err)
		}
		if _, err := s.Read(ctx); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Read() error = %v, want fs.ErrNotExist", err)
		}
	})

	for _, tc := range []struct {
		name     string
		src      string
		notExist bool
	}{
		{"archive itself", arc, false},
		{"directory", dir, false},
		{"missing file", filepath.Join(dir, "absent.css"), true},
		{"below regular file", filepath.Join(css, "more.css"), true},
		{"relative missing", "absent-ffgen-test.css", true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolveSource(ctx, tc.src)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, fs.ErrNotExist); got != tc.notExist {
				t.Errorf("errors.Is(%v, fs.ErrNotExist) = %v, want %v", err, got, tc.notExist)
			}
		})
	}

	t.Run("cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if _, err := ResolveSource(cctx, css); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

func TestFile_FromArchive(t *testing.T) {
	dir := t.TempDir()
	input := header + `@font-face{src:url("./a.woff2");unicode-range:U+41;}` + "\n"
	arc := writeZip(t, dir, [2]string{"css/result.css", input})
	dst := filepath.Join(dir, "index.ts")

	m, err := File(context.Background(), filepath.Join(arc, "css", "result.css"), dst, DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}
	if len(m.Faces) != 1 || m.Faces[0].AssetPath != "a.woff2" {
		t.Errorf("unexpected faces %+v", m.Faces)
	}

	want, err := Transform([]byte(input), DefaultOptions(), nil)
	if err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(want) {
		t.Errorf("archive and plain generation differ\n got: %q\nwant: %q", got, want)
	}
}
