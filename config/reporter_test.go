package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func readArchive(t *testing.T, name string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()

	files := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("unable to read %s: %v", f.Name, err)
		}
		files[f.Name] = string(data)
	}
	return files
}

func TestReport_Archive(t *testing.T) {
	tmpDir := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(tmpDir, "report.zip")}

	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	src := filepath.Join(tmpDir, "result.css")
	if err := os.WriteFile(src, []byte("original"), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(tmpDir, "index.ts")
	if err := os.WriteFile(out, []byte("generated"), 0644); err != nil {
		t.Fatal(err)
	}

	r.StoreData("config/config.yaml", []byte("version: 1\n"))
	if err := r.StoreCopy("input/result.css", src); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	r.Store("output/index.ts", out)
	r.Store("missing.log", filepath.Join(tmpDir, "absent.log"))

	// copy is a snapshot - later changes must not be visible
	if err := os.WriteFile(src, []byte("changed"), 0644); err != nil {
		t.Fatal(err)
	}
	copyDir := filepath.Dir(r.entries["input/result.css"].actual)

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	files := readArchive(t, conf.Destination)
	if _, ok := files["MANIFEST"]; !ok {
		t.Error("MANIFEST is missing")
	}
	if files["config/config.yaml"] != "version: 1\n" {
		t.Errorf("config data = %q", files["config/config.yaml"])
	}
	if files["input/result.css"] != "original" {
		t.Errorf("stored copy = %q, want original", files["input/result.css"])
	}
	if files["output/index.ts"] != "generated" {
		t.Errorf("stored file = %q", files["output/index.ts"])
	}
	if _, ok := files["missing.log"]; ok {
		t.Error("absent file should be ignored")
	}

	if _, err := os.Stat(copyDir); !os.IsNotExist(err) {
		t.Errorf("expected private copy %s to be removed", copyDir)
	}
}

func TestReport_StoreCopyVersionsNames(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "a.css")
	if err := os.WriteFile(src, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	r := &Report{entries: make(map[string]entry)}
	for range 2 {
		if err := r.StoreCopy("input", src); err != nil {
			t.Fatalf("StoreCopy() error = %v", err)
		}
	}
	if len(r.entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(r.entries))
	}
	if err := r.StoreCopy("dir", tmpDir); err == nil {
		t.Error("expected error when storing directory copy")
	}
	for _, e := range r.entries {
		os.RemoveAll(filepath.Dir(e.actual))
	}
}

func TestReport_Nil(t *testing.T) {
	var r *Report
	r.Store("a", "b")
	r.StoreData("a", nil)
	if err := r.StoreCopy("a", "b"); err != nil {
		t.Errorf("StoreCopy on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Error("Name on nil report should be empty")
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
}

func TestReport_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}

func TestReport_StoreConflictPanics(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.Store("log", "/tmp/a.log")
	defer func() {
		if recover() == nil {
			t.Error("expected panic on conflicting Store")
		}
	}()
	r.Store("log", "/tmp/b.log")
}
