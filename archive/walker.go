// Package archive gives access to stylesheets and font assets packed into zip
// archives, the way font splitters usually distribute their output.
package archive

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/h2non/filetype"
)

// WalkFunc is called for each file in archive visited by Walk. If an error is
// returned, processing stops.
type WalkFunc func(file *zip.File) error

// Open opens archive for reading. Archives having entries with absolute paths
// or path traversal components ("..") are rejected to prevent Zip Slip.
// Returned reader implements fs.FS.
func Open(name string) (*zip.ReadCloser, error) {
	r, err := zip.OpenReader(name)
	if err != nil {
		return nil, err
	}
	for _, f := range r.File {
		if !isSafePath(f.Name) {
			r.Close()
			return nil, fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", f.Name)
		}
	}
	return r, nil
}

// Walk calls walkFn for every file (directories are skipped) in the archive
// which name starts with prefix.
func Walk(ctx context.Context, name, prefix string, walkFn WalkFunc) error {
	r, err := Open(name)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if err := ctx.Err(); err != nil {
			return err
		}
		if f.FileInfo().IsDir() || !strings.HasPrefix(f.Name, prefix) {
			continue
		}
		if err := walkFn(f); err != nil {
			return err
		}
	}
	return nil
}

// ReadFile returns content of the file entry in archive. Error wraps
// fs.ErrNotExist when there is no such entry.
func ReadFile(ctx context.Context, name, entry string) ([]byte, error) {
	var (
		data  []byte
		found bool
	)
	err := Walk(ctx, name, entry, func(f *zip.File) error {
		if f.Name != entry {
			return nil
		}
		r, err := f.Open()
		if err != nil {
			return err
		}
		defer r.Close()

		data, err = io.ReadAll(r)
		found = err == nil
		return err
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%q in archive %q: %w", entry, name, fs.ErrNotExist)
	}
	return data, nil
}

// IsArchive checks file signature.
func IsArchive(name string) (bool, error) {
	f, err := os.Open(name)
	if err != nil {
		return false, err
	}
	defer f.Close()

	// zip signature is only 4 bytes long, but filetype wants a bit more
	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, err
	}
	return filetype.Is(head[:n], "zip"), nil
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
