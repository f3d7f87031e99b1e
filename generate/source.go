package generate

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"ffgen/archive"
)

// Source is stylesheet location: either a regular file or a file inside zip
// archive, e.g. "fonts.zip/css/result.css".
type Source struct {
	Path  string // as requested
	File  string // stylesheet or archive on disk
	Entry string // slash separated path in archive, empty for regular file
}

// ResolveSource walks src up looking for the part which exists on disk. It
// has to be the stylesheet itself or a zip archive containing it.
func ResolveSource(ctx context.Context, src string) (*Source, error) {
	var head string
	for head = src; len(head) != 0; head, _ = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exist - probably path in archive
			continue
		}
		tail := strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))

		if fi.Mode().IsDir() {
			if len(tail) == 0 {
				return nil, fmt.Errorf("stylesheet expected, directory found (%s)", head)
			}
			return nil, fmt.Errorf("input source was not found (%s) => (%s): %w", head, tail, fs.ErrNotExist)
		}
		if !fi.Mode().IsRegular() {
			return nil, fmt.Errorf("unexpected path mode for (%s)", head)
		}

		isArchive, err := archive.IsArchive(head)
		if err != nil {
			return nil, fmt.Errorf("unable to check archive type: %w", err)
		}
		switch {
		case isArchive && len(tail) == 0:
			return nil, fmt.Errorf("path to stylesheet inside archive expected (%s)", head)
		case isArchive:
			return &Source{Path: src, File: head, Entry: filepath.ToSlash(tail)}, nil
		case len(tail) == 0:
			return &Source{Path: src, File: head}, nil
		default:
			return nil, fmt.Errorf("input source was not found (%s) => (%s): %w", head, tail, fs.ErrNotExist)
		}
	}
	return nil, fmt.Errorf("input source was not found (%s): %w", src, fs.ErrNotExist)
}

func (s *Source) InArchive() bool {
	return len(s.Entry) > 0
}

// Name is stylesheet file name.
func (s *Source) Name() string {
	if s.InArchive() {
		return path.Base(s.Entry)
	}
	return filepath.Base(s.File)
}

// Dir is directory on disk next to the stylesheet (or archive holding it).
func (s *Source) Dir() string {
	return filepath.Dir(s.File)
}

func (s *Source) Read(ctx context.Context) ([]byte, error) {
	if s.InArchive() {
		return archive.ReadFile(ctx, s.File, s.Entry)
	}
	return os.ReadFile(s.File)
}

// Assets returns file system where font assets referenced by stylesheet
// could be found and stylesheet directory in it. Closer must be called when
// done.
func (s *Source) Assets() (fs.FS, string, io.Closer, error) {
	if !s.InArchive() {
		return os.DirFS(s.Dir()), ".", io.NopCloser(nil), nil
	}
	r, err := archive.Open(s.File)
	if err != nil {
		return nil, "", nil, err
	}
	return r, path.Dir(s.Entry), r, nil
}
