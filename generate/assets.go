package generate

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"

	"github.com/h2non/filetype"
	"go.uber.org/multierr"
)

// enough for any signature filetype knows about
const headSize = 262

// CheckAssets verifies that every face references readable font file. Asset
// paths are relative to dir in fsys. All problems are returned combined, use
// multierr.Errors to split.
func CheckAssets(fsys fs.FS, dir string, faces []Face) error {
	var errs error
	for _, f := range faces {
		name := path.Join(dir, f.AssetPath)
		if !fs.ValidPath(name) {
			errs = multierr.Append(errs, fmt.Errorf("asset %q of %s is outside of stylesheet location", f.AssetPath, f.Binding))
			continue
		}
		head, err := readHead(fsys, name)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("asset %q of %s: %w", f.AssetPath, f.Binding, err))
			continue
		}
		if !filetype.IsFont(head) {
			errs = multierr.Append(errs, fmt.Errorf("asset %q of %s is not a font file", f.AssetPath, f.Binding))
		}
	}
	return errs
}

func readHead(fsys fs.FS, name string) ([]byte, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	head := make([]byte, headSize)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return head[:n], nil
}
