package generate

import (
	"maps"
	"path"
	"slices"
	"sort"

	"github.com/maruel/natural"

	"ffgen/utils/debug"
)

// String returns readable tree of the generated module for debug report.
func (m *Module) String() string {
	if m == nil {
		return "<nil Module>"
	}

	tw := debug.NewTreeWriter()
	tw.Line(0, "Module source=%q", m.Source)
	tw.Line(1, "Collection %s: %s[] from %q", m.CollectionName, m.DescriptorType, m.DescriptorModule)
	tw.Lines(1, "Header", m.Header)
	tw.Line(1, "Faces: %d", len(m.Faces))
	for _, f := range m.Faces {
		tw.Line(2, "Face[%d] binding=%s line=%d", f.Index, f.Binding, f.SourceLine)
		tw.Text(3, "asset", f.AssetPath)
		tw.Text(3, "unicode-range", f.UnicodeRange)
	}

	// the same asset may be referenced more than once
	dirs := make(map[string][]string)
	for _, f := range m.Faces {
		dir, file := path.Split(f.AssetPath)
		if !slices.Contains(dirs[dir], file) {
			dirs[dir] = append(dirs[dir], file)
		}
	}
	if len(dirs) > 0 {
		tw.Line(1, "Assets by directory: %d", len(dirs))
		keys := slices.Collect(maps.Keys(dirs))
		sort.Sort(natural.StringSlice(keys))
		for _, k := range keys {
			files := dirs[k]
			sort.Sort(natural.StringSlice(files))
			tw.Line(2, "Directory=%q (%d files)", k, len(files))
			for _, f := range files {
				tw.Line(3, "%s", f)
			}
		}
	}
	return tw.String()
}
