package generate

import (
	"fmt"

	"go.uber.org/zap"

	"ffgen/css"
)

const bindingPrefix = "_font"

// Face is a single font asset with its coverage, Index is position in the
// order of discovery.
type Face struct {
	Index        int
	Binding      string
	AssetPath    string
	UnicodeRange string
	SourceLine   int
}

// Import pairs binding name with asset module path.
type Import struct {
	Binding string
	Path    string
}

// Descriptor pairs binding name with unicode range.
type Descriptor struct {
	Binding      string
	UnicodeRange string
}

// Module is everything generated source consists of. Imports and Descriptors
// are both derived from Faces so they always agree in length and order.
type Module struct {
	Source           string
	Header           string
	Faces            []Face
	DescriptorType   string
	DescriptorModule string
	CollectionName   string
}

func newModule(doc *css.Document, source string, opts *Options) *Module {
	m := &Module{
		Source:           source,
		Header:           doc.Header,
		Faces:            make([]Face, 0, len(doc.Faces)),
		DescriptorType:   opts.DescriptorType,
		DescriptorModule: opts.DescriptorModule,
		CollectionName:   opts.CollectionName,
	}
	for i, f := range doc.Faces {
		m.Faces = append(m.Faces, Face{
			Index:        i,
			Binding:      fmt.Sprintf("%s%d", bindingPrefix, i),
			AssetPath:    f.AssetPath,
			UnicodeRange: f.UnicodeRange,
			SourceLine:   f.SourceLine,
		})
	}
	return m
}

// Imports returns import statements data in order.
func (m *Module) Imports() []Import {
	imports := make([]Import, 0, len(m.Faces))
	for _, f := range m.Faces {
		imports = append(imports, Import{Binding: f.Binding, Path: "./" + f.AssetPath})
	}
	return imports
}

// Descriptors returns collection entries in order.
func (m *Module) Descriptors() []Descriptor {
	descriptors := make([]Descriptor, 0, len(m.Faces))
	for _, f := range m.Faces {
		descriptors = append(descriptors, Descriptor{Binding: f.Binding, UnicodeRange: f.UnicodeRange})
	}
	return descriptors
}

// reportCoverage logs unicode coverage of the module. Malformed ranges are
// reported and otherwise ignored, they are emitted as is.
func (m *Module) reportCoverage(log *zap.Logger) {
	var all []css.RuneRange
	for _, f := range m.Faces {
		ranges, err := css.ParseUnicodeRange(f.UnicodeRange)
		if err != nil {
			log.Warn("Unable to parse unicode range", zap.String("binding", f.Binding), zap.String("asset", f.AssetPath), zap.Error(err))
			continue
		}
		if len(ranges) == 0 {
			log.Debug("Font face has no unicode range", zap.String("binding", f.Binding), zap.String("asset", f.AssetPath))
			continue
		}
		log.Debug("Font face coverage", zap.String("binding", f.Binding), zap.String("asset", f.AssetPath),
			zap.Int("code points", css.CodePoints(css.Coverage(ranges...))))
		all = append(all, ranges...)
	}
	log.Debug("Total coverage", zap.Int("faces", len(m.Faces)), zap.Int("code points", css.CodePoints(css.Coverage(all...))))
}
