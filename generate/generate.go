// Package generate turns a font-face stylesheet into a source module which
// imports every referenced font asset and exports descriptors of their
// unicode coverage.
package generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"ffgen/common"
	"ffgen/config"
	"ffgen/css"
)

// Options controls a single generation pass.
type Options struct {
	Match            common.MatchMode
	UnclosedHeader   common.UnclosedHeaderPolicy
	DescriptorType   string
	DescriptorModule string
	CollectionName   string

	tmpl *template.Template
}

// DefaultOptions produces output for Excalidraw LXGW WenKai font faces.
func DefaultOptions() *Options {
	opts := &Options{
		Match:            common.MatchModeLine,
		UnclosedHeader:   common.UnclosedHeaderPolicyHeader,
		DescriptorType:   "ExcalidrawFontFaceDescriptor",
		DescriptorModule: "../Fonts",
		CollectionName:   "LXGWWenKaiFontFaces",
	}
	opts.tmpl = template.Must(parseTemplate("module.ts.tmpl", defaultTemplate))
	return opts
}

// NewOptions prepares options from configuration, loading custom template if
// one is requested.
func NewOptions(cfg *config.GeneratorConfig) (*Options, error) {
	opts := &Options{
		Match:            cfg.Stylesheet.Match,
		UnclosedHeader:   cfg.Stylesheet.UnclosedHeader,
		DescriptorType:   cfg.Output.DescriptorType,
		DescriptorModule: cfg.Output.DescriptorModule,
		CollectionName:   cfg.Output.CollectionName,
	}

	name, text := "module.ts.tmpl", defaultTemplate
	if len(cfg.Output.TemplatePath) > 0 {
		data, err := os.ReadFile(cfg.Output.TemplatePath)
		if err != nil {
			return nil, fmt.Errorf("unable to read template from %q: %w", cfg.Output.TemplatePath, err)
		}
		name, text = filepath.Base(cfg.Output.TemplatePath), string(data)
	}

	var err error
	if opts.tmpl, err = parseTemplate(name, text); err != nil {
		return nil, err
	}
	return opts, nil
}

// Build extracts font faces from stylesheet text. source is only used for
// logging and is made available to templates.
func Build(data []byte, source string, opts *Options, log *zap.Logger) (*Module, error) {
	if log == nil {
		log = zap.NewNop()
	}

	doc, err := css.NewExtractor(log, opts.Match, opts.UnclosedHeader).Extract(data, source)
	if err != nil {
		return nil, err
	}
	m := newModule(doc, source, opts)
	if len(m.Faces) == 0 {
		log.Debug("No usable font faces found, descriptors collection will be omitted", zap.String("source", source))
	}
	m.reportCoverage(log)
	return m, nil
}

// Transform is Build followed by Render, the whole generation without any
// file access.
func Transform(data []byte, opts *Options, log *zap.Logger) ([]byte, error) {
	m, err := Build(data, "", opts, log)
	if err != nil {
		return nil, err
	}
	return m.Render(opts.tmpl)
}

// File reads stylesheet src and writes generated module to dst, replacing
// whatever was there. src may point inside zip archive.
func File(ctx context.Context, src, dst string, opts *Options, log *zap.Logger) (*Module, error) {
	s, err := ResolveSource(ctx, src)
	if err != nil {
		return nil, err
	}
	return Generate(ctx, s, dst, opts, log)
}

// Generate is File for already resolved source.
func Generate(ctx context.Context, s *Source, dst string, opts *Options, log *zap.Logger) (*Module, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := s.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to read stylesheet: %w", err)
	}

	m, err := Build(data, s.Path, opts, log)
	if err != nil {
		return nil, fmt.Errorf("unable to process stylesheet %q: %w", s.Path, err)
	}
	out, err := m.Render(opts.tmpl)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := writeFile(dst, out); err != nil {
		return nil, fmt.Errorf("unable to write module: %w", err)
	}
	return m, nil
}

func writeFile(name string, data []byte) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	_, err = f.Write(data)
	return err
}
