package main

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"ffgen/generate"
	"ffgen/state"
)

// generateModule is the action of generate command.
func generateModule(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate")

	if env.Opts == nil {
		return errors.New("generator is not prepared")
	}

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input stylesheet has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}
	s, err := generate.ResolveSource(ctx, src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		dst = filepath.Join(s.Dir(), env.Cfg.Generator.Output.FileName)
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	if env.Rpt != nil {
		if err := storeInput(ctx, env, s); err != nil {
			log.Warn("Unable to store stylesheet in the report", zap.Error(err))
		}
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("match", env.Opts.Match))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	m, err := generate.Generate(ctx, s, dst, env.Opts, log)
	if err != nil {
		return err
	}
	if env.Rpt != nil {
		env.Rpt.Store("output/"+filepath.Base(dst), dst)
		env.Rpt.StoreData("debug/module.txt", []byte(m.String()))
	}

	log.Info("Module generated", zap.Int("faces", len(m.Faces)), zap.String("collection", m.CollectionName))

	if env.Cfg.Generator.Assets.Check {
		checkAssets(s, m, log)
	}
	return nil
}

// storeInput puts stylesheet into debug report, archives could be large so
// only the stylesheet is taken from them.
func storeInput(ctx context.Context, env *state.LocalEnv, s *generate.Source) error {
	if !s.InArchive() {
		return env.Rpt.StoreCopy("input/"+s.Name(), s.File)
	}
	data, err := s.Read(ctx)
	if err != nil {
		return err
	}
	env.Rpt.StoreData("input/"+s.Name(), data)
	return nil
}

// checkAssets only warns, generated module is usable regardless.
func checkAssets(s *generate.Source, m *generate.Module, log *zap.Logger) {
	fsys, dir, closer, err := s.Assets()
	if err != nil {
		log.Warn("Unable to check assets", zap.String("source", s.Path), zap.Error(err))
		return
	}
	defer closer.Close()

	for _, e := range multierr.Errors(generate.CheckAssets(fsys, dir, m.Faces)) {
		log.Warn("Asset check failed", zap.Error(e))
	}
}
