package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/styletools/stylec/internal/codegen"
	"github.com/styletools/stylec/internal/logger"
	"github.com/styletools/stylec/internal/project"
	stylecerrors "github.com/styletools/stylec/pkg/errors"
)

type generateOptions struct {
	ProjectPath string
	Verbose     bool
	Pretty      bool
}

var generateCmdRunner = runGenerate

func newGenerateCmd(root *rootFlags) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compile every module of a style project",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose
			opts.Pretty = term.IsTerminal(int(os.Stderr.Fd()))
			return generateCmdRunner(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ProjectPath, "project", "p", "", "Path to the project manifest")
	cmd.MarkFlagRequired("project") //nolint:errcheck

	return cmd
}

func runGenerate(opts generateOptions) error {
	level := "info"
	if opts.Verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, Pretty: opts.Pretty})
	if err != nil {
		return err
	}

	proj, err := project.Load(opts.ProjectPath)
	if err != nil {
		reportFailure(log, err, "could not load project")
		return err
	}

	genOpts := codegen.Options{
		OutDir:     filepath.Join(proj.Dir, proj.Manifest.OutputDir),
		ImportBase: proj.Manifest.Package,
		AssetDir:   filepath.Join(proj.Dir, proj.Manifest.AssetDir),
	}

	for _, module := range proj.Modules {
		moduleLog := log.WithModule(module.Path)

		path, wrote, err := codegen.NewGenerator(module, genOpts).Generate()
		if err != nil {
			reportFailure(moduleLog, err, "generation failed")
			return err
		}
		if wrote {
			moduleLog.WithFields(map[string]any{"path": path}).Info("generated")
		} else {
			moduleLog.WithFields(map[string]any{"path": path}).Debug("up to date")
		}
	}

	if proj.Manifest.ThemePath != "" {
		if err := exportTheme(proj, log); err != nil {
			return err
		}
	}

	return nil
}

func exportTheme(proj *project.Project, log *logger.Logger) error {
	palette := proj.Palette()
	if palette == nil {
		log.Warn("theme_path is set but the project declares no palette module")
		return nil
	}

	path := filepath.Join(proj.Dir, proj.Manifest.ThemePath)
	wrote, err := codegen.WriteTheme(palette, path)
	if err != nil {
		reportFailure(log.WithModule(palette.Path), err, "theme export failed")
		return err
	}
	if wrote {
		log.WithFields(map[string]any{"path": path}).Info("theme exported")
	} else {
		log.WithFields(map[string]any{"path": path}).Debug("theme up to date")
	}
	return nil
}

// reportFailure logs an error with whatever structured detail its type
// carries before the command returns it.
func reportFailure(log *logger.Logger, err error, msg string) {
	var parseErr *stylecerrors.ParseError
	var validationErr *stylecerrors.ValidationError
	var emitErr *stylecerrors.EmitError
	var assetErr *stylecerrors.AssetError

	switch {
	case errors.As(err, &parseErr):
		log = log.WithFields(map[string]any{"path": parseErr.Path, "line": parseErr.Line})
	case errors.As(err, &validationErr):
		log = log.WithFields(map[string]any{"field": validationErr.Field})
	case errors.As(err, &emitErr):
		log = log.WithFields(map[string]any{"code": int(emitErr.Code), "name": emitErr.Name})
	case errors.As(err, &assetErr):
		log = log.WithFields(map[string]any{"code": int(assetErr.Code), "path": assetErr.Path})
	}
	log.Error(err, msg)
}
