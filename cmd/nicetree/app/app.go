/*
Package app wires the walker and the formatter together for the CLI: it
validates the requested path, runs the walk, renders the result, and prints
the optional statistics block.
*/
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/teatonedev/nicetree/internal/config"
	"github.com/teatonedev/nicetree/pkg/logger"
	"github.com/teatonedev/nicetree/pkg/output"
	"github.com/teatonedev/nicetree/pkg/tree"
)

// App is the application container.
type App struct {
	cfg config.Config
	log logger.Logger
	fs  afero.Fs
	out io.Writer
}

// New builds an App running against the OS filesystem and stdout.
func New(cfg config.Config, log logger.Logger) *App {
	return &App{
		cfg: cfg,
		log: log,
		fs:  afero.NewOsFs(),
		out: os.Stdout,
	}
}

// Run walks path, renders the tree in the configured encoding, and writes it
// to the output, followed by the statistics block when enabled.
func (a *App) Run(ctx context.Context, path string) error {
	if err := a.validatePath(path); err != nil {
		return err
	}

	walker := tree.NewWalker(a.cfg.WalkerConfig(), a.fs, a.log)
	root, err := walker.Walk(ctx, path)
	if err != nil {
		return err
	}
	if root == nil {
		return errors.New("could not generate tree")
	}

	formatter := output.NewFormatter(output.Config{
		Format:   output.Format(a.cfg.Format),
		Charset:  output.Charset(a.cfg.Charset),
		Colors:   a.colorsEnabled(),
		ShowSize: a.cfg.ShowSize,
	}, a.log)

	text, err := formatter.Format(root, true)
	if err != nil {
		return err
	}
	if text != "" {
		fmt.Fprintln(a.out, text)
	}

	if a.cfg.ShowStats {
		stats := tree.Collect(root)
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, output.FormatStatistics(stats, a.cfg.ShowSize))
	}

	return nil
}

// validatePath rejects a missing or non-directory path before any traversal
// begins.
func (a *App) validatePath(path string) error {
	info, err := a.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", tree.ErrPathNotFound, path)
		}
		return fmt.Errorf("failed to access path %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", tree.ErrNotDirectory, path)
	}
	return nil
}

// colorsEnabled resolves the color capability the formatter consumes: colors
// must not be force-disabled, and the output must be an interactive terminal
// that is not declared dumb.
func (a *App) colorsEnabled() bool {
	if a.cfg.NoColors {
		return false
	}
	f, ok := a.out.(*os.File)
	return ok && terminalSupportsColor(f)
}
