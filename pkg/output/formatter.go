/*
Package output renders a generated tree into one of several textual
encodings: a box-drawing tree view, JSON, a flat simple listing, and YAML.

The formatter is a pure function of the tree snapshot it is given; it never
touches the filesystem. Charset and color capability are resolved by the
caller and passed in as configuration.

Basic usage:

	formatter := output.NewFormatter(output.Config{
		Format:  output.FormatTree,
		Charset: output.CharsetAuto,
		Colors:  true,
	}, log)

	text, err := formatter.Format(root, true)
*/
package output

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/teatonedev/nicetree/pkg/logger"
	"github.com/teatonedev/nicetree/pkg/tree"
)

// Format selects the output encoding.
type Format string

const (
	FormatTree   Format = "tree"
	FormatJSON   Format = "json"
	FormatSimple Format = "simple"
	FormatYAML   Format = "yaml"
)

// Valid reports whether the format is one of the supported encodings.
func (f Format) Valid() bool {
	switch f {
	case FormatTree, FormatJSON, FormatSimple, FormatYAML:
		return true
	}
	return false
}

// Config holds renderer configuration. Colors is the pre-resolved capability
// boolean; the formatter performs no environment inspection of its own.
type Config struct {
	Format   Format
	Charset  Charset
	Colors   bool
	ShowSize bool
}

// Formatter renders a tree into text. A nil node yields empty output, or an
// empty object in the structured encodings.
type Formatter interface {
	Format(node *tree.Node, showRoot bool) (string, error)
}

type formatter struct {
	cfg    Config
	log    logger.Logger
	glyphs glyphSet

	dirColor  *color.Color
	linkColor *color.Color
	sizeColor *color.Color
}

// NewFormatter builds a Formatter. The charset is resolved once here and
// applied uniformly to every render.
func NewFormatter(cfg Config, log logger.Logger) Formatter {
	f := &formatter{
		cfg:       cfg,
		log:       log,
		glyphs:    cfg.Charset.glyphs(),
		dirColor:  color.New(color.FgBlue, color.Bold),
		linkColor: color.New(color.FgCyan),
		sizeColor: color.New(color.FgHiBlack),
	}
	// Colorization follows the resolved Config.Colors flag, not the
	// package-global TTY detection.
	f.dirColor.EnableColor()
	f.linkColor.EnableColor()
	f.sizeColor.EnableColor()
	return f
}

func (f *formatter) Format(node *tree.Node, showRoot bool) (string, error) {
	f.log.WithFields(logger.Fields{
		"format":   f.cfg.Format,
		"showRoot": showRoot,
		"empty":    node == nil,
	}).Debug("formatting tree")

	switch f.cfg.Format {
	case FormatTree:
		return f.formatTree(node, showRoot), nil
	case FormatJSON:
		return f.formatJSON(node)
	case FormatSimple:
		return f.formatSimple(node, showRoot), nil
	case FormatYAML:
		return f.formatYAML(node)
	default:
		return "", fmt.Errorf("unsupported format: %s", f.cfg.Format)
	}
}
