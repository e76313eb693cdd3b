/*
Package config manages application configuration. Defaults come from
NICETREE_* environment variables and are overridden by command-line flags.

Environment variables:

	NICETREE_MAX_DEPTH       Depth limit (-1 for unlimited)
	NICETREE_IGNORE          Comma-separated ignore patterns
	NICETREE_SHOW_HIDDEN     Include hidden entries
	NICETREE_FOLLOW          Follow symbolic links
	NICETREE_SHOW_SIZE       Compute and display sizes
	NICETREE_FORMAT          Output format: tree|json|simple|yaml
	NICETREE_CHARSET         Drawing charset: auto|unicode|ascii
	NICETREE_NO_COLORS       Disable colored output
	NICETREE_CASE_SENSITIVE  Case-sensitive pattern matching (default true)
	NICETREE_RATE_LIMIT      Filesystem operations per second (0 unlimited)
	NICETREE_VERBOSE         Logging verbosity level
*/
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teatonedev/nicetree/pkg/output"
	"github.com/teatonedev/nicetree/pkg/tree"
)

// Config holds every knob of the application.
type Config struct {
	// MaxDepth limits the tree depth; -1 means unlimited.
	MaxDepth int

	// IgnorePatterns are glob patterns excluding matching entry names.
	IgnorePatterns []string

	// ShowHidden includes dot-prefixed entries.
	ShowHidden bool

	// FollowSymlinks recurses into symlink targets.
	FollowSymlinks bool

	// ShowSize computes and displays sizes.
	ShowSize bool

	// ShowStats prints the aggregate summary block after the tree.
	ShowStats bool

	// Format is the output encoding: tree, json, simple, or yaml.
	Format string

	// Charset selects the drawing glyphs: auto, unicode, or ascii.
	Charset string

	// NoColors force-disables colored output.
	NoColors bool

	// CaseSensitive controls ignore-pattern matching.
	CaseSensitive bool

	// RateLimit caps filesystem operations per second; 0 means unlimited.
	RateLimit int

	// Verbose is the logging verbosity level.
	Verbose int
}

// Load reads configuration from the environment and validates it.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("max_depth", tree.UnlimitedDepth)
	v.SetDefault("format", string(output.FormatTree))
	v.SetDefault("charset", string(output.CharsetAuto))
	v.SetDefault("case_sensitive", true)
	v.SetDefault("rate_limit", 0)
	v.SetDefault("verbose", 0)

	v.SetEnvPrefix("NICETREE")
	v.AutomaticEnv()

	for _, key := range []string{
		"max_depth", "ignore", "show_hidden", "follow", "show_size",
		"format", "charset", "no_colors", "case_sensitive", "rate_limit",
		"verbose",
	} {
		_ = v.BindEnv(key)
	}

	cfg := Config{
		MaxDepth:       v.GetInt("max_depth"),
		ShowHidden:     v.GetBool("show_hidden"),
		FollowSymlinks: v.GetBool("follow"),
		ShowSize:       v.GetBool("show_size"),
		Format:         v.GetString("format"),
		Charset:        v.GetString("charset"),
		NoColors:       v.GetBool("no_colors"),
		CaseSensitive:  v.GetBool("case_sensitive"),
		RateLimit:      v.GetInt("rate_limit"),
		Verbose:        v.GetInt("verbose"),
	}

	if raw := v.GetString("ignore"); raw != "" {
		for _, pattern := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(pattern); trimmed != "" {
				cfg.IgnorePatterns = append(cfg.IgnorePatterns, trimmed)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration before any traversal begins.
func (c Config) Validate() error {
	if c.MaxDepth < tree.UnlimitedDepth {
		return fmt.Errorf("depth must be non-negative")
	}
	if !output.Format(c.Format).Valid() {
		return fmt.Errorf("invalid output format: must be one of [tree json simple yaml]")
	}
	if !output.Charset(c.Charset).Valid() {
		return fmt.Errorf("invalid charset: must be one of [auto unicode ascii]")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must be non-negative")
	}
	for _, pattern := range c.IgnorePatterns {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("invalid ignore pattern %q: %v", pattern, err)
		}
	}
	return nil
}

// WalkerConfig maps the application configuration onto the walker's.
func (c Config) WalkerConfig() tree.Config {
	return tree.Config{
		MaxDepth:       c.MaxDepth,
		IgnorePatterns: c.IgnorePatterns,
		ShowHidden:     c.ShowHidden,
		FollowSymlinks: c.FollowSymlinks,
		ShowSize:       c.ShowSize,
		CaseSensitive:  c.CaseSensitive,
		RateLimit:      c.RateLimit,
	}
}
