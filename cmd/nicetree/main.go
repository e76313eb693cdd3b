// Command nicetree displays a directory tree structure in a nice format.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teatonedev/nicetree/cmd/nicetree/app"
	"github.com/teatonedev/nicetree/internal/config"
	"github.com/teatonedev/nicetree/internal/version"
	"github.com/teatonedev/nicetree/pkg/logger"
)

var (
	depth       int
	ignore      []string
	showHidden  bool
	follow      bool
	showSize    bool
	showStats   bool
	charset     string
	noColors    bool
	format      string
	rateLimit   int
	verbosity   int
	showVersion bool
)

var rootCmd = &cobra.Command{
	Use:   "nicetree [flags] [path]",
	Short: "Display a directory tree structure in a nice format",
	Long: `nicetree renders a directory subtree as a box-drawing tree, JSON, or a
flat listing, with filtering, depth limiting, symlink handling, and
optional size aggregation.`,
	Example: `  nicetree                    # Show current directory tree
  nicetree /path/to/dir       # Show tree for specific directory
  nicetree --depth 2          # Limit tree depth to 2 levels
  nicetree --ignore '*.pyc'   # Ignore Python cache files
  nicetree --size             # Show file sizes`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		if full, _ := cmd.Flags().GetBool("full"); full {
			fmt.Println(version.Full())
		} else {
			fmt.Println("nicetree " + version.Version)
		}
	},
}

func init() {
	rootCmd.Flags().IntVarP(&depth, "depth", "d", -1,
		"limit tree depth to N levels")
	rootCmd.Flags().StringArrayVarP(&ignore, "ignore", "i", nil,
		"ignore files matching PATTERN (can be used multiple times)")
	rootCmd.Flags().BoolVarP(&showHidden, "all", "a", false,
		"show hidden files (starting with .)")
	rootCmd.Flags().BoolVarP(&follow, "follow", "L", false,
		"follow symbolic links")
	rootCmd.Flags().BoolVarP(&showSize, "size", "s", false,
		"show file sizes")
	rootCmd.Flags().BoolVarP(&showStats, "statistics", "S", false,
		"show statistics (file/directory counts)")
	rootCmd.Flags().StringVar(&charset, "charset", "auto",
		"character set to use for drawing: auto|unicode|ascii")
	rootCmd.Flags().BoolVar(&noColors, "no-colors", false,
		"disable colored output")
	rootCmd.Flags().StringVarP(&format, "format", "f", "tree",
		"output format: tree|json|simple|yaml")
	rootCmd.Flags().IntVar(&rateLimit, "rate-limit", 0,
		"limit filesystem operations per second (0 for unlimited)")
	rootCmd.Flags().CountVarP(&verbosity, "verbose", "v",
		"verbose logging (can be used multiple times)")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "V", false,
		"print version and exit")

	versionCmd.Flags().Bool("full", false, "show full version information")
	rootCmd.AddCommand(versionCmd)
}

func run(cmd *cobra.Command, args []string) error {
	if showVersion {
		fmt.Println("nicetree " + version.Version)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("depth") {
		if depth < 0 {
			return fmt.Errorf("depth must be non-negative")
		}
		cfg.MaxDepth = depth
	}
	cfg.IgnorePatterns = append(cfg.IgnorePatterns, ignore...)
	if flags.Changed("all") {
		cfg.ShowHidden = showHidden
	}
	if flags.Changed("follow") {
		cfg.FollowSymlinks = follow
	}
	if flags.Changed("size") {
		cfg.ShowSize = showSize
	}
	if flags.Changed("statistics") {
		cfg.ShowStats = showStats
	}
	if flags.Changed("charset") {
		cfg.Charset = charset
	}
	if flags.Changed("no-colors") {
		cfg.NoColors = noColors
	}
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("rate-limit") {
		cfg.RateLimit = rateLimit
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbosity
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	log := logger.New(logger.Config{Verbosity: cfg.Verbose})
	application := app.New(cfg, log)
	return application.Run(context.Background(), path)
}

func main() {
	app.HandleInterrupts()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
