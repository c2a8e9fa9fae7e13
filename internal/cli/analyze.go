package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ygorazambuja/pubspec-platform/pkg/analysis"
	"github.com/ygorazambuja/pubspec-platform/pkg/pubdev"
	"github.com/ygorazambuja/pubspec-platform/pkg/pubspec"
)

// analyzeOpts holds the command-line flags for the analyze command.
type analyzeOpts struct {
	platforms   []string // target platforms (overrides config file)
	sdks        []string // target SDKs (overrides config file)
	config      string   // explicit config file path
	output      string   // JSON report file path
	jsonOut     bool     // JSON report to stdout
	interactive bool     // interactive report view
}

// newAnalyzeCmd creates the analyze command.
//
// Default targets cover a typical multi-platform Flutter project: Android,
// iOS, Linux, macOS, Web on the Flutter SDK. Targets can be narrowed with
// flags or a .pubspec-platform.toml next to the manifest.
func newAnalyzeCmd() *cobra.Command {
	var opts analyzeOpts

	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Analyze dependency platform compatibility",
		Long: `Analyze the dependencies declared in a pubspec.yaml against your target
platforms and SDKs.

The path argument may be a project directory or a pubspec.yaml file; it
defaults to the current directory.

Examples:
  pubspec-platform analyze                          # Project in cwd
  pubspec-platform analyze ./my_app                 # Project directory
  pubspec-platform analyze --platforms Android,iOS  # Narrow targets
  pubspec-platform analyze --json > report.json     # Machine-readable output
  pubspec-platform analyze -i                       # Interactive report`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			return runAnalyze(c.Context(), &opts, path)
		},
	}

	cmd.Flags().StringSliceVar(&opts.platforms, "platforms", nil, "target platforms (comma-separated)")
	cmd.Flags().StringSliceVar(&opts.sdks, "sdks", nil, "target SDKs (comma-separated)")
	cmd.Flags().StringVar(&opts.config, "config", "", "config file (default: .pubspec-platform.toml next to the manifest)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write JSON report to file")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "write JSON report to stdout")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "open the interactive report view")

	return cmd
}

// runAnalyze drives the full pipeline: locate and parse the manifest, load
// targets, fan out the pub.dev fetches, and render the report.
func runAnalyze(ctx context.Context, opts *analyzeOpts, path string) error {
	logger := loggerFromContext(ctx)

	manifestPath, err := pubspec.Locate(path)
	if err != nil {
		return err
	}
	manifest, err := pubspec.Load(manifestPath)
	if err != nil {
		return err
	}

	cfg, err := loadTargets(opts.config, filepath.Dir(manifestPath), opts.platforms, opts.sdks)
	if err != nil {
		return err
	}
	logger.Debugf("targets: platforms=%v sdks=%v", cfg.TargetPlatforms, cfg.TargetSDKs)

	total := len(manifest.Dependencies) + len(manifest.DevDependencies)
	logger.Infof("Analyzing %d dependencies from %s", total, manifestPath)

	analyzer := analysis.New(pubdev.NewClient(), func(format string, args ...any) {
		logger.Warnf(format, args...)
	})

	var spin *spinner
	if !opts.jsonOut {
		spin = newSpinner(fmt.Sprintf("Fetching %d packages from pub.dev", total))
		spin.start()
	}

	prog := newProgress(logger)
	result := analyzer.Run(ctx, manifest, cfg)

	if spin != nil {
		spin.stop()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Analyzed %d packages", total))

	switch {
	case opts.jsonOut || opts.output != "":
		return writeReport(result, manifest.Name, opts.output, logger)
	case opts.interactive:
		return runInteractive(result, manifest.Name)
	default:
		renderReport(result, manifest.Name)
		return nil
	}
}
