package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/cxxstd/internal/cli/config"
	"github.com/leapstack-labs/cxxstd/internal/cli/output"
	"github.com/leapstack-labs/cxxstd/pkg/catalog"
	"github.com/leapstack-labs/cxxstd/pkg/classify"
	_ "github.com/leapstack-labs/cxxstd/pkg/classify/matchers" // register feature matchers
)

// ErrViolation signals that classification succeeded but at least one file
// requires a newer standard than the configured floor. Callers map it to a
// distinct exit code so build hooks can tell violations from tool failures.
var ErrViolation = errors.New("standard floor exceeded")

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Floor         int      // Acceptance threshold, e.g. 20
	Format        string   // Output format: auto, text, json, yaml
	Disable       []string // Feature ids to disable
	Only          []string // Run only specific feature matchers
	FailOnUnknown bool     // Error on unknown feature ids in configuration
	Workers       int      // Parallel file classifications
	Watch         bool     // Re-classify on file changes
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Classify the minimum C++ standard source files require",
		Long: `Scan C++ source files, match them against the feature catalog and
report the minimum language standard each file requires.

Files are classified independently and in parallel. Unreadable files are
reported alongside successful ones; a single bad file never aborts the
batch.

Output adapts to environment:
  - Terminal: styled tables
  - Piped/Scripted: JSON
  - --format yaml: YAML machine format`,
		Example: `  # Classify two files
  cxxstd check src/grid.cpp src/task.cpp

  # Enforce a C++20 floor in CI (exit 1 on violation)
  cxxstd check --floor 20 src/*.cpp

  # Machine-readable output
  cxxstd check --format json src/grid.cpp

  # Disable individual matchers
  cxxstd check --disable CV02,DD04 src/grid.cpp

  # Re-classify on change
  cxxstd check --watch src/grid.cpp`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Floor, "floor", 0, "Floor standard, e.g. 20 (default: the lowest cataloged gate)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: auto, text, json, yaml")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Feature ids to disable")
	cmd.Flags().StringSliceVar(&opts.Only, "only", nil, "Run only specific feature matchers")
	cmd.Flags().BoolVar(&opts.FailOnUnknown, "fail-on-unknown", false, "Error on unknown feature ids in configuration")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "Parallel file classifications (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Watch inputs and re-classify on change")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, opts *CheckOptions) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	cat := catalog.Default()
	ccfg, err := buildClassifyConfig(cat, cfg, opts)
	if err != nil {
		return err
	}

	classifier, err := classify.NewClassifier(cat, ccfg)
	if err != nil {
		return err
	}
	runner := classify.NewRunner(classifier, cfg.Workers)
	renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Format))

	if opts.Watch {
		return runWatch(cmd.Context(), args, runner, renderer, classifier.Floor(), cfg.Watch.DebounceMillis)
	}

	batch, err := runner.Run(cmd.Context(), args)
	if err != nil {
		return err
	}
	if err := renderer.RenderBatch(batch, classifier.Floor()); err != nil {
		return err
	}

	if len(batch.Failures) > 0 && len(batch.Files) == 0 {
		return fmt.Errorf("no inputs could be read")
	}
	if batch.Violates(classifier.Floor()) {
		return fmt.Errorf("%w: C++%d required, floor is C++%d",
			ErrViolation, batch.RequiredStandard, classifier.Floor())
	}
	return nil
}

// loadConfig loads the layered configuration using this command's full flag
// set (local flags plus inherited persistent flags).
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if cfg.Verbose {
		if used := config.GetConfigFileUsed(); used != "" {
			slog.Debug("using config file", "path", used)
		}
	}
	return cfg, nil
}

// buildClassifyConfig merges project config and CLI flags into a classify
// config. CLI flags take precedence; --only disables everything else.
func buildClassifyConfig(cat *catalog.Catalog, cfg *config.Config, opts *CheckOptions) (*classify.Config, error) {
	ccfg := classify.NewConfig()
	ccfg.SetFailOnUnknown(cfg.FailOnUnknown)
	if cfg.Floor != 0 {
		ccfg.SetFloor(cfg.Floor)
	}

	for _, id := range cfg.Disabled {
		ccfg.Disable(id)
	}

	if len(opts.Only) > 0 {
		enabled := make(map[string]bool, len(opts.Only))
		for _, id := range opts.Only {
			if _, err := cat.Lookup(id); err != nil && cfg.FailOnUnknown {
				return nil, fmt.Errorf("--only references unknown feature: %w", err)
			}
			enabled[id] = true
		}
		for _, desc := range cat.All() {
			if !enabled[desc.ID] {
				ccfg.Disable(desc.ID)
			}
		}
	}

	return ccfg, nil
}
