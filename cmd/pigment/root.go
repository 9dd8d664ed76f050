package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pigment/internal/config"
	"pigment/internal/engine"
	"pigment/internal/logger"
	"pigment/internal/theme"
)

// defaultConfigPath is probed when --config is not given. A missing file
// is not an error in that case; the built-in defaults apply.
const defaultConfigPath = "pigment.yaml"

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "pigment",
		Short:         "Pigment generates editor color themes from one palette source",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newFetchCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newCommandLogger(flags *rootFlags) (*logger.Logger, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, HumanReadable: true})
}

// loadConfig reads the configuration behind --config. An explicitly
// requested file must exist; the probed default may be absent.
func loadConfig(path string, explicit bool) (*config.Config, error) {
	if !explicit {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return config.Default(), nil
		}
	}
	return config.Load(path)
}

// selectDefinitions resolves the variant ids requested on the command
// line, falling back to the configured selection and finally to the full
// variant set.
func selectDefinitions(cfg *config.Config, requested []string) ([]theme.Definition, error) {
	ids := requested
	if len(ids) == 0 {
		ids = cfg.Variants
	}
	if len(ids) == 0 {
		return theme.Definitions(), nil
	}

	defs := make([]theme.Definition, 0, len(ids))
	for _, id := range ids {
		def, ok := theme.Lookup(id)
		if !ok {
			return nil, fmt.Errorf("unknown variant %q (known variants: %s)", id, strings.Join(theme.IDs(), ", "))
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func newEnginePipeline(cfg *config.Config, log *logger.Logger) (*engine.Pipeline, error) {
	return engine.NewPipeline(engine.Params{
		SourcesDir: cfg.SourcesDir,
		Overrides:  cfg.Overrides,
		Options: theme.Options{
			Italics:              cfg.Italics,
			Bold:                 cfg.Bold,
			SemanticHighlighting: cfg.SemanticHighlighting,
			IncludeExperimental:  cfg.IncludeExperimental,
		},
	}, log)
}

func successMark() string {
	return color.New(color.FgGreen).Sprint("✓")
}

func failureMark() string {
	return color.New(color.FgRed).Sprint("✗")
}
