package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"pigment/internal/engine"
	"pigment/internal/render"
	"pigment/internal/writer"
)

type checkOptions struct {
	ConfigPath string
	OutputDir  string
	Variants   []string
}

func newCheckCmd(root *rootFlags) *cobra.Command {
	opts := checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the theme files on disk are current",
		Long: `Check rebuilds every selected variant in memory and diffs the result
against the files on disk. Returns exit code 0 when everything matches,
non-zero when any artifact is stale or missing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", defaultConfigPath, "Path to configuration file")
	cmd.Flags().StringVarP(&opts.OutputDir, "out", "o", "", "Output directory (overrides the configured one)")
	cmd.Flags().StringSliceVar(&opts.Variants, "variant", nil, "Variant ids to check (default: configured selection)")

	return cmd
}

func runCheck(cmd *cobra.Command, root *rootFlags, opts checkOptions) error {
	log, err := newCommandLogger(root)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(opts.ConfigPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	if opts.OutputDir != "" {
		cfg.OutputDir = opts.OutputDir
	}

	defs, err := selectDefinitions(cfg, opts.Variants)
	if err != nil {
		return err
	}

	registry, err := render.DefaultRegistry()
	if err != nil {
		return err
	}

	pipeline, err := newEnginePipeline(cfg, log)
	if err != nil {
		return err
	}

	summary, runErr := engine.NewRunner(pipeline, len(defs), log).Run(cmd.Context(), defs)

	out := cmd.OutOrStdout()
	files := writer.New(nil, log)

	checked := 0
	stale := 0
	for _, res := range summary.Results {
		if res.Theme == nil {
			fmt.Fprintf(out, "%s %s: %v\n", failureMark(), res.VariantID, res.Err)
			continue
		}

		for _, name := range cfg.Renderers {
			renderer, err := registry.Get(name)
			if err != nil {
				return err
			}
			data, err := renderer.Render(res.Theme)
			if err != nil {
				return err
			}

			dir := filepath.Join(cfg.OutputDir, name)
			diff, err := files.Compare(dir, renderer.Filename(res.Theme.Definition), data)
			if err != nil {
				return err
			}

			checked++
			artifact := filepath.Join(dir, renderer.Filename(res.Theme.Definition))
			if diff == "" {
				fmt.Fprintf(out, "%s %s\n", successMark(), artifact)
				continue
			}
			stale++
			fmt.Fprintf(out, "%s %s is stale\n", failureMark(), artifact)
			fmt.Fprintln(out, diff)
		}
	}

	if runErr != nil {
		return runErr
	}
	if stale > 0 {
		return fmt.Errorf("%d of %d artifacts are stale, run 'pigment generate' to refresh", stale, checked)
	}

	fmt.Fprintf(out, "\n%d artifacts up to date\n", checked)
	return nil
}
