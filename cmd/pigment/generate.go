package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"pigment/internal/engine"
	"pigment/internal/render"
	"pigment/internal/writer"
)

type generateOptions struct {
	ConfigPath string
	OutputDir  string
	Variants   []string
	Workers    int
}

func newGenerateCmd(root *rootFlags) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate theme files for every configured renderer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", defaultConfigPath, "Path to configuration file")
	cmd.Flags().StringVarP(&opts.OutputDir, "out", "o", "", "Output directory (overrides the configured one)")
	cmd.Flags().StringSliceVar(&opts.Variants, "variant", nil, "Variant ids to build (default: configured selection)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "Concurrent variant builds (default: one per variant)")

	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootFlags, opts generateOptions) error {
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

	workers := opts.Workers
	if workers <= 0 {
		workers = len(defs)
	}

	summary, runErr := engine.NewRunner(pipeline, workers, log).Run(cmd.Context(), defs)

	out := cmd.OutOrStdout()
	files := writer.New(nil, log)

	written := 0
	broken := 0
	for _, res := range summary.Results {
		if res.Theme == nil {
			fmt.Fprintf(out, "%s %s: %v\n", failureMark(), res.VariantID, res.Err)
			continue
		}
		fmt.Fprintf(out, "%s %s (%s, %s)\n", successMark(), res.VariantID, res.Message, res.Duration.Round(time.Millisecond))

		for _, name := range cfg.Renderers {
			renderer, err := registry.Get(name)
			if err != nil {
				return err
			}
			data, err := renderer.Render(res.Theme)
			if err != nil {
				broken++
				fmt.Fprintf(out, "  %s %s: %v\n", failureMark(), name, err)
				continue
			}
			path, err := files.Write(filepath.Join(cfg.OutputDir, name), renderer.Filename(res.Theme.Definition), data)
			if err != nil {
				broken++
				fmt.Fprintf(out, "  %s %s: %v\n", failureMark(), name, err)
				continue
			}
			written++
			fmt.Fprintf(out, "  wrote %s\n", path)
		}
	}

	fmt.Fprintf(out, "\n%d generated, %d failed, %d files written (%s)\n",
		summary.Generated, summary.Failed, written, summary.Duration.Round(time.Millisecond))

	if runErr != nil {
		return runErr
	}
	if broken > 0 {
		return fmt.Errorf("%d artifacts failed to render", broken)
	}
	return nil
}
