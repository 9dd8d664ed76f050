package main

import (
	"fmt"
	"os"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pigment/internal/engine"
	"pigment/internal/theme"
	"pigment/internal/tui"
)

type previewOptions struct {
	ConfigPath string
	Variants   []string
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse the resolved palettes in an interactive swatch viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("preview needs an interactive terminal")
			}
			return runPreview(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", defaultConfigPath, "Path to configuration file")
	cmd.Flags().StringSliceVar(&opts.Variants, "variant", nil, "Variant ids to preview (default: configured selection)")

	return cmd
}

func runPreview(cmd *cobra.Command, root *rootFlags, opts previewOptions) error {
	log, err := newCommandLogger(root)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(opts.ConfigPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}

	defs, err := selectDefinitions(cfg, opts.Variants)
	if err != nil {
		return err
	}

	pipeline, err := newEnginePipeline(cfg, log)
	if err != nil {
		return err
	}

	variants, err := previewVariants(pipeline, defs)
	if err != nil {
		return err
	}

	program := tea.NewProgram(tui.NewModel(variants), tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// previewVariants resolves each variant's palette into the sorted swatch
// lists the viewer consumes.
func previewVariants(pipeline *engine.Pipeline, defs []theme.Definition) ([]tui.Variant, error) {
	variants := make([]tui.Variant, 0, len(defs))
	for _, def := range defs {
		swatches, err := pipeline.Swatches(def)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", def.ID, err)
		}

		names := make([]string, 0, len(swatches))
		for name := range swatches {
			names = append(names, name)
		}
		sort.Strings(names)

		list := make([]tui.Swatch, len(names))
		for i, name := range names {
			list[i] = tui.Swatch{Name: name, Hex: swatches[name]}
		}

		variants = append(variants, tui.Variant{ID: def.ID, Title: def.Name, Swatches: list})
	}
	return variants, nil
}
