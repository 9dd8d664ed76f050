package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pigment/internal/upstream"
)

type fetchOptions struct {
	ConfigPath string
	URL        string
	Ref        string
	Dest       string
	Depth      int
}

func newFetchCmd(root *rootFlags) *cobra.Command {
	opts := fetchOptions{}

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Clone or fast-forward the upstream palette repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", defaultConfigPath, "Path to configuration file")
	cmd.Flags().StringVar(&opts.URL, "url", "", "Repository URL (overrides the configured one)")
	cmd.Flags().StringVar(&opts.Ref, "ref", "", "Branch to track (overrides the configured one)")
	cmd.Flags().StringVar(&opts.Dest, "dest", "", "Checkout directory (overrides the configured one)")
	cmd.Flags().IntVar(&opts.Depth, "depth", -1, "Clone depth, 0 for full history (overrides the configured one)")

	return cmd
}

func runFetch(cmd *cobra.Command, root *rootFlags, opts fetchOptions) error {
	log, err := newCommandLogger(root)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(opts.ConfigPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}

	src := upstream.Source{
		URL:   cfg.Upstream.URL,
		Ref:   cfg.Upstream.Ref,
		Dest:  cfg.Upstream.Dest,
		Depth: cfg.Upstream.Depth,
	}
	if opts.URL != "" {
		src.URL = opts.URL
	}
	if opts.Ref != "" {
		src.Ref = opts.Ref
	}
	if opts.Dest != "" {
		src.Dest = opts.Dest
	}
	if opts.Depth >= 0 {
		src.Depth = opts.Depth
	}

	status, err := upstream.Sync(cmd.Context(), src, log)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", successMark(), src.Dest, status)
	return nil
}
