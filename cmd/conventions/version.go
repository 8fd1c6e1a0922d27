package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			info := map[string]string{
				"version":    Version,
				"commit":     GitCommit,
				"build_date": BuildDate,
				"go_version": runtime.Version(),
			}
			if opts.output != formatText {
				return writeStructured(opts.out, opts.output, info)
			}
			fmt.Fprintf(opts.out, "conventions version: %s\n", Version)
			fmt.Fprintf(opts.out, "Git commit: %s\n", GitCommit)
			fmt.Fprintf(opts.out, "Build date: %s\n", BuildDate)
			fmt.Fprintf(opts.out, "Go version: %s\n", info["go_version"])
			return nil
		},
	}
}
