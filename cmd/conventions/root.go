package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/api-conventions/internal/adapters/manifest"
	"github.com/jsamuelsen11/api-conventions/internal/app"
	"github.com/jsamuelsen11/api-conventions/internal/domain/annotation"
	"github.com/jsamuelsen11/api-conventions/internal/domain/matching"
	"github.com/jsamuelsen11/api-conventions/internal/platform/logging"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var outputFormats = []string{formatText, formatJSON, formatYAML}

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	manifests  []string
	noDefaults bool
	output     string
	noColor    bool
	verbose    bool

	out    io.Writer
	errOut io.Writer
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	opts := &globalOptions{out: out, errOut: errOut}

	cmd := &cobra.Command{
		Use:   "conventions",
		Short: "Resolve API response conventions offline",
		Long: `conventions resolves the documented responses and error type of API
actions from convention manifests, the same way the service does.

Manifests are YAML or JSON files declaring convention sources and the modules,
types and actions of an API. Directories are expanded to the manifests they
contain.`,
		Example: `  # Resolve one action against the sources it applies
  conventions resolve --manifest configs/conventions Catalog.ProductsController.FindProduct

  # Resolve against explicit sources, as YAML
  conventions resolve -m shop.yaml --source rest --source default -o yaml shop.get

  # List the catalogued actions
  conventions list actions -m configs/conventions`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if !slices.Contains(outputFormats, opts.output) {
				return fmt.Errorf("unknown output format %q (want one of %v)", opts.output, outputFormats)
			}
			return nil
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.PersistentFlags()
	flags.StringSliceVarP(&opts.manifests, "manifest", "m", nil, "manifest file or directory (repeatable)")
	flags.BoolVar(&opts.noDefaults, "no-defaults", false, "do not add the built-in default convention source")
	flags.StringVarP(&opts.output, "output", "o", formatText, "output format: text, json or yaml")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log resolution details to stderr")

	cmd.AddCommand(newResolveCommand(opts))
	cmd.AddCommand(newListCommand(opts))
	cmd.AddCommand(newVersionCommand(opts))

	return cmd
}

// loadCatalog loads the manifests named by --manifest.
func (o *globalOptions) loadCatalog() (*manifest.Catalog, error) {
	if len(o.manifests) == 0 {
		return nil, errors.New("at least one --manifest is required")
	}
	return manifest.Load(o.manifests, manifest.WithDefaults(!o.noDefaults))
}

// newService builds a resolution service over a catalog, the same way the
// server wires it minus the remote registry.
func (o *globalOptions) newService(catalog *manifest.Catalog, opts ...app.ServiceOption) *app.ResolutionService {
	return app.NewResolutionService(catalog, catalog, matching.New(annotation.NewReader()), o.logger(), opts...)
}

func (o *globalOptions) logger() *slog.Logger {
	level := "warn"
	if o.verbose {
		level = "debug"
	}
	return logging.New(level, "text", o.errOut)
}

// palette holds the colors of text output. Colors are disabled per instance
// so concurrent commands do not race on color.NoColor.
type palette struct {
	heading *color.Color
	dim     *color.Color
	ok      *color.Color
	warn    *color.Color
	fail    *color.Color
}

func (o *globalOptions) palette() palette {
	p := palette{
		heading: color.New(color.Bold),
		dim:     color.New(color.Faint),
		ok:      color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed, color.Bold),
	}
	if o.noColor {
		for _, c := range []*color.Color{p.heading, p.dim, p.ok, p.warn, p.fail} {
			c.DisableColor()
		}
	}
	return p
}
