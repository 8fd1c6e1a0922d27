package main

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/api-conventions/internal/adapters/document"
	"github.com/jsamuelsen11/api-conventions/internal/app"
	"github.com/jsamuelsen11/api-conventions/internal/ports"
)

type resolveOptions struct {
	*globalOptions
	sources []string
	dump    bool
}

func newResolveCommand(global *globalOptions) *cobra.Command {
	opts := &resolveOptions{globalOptions: global}

	cmd := &cobra.Command{
		Use:   "resolve <action-id>...",
		Short: "Resolve catalogued actions",
		Long: `Resolve the documented responses and error type of one or more catalogued
actions. Without --source, each action is resolved against the sources its
type and module apply, falling back to the built-in default source.

Every action is resolved even when some fail; the command exits non-zero if
any did.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.sources, "source", "s", nil, "convention source to search, in order (repeatable)")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "dump the resolved domain values to stderr")

	return cmd
}

func (o *resolveOptions) run(cmd *cobra.Command, ids []string) error {
	catalog, err := o.loadCatalog()
	if err != nil {
		return err
	}
	// Every ID named on the command line is one batch.
	svc := o.newService(catalog, app.WithMaxBatchSize(len(ids)))

	reqs := make([]ports.ResolutionRequest, len(ids))
	for i, id := range ids {
		reqs[i] = ports.ResolutionRequest{ActionID: id, Sources: o.sources}
	}

	result, err := svc.ResolveBatch(cmd.Context(), reqs)
	if err != nil {
		return err
	}

	if o.dump {
		spew.Fdump(o.errOut, result.Resolved)
	}

	docs := make([]document.ResolutionDoc, 0, len(result.Resolved))
	for _, res := range result.Resolved {
		if res != nil {
			docs = append(docs, document.FromDomainResolution(res))
		}
	}

	if err := o.write(docs); err != nil {
		return err
	}
	return o.reportFailures(ids, result.Errors)
}

func (o *resolveOptions) write(docs []document.ResolutionDoc) error {
	if o.output != formatText {
		return writeStructured(o.out, o.output, docs)
	}

	p := o.palette()
	for i, doc := range docs {
		if i > 0 {
			fmt.Fprintln(o.out)
		}
		writeResolutionText(o.out, p, doc)
	}
	return nil
}

func (o *resolveOptions) reportFailures(ids []string, failures []ports.BatchError) error {
	if len(failures) == 0 {
		return nil
	}

	p := o.palette()
	failed := make([]string, len(failures))
	for i, f := range failures {
		failed[i] = ids[f.Index]
		fmt.Fprintf(o.errOut, "%s %s: %v\n", p.fail.Sprint("error:"), ids[f.Index], f.Err)
	}
	return fmt.Errorf("%d of %d actions failed to resolve: %s", len(failures), len(ids), strings.Join(failed, ", "))
}
