package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/api-conventions/internal/adapters/document"
	"github.com/jsamuelsen11/api-conventions/internal/adapters/http/dto"
)

func newListCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalogued actions or convention sources",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "actions",
		Short: "List catalogued actions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.listActions(cmd)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:     "sources",
		Aliases: []string{"conventions"},
		Short:   "List convention sources",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.listSources(cmd)
		},
	})

	return cmd
}

func (o *globalOptions) listActions(cmd *cobra.Command) error {
	catalog, err := o.loadCatalog()
	if err != nil {
		return err
	}
	actions, err := o.newService(catalog).ListActions(cmd.Context())
	if err != nil {
		return err
	}

	resp := dto.ToActionListResponse(actions)
	if o.output != formatText {
		return writeStructured(o.out, o.output, resp)
	}

	p := o.palette()
	tw := tabwriter.NewWriter(o.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, p.heading.Sprint("ID\tMODULE\tTYPE\tSIGNATURE"))
	for _, a := range resp.Actions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", a.ID, a.Module, a.Type, a.Signature)
	}
	return tw.Flush()
}

func (o *globalOptions) listSources(cmd *cobra.Command) error {
	catalog, err := o.loadCatalog()
	if err != nil {
		return err
	}
	srcs, err := o.newService(catalog).ListSources(cmd.Context())
	if err != nil {
		return err
	}

	resp := dto.ToSourceListResponse(srcs)
	if o.output != formatText {
		return writeStructured(o.out, o.output, resp)
	}

	p := o.palette()
	for _, src := range resp.Sources {
		p.heading.Fprintf(o.out, "%s", src.Name)
		fmt.Fprintf(o.out, " %s\n", p.dim.Sprintf("(%d definitions)", len(src.Definitions)))
		for _, def := range src.Definitions {
			fmt.Fprintf(o.out, "  %s%s\n", def.Name, definitionSuffix(def))
		}
	}
	return nil
}

func definitionSuffix(def document.DefinitionDoc) string {
	if def.NameMatch == "" {
		return ""
	}
	return fmt.Sprintf(" [%s]", def.NameMatch)
}
