package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/api-conventions/internal/adapters/document"
)

// writeStructured writes v as indented JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported structured format %q", format)
	}
}

// writeResolutionText renders one resolution for a terminal:
//
//	Shop.WidgetsController.FindWidget
//	  convention  rest/Find (matched)
//	  sources     rest, default
//	  responses   200, 404 ProblemDetails
//	  error type  WidgetError (type)
func writeResolutionText(w io.Writer, p palette, doc document.ResolutionDoc) {
	p.heading.Fprintln(w, doc.Action)

	switch {
	case doc.Convention != nil:
		fmt.Fprintf(w, "  convention  %s %s\n",
			p.ok.Sprintf("%s/%s", doc.Convention.Source, doc.Convention.Method),
			p.dim.Sprintf("(%s)", doc.Match))
	default:
		fmt.Fprintf(w, "  convention  %s\n", p.warn.Sprint("none"))
	}

	sources := p.dim.Sprint("none")
	if len(doc.Sources) > 0 {
		sources = strings.Join(doc.Sources, ", ")
	}
	fmt.Fprintf(w, "  sources     %s\n", sources)

	responses := make([]string, len(doc.Responses))
	for i, r := range doc.Responses {
		responses[i] = r.Status
		if r.Type != "" {
			responses[i] += " " + r.Type
		}
	}
	if len(responses) == 0 {
		fmt.Fprintf(w, "  responses   %s\n", p.warn.Sprint("none"))
	} else {
		fmt.Fprintf(w, "  responses   %s\n", strings.Join(responses, ", "))
	}

	fmt.Fprintf(w, "  error type  %s %s\n", doc.ErrorType, p.dim.Sprintf("(%s)", doc.ErrorTypeScope))
}
