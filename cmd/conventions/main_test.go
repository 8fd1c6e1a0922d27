package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/api-conventions/internal/adapters/document"
	"github.com/jsamuelsen11/api-conventions/internal/adapters/http/dto"
)

const testManifest = "testdata/store.yaml"

// execute runs the CLI with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCommand(&out, &errOut)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.ExecuteContext(t.Context())
	return out.String(), errOut.String(), err
}

func TestResolve_Text(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "resolve", "-m", testManifest, "orders.find", "orders.cancel")
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	for _, want := range []string{
		"orders.find",
		"rest/Find (matched)",
		"200, 404 ProblemDetails",
		"OrderError (type)",
		"orders.cancel",
		"default/Delete (declared)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestResolve_NoMatchReportsNone(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "resolve", "-m", testManifest, "orders.export")
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if !strings.Contains(out, "convention  none") {
		t.Errorf("output missing unmatched convention:\n%s", out)
	}
	if !strings.Contains(out, "responses   none") {
		t.Errorf("output missing empty responses:\n%s", out)
	}
}

func TestResolve_JSON(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "resolve", "-m", testManifest, "-o", "json", "orders.find")
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	var docs []document.ResolutionDoc
	if err := json.Unmarshal([]byte(out), &docs); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if len(docs) != 1 {
		t.Fatalf("len(docs) = %d, want 1", len(docs))
	}
	if docs[0].Match != "matched" || docs[0].ErrorType != "OrderError" {
		t.Errorf("doc = %+v", docs[0])
	}
}

func TestResolve_YAMLWithExplicitSource(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "resolve", "-m", testManifest, "-o", "yaml", "--source", "default", "orders.find")
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	var docs []document.ResolutionDoc
	if err := yaml.Unmarshal([]byte(out), &docs); err != nil {
		t.Fatalf("invalid YAML output: %v\n%s", err, out)
	}
	if len(docs) != 1 || docs[0].Convention == nil {
		t.Fatalf("docs = %+v, want one matched resolution", docs)
	}
	if docs[0].Convention.Source != "default" || docs[0].Convention.Method != "Find" {
		t.Errorf("convention = %+v, want default/Find", docs[0].Convention)
	}
}

func TestResolve_PartialFailure(t *testing.T) {
	t.Parallel()

	out, errOut, err := execute(t, "resolve", "-m", testManifest, "orders.find", "orders.missing")
	if err == nil {
		t.Fatal("resolve error = nil, want failure for unknown action")
	}
	if !strings.Contains(err.Error(), "1 of 2") {
		t.Errorf("error = %v, want failure count", err)
	}
	if !strings.Contains(out, "orders.find") {
		t.Errorf("successful resolution not printed:\n%s", out)
	}
	if !strings.Contains(errOut, "orders.missing") {
		t.Errorf("stderr missing failed action:\n%s", errOut)
	}
}

func TestResolve_ManyActionsInOneRun(t *testing.T) {
	t.Parallel()

	args := []string{"resolve", "-m", testManifest, "-o", "json"}
	for range 150 {
		args = append(args, "orders.find")
	}

	out, _, err := execute(t, args...)
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	var docs []document.ResolutionDoc
	if err := json.Unmarshal([]byte(out), &docs); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(docs) != 150 {
		t.Errorf("len(docs) = %d, want 150", len(docs))
	}
}

func TestResolve_Dump(t *testing.T) {
	t.Parallel()

	_, errOut, err := execute(t, "resolve", "-m", testManifest, "--dump", "orders.find")
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if !strings.Contains(errOut, "FindOrder") {
		t.Errorf("dump missing action signature:\n%s", errOut)
	}
}

func TestResolve_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no manifest", []string{"resolve", "orders.find"}, "--manifest"},
		{"no action", []string{"resolve", "-m", testManifest}, "requires at least 1 arg"},
		{"bad format", []string{"resolve", "-m", testManifest, "-o", "xml", "orders.find"}, "unknown output format"},
		{"missing manifest file", []string{"resolve", "-m", "testdata/nope.yaml", "orders.find"}, "nope.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("error = nil, want failure")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestListActions(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "list", "actions", "-m", testManifest)
	if err != nil {
		t.Fatalf("list actions error: %v", err)
	}
	for _, want := range []string{"ID", "orders.cancel", "orders.export", "orders.find", "OrdersController"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestListSources_JSON(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "list", "sources", "-m", testManifest, "-o", "json")
	if err != nil {
		t.Fatalf("list sources error: %v", err)
	}

	var resp dto.SourceListResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if resp.Count != 2 || resp.Sources[0].Name != "rest" || resp.Sources[1].Name != "default" {
		t.Errorf("sources = %+v, want rest then default", resp.Sources)
	}
}

func TestListSources_NoDefaults(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "list", "sources", "-m", testManifest, "--no-defaults")
	if err != nil {
		t.Fatalf("list sources error: %v", err)
	}
	if !strings.Contains(out, "rest (1 definitions)") {
		t.Errorf("output missing rest source:\n%s", out)
	}
	if strings.Contains(out, "default") {
		t.Errorf("default source listed with --no-defaults:\n%s", out)
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	for _, want := range []string{"conventions version:", "Git commit:", "Build date:", "Go version:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
