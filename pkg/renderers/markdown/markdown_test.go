package markdown_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-paramdoc/pkg/fragment"
	"github.com/goliatone/go-paramdoc/pkg/paramdata"
	"github.com/goliatone/go-paramdoc/pkg/parameters"
	"github.com/goliatone/go-paramdoc/pkg/render"
	"github.com/goliatone/go-paramdoc/pkg/renderers/markdown"
)

func TestRenderer_ParameterList(t *testing.T) {
	list := parameters.Build(paramdata.Class{
		Name: "Foo",
		Parameters: []paramdata.Parameter{
			{Name: "mesh_file", Type: "string", Description: "path to the [mesh]", Required: paramdata.FlagRequired},
			{Name: "order", Type: "int", Description: "element order", Required: paramdata.FlagOptional},
			{Name: "tol", Type: "double", Description: "tolerance", Required: paramdata.FlagOptional},
		},
	})

	out, err := markdown.New().Render(context.Background(), []fragment.Node{list}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := `- **Required:**

  - **mesh\_file (string) -** path to the \[mesh\]

- **Optional:**

  - **order (int) -** element order
  - **tol (double) -** tolerance
`
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_SystemMessage(t *testing.T) {
	msg := fragment.SystemMessage{
		Level:    fragment.LevelError,
		Source:   "guide.md",
		Line:     3,
		Message:  "File not found: missing.yaml",
		Children: []fragment.Node{fragment.LiteralBlock{Text: "```{parameters} Foo\n```"}},
	}

	out, err := markdown.New().Render(context.Background(), []fragment.Node{msg}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := "> **ERROR** guide.md:3: File not found: missing.yaml\n" +
		">\n" +
		"> ````\n" +
		"> ```{parameters} Foo\n" +
		"> ```\n" +
		"> ````\n"
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_MultiLineDescription(t *testing.T) {
	list := parameters.Build(paramdata.Class{
		Name: "Foo",
		Parameters: []paramdata.Parameter{
			{Name: "x", Type: "int", Description: "first line\nsecond line\n", Required: paramdata.FlagRequired},
			{Name: "z", Type: "int", Description: "single", Required: paramdata.FlagRequired},
		},
	})

	out, err := markdown.New().Render(context.Background(), []fragment.Node{list}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := `- **Required:**

  - **x (int) -** first line
    second line

  - **z (int) -** single
`
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}
