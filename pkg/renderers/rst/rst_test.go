package rst_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-paramdoc/pkg/fragment"
	"github.com/goliatone/go-paramdoc/pkg/paramdata"
	"github.com/goliatone/go-paramdoc/pkg/parameters"
	"github.com/goliatone/go-paramdoc/pkg/render"
	"github.com/goliatone/go-paramdoc/pkg/renderers/rst"
)

func fooClass() paramdata.Class {
	return paramdata.Class{
		Name: "Foo",
		Parameters: []paramdata.Parameter{
			{Name: "x", Type: "int", Description: "d1", Required: paramdata.FlagRequired},
			{Name: "y", Type: "string", Description: "uses *stars*", Required: paramdata.FlagOptional},
		},
	}
}

func TestRenderer_ParameterList(t *testing.T) {
	list := parameters.Build(fooClass())

	out, err := rst.New().Render(context.Background(), []fragment.Node{list}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := `- **Required:**

  - **x (int) -** d1

- **Optional:**

  - **y (string) -** uses \*stars\*
`
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_EmptyList(t *testing.T) {
	out, err := rst.New().Render(context.Background(), []fragment.Node{fragment.BulletList{}}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func TestRenderer_SystemMessage(t *testing.T) {
	msg := fragment.SystemMessage{
		Level:   fragment.LevelError,
		Source:  "index.rst",
		Line:    7,
		Message: "Class Bar not found in params.yaml",
		Children: []fragment.Node{
			fragment.LiteralBlock{Text: ".. parameters:: Bar"},
		},
	}

	out, err := rst.New().Render(context.Background(), []fragment.Node{msg}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := `.. error::

   index.rst:7: Class Bar not found in params.yaml

   ::

      .. parameters:: Bar
`
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_MultiLineDescription(t *testing.T) {
	doc, err := paramdata.Parse("params.yaml", []byte(`classes:
  - name: Foo
    parameters:
      - name: x
        type: int
        required: 1
        description: |
          first line
          second line
      - {name: y, type: string, description: d2, required: 0}
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	class, err := doc.Class("Foo")
	if err != nil {
		t.Fatalf("class: %v", err)
	}

	out, err := rst.New().Render(context.Background(), []fragment.Node{parameters.Build(class)}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := `- **Required:**

  - **x (int) -** first line
    second line

- **Optional:**

  - **y (string) -** d2
`
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}
