package paramdoc_test

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	paramdoc "github.com/goliatone/go-paramdoc"
	"github.com/goliatone/go-paramdoc/pkg/directive"
	"github.com/goliatone/go-paramdoc/pkg/paramdata"
	"github.com/goliatone/go-paramdoc/pkg/testsupport"
)

const fooData = `classes:
  - name: Foo
    parameters:
      - {name: x, type: int, description: d1, required: 1}
      - {name: y, type: string, description: d2, required: 0}
`

func TestRenderClass_Markdown(t *testing.T) {
	path := testsupport.WriteDataFile(t, "parameters.yaml", fooData)

	out, err := paramdoc.RenderClass(context.Background(), path, "Foo", "markdown")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := "- **Required:**\n\n  - **x (int) -** d1\n\n- **Optional:**\n\n  - **y (string) -** d2\n"
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderClass_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	_, err := paramdoc.RenderClass(context.Background(), path, "Foo", "")
	if !errors.Is(err, paramdata.ErrMissingSourceFile) {
		t.Fatalf("expected ErrMissingSourceFile, got %v", err)
	}
	if got, want := err.Error(), "File not found: "+path; got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}

func TestNewDirectiveTable(t *testing.T) {
	table := paramdoc.NewDirectiveTable("parameters.yaml")
	if diff := cmp.Diff([]string{directive.ParametersName}, table.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	if _, err := fs.Stat(paramdoc.EmbeddedTemplates(), "fragment.tpl"); err != nil {
		t.Fatalf("fragment.tpl missing: %v", err)
	}
}
