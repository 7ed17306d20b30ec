package parameters_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-paramdoc/internal/paramdata/loader"
	"github.com/goliatone/go-paramdoc/pkg/fragment"
	"github.com/goliatone/go-paramdoc/pkg/paramdata"
	"github.com/goliatone/go-paramdoc/pkg/parameters"
)

const dataYAML = `classes:
  - name: Foo
    parameters:
      - {name: x, type: int, description: d1, required: 1}
      - {name: y, type: string, description: d2, required: 0}
  - name: Empty
    parameters: []
  - name: OnlyOptional
    parameters:
      - {name: a, type: real, description: first, required: 0}
      - {name: b, type: real, description: second, required: 0}
`

func writeData(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parameters.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write data: %v", err)
	}
	return path
}

func render(t *testing.T, path, class string) (fragment.BulletList, error) {
	t.Helper()
	l := loader.New(paramdata.LoaderOptions{})
	return parameters.Render(context.Background(), l, paramdata.SourceFromFile(path), class)
}

func TestRender_RequiredAndOptional(t *testing.T) {
	path := writeData(t, dataYAML)

	got, err := render(t, path, "Foo")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := fragment.BulletList{Items: []fragment.ListItem{
		{Children: []fragment.Node{
			fragment.Strong{Text: "Required:"},
			fragment.BulletList{Items: []fragment.ListItem{{Children: []fragment.Node{
				fragment.Paragraph{Children: []fragment.Node{
					fragment.Strong{Text: "x (int) - "},
					fragment.Text{Text: "d1"},
				}},
			}}}},
		}},
		{Children: []fragment.Node{
			fragment.Strong{Text: "Optional:"},
			fragment.BulletList{Items: []fragment.ListItem{{Children: []fragment.Node{
				fragment.Paragraph{Children: []fragment.Node{
					fragment.Strong{Text: "y (string) - "},
					fragment.Text{Text: "d2"},
				}},
			}}}},
		}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("fragment mismatch (-want +got):\n%s", diff)
	}
	if text := fragment.PlainText(got); text != "Required:\nx (int) - d1\nOptional:\ny (string) - d2" {
		t.Fatalf("plain text mismatch: %q", text)
	}
}

func TestRender_EmptyClassYieldsEmptyList(t *testing.T) {
	path := writeData(t, dataYAML)

	got, err := render(t, path, "Empty")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got.Len() != 0 {
		t.Fatalf("expected empty list, got %d items", got.Len())
	}
}

func TestRender_OmitsEmptyPartition(t *testing.T) {
	path := writeData(t, dataYAML)

	got, err := render(t, path, "OnlyOptional")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got.Len() != 1 {
		t.Fatalf("expected one section, got %d", got.Len())
	}
	if text := fragment.PlainText(got); text != "Optional:\na (real) - first\nb (real) - second" {
		t.Fatalf("plain text mismatch: %q", text)
	}
}

func TestRender_UnknownClass(t *testing.T) {
	path := writeData(t, dataYAML)

	got, err := render(t, path, "Missing")
	if !errors.Is(err, paramdata.ErrUnknownClass) {
		t.Fatalf("expected ErrUnknownClass, got %v", err)
	}
	if got.Len() != 0 {
		t.Fatalf("unknown class must not produce a partial fragment")
	}
}

func TestRender_MissingFileBeforeParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")

	_, err := render(t, path, "Foo")
	if !errors.Is(err, paramdata.ErrMissingSourceFile) {
		t.Fatalf("expected ErrMissingSourceFile, got %v", err)
	}
}

func TestRender_Idempotent(t *testing.T) {
	path := writeData(t, dataYAML)

	first, err := render(t, path, "Foo")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	second, err := render(t, path, "Foo")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("renders differ (-first +second):\n%s", diff)
	}
}

func TestBuild_SectionCounts(t *testing.T) {
	for k := 0; k <= 3; k++ {
		for m := 0; m <= 3; m++ {
			t.Run(fmt.Sprintf("required=%d/optional=%d", k, m), func(t *testing.T) {
				class := paramdata.Class{Name: "C"}
				for i := 0; i < k; i++ {
					class.Parameters = append(class.Parameters, paramdata.Parameter{Name: fmt.Sprintf("r%d", i), Required: paramdata.FlagRequired})
				}
				for i := 0; i < m; i++ {
					class.Parameters = append(class.Parameters, paramdata.Parameter{Name: fmt.Sprintf("o%d", i), Required: paramdata.FlagOptional})
				}

				list := parameters.Build(class)

				wantSections := 0
				if k > 0 {
					wantSections++
				}
				if m > 0 {
					wantSections++
				}
				if list.Len() != wantSections {
					t.Fatalf("sections: want %d, got %d", wantSections, list.Len())
				}

				counts := make([]int, 0, list.Len())
				for _, item := range list.Items {
					nested, ok := item.Children[1].(fragment.BulletList)
					if !ok {
						t.Fatalf("expected nested bullet list, got %T", item.Children[1])
					}
					counts = append(counts, nested.Len())
				}
				var wantCounts []int
				if k > 0 {
					wantCounts = append(wantCounts, k)
				}
				if m > 0 {
					wantCounts = append(wantCounts, m)
				}
				if diff := cmp.Diff(wantCounts, counts, cmpopts.EquateEmpty()); diff != "" {
					t.Fatalf("item counts mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}
