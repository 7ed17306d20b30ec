package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-paramdoc/pkg/paramdata"
)

type fakeDriver struct {
	index int
	err   error
	got   SelectConfig
}

func (d *fakeDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	d.got = cfg
	return d.index, d.err
}

func testDocument() paramdata.Document {
	return paramdata.Document{
		Location: "parameters.yaml",
		Classes: []paramdata.Class{
			{Name: "Mesh"},
			{Name: "Solver"},
		},
	}
}

func TestPickClass(t *testing.T) {
	driver := &fakeDriver{index: 1}

	name, err := PickClass(context.Background(), driver, testDocument())
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if name != "Solver" {
		t.Fatalf("name = %q, want Solver", name)
	}
	if diff := cmp.Diff([]string{"Mesh", "Solver"}, driver.got.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestPickClass_Errors(t *testing.T) {
	if _, err := PickClass(context.Background(), &fakeDriver{}, paramdata.Document{}); !errors.Is(err, ErrNoOptions) {
		t.Fatalf("expected ErrNoOptions, got %v", err)
	}

	_, err := PickClass(context.Background(), &fakeDriver{err: ErrAborted}, testDocument())
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}

	if _, err := PickClass(context.Background(), &fakeDriver{index: 5}, testDocument()); err == nil {
		t.Fatalf("expected out of range error")
	}
}

func TestTranslateSurveyErr(t *testing.T) {
	other := errors.New("boom")
	if got := translateSurveyErr(other); got != other {
		t.Fatalf("expected passthrough, got %v", got)
	}
}
