package loader_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-paramdoc/internal/paramdata/loader"
	"github.com/goliatone/go-paramdoc/pkg/paramdata"
)

const fooYAML = `classes:
  - name: Foo
    parameters:
      - name: x
        type: int
        description: d1
        required: 1
      - name: y
        type: string
        description: d2
        required: 0
`

func TestLoader_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	if err := os.WriteFile(path, []byte(fooYAML), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	l := loader.New(paramdata.LoaderOptions{})
	doc, err := l.Load(context.Background(), paramdata.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := paramdata.Document{
		Location: path,
		Classes: []paramdata.Class{{
			Name: "Foo",
			Parameters: []paramdata.Parameter{
				{Name: "x", Type: "int", Description: "d1", Required: paramdata.FlagRequired},
				{Name: "y", Type: "string", Description: "d2", Required: paramdata.FlagOptional},
			},
		}},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	l := loader.New(paramdata.LoaderOptions{})
	_, err := l.Load(context.Background(), paramdata.SourceFromFile(path))
	if !errors.Is(err, paramdata.ErrMissingSourceFile) {
		t.Fatalf("expected ErrMissingSourceFile, got %v", err)
	}
	if got, want := err.Error(), "File not found: "+path; got != want {
		t.Fatalf("message mismatch: want %q, got %q", want, got)
	}
}

func TestLoader_DirectoryIsMissingFile(t *testing.T) {
	l := loader.New(paramdata.LoaderOptions{})
	_, err := l.Load(context.Background(), paramdata.SourceFromFile(t.TempDir()))
	if !errors.Is(err, paramdata.ErrMissingSourceFile) {
		t.Fatalf("expected ErrMissingSourceFile for directory, got %v", err)
	}
}

func TestLoader_MalformedFileIsNotReportable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("classes: [\n  - name: :"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	l := loader.New(paramdata.LoaderOptions{})
	_, err := l.Load(context.Background(), paramdata.SourceFromFile(path))
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if paramdata.IsReportable(err) {
		t.Fatalf("parse errors must not be reportable: %v", err)
	}
}

func TestLoader_FS(t *testing.T) {
	files := fstest.MapFS{
		"docs/params.yaml": &fstest.MapFile{Data: []byte(fooYAML)},
	}
	l := loader.New(paramdata.NewLoaderOptions(paramdata.WithFileSystem(files)))

	doc, err := l.Load(context.Background(), paramdata.SourceFromFS("docs/params.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"Foo"}, doc.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	_, err = l.Load(context.Background(), paramdata.SourceFromFS("docs/other.yaml"))
	if !errors.Is(err, paramdata.ErrMissingSourceFile) {
		t.Fatalf("expected ErrMissingSourceFile, got %v", err)
	}
}

func TestLoader_HTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/params.yaml" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(fooYAML))
	}))
	defer server.Close()

	l := loader.New(paramdata.NewLoaderOptions(paramdata.WithHTTPClient(server.Client())))

	src, err := paramdata.SourceFromURL(server.URL + "/params.yaml")
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	doc, err := l.Load(context.Background(), src)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Classes) != 1 {
		t.Fatalf("expected one class, got %d", len(doc.Classes))
	}

	missing, err := paramdata.SourceFromURL(server.URL + "/missing.yaml")
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	if _, err := l.Load(context.Background(), missing); !errors.Is(err, paramdata.ErrMissingSourceFile) {
		t.Fatalf("expected ErrMissingSourceFile for 404, got %v", err)
	}
}

func TestLoader_HTTPDisabled(t *testing.T) {
	l := loader.New(paramdata.LoaderOptions{})
	src, err := paramdata.SourceFromURL("https://example.com/params.yaml")
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	if _, err := l.Load(context.Background(), src); err == nil {
		t.Fatalf("expected http disabled error")
	}
}
