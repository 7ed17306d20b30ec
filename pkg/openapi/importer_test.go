package openapi_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-paramdoc/pkg/openapi"
	"github.com/goliatone/go-paramdoc/pkg/paramdata"
)

const petstore = `openapi: 3.0.3
info:
  title: Pets
  version: 1.0.0
paths: {}
components:
  schemas:
    Pet:
      type: object
      required: [name]
      properties:
        name:
          type: string
          description: "  Display name. "
        tags:
          type: array
          items:
            type: string
        owner:
          $ref: '#/components/schemas/Owner'
        born:
          type: string
          format: date
    Owner:
      type: object
      properties:
        id:
          type: integer
          format: int64
          description: Owner id.
    Status:
      type: string
      enum: [available, sold]
`

func TestImport_ObjectSchemas(t *testing.T) {
	doc, err := openapi.Import(context.Background(), "petstore.yaml", []byte(petstore), openapi.Options{})
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	want := paramdata.Document{
		Location: "petstore.yaml",
		Classes: []paramdata.Class{
			{
				Name: "Owner",
				Parameters: []paramdata.Parameter{
					{Name: "id", Type: "integer<int64>", Description: "Owner id.", Required: paramdata.FlagOptional},
				},
			},
			{
				Name: "Pet",
				Parameters: []paramdata.Parameter{
					{Name: "born", Type: "string<date>", Required: paramdata.FlagOptional},
					{Name: "name", Type: "string", Description: "Display name.", Required: paramdata.FlagRequired},
					{Name: "owner", Type: "Owner", Required: paramdata.FlagOptional},
					{Name: "tags", Type: "array<string>", Required: paramdata.FlagOptional},
				},
			},
		},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestImport_SelectedSchemas(t *testing.T) {
	doc, err := openapi.Import(context.Background(), "petstore.yaml", []byte(petstore), openapi.Options{Schemas: []string{"Pet"}})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if diff := cmp.Diff([]string{"Pet"}, doc.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	if _, err := openapi.Import(context.Background(), "petstore.yaml", []byte(petstore), openapi.Options{Schemas: []string{"Nope"}}); err == nil {
		t.Fatalf("expected error for unknown schema")
	}
}

func TestImport_Empty(t *testing.T) {
	if _, err := openapi.Import(context.Background(), "empty.yaml", nil, openapi.Options{}); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}
