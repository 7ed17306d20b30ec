package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-paramdoc/pkg/paramdata"
)

// Options tunes the import.
type Options struct {
	// Schemas restricts the import to the named component schemas. Empty
	// imports every object schema.
	Schemas []string
	// Validate runs kin-openapi document validation before importing.
	Validate bool
}

// Import loads raw OpenAPI JSON or YAML and maps each object schema under
// components.schemas to a class. Classes and their parameters are sorted by
// name so repeated imports produce identical files.
func Import(ctx context.Context, location string, raw []byte, opts Options) (paramdata.Document, error) {
	if err := ctx.Err(); err != nil {
		return paramdata.Document{}, err
	}
	if len(raw) == 0 {
		return paramdata.Document{}, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return paramdata.Document{}, fmt.Errorf("openapi: load document: %w", err)
	}
	if opts.Validate {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return paramdata.Document{}, fmt.Errorf("openapi: validate: %w", err)
		}
	}

	doc := paramdata.Document{Location: location, Classes: []paramdata.Class{}}
	if spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return doc, nil
	}
	schemas := spec.Components.Schemas

	names := opts.Schemas
	if len(names) == 0 {
		for name := range schemas {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	for _, name := range names {
		ref, ok := schemas[name]
		if !ok || ref == nil || ref.Value == nil {
			if len(opts.Schemas) > 0 {
				return paramdata.Document{}, fmt.Errorf("openapi: schema %q not found", name)
			}
			continue
		}
		if !isObject(ref.Value) {
			continue
		}
		doc.Classes = append(doc.Classes, convertSchema(name, ref.Value))
	}
	return doc, nil
}

func convertSchema(name string, schema *openapi3.Schema) paramdata.Class {
	required := make(map[string]struct{}, len(schema.Required))
	for _, field := range schema.Required {
		required[field] = struct{}{}
	}

	props := make([]string, 0, len(schema.Properties))
	for prop := range schema.Properties {
		props = append(props, prop)
	}
	sort.Strings(props)

	class := paramdata.Class{Name: name, Parameters: make([]paramdata.Parameter, 0, len(props))}
	for _, prop := range props {
		ref := schema.Properties[prop]
		param := paramdata.Parameter{
			Name:     prop,
			Type:     schemaType(ref),
			Required: paramdata.FlagOptional,
		}
		if ref != nil && ref.Value != nil {
			param.Description = strings.TrimSpace(ref.Value.Description)
		}
		if _, ok := required[prop]; ok {
			param.Required = paramdata.FlagRequired
		}
		class.Parameters = append(class.Parameters, param)
	}
	return class
}

func isObject(schema *openapi3.Schema) bool {
	if schema.Type != nil && schema.Type.Is(openapi3.TypeObject) {
		return true
	}
	return schema.Type == nil && len(schema.Properties) > 0
}

// schemaType names a property type: the referenced schema name for $refs,
// "array<item>" for arrays, otherwise the declared type with its format.
func schemaType(ref *openapi3.SchemaRef) string {
	if ref == nil {
		return ""
	}
	if ref.Ref != "" {
		return ref.Ref[strings.LastIndex(ref.Ref, "/")+1:]
	}
	if ref.Value == nil {
		return ""
	}
	value := ref.Value
	typ := firstSchemaType(value.Type)
	switch {
	case typ == openapi3.TypeArray && value.Items != nil:
		return "array<" + schemaType(value.Items) + ">"
	case value.Format != "" && typ != "":
		return typ + "<" + value.Format + ">"
	default:
		return typ
	}
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values, ",")
	}
}
