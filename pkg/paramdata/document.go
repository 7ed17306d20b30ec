package paramdata

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Flag marks a parameter as required (1) or optional (0). Other values are
// preserved but place the parameter in neither partition.
type Flag int

const (
	FlagOptional Flag = 0
	FlagRequired Flag = 1
)

// UnmarshalYAML accepts integer flags and YAML booleans.
func (f *Flag) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!bool" {
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		*f = flagFromBool(b)
		return nil
	}
	var n int
	if err := node.Decode(&n); err != nil {
		return fmt.Errorf("required flag must be an integer or boolean: %w", err)
	}
	*f = Flag(n)
	return nil
}

// UnmarshalJSON accepts integer flags and JSON booleans.
func (f *Flag) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = flagFromBool(b)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("required flag must be an integer or boolean: %w", err)
	}
	*f = Flag(n)
	return nil
}

func flagFromBool(b bool) Flag {
	if b {
		return FlagRequired
	}
	return FlagOptional
}

// Parameter describes one documented parameter of a class.
type Parameter struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
	Required    Flag   `json:"required" yaml:"required"`
}

// Class groups the parameters documented for a single class.
type Class struct {
	Name       string      `json:"name" yaml:"name"`
	Parameters []Parameter `json:"parameters" yaml:"parameters"`
}

// Document is the parsed content of a parameter data file. Classes keep the
// order in which they appear in the file.
type Document struct {
	Location string  `json:"-" yaml:"-"`
	Classes  []Class `json:"classes" yaml:"classes"`
}

type documentFile struct {
	Classes []classFile `json:"classes" yaml:"classes"`
}

type classFile struct {
	Name       string          `json:"name" yaml:"name"`
	Parameters []parameterFile `json:"parameters" yaml:"parameters"`
}

type parameterFile struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
	Required    *Flag  `json:"required" yaml:"required"`
}

// Parse decodes a JSON or YAML payload. Parse failures are returned as plain
// wrapped errors; they are not one of the reportable kinds.
func Parse(location string, data []byte) (Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("paramdata: file %s is empty", location)
	}

	var raw documentFile
	if err := json.Unmarshal(data, &raw); err != nil {
		raw = documentFile{}
		if yamlErr := yaml.Unmarshal(data, &raw); yamlErr != nil {
			return Document{}, fmt.Errorf("paramdata: parse %s: %w", location, yamlErr)
		}
	}

	return normaliseDocument(location, raw)
}

func normaliseDocument(location string, raw documentFile) (Document, error) {
	if raw.Classes == nil {
		return Document{}, fmt.Errorf("paramdata: file %s does not define classes", location)
	}

	doc := Document{
		Location: location,
		Classes:  make([]Class, 0, len(raw.Classes)),
	}
	for _, rc := range raw.Classes {
		if rc.Parameters == nil {
			return Document{}, fmt.Errorf("paramdata: file %s: class %q has no parameters list", location, rc.Name)
		}
		class := Class{
			Name:       rc.Name,
			Parameters: make([]Parameter, 0, len(rc.Parameters)),
		}
		for _, rp := range rc.Parameters {
			if rp.Required == nil {
				return Document{}, fmt.Errorf("paramdata: file %s: parameter %q of class %q has no required flag", location, rp.Name, rc.Name)
			}
			class.Parameters = append(class.Parameters, Parameter{
				Name:        rp.Name,
				Type:        rp.Type,
				Description: rp.Description,
				Required:    *rp.Required,
			})
		}
		doc.Classes = append(doc.Classes, class)
	}
	return doc, nil
}

// Marshal encodes a Document as YAML using the on-disk schema.
func Marshal(doc Document) ([]byte, error) {
	if doc.Classes == nil {
		doc.Classes = []Class{}
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("paramdata: marshal: %w", err)
	}
	return out, nil
}

// Class returns the first class whose name equals name exactly.
func (d Document) Class(name string) (Class, error) {
	for _, class := range d.Classes {
		if class.Name == name {
			return class, nil
		}
	}
	return Class{}, &ClassError{Class: name, Location: d.Location}
}

// Names lists class names in document order.
func (d Document) Names() []string {
	names := make([]string, 0, len(d.Classes))
	for _, class := range d.Classes {
		names = append(names, class.Name)
	}
	return names
}

// Partition splits the parameters into required and optional groups while
// preserving their relative order.
func (c Class) Partition() (required, optional []Parameter) {
	for _, param := range c.Parameters {
		switch param.Required {
		case FlagRequired:
			required = append(required, param)
		case FlagOptional:
			optional = append(optional, param)
		}
	}
	return required, optional
}
