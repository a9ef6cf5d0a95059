// Package registry holds the declared field contracts. It is the single
// place where "what correctness means" for a remote object is defined,
// decoupled from how the live facts are fetched and how they are checked.
package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dealdesk/dcverify/internal/core/domain"
	"github.com/dealdesk/dcverify/internal/errors"
)

// Default returns the built-in Articles contract: the schema the newsletter
// ingestion pipeline uploads into. A YAML schema file can override it.
func Default() domain.ExpectedObjectSchema {
	return domain.ExpectedObjectSchema{
		ObjectName: "Articles",
		Fields: []domain.ExpectedField{
			{Name: "ArticleText", Type: domain.FieldTypeText, Required: false},
			{Name: "Headline", Type: domain.FieldTypeText, Required: false},
			{Name: "Hotels", Type: domain.FieldTypeReference, Required: false, ReferenceTargets: []string{"Hotels"}},
			{Name: "Companies", Type: domain.FieldTypeReference, Required: false, ReferenceTargets: []string{"Companies"}},
			{Name: "Contacts", Type: domain.FieldTypeReference, Required: false, ReferenceTargets: []string{"Contacts"}},
			{Name: "Source", Type: domain.FieldTypeText, Required: true},
			{Name: "PublishDate", Type: domain.FieldTypeDateTime, Required: true},
			{Name: "Type", Type: domain.FieldTypeChoice, Required: true, Choices: []string{"Actual", "Testing"}},
		},
	}
}

type schemaFile struct {
	Object string      `yaml:"object"`
	Fields []fieldSpec `yaml:"fields"`
}

type fieldSpec struct {
	Name       string   `yaml:"name"`
	Type       string   `yaml:"type"`
	Required   bool     `yaml:"required"`
	Choices    []string `yaml:"choices"`
	References []string `yaml:"references"`
}

// Load reads an expected schema declaration from a YAML file. A malformed
// declaration is a developer error and fails fatally before any remote call.
func Load(path string) (domain.ExpectedObjectSchema, error) {
	var schema domain.ExpectedObjectSchema

	raw, err := os.ReadFile(path)
	if err != nil {
		return schema, errors.Wrap(err, errors.CodeConfigReadError,
			fmt.Sprintf("failed to read schema file %q", path))
	}

	var file schemaFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return schema, errors.Wrap(err, errors.CodeConfigParseError,
			fmt.Sprintf("failed to parse schema file %q", path))
	}

	if file.Object == "" {
		return schema, errors.New(errors.CodeSchemaRegistry,
			fmt.Sprintf("schema file %q does not name an object", path))
	}

	schema.ObjectName = file.Object
	schema.Fields = make([]domain.ExpectedField, 0, len(file.Fields))
	for _, spec := range file.Fields {
		field, err := buildField(spec)
		if err != nil {
			return domain.ExpectedObjectSchema{}, err
		}
		schema.Fields = append(schema.Fields, field)
	}

	if err := Validate(schema); err != nil {
		return domain.ExpectedObjectSchema{}, err
	}
	return schema, nil
}

func buildField(spec fieldSpec) (domain.ExpectedField, error) {
	var field domain.ExpectedField

	if spec.Name == "" {
		return field, errors.New(errors.CodeSchemaRegistry, "schema declares a field with no name")
	}

	fieldType := domain.ResolveTypeName(spec.Type)
	if fieldType == domain.FieldTypeUnknown {
		return field, errors.Newf(errors.CodeSchemaRegistry,
			"field %q declares unknown type %q", spec.Name, spec.Type)
	}

	if len(spec.Choices) > 0 && fieldType != domain.FieldTypeChoice {
		return field, errors.Newf(errors.CodeSchemaRegistry,
			"field %q declares choices but is not a Choice field", spec.Name)
	}
	if len(spec.References) > 0 && fieldType != domain.FieldTypeReference {
		return field, errors.Newf(errors.CodeSchemaRegistry,
			"field %q declares reference targets but is not a Reference field", spec.Name)
	}

	return domain.ExpectedField{
		Name:             spec.Name,
		Type:             fieldType,
		Required:         spec.Required,
		Choices:          spec.Choices,
		ReferenceTargets: spec.References,
	}, nil
}

// Validate enforces the registry invariants: at least one field, no
// duplicate field names.
func Validate(schema domain.ExpectedObjectSchema) error {
	if len(schema.Fields) == 0 {
		return errors.Newf(errors.CodeSchemaRegistry,
			"schema for object %q declares no fields", schema.ObjectName)
	}

	seen := make(map[string]struct{}, len(schema.Fields))
	for _, field := range schema.Fields {
		if _, dup := seen[field.Name]; dup {
			return errors.Newf(errors.CodeSchemaRegistry,
				"schema for object %q declares field %q more than once", schema.ObjectName, field.Name)
		}
		seen[field.Name] = struct{}{}
	}
	return nil
}
