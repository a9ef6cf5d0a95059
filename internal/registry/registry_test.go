package registry

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdesk/dcverify/internal/core/domain"
	"github.com/dealdesk/dcverify/internal/errors"
)

func TestDefault(t *testing.T) {
	schema := Default()

	assert.Equal(t, "Articles", schema.ObjectName)
	require.Len(t, schema.Fields, 8)
	require.NoError(t, Validate(schema))

	names := make([]string, 0, len(schema.Fields))
	for _, f := range schema.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{
		"ArticleText", "Headline", "Hotels", "Companies",
		"Contacts", "Source", "PublishDate", "Type",
	}, names)

	typeField := schema.Fields[7]
	assert.Equal(t, domain.FieldTypeChoice, typeField.Type)
	assert.True(t, typeField.Required)
	assert.Equal(t, []string{"Actual", "Testing"}, typeField.Choices)

	hotels := schema.Fields[2]
	assert.Equal(t, domain.FieldTypeReference, hotels.Type)
	assert.Equal(t, []string{"Hotels"}, hotels.ReferenceTargets)
}

func TestLoad(t *testing.T) {
	t.Run("valid schema file", func(t *testing.T) {
		schema, err := Load(filepath.Join("testdata", "valid_schema.yaml"))
		require.NoError(t, err)

		assert.Equal(t, "Deals", schema.ObjectName)
		require.Len(t, schema.Fields, 5)

		assert.Equal(t, domain.FieldTypeText, schema.Fields[0].Type)
		assert.True(t, schema.Fields[0].Required)

		stage := schema.Fields[1]
		assert.Equal(t, domain.FieldTypeChoice, stage.Type)
		assert.Equal(t, []string{"Sourced", "Closed"}, stage.Choices)

		sponsor := schema.Fields[2]
		assert.Equal(t, domain.FieldTypeReference, sponsor.Type)
		assert.Equal(t, []string{"Companies"}, sponsor.ReferenceTargets)

		assert.Equal(t, domain.FieldTypeDateTime, schema.Fields[3].Type)
		assert.Equal(t, domain.FieldTypeBoolean, schema.Fields[4].Type)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join("testdata", "does-not-exist.yaml"))
		require.Error(t, err)
		assert.Equal(t, errors.CodeConfigReadError, errors.GetCode(err))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(filepath.Join("testdata", "invalid.yaml"))
		require.Error(t, err)
		assert.Equal(t, errors.CodeConfigParseError, errors.GetCode(err))
	})

	t.Run("duplicate field names", func(t *testing.T) {
		_, err := Load(filepath.Join("testdata", "duplicate_fields.yaml"))
		require.Error(t, err)
		assert.Equal(t, errors.CodeSchemaRegistry, errors.GetCode(err))
		assert.Contains(t, err.Error(), "Headline")
	})

	t.Run("unknown field type", func(t *testing.T) {
		_, err := Load(filepath.Join("testdata", "unknown_type.yaml"))
		require.Error(t, err)
		assert.Equal(t, errors.CodeSchemaRegistry, errors.GetCode(err))
		assert.Contains(t, err.Error(), "hologram")
	})

	t.Run("choices on non-choice field", func(t *testing.T) {
		_, err := Load(filepath.Join("testdata", "choices_on_text.yaml"))
		require.Error(t, err)
		assert.Equal(t, errors.CodeSchemaRegistry, errors.GetCode(err))
	})

	t.Run("object name missing", func(t *testing.T) {
		_, err := Load(filepath.Join("testdata", "no_object.yaml"))
		require.Error(t, err)
		assert.Equal(t, errors.CodeSchemaRegistry, errors.GetCode(err))
	})
}

func TestValidate(t *testing.T) {
	t.Run("no fields", func(t *testing.T) {
		err := Validate(domain.ExpectedObjectSchema{ObjectName: "Empty"})
		require.Error(t, err)
	})

	t.Run("duplicates", func(t *testing.T) {
		err := Validate(domain.ExpectedObjectSchema{
			ObjectName: "Articles",
			Fields: []domain.ExpectedField{
				{Name: "Source", Type: domain.FieldTypeText},
				{Name: "Source", Type: domain.FieldTypeText},
			},
		})
		require.Error(t, err)
		assert.Equal(t, errors.CodeSchemaRegistry, errors.GetCode(err))
	})
}
