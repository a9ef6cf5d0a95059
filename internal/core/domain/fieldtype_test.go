package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTypeCode(t *testing.T) {
	tests := []struct {
		name string
		code int
		want FieldType
	}{
		{"text", 1, FieldTypeText},
		{"choice", 2, FieldTypeChoice},
		{"number", 3, FieldTypeNumber},
		{"datetime", 4, FieldTypeDateTime},
		{"reference", 5, FieldTypeReference},
		{"boolean", 6, FieldTypeBoolean},
		{"user reference", 7, FieldTypeUserReference},
		{"zero", 0, FieldTypeUnknown},
		{"calculated", 8, FieldTypeUnknown},
		{"attachment", 9, FieldTypeUnknown},
		{"negative", -1, FieldTypeUnknown},
		{"out of range", 99, FieldTypeUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveTypeCode(tc.code))
		})
	}
}

func TestResolveTypeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want FieldType
	}{
		{"plain text", "Text", FieldTypeText},
		{"multi line snake case", "multi_line_text", FieldTypeText},
		{"single line camel", "SingleLineText", FieldTypeText},
		{"rich text", "RichText", FieldTypeText},
		{"picklist", "Picklist", FieldTypeChoice},
		{"choice list kebab", "choice-list", FieldTypeChoice},
		{"decimal", "Decimal", FieldTypeNumber},
		{"date time snake", "date_time", FieldTypeDateTime},
		{"timestamp", "Timestamp", FieldTypeDateTime},
		{"lookup", "Lookup", FieldTypeReference},
		{"multi reference", "MultiReference", FieldTypeReference},
		{"bool", "bool", FieldTypeBoolean},
		{"user reference snake", "user_reference", FieldTypeUserReference},
		{"user", "User", FieldTypeUserReference},
		{"empty", "", FieldTypeUnknown},
		{"garbage", "Calculated", FieldTypeUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveTypeName(tc.in))
		})
	}
}

func TestFieldByName(t *testing.T) {
	schema := &ActualObjectSchema{
		Fields: []ActualField{
			{Name: "Headline", Type: FieldTypeText},
			{Name: "PublishDate", Type: FieldTypeDateTime},
		},
	}

	t.Run("exact match", func(t *testing.T) {
		field, ok := schema.FieldByName("PublishDate")
		assert.True(t, ok)
		assert.Equal(t, FieldTypeDateTime, field.Type)
	})

	t.Run("case sensitive", func(t *testing.T) {
		_, ok := schema.FieldByName("publishdate")
		assert.False(t, ok)
	})

	t.Run("absent", func(t *testing.T) {
		field, ok := schema.FieldByName("Source")
		assert.False(t, ok)
		assert.Nil(t, field)
	})
}
