package domain

import "strings"

// FieldType is the canonical semantic type of a DealCloud field. The numeric
// codes and the assorted display-name spellings used by the remote platform
// are translated into this enumeration exactly once, at the fetch boundary.
type FieldType string

const (
	FieldTypeText          FieldType = "Text"
	FieldTypeChoice        FieldType = "Choice"
	FieldTypeNumber        FieldType = "Number"
	FieldTypeDateTime      FieldType = "DateTime"
	FieldTypeReference     FieldType = "Reference"
	FieldTypeBoolean       FieldType = "Boolean"
	FieldTypeUserReference FieldType = "UserReference"

	// FieldTypeUnknown marks a remote type code this tool does not recognise.
	// It surfaces later as a per-field type mismatch rather than aborting the run.
	FieldTypeUnknown FieldType = "Unknown"
)

func (ft FieldType) String() string {
	return string(ft)
}

// ResolveTypeCode maps a DealCloud numeric field-type code to its canonical
// type. Codes outside the mapped range (including Calculated and Attachment,
// which this tool never declares expectations for) resolve to Unknown.
func ResolveTypeCode(code int) FieldType {
	switch code {
	case 1:
		return FieldTypeText
	case 2:
		return FieldTypeChoice
	case 3:
		return FieldTypeNumber
	case 4:
		return FieldTypeDateTime
	case 5:
		return FieldTypeReference
	case 6:
		return FieldTypeBoolean
	case 7:
		return FieldTypeUserReference
	default:
		return FieldTypeUnknown
	}
}

var typeNameSynonyms = map[string]FieldType{
	"text":           FieldTypeText,
	"string":         FieldTypeText,
	"singlelinetext": FieldTypeText,
	"multilinetext":  FieldTypeText,
	"richtext":       FieldTypeText,
	"choice":         FieldTypeChoice,
	"choicelist":     FieldTypeChoice,
	"picklist":       FieldTypeChoice,
	"number":         FieldTypeNumber,
	"integer":        FieldTypeNumber,
	"decimal":        FieldTypeNumber,
	"date":           FieldTypeDateTime,
	"datetime":       FieldTypeDateTime,
	"timestamp":      FieldTypeDateTime,
	"reference":      FieldTypeReference,
	"multireference": FieldTypeReference,
	"lookup":         FieldTypeReference,
	"boolean":        FieldTypeBoolean,
	"bool":           FieldTypeBoolean,
	"userreference":  FieldTypeUserReference,
	"user":           FieldTypeUserReference,
}

// ResolveTypeName maps a field-type name to its canonical type. The platform
// and its SDKs are inconsistent about casing and separators (MultiLineText,
// multi_line_text, Picklist, date-time), so names are normalised before lookup.
func ResolveTypeName(name string) FieldType {
	normalised := strings.ToLower(name)
	normalised = strings.ReplaceAll(normalised, "_", "")
	normalised = strings.ReplaceAll(normalised, "-", "")
	if ft, ok := typeNameSynonyms[normalised]; ok {
		return ft
	}
	return FieldTypeUnknown
}
