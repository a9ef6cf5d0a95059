package domain

// ExpectedField is one statically declared field contract. Name matching
// against the live schema is exact and case-sensitive on the remote API name.
type ExpectedField struct {
	Name     string
	Type     FieldType
	Required bool

	// Choices lists the choice values that must exist on the remote field.
	// Only meaningful for Choice fields; empty means any choices are allowed.
	Choices []string

	// ReferenceTargets lists the object names the field must be able to
	// reference. Only meaningful for Reference fields; empty means any target.
	ReferenceTargets []string
}

// ExpectedObjectSchema is the declared contract for one remote object.
// Field order is preserved through verification so reports are deterministic.
type ExpectedObjectSchema struct {
	ObjectName string
	Fields     []ExpectedField
}

// ObjectIdentity carries the remote platform's identifying names for an
// object. ID is opaque: it is displayed in reports but never interpreted.
type ObjectIdentity struct {
	ID           int
	APIName      string
	SingularName string
	PluralName   string
}

// ActualField is one field definition as fetched from the live platform.
type ActualField struct {
	Name             string
	DisplayName      string
	Type             FieldType
	TypeCode         int
	Required         bool
	Choices          []string
	ReferenceTargets []string
}

// ActualObjectSchema is the live shape of a remote object at fetch time.
type ActualObjectSchema struct {
	ObjectIdentity
	Fields []ActualField
}

// FieldByName returns the field with the given API name, matched exactly
// and case-sensitively.
func (s *ActualObjectSchema) FieldByName(name string) (*ActualField, bool) {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i], true
		}
	}
	return nil, false
}
