package dealcloud

import (
	"strconv"
	"strings"

	"github.com/dealdesk/dcverify/internal/core/domain"
)

// mapObjectIdentity extracts the identifying names of an entry type. Some
// site configurations leave apiName empty and populate name instead.
func mapObjectIdentity(obj objectEntry) domain.ObjectIdentity {
	apiName := obj.APIName
	if apiName == "" {
		apiName = obj.Name
	}
	return domain.ObjectIdentity{
		ID:           obj.ID,
		APIName:      apiName,
		SingularName: obj.SingularName,
		PluralName:   obj.PluralName,
	}
}

// mapField translates one wire field into its domain shape. The numeric type
// code is resolved to a canonical type here and nowhere else; entry-list ids
// are resolved to object names so reference checks can compare by name.
func mapField(field fieldEntry, objectNamesByID map[int]string) domain.ActualField {
	name := field.APIName
	if name == "" {
		name = field.Name
	}

	choices := make([]string, 0, len(field.ChoiceValues))
	for _, cv := range field.ChoiceValues {
		if trimmed := strings.TrimSpace(cv.Name); trimmed != "" {
			choices = append(choices, trimmed)
		}
	}

	targets := make([]string, 0, len(field.EntryLists))
	for _, id := range field.EntryLists {
		if objName, ok := objectNamesByID[id]; ok {
			targets = append(targets, objName)
		} else {
			// Unresolvable id: keep it visible rather than dropping it.
			targets = append(targets, "entrylist:"+strconv.Itoa(id))
		}
	}

	return domain.ActualField{
		Name:             name,
		DisplayName:      field.DisplayName,
		Type:             domain.ResolveTypeCode(field.FieldType),
		TypeCode:         field.FieldType,
		Required:         field.IsRequired,
		Choices:          choices,
		ReferenceTargets: targets,
	}
}

func mapSchema(obj objectEntry, fields []fieldEntry, objectNamesByID map[int]string) *domain.ActualObjectSchema {
	schema := &domain.ActualObjectSchema{
		ObjectIdentity: mapObjectIdentity(obj),
		Fields:         make([]domain.ActualField, 0, len(fields)),
	}
	for _, field := range fields {
		schema.Fields = append(schema.Fields, mapField(field, objectNamesByID))
	}
	return schema
}

// objectNameIndex maps entry-type ids to their API names for reference
// target resolution.
func objectNameIndex(objects []objectEntry) map[int]string {
	index := make(map[int]string, len(objects))
	for _, obj := range objects {
		index[obj.ID] = mapObjectIdentity(obj).APIName
	}
	return index
}
