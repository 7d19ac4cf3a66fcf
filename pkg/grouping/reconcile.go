package grouping

import (
	"slices"

	"github.com/pluqqy/fieldgroups/pkg/models"
)

// DroppedField is a grouped field reference that reconciliation removed
// because the field no longer exists in the schema.
type DroppedField struct {
	GroupID string
	Field   models.Field
}

// Initialize computes the starting state for an editing session.
//
// With nothing stored the result has no groups. A stored state recorded
// against the current schema version is trusted as is. Otherwise every group
// keeps only the fields still present in the schema, in their stored order;
// new schema fields are left unassigned and emptied groups are kept.
func Initialize(schema models.SchemaSnapshot, stored *models.GroupingState) models.GroupingState {
	state, _ := Reconcile(schema, stored)
	return state
}

// Reconcile is Initialize that also reports the field references it dropped.
func Reconcile(schema models.SchemaSnapshot, stored *models.GroupingState) (models.GroupingState, []DroppedField) {
	if stored == nil {
		return models.GroupingState{
			UpdatedAt:   schema.Version,
			Fields:      slices.Clone(schema.Fields),
			FieldGroups: []models.FieldGroup{},
		}, nil
	}
	if stored.UpdatedAt == schema.Version {
		return Clone(*stored), nil
	}

	live := make(map[string]struct{}, len(schema.Fields))
	for _, f := range schema.Fields {
		live[f.ID] = struct{}{}
	}

	var dropped []DroppedField
	groups := make([]models.FieldGroup, 0, len(stored.FieldGroups))
	for _, g := range stored.FieldGroups {
		kept := make([]models.Field, 0, len(g.Fields))
		for _, f := range g.Fields {
			if _, ok := live[f.ID]; ok {
				kept = append(kept, f)
				continue
			}
			dropped = append(dropped, DroppedField{GroupID: g.ID, Field: f})
		}
		groups = append(groups, models.FieldGroup{ID: g.ID, Name: g.Name, Fields: kept})
	}

	return models.GroupingState{
		UpdatedAt:   schema.Version,
		Fields:      slices.Clone(schema.Fields),
		FieldGroups: groups,
	}, dropped
}

// Drifted reports whether a stored state needs reconciling against schema.
func Drifted(schema models.SchemaSnapshot, stored *models.GroupingState) bool {
	return stored != nil && stored.UpdatedAt != schema.Version
}
