package grouping

import "github.com/pluqqy/fieldgroups/pkg/models"

// Unassigned returns the schema snapshot fields that are in no group, in
// schema order.
func Unassigned(state models.GroupingState) []models.Field {
	assigned := Assignments(state)
	out := make([]models.Field, 0, len(state.Fields))
	for _, f := range state.Fields {
		if _, ok := assigned[f.ID]; !ok {
			out = append(out, f)
		}
	}
	return out
}

// Assignments maps each grouped field id to the id of the first group holding it.
func Assignments(state models.GroupingState) map[string]string {
	assigned := make(map[string]string)
	for _, g := range state.FieldGroups {
		for _, f := range g.Fields {
			if _, ok := assigned[f.ID]; !ok {
				assigned[f.ID] = g.ID
			}
		}
	}
	return assigned
}
