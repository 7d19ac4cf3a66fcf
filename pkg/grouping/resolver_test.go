package grouping

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pluqqy/fieldgroups/pkg/models"
)

func TestUnassignedFollowsSchemaOrder(t *testing.T) {
	state := models.GroupingState{
		Fields: fields("A", "B", "C", "D", "E"),
		FieldGroups: []models.FieldGroup{
			{ID: "g1", Fields: fields("D", "B")},
		},
	}

	assert.Equal(t, []string{"A", "C", "E"}, fieldIDs(Unassigned(state)))
}

func TestUnassignedCompleteness(t *testing.T) {
	state := threeGroups()
	actions := []Action{
		RemoveField{GroupID: "g1", FieldID: "C"},
		AddField{GroupID: "g3", FieldID: "C", FieldName: "C"},
		DeleteGroup{GroupID: "g2"},
		CreateGroup{},
		MoveField{GroupID: "g1", OldIndex: 2, NewIndex: 0},
	}
	ids := NewSequenceIDs("n")

	for _, action := range actions {
		state = Reduce(state, action, ids)

		seen := map[string]int{}
		for _, f := range Unassigned(state) {
			seen[f.ID]++
		}
		for _, g := range state.FieldGroups {
			for _, f := range g.Fields {
				seen[f.ID]++
			}
		}

		for _, f := range state.Fields {
			assert.Equal(t, 1, seen[f.ID], "after %s field %s", action.Type(), f.ID)
		}
		assert.Len(t, seen, len(state.Fields))
	}
}

func TestAssignments(t *testing.T) {
	state := threeGroups()

	got := Assignments(state)

	assert.Equal(t, map[string]string{"A": "g1", "B": "g1", "C": "g1", "D": "g1", "E": "g2"}, got)
}
