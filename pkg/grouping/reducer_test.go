package grouping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/fieldgroups/pkg/models"
)

func fields(ids ...string) []models.Field {
	out := make([]models.Field, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Field{ID: id, Name: "Field " + id})
	}
	return out
}

func fieldIDs(fs []models.Field) []string {
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.ID)
	}
	return out
}

func groupIDs(state models.GroupingState) []string {
	out := make([]string, 0, len(state.FieldGroups))
	for _, g := range state.FieldGroups {
		out = append(out, g.ID)
	}
	return out
}

func threeGroups() models.GroupingState {
	return models.GroupingState{
		UpdatedAt: "t1",
		Fields:    fields("A", "B", "C", "D", "E"),
		FieldGroups: []models.FieldGroup{
			{ID: "g1", Name: "One", Fields: fields("A", "B", "C", "D")},
			{ID: "g2", Name: "Two", Fields: fields("E")},
			{ID: "g3", Name: "Three", Fields: []models.Field{}},
		},
	}
}

func TestReduceCreateGroup(t *testing.T) {
	state := Initialize(models.SchemaSnapshot{Fields: fields("A"), Version: "t1"}, nil)

	next := Reduce(state, CreateGroup{}, NewSequenceIDs("g"))

	require.Len(t, next.FieldGroups, 1)
	assert.Equal(t, models.FieldGroup{ID: "g1", Name: "", Fields: []models.Field{}}, next.FieldGroups[0])
	assert.Empty(t, state.FieldGroups, "input state must not change")
}

func TestReduceCreateGroupAppendsAtEnd(t *testing.T) {
	next := Reduce(threeGroups(), CreateGroup{}, IDGeneratorFunc(func() string { return "new" }))

	assert.Equal(t, []string{"g1", "g2", "g3", "new"}, groupIDs(next))
}

func TestReduceCreateGroupRedrawsCollidingID(t *testing.T) {
	draws := []string{"g1", "g2", "fresh"}
	ids := IDGeneratorFunc(func() string {
		id := draws[0]
		draws = draws[1:]
		return id
	})

	next := Reduce(threeGroups(), CreateGroup{}, ids)

	assert.Equal(t, "fresh", next.FieldGroups[3].ID)
}

func TestReduceDeleteGroup(t *testing.T) {
	state := threeGroups()

	next := Reduce(state, DeleteGroup{GroupID: "g1"}, nil)

	assert.Equal(t, []string{"g2", "g3"}, groupIDs(next))
	assert.Equal(t, []string{"A", "B", "C", "D"}, fieldIDs(Unassigned(next)))
	assert.Equal(t, []string{"g1", "g2", "g3"}, groupIDs(state))
}

func TestReduceRenameGroup(t *testing.T) {
	tests := []struct {
		name string
		to   string
	}{
		{name: "Rename to text", to: "Main"},
		{name: "Rename to empty", to: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := threeGroups()
			next := Reduce(state, RenameGroup{GroupID: "g2", Name: tt.to}, nil)

			assert.Equal(t, tt.to, next.FieldGroups[1].Name)
			assert.Equal(t, "Two", state.FieldGroups[1].Name)
		})
	}
}

func TestReduceAddField(t *testing.T) {
	state := models.GroupingState{
		UpdatedAt:   "t1",
		Fields:      fields("A", "B"),
		FieldGroups: []models.FieldGroup{{ID: "g1", Fields: fields("A")}},
	}

	next := Reduce(state, AddField{GroupID: "g1", FieldID: "B", FieldName: "Bee"}, nil)

	assert.Equal(t, []models.Field{{ID: "A", Name: "Field A"}, {ID: "B", Name: "Bee"}}, next.FieldGroups[0].Fields)
	assert.Len(t, state.FieldGroups[0].Fields, 1)
}

func TestReduceAddFieldGuardsDoubleAssignment(t *testing.T) {
	state := threeGroups()

	sameGroup := Reduce(state, AddField{GroupID: "g1", FieldID: "A", FieldName: "A"}, nil)
	otherGroup := Reduce(state, AddField{GroupID: "g3", FieldID: "A", FieldName: "A"}, nil)

	assert.True(t, Equal(state, sameGroup))
	assert.True(t, Equal(state, otherGroup))
	assert.ErrorIs(t, Check(state, AddField{GroupID: "g3", FieldID: "A"}), ErrFieldAssigned)
}

func TestReduceRemoveField(t *testing.T) {
	state := threeGroups()

	next := Reduce(state, RemoveField{GroupID: "g1", FieldID: "B"}, nil)
	assert.Equal(t, []string{"A", "C", "D"}, fieldIDs(next.FieldGroups[0].Fields))

	absent := Reduce(state, RemoveField{GroupID: "g1", FieldID: "E"}, nil)
	assert.True(t, Equal(state, absent))
}

func TestReduceMoveFieldSplice(t *testing.T) {
	tests := []struct {
		name     string
		oldIndex int
		newIndex int
		want     []string
	}{
		{name: "Forward past neighbours", oldIndex: 0, newIndex: 2, want: []string{"B", "C", "A", "D"}},
		{name: "To end", oldIndex: 0, newIndex: 3, want: []string{"B", "C", "D", "A"}},
		{name: "Backward", oldIndex: 3, newIndex: 1, want: []string{"A", "D", "B", "C"}},
		{name: "Adjacent forward", oldIndex: 1, newIndex: 2, want: []string{"A", "C", "B", "D"}},
		{name: "Same index", oldIndex: 2, newIndex: 2, want: []string{"A", "B", "C", "D"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := threeGroups()
			next := Reduce(state, MoveField{GroupID: "g1", OldIndex: tt.oldIndex, NewIndex: tt.newIndex}, nil)

			assert.Equal(t, tt.want, fieldIDs(next.FieldGroups[0].Fields))
			assert.Equal(t, []string{"A", "B", "C", "D"}, fieldIDs(state.FieldGroups[0].Fields))
		})
	}
}

func TestReduceMoveFieldOutOfRangeIsNoop(t *testing.T) {
	state := threeGroups()

	for _, action := range []MoveField{
		{GroupID: "g1", OldIndex: -1, NewIndex: 0},
		{GroupID: "g1", OldIndex: 0, NewIndex: 4},
		{GroupID: "g1", OldIndex: 4, NewIndex: 0},
		{GroupID: "g3", OldIndex: 0, NewIndex: 0},
	} {
		next := Reduce(state, action, nil)
		assert.True(t, Equal(state, next), "%+v", action)
		assert.ErrorIs(t, Check(state, action), ErrIndexOutOfRange)
	}
}

func TestReduceMoveGroups(t *testing.T) {
	state := threeGroups()

	assert.Equal(t, []string{"g2", "g1", "g3"}, groupIDs(Reduce(state, MoveGroupUp{GroupID: "g2"}, nil)))
	assert.Equal(t, []string{"g1", "g3", "g2"}, groupIDs(Reduce(state, MoveGroupDown{GroupID: "g2"}, nil)))
	assert.Equal(t, []string{"g1", "g3", "g2"}, groupIDs(Reduce(state, MoveGroupUp{GroupID: "g3"}, nil)))
	assert.Equal(t, []string{"g2", "g1", "g3"}, groupIDs(Reduce(state, MoveGroupDown{GroupID: "g1"}, nil)))
}

func TestReduceMoveGroupBoundariesAreNoops(t *testing.T) {
	state := threeGroups()

	up := Reduce(state, MoveGroupUp{GroupID: "g1"}, nil)
	down := Reduce(state, MoveGroupDown{GroupID: "g3"}, nil)

	assert.True(t, Equal(state, up))
	assert.True(t, Equal(state, down))
	assert.ErrorIs(t, Check(state, MoveGroupUp{GroupID: "g1"}), ErrGroupAtBoundary)
	assert.ErrorIs(t, Check(state, MoveGroupDown{GroupID: "g3"}), ErrGroupAtBoundary)
}

func TestReduceUnknownGroupIsNoop(t *testing.T) {
	state := threeGroups()

	actions := []Action{
		DeleteGroup{GroupID: "nope"},
		RenameGroup{GroupID: "nope", Name: "x"},
		AddField{GroupID: "nope", FieldID: "Z"},
		RemoveField{GroupID: "nope", FieldID: "A"},
		MoveField{GroupID: "nope"},
		MoveGroupUp{GroupID: "nope"},
		MoveGroupDown{GroupID: "nope"},
	}

	for _, action := range actions {
		t.Run(action.Type().String(), func(t *testing.T) {
			next := Reduce(state, action, nil)
			assert.True(t, Equal(state, next))
			assert.ErrorIs(t, Check(state, action), ErrGroupNotFound)
		})
	}
}

func TestReduceNilActionIsNoop(t *testing.T) {
	state := threeGroups()

	next := Reduce(state, nil, nil)

	assert.True(t, Equal(state, next))
	assert.ErrorIs(t, Check(state, nil), ErrUnknownAction)
}

func TestReduceDoesNotAlias(t *testing.T) {
	state := threeGroups()

	next := Reduce(state, RenameGroup{GroupID: "g1", Name: "Changed"}, nil)
	next.FieldGroups[0].Fields[0].Name = "mutated"
	next.Fields[0].Name = "mutated"

	assert.Equal(t, "Field A", state.FieldGroups[0].Fields[0].Name)
	assert.Equal(t, "Field A", state.Fields[0].Name)
}

func TestEqualTreatsNilAndEmptyAlike(t *testing.T) {
	a := models.GroupingState{UpdatedAt: "v", FieldGroups: []models.FieldGroup{{ID: "g", Fields: nil}}}
	b := models.GroupingState{UpdatedAt: "v", Fields: []models.Field{}, FieldGroups: []models.FieldGroup{{ID: "g", Fields: []models.Field{}}}}

	assert.True(t, Equal(a, b))

	b.FieldGroups[0].Name = "x"
	assert.False(t, Equal(a, b))
}

func TestActionTypeString(t *testing.T) {
	assert.Equal(t, "create_group", CreateGroup{}.Type().String())
	assert.Equal(t, "move_field", MoveField{}.Type().String())
	assert.Equal(t, "unknown", ActionType(99).String())
}
