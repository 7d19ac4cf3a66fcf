package grouping

import (
	"fmt"
	"slices"

	"github.com/pluqqy/fieldgroups/pkg/models"
)

// Reduce applies action to state and returns the resulting state. The input
// is never modified and the result shares no slices with it. An action whose
// preconditions do not hold leaves the state unchanged.
func Reduce(state models.GroupingState, action Action, ids IDGenerator) models.GroupingState {
	next := Clone(state)
	if err := Check(state, action); err != nil {
		return next
	}

	switch a := action.(type) {
	case CreateGroup:
		if ids == nil {
			ids = RandomIDs{}
		}
		next.FieldGroups = append(next.FieldGroups, models.FieldGroup{
			ID:     freshID(next.FieldGroups, ids),
			Name:   "",
			Fields: []models.Field{},
		})

	case DeleteGroup:
		i := indexOfGroup(next.FieldGroups, a.GroupID)
		next.FieldGroups = slices.Delete(next.FieldGroups, i, i+1)

	case RenameGroup:
		i := indexOfGroup(next.FieldGroups, a.GroupID)
		next.FieldGroups[i].Name = a.Name

	case AddField:
		i := indexOfGroup(next.FieldGroups, a.GroupID)
		next.FieldGroups[i].Fields = append(next.FieldGroups[i].Fields, models.Field{ID: a.FieldID, Name: a.FieldName})

	case RemoveField:
		i := indexOfGroup(next.FieldGroups, a.GroupID)
		next.FieldGroups[i].Fields = slices.DeleteFunc(next.FieldGroups[i].Fields, func(f models.Field) bool {
			return f.ID == a.FieldID
		})

	case MoveField:
		i := indexOfGroup(next.FieldGroups, a.GroupID)
		next.FieldGroups[i].Fields = splice(next.FieldGroups[i].Fields, a.OldIndex, a.NewIndex)

	case MoveGroupUp:
		i := indexOfGroup(next.FieldGroups, a.GroupID)
		next.FieldGroups = splice(next.FieldGroups, i, i-1)

	case MoveGroupDown:
		i := indexOfGroup(next.FieldGroups, a.GroupID)
		next.FieldGroups = splice(next.FieldGroups, i, i+1)
	}

	return next
}

// Check reports why action cannot be applied to state, or nil when it can.
func Check(state models.GroupingState, action Action) error {
	if _, ok := action.(CreateGroup); ok {
		return nil
	}

	groupID, ok := targetGroup(action)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnknownAction, action)
	}
	i := indexOfGroup(state.FieldGroups, groupID)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrGroupNotFound, groupID)
	}

	switch a := action.(type) {
	case AddField:
		if owner, assigned := Assignments(state)[a.FieldID]; assigned {
			return fmt.Errorf("%w: %q is in group %q", ErrFieldAssigned, a.FieldID, owner)
		}
	case MoveField:
		n := len(state.FieldGroups[i].Fields)
		if a.OldIndex < 0 || a.OldIndex >= n || a.NewIndex < 0 || a.NewIndex >= n {
			return fmt.Errorf("%w: move %d to %d in a group of %d", ErrIndexOutOfRange, a.OldIndex, a.NewIndex, n)
		}
	case MoveGroupUp:
		if i == 0 {
			return fmt.Errorf("%w: %q is already first", ErrGroupAtBoundary, groupID)
		}
	case MoveGroupDown:
		if i == len(state.FieldGroups)-1 {
			return fmt.Errorf("%w: %q is already last", ErrGroupAtBoundary, groupID)
		}
	}
	return nil
}

func targetGroup(action Action) (string, bool) {
	switch a := action.(type) {
	case DeleteGroup:
		return a.GroupID, true
	case RenameGroup:
		return a.GroupID, true
	case AddField:
		return a.GroupID, true
	case RemoveField:
		return a.GroupID, true
	case MoveField:
		return a.GroupID, true
	case MoveGroupUp:
		return a.GroupID, true
	case MoveGroupDown:
		return a.GroupID, true
	}
	return "", false
}

// splice removes the element at from and inserts it at to, where to indexes
// the sequence after the removal.
func splice[T any](items []T, from, to int) []T {
	moved := items[from]
	items = slices.Delete(items, from, from+1)
	return slices.Insert(items, to, moved)
}

func indexOfGroup(groups []models.FieldGroup, id string) int {
	return slices.IndexFunc(groups, func(g models.FieldGroup) bool {
		return g.ID == id
	})
}

// Clone deep-copies a state. Nil sequences stay nil.
func Clone(state models.GroupingState) models.GroupingState {
	out := models.GroupingState{
		UpdatedAt: state.UpdatedAt,
		Fields:    slices.Clone(state.Fields),
	}
	if state.FieldGroups != nil {
		out.FieldGroups = make([]models.FieldGroup, len(state.FieldGroups))
		for i, g := range state.FieldGroups {
			out.FieldGroups[i] = cloneGroup(g)
		}
	}
	return out
}

func cloneGroup(g models.FieldGroup) models.FieldGroup {
	return models.FieldGroup{ID: g.ID, Name: g.Name, Fields: slices.Clone(g.Fields)}
}

// Equal compares two states logically; nil and empty sequences are equal.
func Equal(a, b models.GroupingState) bool {
	if a.UpdatedAt != b.UpdatedAt || !slices.Equal(a.Fields, b.Fields) {
		return false
	}
	return slices.EqualFunc(a.FieldGroups, b.FieldGroups, func(x, y models.FieldGroup) bool {
		return x.ID == y.ID && x.Name == y.Name && slices.Equal(x.Fields, y.Fields)
	})
}
