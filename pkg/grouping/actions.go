package grouping

// ActionType identifies the kind of an Action.
type ActionType int

const (
	ActionCreateGroup ActionType = iota
	ActionDeleteGroup
	ActionRenameGroup
	ActionAddField
	ActionRemoveField
	ActionMoveField
	ActionMoveGroupUp
	ActionMoveGroupDown
)

func (t ActionType) String() string {
	switch t {
	case ActionCreateGroup:
		return "create_group"
	case ActionDeleteGroup:
		return "delete_group"
	case ActionRenameGroup:
		return "rename_group"
	case ActionAddField:
		return "add_field"
	case ActionRemoveField:
		return "remove_field"
	case ActionMoveField:
		return "move_field"
	case ActionMoveGroupUp:
		return "move_group_up"
	case ActionMoveGroupDown:
		return "move_group_down"
	default:
		return "unknown"
	}
}

// Action is one discrete edit to a GroupingState.
type Action interface {
	Type() ActionType
}

// CreateGroup appends an unnamed, empty group.
type CreateGroup struct{}

// DeleteGroup removes a group. Its fields become unassigned.
type DeleteGroup struct {
	GroupID string
}

// RenameGroup sets a group's name. An empty name is allowed.
type RenameGroup struct {
	GroupID string
	Name    string
}

// AddField appends a field to a group. The field must not be assigned to any group.
type AddField struct {
	GroupID   string
	FieldID   string
	FieldName string
}

// RemoveField drops a field from a group. Removing an absent field is a no-op.
type RemoveField struct {
	GroupID string
	FieldID string
}

// MoveField removes the field at OldIndex and reinserts it at NewIndex of the
// shortened sequence.
type MoveField struct {
	GroupID  string
	OldIndex int
	NewIndex int
}

// MoveGroupUp swaps a group with its predecessor.
type MoveGroupUp struct {
	GroupID string
}

// MoveGroupDown swaps a group with its successor.
type MoveGroupDown struct {
	GroupID string
}

func (CreateGroup) Type() ActionType   { return ActionCreateGroup }
func (DeleteGroup) Type() ActionType   { return ActionDeleteGroup }
func (RenameGroup) Type() ActionType   { return ActionRenameGroup }
func (AddField) Type() ActionType      { return ActionAddField }
func (RemoveField) Type() ActionType   { return ActionRemoveField }
func (MoveField) Type() ActionType     { return ActionMoveField }
func (MoveGroupUp) Type() ActionType   { return ActionMoveGroupUp }
func (MoveGroupDown) Type() ActionType { return ActionMoveGroupDown }
