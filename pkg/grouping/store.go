package grouping

import (
	"fmt"
	"log/slog"

	"github.com/pluqqy/fieldgroups/pkg/models"
)

// Store owns the grouping state of one editing session. It is not safe for
// concurrent use.
type Store struct {
	state   models.GroupingState
	initial models.GroupingState
	dropped []DroppedField
	ids     IDGenerator
	logger  *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the random group id source.
func WithIDGenerator(ids IDGenerator) Option {
	return func(s *Store) {
		s.ids = ids
	}
}

// WithLogger sets the logger used for action tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore initializes a store from the live schema and the stored state, if any.
func NewStore(schema models.SchemaSnapshot, stored *models.GroupingState, opts ...Option) *Store {
	s := &Store{
		ids:    RandomIDs{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.state, s.dropped = Reconcile(schema, stored)
	s.initial = Clone(s.state)
	if Drifted(schema, stored) {
		s.logger.Debug("reconciled stored field groups",
			"from_version", stored.UpdatedAt,
			"to_version", schema.Version,
			"dropped", len(s.dropped))
	}
	return s
}

// State returns a copy of the current state.
func (s *Store) State() models.GroupingState {
	return Clone(s.state)
}

// Dropped returns the field references removed when the store was initialized.
func (s *Store) Dropped() []DroppedField {
	return append([]DroppedField(nil), s.dropped...)
}

// Dispatch applies action, silently ignoring it if its preconditions fail.
func (s *Store) Dispatch(action Action) {
	if err := s.Apply(action); err != nil {
		name := "nil"
		if action != nil {
			name = action.Type().String()
		}
		s.logger.Debug("ignored field group action", "action", name, "error", err)
	}
}

// Apply applies action or returns why it cannot be applied. The state is
// unchanged when an error is returned.
func (s *Store) Apply(action Action) error {
	if action == nil {
		return fmt.Errorf("%w: nil", ErrUnknownAction)
	}
	if err := Check(s.state, action); err != nil {
		return err
	}
	s.state = Reduce(s.state, action, s.ids)
	return nil
}

// Unassigned returns the fields currently in no group.
func (s *Store) Unassigned() []models.Field {
	return Unassigned(s.state)
}

// Len returns the number of groups.
func (s *Store) Len() int {
	return len(s.state.FieldGroups)
}

// Group returns a copy of the group with the given id.
func (s *Store) Group(id string) (models.FieldGroup, bool) {
	i := indexOfGroup(s.state.FieldGroups, id)
	if i < 0 {
		return models.FieldGroup{}, false
	}
	return cloneGroup(s.state.FieldGroups[i]), true
}

// GroupAt returns a copy of the group at position i.
func (s *Store) GroupAt(i int) (models.FieldGroup, bool) {
	if i < 0 || i >= len(s.state.FieldGroups) {
		return models.FieldGroup{}, false
	}
	return s.Group(s.state.FieldGroups[i].ID)
}

// FindGroup resolves ref as a group id first and then as a group name. A name
// shared by several groups is ambiguous.
func (s *Store) FindGroup(ref string) (models.FieldGroup, error) {
	if g, ok := s.Group(ref); ok {
		return g, nil
	}

	var matches []string
	for _, g := range s.state.FieldGroups {
		if g.Name == ref {
			matches = append(matches, g.ID)
		}
	}
	switch len(matches) {
	case 0:
		return models.FieldGroup{}, fmt.Errorf("%w: %q", ErrGroupNotFound, ref)
	case 1:
		g, _ := s.Group(matches[0])
		return g, nil
	default:
		return models.FieldGroup{}, fmt.Errorf("%w: %q (ids %v)", ErrAmbiguousGroup, ref, matches)
	}
}

// Dirty reports whether the state differs from the initialized one.
func (s *Store) Dirty() bool {
	return !Equal(s.state, s.initial)
}

// Reset discards every edit since initialization.
func (s *Store) Reset() {
	s.state = Clone(s.initial)
}

// MarkSaved records the current state as the new baseline.
func (s *Store) MarkSaved() {
	s.initial = Clone(s.state)
}
