package models

import "fmt"

// Field is a reference to one content type field. The name is copied at
// assignment time and is not kept in sync with later schema renames.
type Field struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// FieldGroup is a named, ordered set of fields shown as one collapsible
// section in the entry editor.
type FieldGroup struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// GroupingState is the field grouping for one content type.
//
// Fields is the schema snapshot the grouping was last reconciled against and
// UpdatedAt is that schema's version token.
type GroupingState struct {
	UpdatedAt   string       `json:"updatedAt" yaml:"updatedAt"`
	Fields      []Field      `json:"fields" yaml:"fields"`
	FieldGroups []FieldGroup `json:"fieldGroups" yaml:"fieldGroups"`
}

// PersistedConfig maps a storage key to the grouping saved for it.
// A nil entry is treated the same as a missing one.
type PersistedConfig map[string]*GroupingState

// Lookup returns the stored state for key, or nil when nothing usable is stored.
func (c PersistedConfig) Lookup(key StorageKey) *GroupingState {
	if c == nil {
		return nil
	}
	return c[key.String()]
}

// StorageKey identifies one content type in one space environment.
type StorageKey struct {
	ContentTypeID string
	SpaceID       string
	EnvironmentID string
}

func (k StorageKey) String() string {
	return fmt.Sprintf("%s-%s-%s", k.ContentTypeID, k.SpaceID, k.EnvironmentID)
}

// SchemaSnapshot is the live field list of a content type plus its version token.
type SchemaSnapshot struct {
	Fields  []Field
	Version string
}
