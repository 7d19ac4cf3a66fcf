package session

import (
	"github.com/pluqqy/fieldgroups/pkg/models"
)

// LayoutField is one field as the entry editor renders it.
type LayoutField struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty"`
}

// LayoutSection is one collapsible group, or the trailing ungrouped fields
// when GroupID is empty.
type LayoutSection struct {
	GroupID string        `json:"groupId,omitempty" yaml:"groupId,omitempty"`
	Name    string        `json:"name" yaml:"name"`
	Fields  []LayoutField `json:"fields" yaml:"fields"`
}

// Layout returns the entry editor layout: every group in order, then the
// unassigned fields. Disabled and omitted fields are not rendered, and grouped
// fields missing from the schema are skipped.
func (s *Session) Layout() []LayoutSection {
	state := s.Store.State()
	sections := make([]LayoutSection, 0, len(state.FieldGroups)+1)

	for _, g := range state.FieldGroups {
		sections = append(sections, LayoutSection{
			GroupID: g.ID,
			Name:    g.Name,
			Fields:  s.layoutFields(g.Fields),
		})
	}

	sections = append(sections, LayoutSection{
		Name:   "",
		Fields: s.layoutFields(s.Store.Unassigned()),
	})
	return sections
}

func (s *Session) layoutFields(fields []models.Field) []LayoutField {
	out := make([]LayoutField, 0, len(fields))
	for _, f := range fields {
		detail, ok := s.ContentType.Field(f.ID)
		if !ok || !detail.Visible() {
			continue
		}
		out = append(out, LayoutField{
			ID:       f.ID,
			Name:     f.Name,
			Type:     detail.Type,
			Required: detail.Required,
		})
	}
	return out
}
