package models

// Link is the host platform's reference shape, {"sys": {"id": "..."}}.
type Link struct {
	Sys LinkSys `json:"sys" yaml:"sys"`
}

type LinkSys struct {
	ID string `json:"id" yaml:"id"`
}

type ContentTypeSys struct {
	ID          string `json:"id" yaml:"id"`
	Space       *Link  `json:"space,omitempty" yaml:"space,omitempty"`
	Environment *Link  `json:"environment,omitempty" yaml:"environment,omitempty"`
	UpdatedAt   string `json:"updatedAt" yaml:"updatedAt"`
}

// SchemaField is a field definition as the host describes it.
type SchemaField struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty"`
	Disabled bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Omitted  bool   `json:"omitted,omitempty" yaml:"omitted,omitempty"`
}

// ContentType is a schema snapshot of one content type.
type ContentType struct {
	Sys          ContentTypeSys `json:"sys" yaml:"sys"`
	Name         string         `json:"name" yaml:"name"`
	DisplayField string         `json:"displayField,omitempty" yaml:"displayField,omitempty"`
	Fields       []SchemaField  `json:"fields" yaml:"fields"`
}

// ID returns the content type id.
func (ct *ContentType) ID() string {
	return ct.Sys.ID
}

// Version returns the schema version token.
func (ct *ContentType) Version() string {
	return ct.Sys.UpdatedAt
}

// FieldRefs projects the schema fields to id/name pairs in schema order.
func (ct *ContentType) FieldRefs() []Field {
	fields := make([]Field, 0, len(ct.Fields))
	for _, f := range ct.Fields {
		fields = append(fields, Field{ID: f.ID, Name: f.Name})
	}
	return fields
}

// Snapshot returns the schema snapshot used to initialize a grouping.
func (ct *ContentType) Snapshot() SchemaSnapshot {
	return SchemaSnapshot{Fields: ct.FieldRefs(), Version: ct.Version()}
}

// Field looks up a schema field by id.
func (ct *ContentType) Field(id string) (SchemaField, bool) {
	for _, f := range ct.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return SchemaField{}, false
}

// StorageKey composes the persisted config key. Missing space or environment
// links fall back to the storage defaults from settings.
func (ct *ContentType) StorageKey(defaults StorageSettings) StorageKey {
	key := StorageKey{
		ContentTypeID: ct.Sys.ID,
		SpaceID:       defaults.SpaceID,
		EnvironmentID: defaults.EnvironmentID,
	}
	if ct.Sys.Space != nil && ct.Sys.Space.Sys.ID != "" {
		key.SpaceID = ct.Sys.Space.Sys.ID
	}
	if ct.Sys.Environment != nil && ct.Sys.Environment.Sys.ID != "" {
		key.EnvironmentID = ct.Sys.Environment.Sys.ID
	}
	return key
}

// Visible reports whether the entry editor renders the field at all.
func (f SchemaField) Visible() bool {
	return !f.Disabled && !f.Omitted
}
