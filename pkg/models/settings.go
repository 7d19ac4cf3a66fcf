package models

// Settings represents the application configuration
type Settings struct {
	Output  OutputSettings  `json:"output" yaml:"output"`
	Storage StorageSettings `json:"storage" yaml:"storage"`
	Editor  EditorSettings  `json:"editor" yaml:"editor"`
}

// OutputSettings controls command output behavior
type OutputSettings struct {
	Format     string `json:"format" yaml:"format"`           // "text", "json" or "yaml"
	ExportPath string `json:"export_path" yaml:"export_path"` // default target for export
}

// StorageSettings supplies key parts a content type snapshot may not carry
type StorageSettings struct {
	SpaceID       string `json:"space_id" yaml:"space_id"`
	EnvironmentID string `json:"environment_id" yaml:"environment_id"`
}

// EditorSettings controls editor preferences
type EditorSettings struct {
	ConfirmDelete  bool `json:"confirm_delete" yaml:"confirm_delete"`
	ShowFieldTypes bool `json:"show_field_types" yaml:"show_field_types"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Output: OutputSettings{
			Format:     "text",
			ExportPath: "field-groups.json",
		},
		Storage: StorageSettings{
			SpaceID:       "",
			EnvironmentID: "master",
		},
		Editor: EditorSettings{
			ConfirmDelete:  true,
			ShowFieldTypes: true,
		},
	}
}
