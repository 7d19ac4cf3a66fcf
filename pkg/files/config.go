package files

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pluqqy/fieldgroups/pkg/models"
	"gopkg.in/yaml.v3"
)

func configPath() string {
	return filepath.Join(ProjectDir, ConfigFile)
}

// ReadConfig loads the persisted field group config. A missing file is an
// empty config.
func ReadConfig() (models.PersistedConfig, error) {
	content, err := os.ReadFile(configPath())
	if err != nil {
		if os.IsNotExist(err) {
			return models.PersistedConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := DecodeConfig(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath(), err)
	}
	return cfg, nil
}

// DecodeConfig parses a config blob from YAML or JSON. Null entries are
// dropped so they read as missing.
func DecodeConfig(content []byte) (models.PersistedConfig, error) {
	cfg := models.PersistedConfig{}
	if err := unmarshal(content, &cfg); err != nil {
		return nil, err
	}
	if cfg == nil {
		return models.PersistedConfig{}, nil
	}
	for key, state := range cfg {
		if state == nil {
			delete(cfg, key)
		}
	}
	return cfg, nil
}

// WriteConfig replaces the persisted config wholesale.
func WriteConfig(cfg models.PersistedConfig) error {
	if cfg == nil {
		cfg = models.PersistedConfig{}
	}

	content, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := AtomicWriteFile(configPath(), content, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ImportConfig reads a config blob from r and writes it as the persisted config.
func ImportConfig(r io.Reader) (models.PersistedConfig, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config blob: %w", err)
	}

	cfg, err := DecodeConfig(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config blob: %w", err)
	}

	if err := WriteConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// InstallationPayload is what the app configuration screen hands the host:
// the config blob as parameters plus the editor assignment per content type.
type InstallationPayload struct {
	Parameters  models.PersistedConfig `json:"parameters"`
	TargetState TargetState            `json:"targetState"`
}

type TargetState struct {
	EditorInterface map[string]EditorAssignment `json:"EditorInterface"`
}

type EditorAssignment struct {
	Editor bool `json:"editor"`
}

// NewInstallationPayload assigns the editor to every listed content type.
func NewInstallationPayload(cfg models.PersistedConfig, contentTypeIDs []string) InstallationPayload {
	editors := make(map[string]EditorAssignment, len(contentTypeIDs))
	for _, id := range contentTypeIDs {
		editors[id] = EditorAssignment{Editor: true}
	}
	return InstallationPayload{
		Parameters:  cfg,
		TargetState: TargetState{EditorInterface: editors},
	}
}

// ExportJSON writes v as indented JSON.
func ExportJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// unmarshal decodes JSON input with encoding/json and everything else as YAML.
func unmarshal(content []byte, v interface{}) error {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return json.Unmarshal(trimmed, v)
	}
	return yaml.Unmarshal(content, v)
}
