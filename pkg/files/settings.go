package files

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pluqqy/fieldgroups/pkg/models"
	"gopkg.in/yaml.v3"
)

func settingsPath() string {
	return filepath.Join(ProjectDir, SettingsFile)
}

// ReadSettings loads settings.yaml on top of the defaults.
func ReadSettings() (*models.Settings, error) {
	settings := models.DefaultSettings()

	content, err := os.ReadFile(settingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}

func WriteSettings(settings *models.Settings) error {
	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := AtomicWriteFile(settingsPath(), content, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
