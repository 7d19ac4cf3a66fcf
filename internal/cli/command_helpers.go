package cli

import (
	"fmt"

	"github.com/pluqqy/fieldgroups/pkg/files"
	"github.com/pluqqy/fieldgroups/pkg/models"
	"github.com/pluqqy/fieldgroups/pkg/session"
)

// CommandContext manages project validation and common command context
type CommandContext struct {
	ProjectPath string
	Settings    *models.Settings
	validated   bool
}

// NewCommandContext creates a new command context
func NewCommandContext() *CommandContext {
	return &CommandContext{
		ProjectPath: files.ProjectDir,
	}
}

// ValidateProject ensures the project is initialized
func (c *CommandContext) ValidateProject() error {
	if c.validated {
		return nil
	}

	if !files.ProjectExists() {
		return fmt.Errorf("no %s directory found. Run 'fieldgroups init' first", files.ProjectDir)
	}

	c.validated = true
	return nil
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	if c.Settings != nil {
		return c.Settings
	}

	settings, err := files.ReadSettings()
	if err != nil {
		PrintWarning("Using default settings: %v", err)
		settings = models.DefaultSettings()
	}

	c.Settings = settings
	return settings
}

// OutputFormat resolves the effective output format: the flag when given,
// otherwise the configured default.
func (c *CommandContext) OutputFormat(flagValue string, flagChanged bool) (string, error) {
	format := flagValue
	if !flagChanged {
		format = c.LoadSettingsWithDefault().Output.Format
	}
	if err := ValidateOutputFormat(format); err != nil {
		return "", err
	}
	return format, nil
}

// OpenSession validates the project and opens an editing session for one content type
func (c *CommandContext) OpenSession(contentTypeID string) (*session.Session, error) {
	if err := c.ValidateProject(); err != nil {
		return nil, err
	}
	if err := ValidateContentTypeID(contentTypeID); err != nil {
		return nil, err
	}
	return session.Open(contentTypeID, c.LoadSettingsWithDefault())
}
