package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pluqqy/fieldgroups/pkg/models"
	"gopkg.in/yaml.v3"
)

const (
	ProjectDir      = ".fieldgroups"
	ContentTypesDir = "content_types"
	ConfigFile      = "config.yaml"
	SettingsFile    = "settings.yaml"
)

var ErrContentTypeNotFound = errors.New("content type not found")

func InitProjectStructure() error {
	dirs := []string{
		ProjectDir,
		filepath.Join(ProjectDir, ContentTypesDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// ProjectExists reports whether the current directory holds a project.
func ProjectExists() bool {
	info, err := os.Stat(ProjectDir)
	return err == nil && info.IsDir()
}

func contentTypePath(id string) string {
	return filepath.Join(ProjectDir, ContentTypesDir, id+".yaml")
}

func ReadContentType(id string) (*models.ContentType, error) {
	content, err := os.ReadFile(contentTypePath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrContentTypeNotFound, id)
		}
		return nil, fmt.Errorf("failed to read content type %s: %w", id, err)
	}

	ct, err := ParseContentType(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse content type %s: %w", id, err)
	}
	if ct.Sys.ID == "" {
		ct.Sys.ID = id
	}

	return ct, nil
}

// ParseContentType decodes a content type from YAML or JSON.
func ParseContentType(content []byte) (*models.ContentType, error) {
	var ct models.ContentType
	if err := unmarshal(content, &ct); err != nil {
		return nil, err
	}
	for i, f := range ct.Fields {
		if f.ID == "" {
			return nil, fmt.Errorf("field %d has no id", i)
		}
	}
	return &ct, nil
}

func WriteContentType(ct *models.ContentType) error {
	if ct.Sys.ID == "" {
		return fmt.Errorf("content type has no sys.id")
	}
	if strings.ContainsAny(ct.Sys.ID, `/\`) {
		return fmt.Errorf("invalid content type id: %s", ct.Sys.ID)
	}

	content, err := yaml.Marshal(ct)
	if err != nil {
		return fmt.Errorf("failed to marshal content type to YAML: %w", err)
	}

	if err := AtomicWriteFile(contentTypePath(ct.Sys.ID), content, 0644); err != nil {
		return fmt.Errorf("failed to write content type %s: %w", ct.Sys.ID, err)
	}

	return nil
}

// ListContentTypes returns the ids of all stored content types, sorted.
func ListContentTypes() ([]string, error) {
	dir := filepath.Join(ProjectDir, ContentTypesDir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list content types: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".yaml") {
			ids = append(ids, strings.TrimSuffix(entry.Name(), ".yaml"))
		}
	}
	sort.Strings(ids)

	return ids, nil
}
