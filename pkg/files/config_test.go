package files

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/fieldgroups/pkg/models"
)

func sampleConfig() models.PersistedConfig {
	return models.PersistedConfig{
		"article-space1-master": {
			UpdatedAt: "t1",
			Fields:    []models.Field{{ID: "f1", Name: "Title"}, {ID: "f2", Name: "Body"}},
			FieldGroups: []models.FieldGroup{
				{ID: "Ab3dE", Name: "Main", Fields: []models.Field{{ID: "f1", Name: "Title"}}},
			},
		},
	}
}

func TestReadConfigMissingIsEmpty(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, InitProjectStructure())

	cfg, err := ReadConfig()
	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Empty(t, cfg)
}

func TestWriteReadConfigRoundTrip(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, InitProjectStructure())

	require.NoError(t, WriteConfig(sampleConfig()))

	cfg, err := ReadConfig()
	require.NoError(t, err)
	assert.Equal(t, sampleConfig(), cfg)
}

func TestDecodeConfigUntrustedShapes(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, cfg models.PersistedConfig)
		wantErr bool
	}{
		{
			name:    "Empty document",
			content: "",
			check: func(t *testing.T, cfg models.PersistedConfig) {
				assert.Empty(t, cfg)
			},
		},
		{
			name:    "Null document",
			content: "null",
			check: func(t *testing.T, cfg models.PersistedConfig) {
				assert.NotNil(t, cfg)
				assert.Empty(t, cfg)
			},
		},
		{
			name:    "Null entry dropped",
			content: "a-b-c: null\nd-e-f:\n  updatedAt: v1\n",
			check: func(t *testing.T, cfg models.PersistedConfig) {
				assert.Len(t, cfg, 1)
				assert.Nil(t, cfg.Lookup(models.StorageKey{ContentTypeID: "a", SpaceID: "b", EnvironmentID: "c"}))
				assert.Equal(t, "v1", cfg["d-e-f"].UpdatedAt)
				assert.Empty(t, cfg["d-e-f"].FieldGroups)
			},
		},
		{
			name:    "JSON with unknown keys",
			content: `{"a-b-c": {"updatedAt": "v2", "extra": true, "fieldGroups": [{"id": "x", "name": "X"}]}}`,
			check: func(t *testing.T, cfg models.PersistedConfig) {
				require.Len(t, cfg["a-b-c"].FieldGroups, 1)
				assert.Empty(t, cfg["a-b-c"].FieldGroups[0].Fields)
			},
		},
		{
			name:    "List is rejected",
			content: "- a\n- b\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := DecodeConfig([]byte(tt.content))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestReadConfigMalformed(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, InitProjectStructure())
	require.NoError(t, os.WriteFile(configPath(), []byte("key: [unclosed"), 0644))

	_, err := ReadConfig()
	assert.Error(t, err)
}

func TestImportConfigReplacesWholesale(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, InitProjectStructure())
	require.NoError(t, WriteConfig(models.PersistedConfig{"old-s-e": {UpdatedAt: "v0"}}))

	var blob bytes.Buffer
	require.NoError(t, ExportJSON(&blob, sampleConfig()))

	imported, err := ImportConfig(&blob)
	require.NoError(t, err)
	assert.Equal(t, sampleConfig(), imported)

	cfg, err := ReadConfig()
	require.NoError(t, err)
	assert.NotContains(t, cfg, "old-s-e")
	assert.Contains(t, cfg, "article-space1-master")
}

func TestInstallationPayload(t *testing.T) {
	payload := NewInstallationPayload(sampleConfig(), []string{"article", "author"})

	var buf bytes.Buffer
	require.NoError(t, ExportJSON(&buf, payload))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	target := decoded["targetState"].(map[string]interface{})["EditorInterface"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"editor": true}, target["article"])
	assert.Equal(t, map[string]interface{}{"editor": true}, target["author"])
	assert.True(t, strings.Contains(buf.String(), `"fieldGroups"`))
}
