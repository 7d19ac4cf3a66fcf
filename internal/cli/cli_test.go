package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputResults(t *testing.T) {
	data := map[string]interface{}{"name": "Main", "fields": []string{"f1"}}

	tests := []struct {
		name     string
		format   string
		contains string
		wantErr  bool
	}{
		{name: "JSON", format: "json", contains: `"name": "Main"`},
		{name: "YAML", format: "yaml", contains: "name: Main"},
		{name: "Text", format: "text", contains: "Main"},
		{name: "Unsupported", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := OutputResults(&buf, tt.format, data)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, buf.String(), tt.contains)
		})
	}
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "exactly10!", TruncateString("exactly10!", 10))
	assert.Equal(t, "a long...", TruncateString("a long field name", 9))
	assert.Equal(t, "ab", TruncateString("abcdef", 2))
}

func TestGroupLabel(t *testing.T) {
	assert.Equal(t, "(unnamed)", GroupLabel(""))
	assert.Equal(t, "(unnamed)", GroupLabel("  "))
	assert.Equal(t, "SEO", GroupLabel("SEO"))
}

func TestValidators(t *testing.T) {
	assert.NoError(t, ValidateOutputFormat("yaml"))
	assert.Error(t, ValidateOutputFormat("xml"))

	assert.NoError(t, ValidateContentTypeID("blogPost"))
	assert.Error(t, ValidateContentTypeID(""))
	assert.Error(t, ValidateContentTypeID("../etc"))
	assert.Error(t, ValidateContentTypeID("a b"))

	assert.NoError(t, ValidateGroupName(""))
	assert.NoError(t, ValidateGroupName("Meta data"))
	assert.Error(t, ValidateGroupName("two\nlines"))
	assert.Error(t, ValidateGroupName(strings.Repeat("x", 101)))
	// flags are two code points each but one character
	assert.NoError(t, ValidateGroupName(strings.Repeat("🇩🇪", 100)))

	i, err := ParseIndex("3")
	require.NoError(t, err)
	assert.Equal(t, 3, i)
	_, err = ParseIndex("-1")
	assert.Error(t, err)
	_, err = ParseIndex("x")
	assert.Error(t, err)
}

func TestPrintHelpersRespectFlags(t *testing.T) {
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	defer SetOutput(&bytes.Buffer{}, &bytes.Buffer{})
	defer SetGlobalFlags(false, false, false)

	SetGlobalFlags(false, true, false)
	PrintSuccess("saved %d groups", 2)
	PrintWarning("careful")
	assert.Equal(t, "OK: saved 2 groups\n", out.String())
	assert.Equal(t, "WARNING: careful\n", errOut.String())

	out.Reset()
	SetGlobalFlags(true, true, false)
	PrintInfo("hidden")
	assert.Empty(t, out.String())
}

func TestConfirm(t *testing.T) {
	defer SetGlobalFlags(false, false, false)
	var out bytes.Buffer

	ok, err := confirm(strings.NewReader("y\n"), &out, "Delete?", false)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, out.String(), "[y/N]")

	ok, err = confirm(strings.NewReader("\n"), &out, "Delete?", true)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = confirm(strings.NewReader("no\n"), &out, "Delete?", true)
	require.NoError(t, err)
	assert.False(t, ok)

	SetGlobalFlags(false, false, true)
	ok, err = confirm(strings.NewReader(""), &out, "Delete?", false)
	require.NoError(t, err)
	assert.True(t, ok)
}
