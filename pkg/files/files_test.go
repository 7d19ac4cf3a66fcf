package files

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pluqqy/fieldgroups/pkg/models"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(oldWd) })
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	return tempDir
}

func TestInitProjectStructure(t *testing.T) {
	chdirTemp(t)

	if ProjectExists() {
		t.Fatal("ProjectExists should be false before init")
	}

	err := InitProjectStructure()
	if err != nil {
		t.Fatalf("InitProjectStructure failed: %v", err)
	}

	expectedDirs := []string{
		ProjectDir,
		filepath.Join(ProjectDir, ContentTypesDir),
	}

	for _, dir := range expectedDirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			t.Errorf("Expected directory %s does not exist", dir)
		}
	}
	if !ProjectExists() {
		t.Error("ProjectExists should be true after init")
	}
}

func TestReadWriteContentType(t *testing.T) {
	chdirTemp(t)
	if err := InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure failed: %v", err)
	}

	ct := &models.ContentType{
		Sys:  models.ContentTypeSys{ID: "article", UpdatedAt: "2024-05-01T10:00:00Z"},
		Name: "Article",
		Fields: []models.SchemaField{
			{ID: "title", Name: "Title", Type: "Symbol", Required: true},
			{ID: "body", Name: "Body", Type: "Text"},
		},
	}

	if err := WriteContentType(ct); err != nil {
		t.Fatalf("WriteContentType failed: %v", err)
	}

	read, err := ReadContentType("article")
	if err != nil {
		t.Fatalf("ReadContentType failed: %v", err)
	}

	if read.Name != "Article" {
		t.Errorf("Expected name 'Article', got %q", read.Name)
	}
	if read.Version() != "2024-05-01T10:00:00Z" {
		t.Errorf("Expected version to round trip, got %q", read.Version())
	}
	if len(read.Fields) != 2 || !read.Fields[0].Required {
		t.Errorf("Unexpected fields: %+v", read.Fields)
	}
}

func TestReadContentTypeNotFound(t *testing.T) {
	chdirTemp(t)
	InitProjectStructure()

	_, err := ReadContentType("missing")
	if !errors.Is(err, ErrContentTypeNotFound) {
		t.Errorf("Expected ErrContentTypeNotFound, got %v", err)
	}
}

func TestWriteContentTypeRejectsBadIDs(t *testing.T) {
	chdirTemp(t)
	InitProjectStructure()

	for _, id := range []string{"", "../escape", `a\b`} {
		ct := &models.ContentType{Sys: models.ContentTypeSys{ID: id}}
		if err := WriteContentType(ct); err == nil {
			t.Errorf("Expected error for id %q", id)
		}
	}
}

func TestParseContentTypeJSON(t *testing.T) {
	content := []byte(`{
	"sys": {"id": "post", "updatedAt": "t9", "space": {"sys": {"id": "sp"}}},
	"name": "Post",
	"fields": [{"id": "title", "name": "Title", "type": "Symbol"}]
}`)

	ct, err := ParseContentType(content)
	if err != nil {
		t.Fatalf("ParseContentType failed: %v", err)
	}
	if ct.ID() != "post" || ct.Sys.Space.Sys.ID != "sp" {
		t.Errorf("Unexpected sys: %+v", ct.Sys)
	}

	if _, err := ParseContentType([]byte(`{"fields": [{"name": "No id"}]}`)); err == nil {
		t.Error("Expected error for field without id")
	}
}

func TestListContentTypes(t *testing.T) {
	chdirTemp(t)

	ids, err := ListContentTypes()
	if err != nil {
		t.Fatalf("ListContentTypes failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("Expected no content types before init, got %v", ids)
	}

	InitProjectStructure()
	for _, id := range []string{"zeta", "alpha"} {
		if err := WriteContentType(&models.ContentType{Sys: models.ContentTypeSys{ID: id}}); err != nil {
			t.Fatalf("WriteContentType failed: %v", err)
		}
	}
	os.WriteFile(filepath.Join(ProjectDir, ContentTypesDir, "notes.txt"), []byte("x"), 0644)

	ids, err = ListContentTypes()
	if err != nil {
		t.Fatalf("ListContentTypes failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "alpha" || ids[1] != "zeta" {
		t.Errorf("Expected [alpha zeta], got %v", ids)
	}
}

func TestAtomicWriteFileLeavesNoTempFiles(t *testing.T) {
	dir := chdirTemp(t)
	target := filepath.Join(dir, "nested", "out.yaml")

	if err := AtomicWriteFile(target, []byte("a: 1\n"), 0644); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	entries, _ := os.ReadDir(filepath.Dir(target))
	if len(entries) != 1 || entries[0].Name() != "out.yaml" {
		t.Errorf("Expected only out.yaml, got %v", entries)
	}
}
