package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadProfile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "profile.json")

	doc := `{
  "folder": "/home/user/Downloads",
  "ignore_patterns": ["*.tmp", "Thumbs.db"],
  "preview": true,
  "zoom_percent": 125,
  "file_types": {
    "Images": [".jpg", ".png"],
    "Scripts": [".sh"]
  }
}`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	p, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile() error = %v", err)
	}

	if p.Folder != "/home/user/Downloads" {
		t.Errorf("Folder = %s", p.Folder)
	}
	if len(p.IgnorePatterns) != 2 || p.IgnorePatterns[0] != "*.tmp" {
		t.Errorf("IgnorePatterns = %v", p.IgnorePatterns)
	}
	if !p.Preview {
		t.Error("Expected Preview to be true")
	}
	if p.ZoomPercent != 125 {
		t.Errorf("ZoomPercent = %d", p.ZoomPercent)
	}
	if len(p.FileTypes["Scripts"]) != 1 || p.FileTypes["Scripts"][0] != ".sh" {
		t.Errorf("FileTypes = %v", p.FileTypes)
	}
}

func TestLoadProfile_Missing(t *testing.T) {
	if _, err := LoadProfile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing profile")
	}
}

func TestDefaultFileTypes(t *testing.T) {
	ft := DefaultFileTypes()

	for _, cat := range []string{"Images", "Documents", "Videos", "Music", "Archives"} {
		if len(ft[cat]) == 0 {
			t.Errorf("Expected default category %s to have extensions", cat)
		}
	}

	found := false
	for _, ext := range ft["Images"] {
		if ext == ".jpg" {
			found = true
		}
	}
	if !found {
		t.Error("Expected .jpg in Images")
	}
}
