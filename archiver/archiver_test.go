package archiver

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/moyu-x/akovian-organizer/internal"
)

func TestZipFolder(t *testing.T) {
	tempDir := t.TempDir()

	if err := os.WriteFile(filepath.Join(tempDir, "a.txt"), []byte("aaa"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	docs := filepath.Join(tempDir, "Documents")
	if err := os.MkdirAll(docs, 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(docs, "b.txt"), []byte("bbb"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	backups := filepath.Join(tempDir, internal.BackupDirName)
	if err := os.MkdirAll(backups, 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(backups, "old.txt"), []byte("old"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	// output inside the folder being zipped
	output := filepath.Join(tempDir, "organized.zip")
	if err := ZipFolder(afero.NewOsFs(), tempDir, output); err != nil {
		t.Fatalf("ZipFolder() error = %v", err)
	}

	zr, err := zip.OpenReader(output)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer zr.Close()

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}

	if !names["a.txt"] {
		t.Error("Expected a.txt in archive")
	}
	if !names["Documents/b.txt"] {
		t.Error("Expected Documents/b.txt in archive")
	}
	for name := range names {
		if name == "organized.zip" {
			t.Error("Archive must not contain itself")
		}
		if filepath.Dir(name) == internal.BackupDirName {
			t.Errorf("Archive must not contain backups: %s", name)
		}
	}
}

func TestZipFolder_NotADirectory(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	err := ZipFolder(afero.NewOsFs(), file, filepath.Join(tempDir, "out.zip"))
	if err == nil {
		t.Error("Expected error when target is a file")
	}
}

func TestZipFolder_ContentRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tempDir, "data.txt"), []byte("round trip"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	output := filepath.Join(t.TempDir(), "out.zip")
	if err := ZipFolder(afero.NewOsFs(), tempDir, output); err != nil {
		t.Fatalf("ZipFolder() error = %v", err)
	}

	zr, err := zip.OpenReader(output)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer zr.Close()

	if len(zr.File) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(zr.File))
	}

	rc, err := zr.File[0].Open()
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer rc.Close()

	buf := make([]byte, 32)
	n, _ := rc.Read(buf)
	if string(buf[:n]) != "round trip" {
		t.Errorf("Archive content = %q, want %q", buf[:n], "round trip")
	}
}
