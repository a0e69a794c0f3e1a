package organizer

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/spf13/afero"

	"github.com/moyu-x/akovian-organizer/internal"
)

func listNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir(%s) error = %v", dir, err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

func TestUndo_RoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	writeFile(t, filepath.Join(tempDir, "a.jpg"), []byte("jpg"))
	writeFile(t, filepath.Join(tempDir, "b.txt"), []byte("txt"))
	writeFile(t, filepath.Join(tempDir, "weird.xyz"), []byte("xyz"))

	before := listNames(t, tempDir)

	o := New(afero.NewOsFs())
	res, err := o.Organize(tempDir, Options{})
	if err != nil {
		t.Fatalf("Organize() error = %v", err)
	}

	stats := o.Undo(res.Records)

	if stats.Restored != 3 {
		t.Errorf("Expected 3 restored, got %d", stats.Restored)
	}
	if stats.Failed != 0 {
		t.Errorf("Expected 0 failed, got %d", stats.Failed)
	}

	after := listNames(t, tempDir)
	if len(after) != len(before) {
		t.Fatalf("Expected %d files after undo, got %d: %v", len(before), len(after), after)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Listing mismatch after undo: %v vs %v", before, after)
			break
		}
	}
}

func TestUndo_OccupiedOriginal(t *testing.T) {
	tempDir := t.TempDir()
	writeFile(t, filepath.Join(tempDir, "a.txt"), []byte("original"))

	o := New(afero.NewOsFs())
	res, err := o.Organize(tempDir, Options{})
	if err != nil {
		t.Fatalf("Organize() error = %v", err)
	}

	// a new file appeared at the original path since the move
	writeFile(t, filepath.Join(tempDir, "a.txt"), []byte("newcomer"))

	stats := o.Undo(res.Records)

	if stats.Restored != 1 {
		t.Errorf("Expected 1 restored, got %d", stats.Restored)
	}

	data, err := os.ReadFile(filepath.Join(tempDir, "a.txt"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "newcomer" {
		t.Errorf("Expected the newcomer to stay untouched, got %q", data)
	}

	restored, err := os.ReadFile(filepath.Join(tempDir, "a_restored1.txt"))
	if err != nil {
		t.Fatalf("Expected a_restored1.txt to exist: %v", err)
	}
	if string(restored) != "original" {
		t.Errorf("Expected restored content %q, got %q", "original", restored)
	}
}

func TestUndo_MissingMovedFile(t *testing.T) {
	tempDir := t.TempDir()

	records := []internal.MoveRecord{
		{From: filepath.Join(tempDir, "gone.txt"), To: filepath.Join(tempDir, "Documents", "gone.txt")},
	}

	o := New(afero.NewOsFs())
	stats := o.Undo(records)

	if stats.Restored != 0 {
		t.Errorf("Expected 0 restored, got %d", stats.Restored)
	}
	if stats.Failed != 1 {
		t.Errorf("Expected 1 failed, got %d", stats.Failed)
	}
}

func TestUndo_PartialFailureContinues(t *testing.T) {
	tempDir := t.TempDir()
	writeFile(t, filepath.Join(tempDir, "a.txt"), []byte("a"))
	writeFile(t, filepath.Join(tempDir, "b.txt"), []byte("b"))

	o := New(afero.NewOsFs())
	res, err := o.Organize(tempDir, Options{})
	if err != nil {
		t.Fatalf("Organize() error = %v", err)
	}

	// lose one moved file
	if err := os.Remove(res.Records[0].To); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	stats := o.Undo(res.Records)

	if stats.Restored != 1 {
		t.Errorf("Expected 1 restored, got %d", stats.Restored)
	}
	if stats.Failed != 1 {
		t.Errorf("Expected 1 failed, got %d", stats.Failed)
	}
}
