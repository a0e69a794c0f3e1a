package scanner

import "testing"

func TestIgnored(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		want     bool
	}{
		{"report.tmp", []string{"*.tmp"}, true},
		{"report.TMP", []string{"*.tmp"}, true},
		{"report.tmp", []string{"*.TMP"}, true},
		{"report.txt", []string{"*.tmp"}, false},
		{"Thumbs.db", []string{"*.tmp", "Thumbs.db"}, true},
		{"thumbs.db", []string{"Thumbs.db"}, true},
		{"a.txt", []string{"?.txt"}, true},
		{"ab.txt", []string{"?.txt"}, false},
		{"anything", nil, false},
		{"anything", []string{""}, false},
		{"file.tmp", []string{" *.tmp "}, true},
	}

	for _, tt := range tests {
		if got := Ignored(tt.name, tt.patterns); got != tt.want {
			t.Errorf("Ignored(%q, %v) = %v, want %v", tt.name, tt.patterns, got, tt.want)
		}
	}
}
