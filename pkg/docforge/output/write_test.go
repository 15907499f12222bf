package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		filename string
		wantErr  bool
	}{
		{"report.pdf", false},
		{"sub/dir/report.pdf", false},
		{"sub/../report.pdf", false}, // cleans to report.pdf, stays inside
		{"", true},
		{"/etc/passwd", true},
		{"../escape.pdf", true},
		{"sub/../../escape.pdf", true},
		{"..", true},
	}

	for _, tt := range tests {
		path, err := Resolve("workspace", tt.filename)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Resolve(%q): expected error, got %q", tt.filename, path)
			}
			continue
		}
		if err != nil {
			t.Errorf("Resolve(%q) failed: %v", tt.filename, err)
			continue
		}
		if !strings.HasPrefix(path, "workspace"+string(filepath.Separator)) {
			t.Errorf("Resolve(%q) = %q, expected workspace-relative path", tt.filename, path)
		}
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.txt")

	if err := Write(path, []byte("hello")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("File content = %q, expected %q", data, "hello")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm() != 0644 {
		t.Errorf("File mode = %v, expected 0644", info.Mode().Perm())
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only the output file, found %d entries", len(entries))
	}
}

func TestWriteOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	if err := Write(path, []byte("first")); err != nil {
		t.Fatalf("First write failed: %v", err)
	}
	if err := Write(path, []byte("second")); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("File content = %q, expected %q", data, "second")
	}
}
