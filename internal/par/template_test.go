package par

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteTemplate(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteTemplate(dir)
	if err != nil {
		t.Fatalf("WriteTemplate returned error: %v", err)
	}
	if path != filepath.Join(dir, TemplateName) {
		t.Fatalf("unexpected path %q", path)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 {
		t.Fatal("template file is empty")
	}
}

func TestWriteTemplateKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, TemplateName)
	custom := []byte("tuned\n0 0\n128 128\n32 32\n6.5\n")
	if err := os.WriteFile(path, custom, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := WriteTemplate(dir)
	if err != nil {
		t.Fatalf("WriteTemplate returned error: %v", err)
	}
	if got != path {
		t.Fatalf("unexpected path %q", got)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(after) != string(custom) {
		t.Fatal("existing template was overwritten")
	}
}
