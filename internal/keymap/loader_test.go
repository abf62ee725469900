package keymap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testKeymapYAML = `
name: user-normal
mode: normal
bindings:
  - keys: "gg"
    command: scroll-top
  - keys: "<Ctrl-x><Ctrl-s>"
    command: session-save
    description: Save the session
`

func TestLoadReader(t *testing.T) {
	km, err := NewLoader().LoadReader(strings.NewReader(testKeymapYAML))
	if err != nil {
		t.Fatalf("LoadReader() error = %v", err)
	}
	if km.Name != "user-normal" || km.Mode != "normal" {
		t.Errorf("keymap = %q/%q", km.Name, km.Mode)
	}
	if len(km.Bindings) != 2 {
		t.Fatalf("len(Bindings) = %d, want 2", len(km.Bindings))
	}
	if km.Bindings[1].Description != "Save the session" {
		t.Errorf("description = %q", km.Bindings[1].Description)
	}
}

func TestLoadReaderInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "bindings: ["},
		{"bad keys", "bindings:\n  - keys: \"<blub>\"\n    command: x"},
		{"missing command", "bindings:\n  - keys: \"gg\""},
	}

	for _, tt := range tests {
		if _, err := NewLoader().LoadReader(strings.NewReader(tt.yaml)); err == nil {
			t.Errorf("%s: LoadReader() expected error", tt.name)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "normal.yaml")
	if err := os.WriteFile(path, []byte(testKeymapYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	km, err := NewLoader().LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if km.Source != "file:"+path {
		t.Errorf("Source = %q", km.Source)
	}
}

func TestLoadAllAndRegister(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "normal.yaml"), []byte(testKeymapYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	// Broken files are skipped, but the failure must be reported
	// rather than swallowed.
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("bindings: ["), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader()
	loader.AddSearchPath(dir)

	keymaps, err := loader.LoadAll()
	if err == nil || !strings.Contains(err.Error(), "broken.yaml") {
		t.Errorf("LoadAll() error = %v, want mention of broken.yaml", err)
	}
	if len(keymaps) != 1 {
		t.Fatalf("LoadAll() = %d keymaps, want 1", len(keymaps))
	}

	reg := NewRegistry()
	if err := loader.LoadAndRegister(reg); err == nil {
		t.Errorf("LoadAndRegister() error = nil, want broken file reported")
	}
	if reg.Get("user-normal") == nil {
		t.Errorf("good keymap not registered despite a broken sibling")
	}
}
