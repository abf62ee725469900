package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/keychord/keychord/internal/keymap"
	"github.com/keychord/keychord/internal/keys"
)

const testConfigTOML = `
[input]
platform = "macos"
forward-unbound = true

[mappings]
"t" = "gg"
"<Ctrl-j>" = "<Return>"

[bindings.normal]
"gg" = "scroll-top"
"yy" = "yank-url"

[bindings.insert]
"<Escape>" = "leave-insert"
`

func TestLoadReader(t *testing.T) {
	cfg, err := LoadReader(strings.NewReader(testConfigTOML))
	if err != nil {
		t.Fatalf("LoadReader() error = %v", err)
	}

	if cfg.Input.Platform != "macos" || !cfg.Input.ForwardUnbound {
		t.Errorf("input = %+v", cfg.Input)
	}
	if cfg.Platform() != keys.PlatformMac {
		t.Errorf("Platform() = %v, want PlatformMac", cfg.Platform())
	}

	if len(cfg.Mappings) != 2 {
		t.Fatalf("len(Mappings) = %d, want 2", len(cfg.Mappings))
	}
	from := keys.MustParseSequence("t").At(0)
	if to, ok := cfg.Mappings[from]; !ok || to.String() != "gg" {
		t.Errorf("mapping t = %q, ok=%v", to, ok)
	}

	if len(cfg.Keymaps) != 2 {
		t.Fatalf("len(Keymaps) = %d, want 2", len(cfg.Keymaps))
	}
	// Modes come out sorted, so insert precedes normal.
	if cfg.Keymaps[0].Name != "user-insert" || cfg.Keymaps[1].Name != "user-normal" {
		t.Errorf("keymap names = %q, %q", cfg.Keymaps[0].Name, cfg.Keymaps[1].Name)
	}
	if cfg.Keymaps[0].Source != "user" {
		t.Errorf("source = %q", cfg.Keymaps[0].Source)
	}
	if cfg.Keymaps[0].Priority != keymap.PriorityUser {
		t.Errorf("priority = %d, want %d", cfg.Keymaps[0].Priority, keymap.PriorityUser)
	}
}

func TestLoadReaderDefaults(t *testing.T) {
	cfg, err := LoadReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadReader() error = %v", err)
	}
	if cfg.Platform() != keys.PlatformGeneric {
		t.Errorf("Platform() = %v, want PlatformGeneric", cfg.Platform())
	}
	if cfg.Input.ForwardUnbound {
		t.Errorf("ForwardUnbound = true, want false")
	}
	if len(cfg.Mappings) != 0 || len(cfg.Keymaps) != 0 {
		t.Errorf("non-empty mappings/keymaps from empty config")
	}
}

func TestLoadReaderErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"bad toml", "[input"},
		{"bad platform", "[input]\nplatform = \"amiga\""},
		{"bad mapping source", "[mappings]\n\"<blub>\" = \"gg\""},
		{"multi-key mapping source", "[mappings]\n\"gg\" = \"G\""},
		{"bad mapping target", "[mappings]\n\"t\" = \"<blub>\""},
		{"bad binding", "[bindings.normal]\n\"<blub>\" = \"cmd\""},
		{"empty command", "[bindings.normal]\n\"gg\" = \"\""},
	}

	for _, tt := range tests {
		if _, err := LoadReader(strings.NewReader(tt.toml)); err == nil {
			t.Errorf("%s: LoadReader() expected error", tt.name)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keychord.toml")
	if err := os.WriteFile(path, []byte(testConfigTOML), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Input.Platform != "macos" {
		t.Errorf("platform = %q", cfg.Input.Platform)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Errorf("Load(missing) expected error")
	}
}

func TestApply(t *testing.T) {
	cfg, err := LoadReader(strings.NewReader(testConfigTOML))
	if err != nil {
		t.Fatalf("LoadReader() error = %v", err)
	}

	reg := keymap.NewRegistry()
	if err := cfg.Apply(reg); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	res := reg.Lookup(keys.MustParseSequence("gg"), "normal")
	if res.Type() != keys.ExactMatch || res.Exact.Command != "scroll-top" {
		t.Errorf("gg lookup type = %v", res.Type())
	}

	// The "t" mapping rewrites to "gg" before lookup.
	res = reg.Lookup(keys.MustParseSequence("t"), "normal")
	if res.Type() != keys.ExactMatch || res.Exact.Command != "scroll-top" {
		t.Errorf("mapped t lookup type = %v", res.Type())
	}
}

func TestApplyOverridesDefaults(t *testing.T) {
	cfg, err := LoadReader(strings.NewReader("[bindings.normal]\n\"gg\" = \"my-top\"\n"))
	if err != nil {
		t.Fatalf("LoadReader() error = %v", err)
	}

	reg := keymap.NewRegistry()
	if err := keymap.RegisterDefaults(reg); err != nil {
		t.Fatalf("RegisterDefaults() error = %v", err)
	}
	if err := cfg.Apply(reg); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	// A rebound default must resolve to the user command on every
	// press.
	entered := keys.MustParseSequence("gg")
	for i := 0; i < 200; i++ {
		res := reg.Lookup(entered, "normal")
		if res.Type() != keys.ExactMatch || res.Exact.Command != "my-top" {
			t.Fatalf("lookup %d: command = %q, want my-top", i, res.Exact.Command)
		}
	}
}
