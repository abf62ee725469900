// Package config loads keychord configuration: input settings, user key
// mappings, and key bindings per mode.
package config

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/keychord/keychord/internal/keymap"
	"github.com/keychord/keychord/internal/keys"
)

// InputConfig holds input-handling settings.
type InputConfig struct {
	// Platform selects platform-specific key normalization:
	// "generic" (default) or "macos".
	Platform string `toml:"platform"`

	// ForwardUnbound controls whether unbound keys are forwarded to the
	// page instead of being swallowed.
	ForwardUnbound bool `toml:"forward-unbound"`
}

// fileConfig mirrors the TOML file layout.
type fileConfig struct {
	Input    InputConfig                  `toml:"input"`
	Mappings map[string]string            `toml:"mappings"`
	Bindings map[string]map[string]string `toml:"bindings"`
}

// Config is a loaded and validated configuration.
type Config struct {
	// Input holds input-handling settings.
	Input InputConfig

	// Mappings are single-key rewrites applied before binding lookup.
	Mappings map[keys.KeyInfo]keys.Sequence

	// Keymaps are the configured bindings, one keymap per mode.
	Keymaps []*keymap.Keymap
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadReader reads and validates configuration from a reader.
func LoadReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Config, error) {
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	cfg := &Config{
		Input:    fc.Input,
		Mappings: make(map[keys.KeyInfo]keys.Sequence, len(fc.Mappings)),
	}

	switch fc.Input.Platform {
	case "", "generic", "macos":
	default:
		return nil, fmt.Errorf("unknown platform %q", fc.Input.Platform)
	}

	for from, to := range fc.Mappings {
		fromSeq, err := keys.ParseSequence(from)
		if err != nil {
			return nil, fmt.Errorf("mapping %q: %w", from, err)
		}
		if fromSeq.Len() != 1 {
			return nil, fmt.Errorf("mapping %q: source must be a single key", from)
		}
		toSeq, err := keys.ParseSequence(to)
		if err != nil {
			return nil, fmt.Errorf("mapping %q -> %q: %w", from, to, err)
		}
		cfg.Mappings[fromSeq.At(0)] = toSeq
	}

	modes := make([]string, 0, len(fc.Bindings))
	for mode := range fc.Bindings {
		modes = append(modes, mode)
	}
	sort.Strings(modes)

	for _, mode := range modes {
		km := keymap.NewKeymap("user-" + mode).ForMode(mode).
			WithSource("user").WithPriority(keymap.PriorityUser)
		bindingKeys := make([]string, 0, len(fc.Bindings[mode]))
		for keyStr := range fc.Bindings[mode] {
			bindingKeys = append(bindingKeys, keyStr)
		}
		sort.Strings(bindingKeys)
		for _, keyStr := range bindingKeys {
			km.Add(keyStr, fc.Bindings[mode][keyStr])
		}
		if err := km.Validate(); err != nil {
			return nil, fmt.Errorf("bindings.%s: %w", mode, err)
		}
		cfg.Keymaps = append(cfg.Keymaps, km)
	}

	return cfg, nil
}

// Platform returns the configured platform flag.
func (c *Config) Platform() keys.Platform {
	if c.Input.Platform == "macos" {
		return keys.PlatformMac
	}
	return keys.PlatformGeneric
}

// Apply registers the configured keymaps and key mappings on a
// registry.
func (c *Config) Apply(registry *keymap.Registry) error {
	registry.SetKeyMappings(c.Mappings)
	for _, km := range c.Keymaps {
		if err := registry.Register(km); err != nil {
			return err
		}
	}
	return nil
}
