package keymap

import (
	"fmt"
	"sort"

	"github.com/keychord/keychord/internal/keys"
)

// Priority levels for the common keymap sources.
const (
	PriorityDefault = 0
	PriorityUser    = 100
)

// Keymap holds the key bindings for one mode.
type Keymap struct {
	// Name is the keymap identifier.
	Name string `yaml:"name"`

	// Mode is the mode this keymap applies to.
	// Examples: "normal", "insert", "command".
	Mode string `yaml:"mode"`

	// Priority breaks ties when several keymaps bind the same sequence
	// in the same mode: higher wins. Built-in defaults use
	// PriorityDefault, user keymaps PriorityUser.
	Priority int `yaml:"priority,omitempty"`

	// Bindings are the key-to-command mappings.
	Bindings []Binding `yaml:"bindings"`

	// Source indicates where this keymap was defined.
	// Examples: "default", "user", "file:/path/to/keymap.yaml"
	Source string `yaml:"-"`
}

// NewKeymap creates an empty keymap with the given name.
func NewKeymap(name string) *Keymap {
	return &Keymap{
		Name:     name,
		Bindings: make([]Binding, 0),
	}
}

// ForMode sets the mode for this keymap.
func (k *Keymap) ForMode(mode string) *Keymap {
	k.Mode = mode
	return k
}

// WithSource sets the source for this keymap.
func (k *Keymap) WithSource(source string) *Keymap {
	k.Source = source
	return k
}

// WithPriority sets the priority for this keymap.
func (k *Keymap) WithPriority(priority int) *Keymap {
	k.Priority = priority
	return k
}

// Add adds a binding to this keymap.
func (k *Keymap) Add(keyStr, command string) *Keymap {
	k.Bindings = append(k.Bindings, Binding{Keys: keyStr, Command: command})
	return k
}

// AddBinding adds a fully configured binding to this keymap.
func (k *Keymap) AddBinding(binding Binding) *Keymap {
	k.Bindings = append(k.Bindings, binding)
	return k
}

// Validate checks that all bindings in the keymap parse and are
// non-empty.
func (k *Keymap) Validate() error {
	for i, b := range k.Bindings {
		if b.Keys == "" {
			return fmt.Errorf("binding %d: empty keys", i)
		}
		if b.Command == "" {
			return fmt.Errorf("binding %d (%s): empty command", i, b.Keys)
		}
		if _, err := keys.ParseSequence(b.Keys); err != nil {
			return fmt.Errorf("binding %d (%s): %w", i, b.Keys, err)
		}
	}
	return nil
}

// ParsedKeymap is a keymap with pre-parsed key sequences, sorted by
// sequence for deterministic documentation output.
type ParsedKeymap struct {
	*Keymap
	ParsedBindings []ParsedBinding
}

// Parse parses all bindings in the keymap.
func (k *Keymap) Parse() (*ParsedKeymap, error) {
	parsed := &ParsedKeymap{
		Keymap:         k,
		ParsedBindings: make([]ParsedBinding, 0, len(k.Bindings)),
	}

	for _, b := range k.Bindings {
		seq, err := keys.ParseSequence(b.Keys)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", b.Keys, err)
		}
		parsed.ParsedBindings = append(parsed.ParsedBindings, ParsedBinding{
			Binding:  b,
			Sequence: seq,
		})
	}

	sort.SliceStable(parsed.ParsedBindings, func(i, j int) bool {
		return parsed.ParsedBindings[i].Sequence.Less(parsed.ParsedBindings[j].Sequence)
	})

	return parsed, nil
}

// Clone creates a deep copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	clone := &Keymap{
		Name:     k.Name,
		Mode:     k.Mode,
		Priority: k.Priority,
		Source:   k.Source,
		Bindings: make([]Binding, len(k.Bindings)),
	}
	copy(clone.Bindings, k.Bindings)
	return clone
}
