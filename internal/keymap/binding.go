package keymap

import (
	"github.com/keychord/keychord/internal/keys"
)

// Binding represents a single key-to-command mapping.
type Binding struct {
	// Keys is the key string that triggers this binding.
	// Examples: "gg", "<Ctrl-x><Ctrl-s>", ":"
	Keys string `yaml:"keys"`

	// Command is the command to execute.
	// Examples: "scroll-top", "tab-close", "open -t"
	Command string `yaml:"command"`

	// Description provides documentation for the binding.
	Description string `yaml:"description,omitempty"`
}

// NewBinding creates a binding with the given keys and command.
func NewBinding(keyStr, command string) Binding {
	return Binding{Keys: keyStr, Command: command}
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// ParsedBinding is a binding with its key string pre-parsed.
type ParsedBinding struct {
	Binding
	Sequence keys.Sequence
}

// Match reports how the entered sequence relates to this binding.
func (pb *ParsedBinding) Match(entered keys.Sequence) keys.MatchType {
	if pb == nil {
		return keys.NoMatch
	}
	return entered.Matches(pb.Sequence)
}
