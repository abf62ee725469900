package keys

import "fmt"

// ParseError is returned when a key string or a raw key event cannot be
// turned into a valid KeyInfo or Sequence.
type ParseError struct {
	// Input is the offending key string, when one is available.
	Input string

	// HasInput distinguishes an empty input from an absent one.
	HasInput bool

	// Reason describes what went wrong.
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.HasInput {
		return fmt.Sprintf("could not parse %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("could not parse keystring: %s", e.Reason)
}

func parseError(input, format string, args ...any) *ParseError {
	return &ParseError{
		Input:    input,
		HasInput: true,
		Reason:   fmt.Sprintf(format, args...),
	}
}

func parseErrorNoInput(format string, args ...any) *ParseError {
	return &ParseError{Reason: fmt.Sprintf(format, args...)}
}

// assertPlainKey panics if the key has modifier bits mixed in. Key and
// modifier values must never share a field; seeing one means internal
// corruption rather than bad user input.
func assertPlainKey(k Key) {
	if Modifier(k)&ModMask != 0 {
		panic(fmt.Sprintf("key 0x%x has modifier bits set", uint32(k)))
	}
}

// assertPlainModifier panics if the modifier has non-modifier bits set.
func assertPlainModifier(m Modifier) {
	if m&^ModMask != 0 {
		panic(fmt.Sprintf("modifier 0x%x has non-modifier bits set", uint32(m)))
	}
}
