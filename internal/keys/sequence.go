package keys

import (
	"strings"
	"unicode"
)

// MatchType is the result of matching an entered sequence against a
// configured one.
type MatchType int

const (
	// NoMatch means the sequences can never match, no matter what keys
	// follow.
	NoMatch MatchType = iota

	// PartialMatch means more keys could still complete the binding.
	PartialMatch

	// ExactMatch means the sequences are equal.
	ExactMatch
)

// String returns the match type name.
func (m MatchType) String() string {
	switch m {
	case NoMatch:
		return "none"
	case PartialMatch:
		return "partial"
	case ExactMatch:
		return "exact"
	default:
		return "unknown"
	}
}

// Platform selects platform-specific event normalization. It is passed
// explicitly rather than read from ambient state so the engine stays
// pure and testable.
type Platform int

const (
	// PlatformGeneric applies no platform-specific rules.
	PlatformGeneric Platform = iota

	// PlatformMac swaps Control and Meta on append so key strings name
	// the physical keys the user expects.
	PlatformMac
)

// chunkLen is the historical chord-group size of the toolkit this
// engine stays compatible with. Matching compares groups of at most
// this many keys.
const chunkLen = 4

// Sequence is an immutable ordered list of key presses forming a chord
// sequence. The empty sequence is valid and means "nothing entered
// yet". Every transforming method returns a new Sequence.
type Sequence struct {
	keys []KeyInfo
}

// NewSequence creates a sequence from the given keys. The nil and
// unknown keys, and anything below the printable range, are rejected:
// a finalized sequence only ever holds real keys.
func NewSequence(infos ...KeyInfo) (Sequence, error) {
	s := Sequence{keys: infos}
	if err := s.validate(""); err != nil {
		return Sequence{}, err
	}
	return s, nil
}

// ParseSequence parses a key string like "<Ctrl-x>gg" into a Sequence.
func ParseSequence(keystr string) (Sequence, error) {
	infos, err := parseKeystring(keystr)
	if err != nil {
		return Sequence{}, err
	}
	s := Sequence{keys: infos}
	if err := s.validate(keystr); err != nil {
		return Sequence{}, err
	}
	return s, nil
}

// MustParseSequence parses a key string and panics on error. Use only
// for known-valid strings in initialization code.
func MustParseSequence(keystr string) Sequence {
	s, err := ParseSequence(keystr)
	if err != nil {
		panic("invalid key sequence: " + keystr + ": " + err.Error())
	}
	return s
}

func (s Sequence) validate(keystr string) error {
	for _, info := range s.keys {
		if info.Key < KeySpace || info.Key >= KeyUnknown {
			if keystr == "" {
				return parseErrorNoInput("got invalid key 0x%x", uint32(info.Key))
			}
			return parseError(keystr, "got invalid key 0x%x", uint32(info.Key))
		}
	}
	return nil
}

// Len returns the number of keys in the sequence.
func (s Sequence) Len() int {
	return len(s.keys)
}

// IsEmpty returns true if no keys have been entered.
func (s Sequence) IsEmpty() bool {
	return len(s.keys) == 0
}

// At returns the key at the given index.
func (s Sequence) At(index int) KeyInfo {
	return s.keys[index]
}

// First returns the first key, or false if the sequence is empty.
func (s Sequence) First() (KeyInfo, bool) {
	if len(s.keys) == 0 {
		return KeyInfo{}, false
	}
	return s.keys[0], true
}

// Last returns the last key, or false if the sequence is empty.
func (s Sequence) Last() (KeyInfo, bool) {
	if len(s.keys) == 0 {
		return KeyInfo{}, false
	}
	return s.keys[len(s.keys)-1], true
}

// Keys returns a copy of the keys in order.
func (s Sequence) Keys() []KeyInfo {
	out := make([]KeyInfo, len(s.keys))
	copy(out, s.keys)
	return out
}

// Truncated returns the first n keys as a new sequence.
func (s Sequence) Truncated(n int) Sequence {
	if n > len(s.keys) {
		n = len(s.keys)
	}
	if n < 0 {
		n = 0
	}
	out := make([]KeyInfo, n)
	copy(out, s.keys[:n])
	return Sequence{keys: out}
}

// String renders the canonical form: each key's canonical string,
// concatenated.
func (s Sequence) String() string {
	var sb strings.Builder
	for _, info := range s.keys {
		sb.WriteString(info.String())
	}
	return sb.String()
}

// chunks splits the keys into groups of at most chunkLen. The grouping
// is derived, never stored: it matters only to Matches.
func (s Sequence) chunks() [][]KeyInfo {
	var out [][]KeyInfo
	for i := 0; i < len(s.keys); i += chunkLen {
		end := i + chunkLen
		if end > len(s.keys) {
			end = len(s.keys)
		}
		out = append(out, s.keys[i:end])
	}
	return out
}

// matchChunk compares one entered chunk against one configured chunk.
func matchChunk(entered, configured []KeyInfo) MatchType {
	if len(entered) > len(configured) {
		return NoMatch
	}
	for i, info := range entered {
		if info != configured[i] {
			return NoMatch
		}
	}
	if len(entered) == len(configured) {
		return ExactMatch
	}
	return PartialMatch
}

// Matches checks the entered sequence s against a configured binding.
//
// Chunks are compared pair-wise in order. The first pair that is not an
// exact match decides the result. If all compared pairs match exactly,
// the chunk counts decide: equal counts are an exact match, fewer
// entered chunks a partial one (more keys can still complete the
// binding), and more entered chunks can never match at all.
func (s Sequence) Matches(configured Sequence) MatchType {
	entered := s.chunks()
	confChunks := configured.chunks()

	if len(entered) > len(confChunks) {
		return NoMatch
	}

	for i, chunk := range entered {
		if match := matchChunk(chunk, confChunks[i]); match != ExactMatch {
			return match
		}
	}

	if len(entered) == len(confChunks) {
		return ExactMatch
	}
	return PartialMatch
}

// AppendEvent returns a new sequence with the given raw event appended,
// after normalizing it:
//
//   - the AltGr group-switch modifier is dropped, since a stored binding
//     cannot express it
//   - Shift+Backtab becomes Shift+Tab, so the usual Tab key needs no
//     separate binding entry
//   - a lone Shift is dropped for shift-typed symbols (Shift+; on a US
//     layout should match a ":" binding), but kept for uppercase letters
//     and whenever other modifiers are held
//   - on PlatformMac, Control and Meta are swapped unless both are held
func (s Sequence) AppendEvent(ev Event, platform Platform) (Sequence, error) {
	if err := checkCode(ev.Code); err != nil {
		return Sequence{}, err
	}
	assertPlainModifier(ev.Mods)

	key, err := remapSurrogate(ev.Code, ev.Text)
	if err != nil {
		return Sequence{}, err
	}
	if key == KeyNil {
		return Sequence{}, parseErrorNoInput("got nil key")
	}

	mods := ev.Mods.Without(ModGroupSwitch)

	if mods.Has(ModShift) && key == KeyBacktab {
		key = KeyTab
	}

	if mods == ModShift && key.IsPrintable() && !textIsUpper(ev.Text) {
		mods = ModNone
	}

	if platform == PlatformMac {
		switch {
		case mods.Has(ModCtrl) && mods.Has(ModMeta):
			// Both held: leave them alone.
		case mods.Has(ModCtrl):
			mods = mods.Without(ModCtrl).With(ModMeta)
		case mods.Has(ModMeta):
			mods = mods.Without(ModMeta).With(ModCtrl)
		}
	}

	infos := make([]KeyInfo, len(s.keys), len(s.keys)+1)
	copy(infos, s.keys)
	infos = append(infos, NewKeyInfo(key, mods))
	return NewSequence(infos...)
}

// StripModifiers returns a copy with the keypad modifier removed from
// every key, so numpad presses match main-keyboard bindings unless a
// numpad-specific binding exists.
func (s Sequence) StripModifiers() Sequence {
	infos := make([]KeyInfo, len(s.keys))
	for i, info := range s.keys {
		infos[i] = info.WithStrippedModifiers(ModKeypad)
	}
	return Sequence{keys: infos}
}

// WithMappings returns a copy where every key listed in mappings is
// replaced by its mapped sequence (which may be longer than one key).
// Unmapped keys pass through unchanged, in order.
func (s Sequence) WithMappings(mappings map[KeyInfo]Sequence) Sequence {
	var infos []KeyInfo
	for _, info := range s.keys {
		if mapped, ok := mappings[info]; ok {
			infos = append(infos, mapped.keys...)
		} else {
			infos = append(infos, info)
		}
	}
	return Sequence{keys: infos}
}

// Equal reports whether two sequences hold the same keys in the same
// order. Chunk boundaries are a storage artifact and never compared.
func (s Sequence) Equal(other Sequence) bool {
	if len(s.keys) != len(other.keys) {
		return false
	}
	for i, info := range s.keys {
		if info != other.keys[i] {
			return false
		}
	}
	return true
}

// Compare gives a total order consistent with Equal: lexicographic over
// the keys, with a shorter prefix sorting first. Used to sort
// configured bindings deterministically.
func (s Sequence) Compare(other Sequence) int {
	n := len(s.keys)
	if len(other.keys) < n {
		n = len(other.keys)
	}
	for i := 0; i < n; i++ {
		if c := s.keys[i].Compare(other.keys[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(s.keys) < len(other.keys):
		return -1
	case len(s.keys) > len(other.keys):
		return 1
	default:
		return 0
	}
}

// Less reports whether s sorts before other.
func (s Sequence) Less(other Sequence) bool {
	return s.Compare(other) < 0
}

// textIsUpper reports whether the event text is uppercase: it has at
// least one cased character and no lowercase ones. This deliberately
// follows the rendered text rather than any locale-aware rule, since
// changing it would change which bindings match.
func textIsUpper(text string) bool {
	hasUpper := false
	for _, r := range text {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}
