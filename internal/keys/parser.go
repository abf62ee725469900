package keys

import (
	"strings"
	"unicode"
)

// aliases rewrites long-form names inside a special token before it is
// resolved. Order matters: the input is lowercased first, and every
// occurrence is replaced.
var aliases = []struct {
	from, to string
}{
	{"control", "ctrl"},
	{"windows", "meta"},
	{"mod4", "meta"},
	{"command", "meta"},
	{"cmd", "meta"},
	{"super", "meta"},
	{"mod1", "alt"},
	{"less", "<"},
	{"greater", ">"},
}

// hyphenModifiers are rewritten from "mod-" to "mod+" so both separator
// styles parse.
var hyphenModifiers = []string{"ctrl", "meta", "alt", "shift", "num"}

// parseKeystring splits a key string into KeyInfo values. "<...>"
// delimits one special token; any other character is one plain token
// standing for itself, with uppercase implying Shift. A lone "<" or ">"
// without a partner is a literal.
func parseKeystring(keystr string) ([]KeyInfo, error) {
	var infos []KeyInfo
	var token []rune
	special := false

	for _, c := range keystr {
		switch {
		case c == '>':
			if special {
				info, err := parseSpecialToken(keystr, string(token))
				if err != nil {
					return nil, err
				}
				infos = append(infos, info)
				token = token[:0]
				special = false
			} else {
				info, err := parseSingleChar(keystr, '>')
				if err != nil {
					return nil, err
				}
				infos = append(infos, info)
			}
		case c == '<':
			special = true
		case special:
			token = append(token, c)
		default:
			info, err := parseSingleChar(keystr, c)
			if err != nil {
				return nil, err
			}
			infos = append(infos, info)
		}
	}

	// An unterminated "<..." is a literal "<" followed by plain keys.
	if special {
		info, err := parseSingleChar(keystr, '<')
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
		for _, c := range token {
			info, err := parseSingleChar(keystr, c)
			if err != nil {
				return nil, err
			}
			infos = append(infos, info)
		}
	}

	return infos, nil
}

// parseSpecialToken resolves the inside of a "<...>" token like
// "Ctrl-x" or "meta+greater" to a KeyInfo.
func parseSpecialToken(keystr, token string) (KeyInfo, error) {
	s := strings.ToLower(token)
	for _, a := range aliases {
		s = strings.ReplaceAll(s, a.from, a.to)
	}
	for _, mod := range hyphenModifiers {
		s = strings.ReplaceAll(s, mod+"-", mod+"+")
	}

	parts := strings.Split(s, "+")
	// "meta++" means the "+" key with a Meta modifier.
	if n := len(parts); n >= 2 && parts[n-1] == "" && parts[n-2] == "" {
		parts = append(parts[:n-2], "+")
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod, ok := modifierNames[p]
		if !ok {
			return KeyInfo{}, parseError(keystr, "got invalid modifier %q", p)
		}
		mods = mods.With(mod)
	}

	keyPart := parts[len(parts)-1]
	if keyPart == "" {
		return KeyInfo{}, parseError(keystr, "got invalid key %q", token)
	}
	if k, ok := keyNames[keyPart]; ok {
		return NewKeyInfo(k, mods), nil
	}
	runes := []rune(keyPart)
	if len(runes) == 1 {
		return charKeyInfo(keystr, runes[0], mods)
	}
	return KeyInfo{}, parseError(keystr, "got invalid key %q", token)
}

// parseSingleChar resolves one plain character. Uppercase letters mean
// Shift plus the letter.
func parseSingleChar(keystr string, c rune) (KeyInfo, error) {
	var mods Modifier
	if unicode.IsUpper(c) {
		mods = ModShift
	}
	return charKeyInfo(keystr, c, mods)
}

// charKeyInfo maps a character to its key via KeyFromRune, so "a" and
// "<Shift-a>" refer to the same key. Control characters and codepoints
// beyond the representable range are rejected; keys above the Basic
// Multilingual Plane only enter via surrogate remapping of real events,
// never via key strings.
func charKeyInfo(keystr string, c rune, mods Modifier) (KeyInfo, error) {
	k := KeyFromRune(c)
	if k < 0x20 || k > 0xffff || isSurrogate(k) {
		return KeyInfo{}, parseError(keystr, "got invalid key 0x%x", uint32(k))
	}
	return NewKeyInfo(k, mods), nil
}
