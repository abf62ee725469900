package keys

import "testing"

func TestModifierString(t *testing.T) {
	tests := []struct {
		mods Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "Ctrl"},
		{ModCtrl | ModShift, "Ctrl+Shift"},
		{ModMeta | ModCtrl | ModAlt | ModShift | ModKeypad, "Meta+Ctrl+Alt+Shift+Num"},
		{ModGroupSwitch | ModShift, "AltGr+Shift"},
	}

	for _, tt := range tests {
		if got := tt.mods.String(); got != tt.want {
			t.Errorf("Modifier(0x%x).String() = %q, want %q", uint32(tt.mods), got, tt.want)
		}
	}
}

func TestModifierOps(t *testing.T) {
	m := ModNone.With(ModCtrl).With(ModShift)
	if !m.Has(ModCtrl) || !m.Has(ModShift) || m.Has(ModAlt) {
		t.Errorf("unexpected bits in 0x%x", uint32(m))
	}
	m = m.Without(ModCtrl)
	if m.Has(ModCtrl) || !m.Has(ModShift) {
		t.Errorf("Without(ModCtrl) left 0x%x", uint32(m))
	}
	if !ModNone.IsEmpty() || m.IsEmpty() {
		t.Errorf("IsEmpty() wrong for 0x%x", uint32(m))
	}
}

func TestKeyIsPrintable(t *testing.T) {
	tests := []struct {
		key  Key
		want bool
	}{
		{Key('A'), true},
		{Key('1'), true},
		{Key('@'), true},
		{KeySpace, false},
		{KeyNil, false},
		{KeyEscape, false},
		{KeyF1, false},
		{Key(0x100), false},
	}

	for _, tt := range tests {
		if got := tt.key.IsPrintable(); got != tt.want {
			t.Errorf("Key(0x%x).IsPrintable() = %v, want %v", uint32(tt.key), got, tt.want)
		}
	}
}

func TestKeyFromRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Key
	}{
		{'a', Key('A')},
		{'A', Key('A')},
		{'1', Key('1')},
		{'ö', Key('Ö')},
		{'б', Key('Б')},
		// Latin-1 characters whose uppercase leaves Latin-1 keep their
		// own codepoint.
		{'µ', Key('µ')},
		{'ÿ', Key(0xff)},
		{'Ÿ', Key(0xff)},
	}

	for _, tt := range tests {
		if got := KeyFromRune(tt.r); got != tt.want {
			t.Errorf("KeyFromRune(%q) = 0x%x, want 0x%x", tt.r, uint32(got), uint32(tt.want))
		}
	}
}

func TestKeyIsModifierKey(t *testing.T) {
	for _, k := range []Key{KeyShift, KeyControl, KeyMeta, KeyAlt, KeyAltGr, KeyModeSwitch} {
		if !k.IsModifierKey() {
			t.Errorf("Key(0x%x).IsModifierKey() = false", uint32(k))
		}
	}
	for _, k := range []Key{Key('A'), KeyEscape, KeyCapsLock} {
		if k.IsModifierKey() {
			t.Errorf("Key(0x%x).IsModifierKey() = true", uint32(k))
		}
	}
}

func TestAssertPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for key with modifier bits")
		}
	}()
	NewKeyInfo(Key(uint32(ModCtrl)|'A'), ModNone)
}
