package keymap

import (
	"testing"

	"github.com/keychord/keychord/internal/keys"
)

func TestKeymapBuilder(t *testing.T) {
	km := NewKeymap("test").ForMode("normal").WithSource("unit")
	km.Add("gg", "scroll-top").
		AddBinding(NewBinding("G", "scroll-bottom").WithDescription("bottom"))

	if km.Name != "test" || km.Mode != "normal" || km.Source != "unit" {
		t.Errorf("keymap fields = %q/%q/%q", km.Name, km.Mode, km.Source)
	}
	if len(km.Bindings) != 2 {
		t.Fatalf("len(Bindings) = %d, want 2", len(km.Bindings))
	}
	if km.Bindings[1].Description != "bottom" {
		t.Errorf("description = %q", km.Bindings[1].Description)
	}
}

func TestKeymapValidate(t *testing.T) {
	tests := []struct {
		name    string
		binding Binding
		wantErr bool
	}{
		{"valid", NewBinding("gg", "scroll-top"), false},
		{"valid special", NewBinding("<Ctrl-x><Ctrl-s>", "session-save"), false},
		{"empty keys", NewBinding("", "cmd"), true},
		{"empty command", NewBinding("gg", ""), true},
		{"unparseable keys", NewBinding("<blub>", "cmd"), true},
	}

	for _, tt := range tests {
		km := NewKeymap("test").AddBinding(tt.binding)
		err := km.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestKeymapParseSortsBindings(t *testing.T) {
	km := NewKeymap("test").
		Add("b", "two").
		Add("a", "one").
		Add("ab", "three")

	parsed, err := km.Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var got []string
	for _, pb := range parsed.ParsedBindings {
		got = append(got, pb.Keys)
	}
	want := []string{"a", "ab", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sorted bindings = %v, want %v", got, want)
		}
	}
}

func TestKeymapClone(t *testing.T) {
	km := NewKeymap("test").Add("gg", "scroll-top")
	clone := km.Clone()
	clone.Add("G", "scroll-bottom")

	if len(km.Bindings) != 1 {
		t.Errorf("clone mutation leaked: len = %d", len(km.Bindings))
	}
	if len(clone.Bindings) != 2 {
		t.Errorf("clone len = %d, want 2", len(clone.Bindings))
	}
}

func TestParsedBindingMatch(t *testing.T) {
	km := NewKeymap("test").Add("gg", "scroll-top")
	parsed, err := km.Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	pb := &parsed.ParsedBindings[0]

	tests := []struct {
		entered string
		want    keys.MatchType
	}{
		{"g", keys.PartialMatch},
		{"gg", keys.ExactMatch},
		{"x", keys.NoMatch},
	}
	for _, tt := range tests {
		if got := pb.Match(keys.MustParseSequence(tt.entered)); got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.entered, got, tt.want)
		}
	}

	var nilPB *ParsedBinding
	if got := nilPB.Match(keys.MustParseSequence("g")); got != keys.NoMatch {
		t.Errorf("nil binding Match() = %v, want NoMatch", got)
	}
}
