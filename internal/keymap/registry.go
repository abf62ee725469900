package keymap

import (
	"fmt"
	"sort"
	"sync"

	"github.com/keychord/keychord/internal/keys"
)

// Registry manages keymaps and answers binding lookups. It is safe for
// concurrent use.
type Registry struct {
	mu sync.RWMutex

	// keymaps holds all registered keymaps by name.
	keymaps map[string]*ParsedKeymap

	// mappings are user key rewrites applied to the entered sequence
	// before matching.
	mappings map[keys.KeyInfo]keys.Sequence
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		keymaps:  make(map[string]*ParsedKeymap),
		mappings: make(map[keys.KeyInfo]keys.Sequence),
	}
}

// Register adds a keymap to the registry, replacing any keymap with the
// same name.
func (r *Registry) Register(km *Keymap) error {
	if km == nil {
		return fmt.Errorf("cannot register nil keymap")
	}

	parsed, err := km.Parse()
	if err != nil {
		return fmt.Errorf("parsing keymap %q: %w", km.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.keymaps[km.Name] = parsed
	return nil
}

// Unregister removes a keymap from the registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.keymaps, name)
}

// Get returns a keymap by name, or nil.
func (r *Registry) Get(name string) *ParsedKeymap {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.keymaps[name]
}

// Names returns the registered keymap names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.keymaps))
	for name := range r.keymaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clear removes all keymaps.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keymaps = make(map[string]*ParsedKeymap)
}

// SetKeyMappings replaces the key rewrites applied before lookup.
func (r *Registry) SetKeyMappings(mappings map[keys.KeyInfo]keys.Sequence) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mappings = make(map[keys.KeyInfo]keys.Sequence, len(mappings))
	for k, v := range mappings {
		r.mappings[k] = v
	}
}

// Result is the outcome of a lookup.
type Result struct {
	// Exact is the binding the entered sequence matches exactly, if any.
	Exact *ParsedBinding

	// Partial lists bindings the entered sequence is a prefix of.
	Partial []*ParsedBinding
}

// Type summarizes the result as a match type: exact wins over partial,
// partial over nothing.
func (res Result) Type() keys.MatchType {
	switch {
	case res.Exact != nil:
		return keys.ExactMatch
	case len(res.Partial) > 0:
		return keys.PartialMatch
	default:
		return keys.NoMatch
	}
}

// Lookup matches the entered sequence against every binding registered
// for the given mode (and for the global "" mode). User key mappings
// are applied first. If nothing matches at all, the lookup is retried
// with the keypad modifier stripped, so numpad keys fall back to the
// main-row bindings.
func (r *Registry) Lookup(entered keys.Sequence, mode string) Result {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mapped := entered.WithMappings(r.mappings)
	res := r.lookupLocked(mapped, mode)
	if res.Type() == keys.NoMatch && !mapped.StripModifiers().Equal(mapped) {
		res = r.lookupLocked(mapped.StripModifiers(), mode)
	}
	return res
}

// lookupLocked matches one sequence. Caller must hold at least the read
// lock.
//
// Keymaps are visited highest priority first, with names breaking ties,
// so a binding collision always resolves the same way: the user keymap
// wins over the default one it shadows.
func (r *Registry) lookupLocked(entered keys.Sequence, mode string) Result {
	keymaps := make([]*ParsedKeymap, 0, len(r.keymaps))
	for _, km := range r.keymaps {
		if km.Mode != mode && km.Mode != "" {
			continue
		}
		keymaps = append(keymaps, km)
	}
	sort.Slice(keymaps, func(i, j int) bool {
		if keymaps[i].Priority != keymaps[j].Priority {
			return keymaps[i].Priority > keymaps[j].Priority
		}
		return keymaps[i].Name < keymaps[j].Name
	})

	var res Result
	for _, km := range keymaps {
		for i := range km.ParsedBindings {
			pb := &km.ParsedBindings[i]
			switch pb.Match(entered) {
			case keys.ExactMatch:
				if res.Exact == nil {
					res.Exact = pb
				}
			case keys.PartialMatch:
				res.Partial = append(res.Partial, pb)
			}
		}
	}
	return res
}
