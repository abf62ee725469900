package keymap

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Loader loads keymaps from YAML files.
//
// File format:
//
//	name: user-normal
//	mode: normal
//	bindings:
//	  - keys: "gg"
//	    command: scroll-top
//	  - keys: "<Ctrl-x><Ctrl-s>"
//	    command: session-save
type Loader struct {
	searchPaths []string
}

// NewLoader creates a keymap loader.
func NewLoader() *Loader {
	return &Loader{searchPaths: make([]string, 0)}
}

// AddSearchPath adds a directory to search for keymap files.
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// LoadFile loads a keymap from a YAML file.
func (l *Loader) LoadFile(path string) (*Keymap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening keymap file: %w", err)
	}
	defer f.Close()

	km, err := l.LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	km.Source = "file:" + path
	return km, nil
}

// LoadReader loads a keymap from a reader.
func (l *Loader) LoadReader(r io.Reader) (*Keymap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading keymap: %w", err)
	}

	var km Keymap
	if err := yaml.Unmarshal(data, &km); err != nil {
		return nil, fmt.Errorf("decoding keymap: %w", err)
	}
	if err := km.Validate(); err != nil {
		return nil, err
	}
	return &km, nil
}

// LoadAll loads all keymaps from the search paths. A file that fails to
// load is skipped, but its error is kept: the returned error joins
// every per-file failure so a broken keymap never vanishes silently,
// while the loaded keymaps are still returned alongside it.
func (l *Loader) LoadAll() ([]*Keymap, error) {
	keymaps := make([]*Keymap, 0)
	var errs []error

	for _, dir := range l.searchPaths {
		for _, pattern := range []string{"*.yaml", "*.yml"} {
			matches, err := filepath.Glob(filepath.Join(dir, pattern))
			if err != nil {
				errs = append(errs, fmt.Errorf("globbing %s: %w", dir, err))
				continue
			}
			for _, path := range matches {
				km, err := l.LoadFile(path)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				keymaps = append(keymaps, km)
			}
		}
	}

	return keymaps, errors.Join(errs...)
}

// LoadAndRegister loads all keymaps and registers them. Keymaps that
// load cleanly are registered even when sibling files fail; the
// returned error joins every load and registration failure.
func (l *Loader) LoadAndRegister(registry *Registry) error {
	keymaps, err := l.LoadAll()
	errs := []error{err}

	for _, km := range keymaps {
		if err := registry.Register(km); err != nil {
			errs = append(errs, fmt.Errorf("registering keymap %q: %w", km.Name, err))
		}
	}

	return errors.Join(errs...)
}
