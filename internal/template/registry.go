package template

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// ErrNotFound is returned by Get when no template matches.
var ErrNotFound = errors.New("template not found")

// Registry holds the built-in templates plus any found in a user directory.
// A user template with the same ID as a built-in replaces it.
type Registry struct {
	dir string

	mu        sync.RWMutex
	templates []*Template
	problems  []error
}

// NewRegistry loads built-ins and, when dir is non-empty, every *.yaml and
// *.yml file in dir. A missing dir is not an error.
func NewRegistry(dir string) (*Registry, error) {
	r := &Registry{dir: dir}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Dir returns the user template directory, or "".
func (r *Registry) Dir() string { return r.dir }

// Reload re-reads every template. Invalid user files are skipped and
// reported by Problems; an invalid built-in is an error.
func (r *Registry) Reload() error {
	builtins, err := loadBuiltins()
	if err != nil {
		return err
	}

	var problems []error
	user, err := loadDir(r.dir, &problems)
	if err != nil {
		return err
	}

	byID := make(map[string]int, len(builtins)+len(user))
	merged := make([]*Template, 0, len(builtins)+len(user))
	for _, t := range append(builtins, user...) {
		if i, ok := byID[t.ID]; ok {
			merged[i] = t
			continue
		}
		byID[t.ID] = len(merged)
		merged = append(merged, t)
	}

	r.mu.Lock()
	r.templates = merged
	r.problems = problems
	r.mu.Unlock()
	return nil
}

// List returns templates in load order: built-ins first, then user files.
func (r *Registry) List() []*Template {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Template(nil), r.templates...)
}

// Problems returns the errors from user files skipped by the last Reload.
func (r *Registry) Problems() []error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]error(nil), r.problems...)
}

// Get resolves a template by ID, display name (case-insensitive) or its
// 1-based position in List.
func (r *Registry) Get(key string) (*Template, error) {
	input := strings.TrimSpace(key)
	if input == "" {
		return nil, fmt.Errorf("%w: empty template name", ErrNotFound)
	}

	list := r.List()
	for _, t := range list {
		if strings.EqualFold(t.ID, input) || strings.EqualFold(t.Name, input) {
			return t, nil
		}
	}
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(list) {
		return list[n-1], nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, input)
}

func loadBuiltins() ([]*Template, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("reading built-in templates: %w", err)
	}
	var out []*Template
	for _, e := range entries {
		p := path.Join("builtin", e.Name())
		data, err := builtinFS.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading built-in template %s: %w", e.Name(), err)
		}
		t, err := Parse(data, "builtin:"+e.Name())
		if err != nil {
			return nil, err
		}
		if err := t.Validate(nil); err != nil {
			return nil, fmt.Errorf("built-in template %s: %w", e.Name(), err)
		}
		out = append(out, t)
	}
	sortByName(out)
	return out, nil
}

func loadDir(dir string, problems *[]error) ([]*Template, error) {
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading template dir %s: %w", dir, err)
	}

	var out []*Template
	for _, e := range entries {
		if e.IsDir() || !IsTemplateFile(e.Name()) {
			continue
		}
		t, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			*problems = append(*problems, err)
			continue
		}
		if err := t.Validate(nil); err != nil {
			*problems = append(*problems, fmt.Errorf("template %s: %w", e.Name(), err))
			continue
		}
		out = append(out, t)
	}
	sortByName(out)
	return out, nil
}

// IsTemplateFile reports whether name has a YAML extension.
func IsTemplateFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

func sortByName(ts []*Template) {
	sort.SliceStable(ts, func(i, j int) bool { return ts[i].Name < ts[j].Name })
}
