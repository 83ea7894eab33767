package numformat

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Registry holds named custom profiles and falls back to CLDR data for names
// it does not know. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	profiles map[string]Profile
	fallback func(string) (Profile, error)
}

// NewRegistry creates an empty registry that resolves unknown names with Resolve.
func NewRegistry() *Registry {
	return &Registry{
		profiles: make(map[string]Profile),
		fallback: Resolve,
	}
}

// Register validates and stores a profile under a case-insensitive name.
func (r *Registry) Register(name string, p Profile) error {
	name = normalizeName(name)
	if name == "" {
		return fmt.Errorf("%w: empty profile name", ErrInvalidProfile)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("profile %q: %w", name, err)
	}

	p.GroupSizes = slices.Clone(p.GroupSizes)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[name] = p
	return nil
}

// Lookup returns the registered profile for name, or the CLDR-derived one.
func (r *Registry) Lookup(name string) (Profile, error) {
	key := normalizeName(name)

	r.mu.RLock()
	p, ok := r.profiles[key]
	r.mu.RUnlock()
	if ok {
		p.GroupSizes = slices.Clone(p.GroupSizes)
		return p, nil
	}

	if r.fallback == nil {
		return Profile{}, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	p, err := r.fallback(name)
	if err != nil {
		if errors.Is(err, ErrInvalidLocale) {
			return Profile{}, errors.Join(fmt.Errorf("%w: %q", ErrProfileNotFound, name), err)
		}
		return Profile{}, err
	}
	return p, nil
}

// Names lists registered profile names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// LoadYAML registers every profile of a document shaped as
//
//	profiles:
//	  fr-test:
//	    positive_sign: "~"
//	    negative_sign: "_"
//	    negative_layout: sign-after
//	    group_separator: "."
//	    group_sizes: [4]
//	    decimal_separator: ","
//
// Either every profile is registered or none is.
func (r *Registry) LoadYAML(src io.Reader) error {
	var doc struct {
		Profiles map[string]Profile `yaml:"profiles"`
	}
	if err := yaml.NewDecoder(src).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: decode profiles: %w", ErrInvalidProfile, err)
	}

	names := make([]string, 0, len(doc.Profiles))
	for name, p := range doc.Profiles {
		if normalizeName(name) == "" {
			return fmt.Errorf("%w: empty profile name", ErrInvalidProfile)
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("profile %q: %w", name, err)
		}
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if err := r.Register(name, doc.Profiles[name]); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile reads a YAML profile document from disk.
func (r *Registry) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open profiles file: %w", err)
	}
	defer f.Close()
	return r.LoadYAML(f)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
