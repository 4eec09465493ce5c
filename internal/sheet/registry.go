package sheet

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"gocheat/internal/logging"

	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"
)

// Registry holds sections in registration order and indexes them by name.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	sections []*Section
	byName   map[string]*Section
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Section),
	}
}

// Register appends a section.
// Returns an error if a section with the same name already exists.
func (r *Registry) Register(s *Section) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid section: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[s.Name]; exists {
		return fmt.Errorf("%w: %s", ErrSectionAlreadyRegistered, s.Name)
	}

	r.sections = append(r.sections, s)
	r.byName[s.Name] = s

	logging.Get(logging.CategorySheet).Debug("registered section",
		zap.Int("number", s.Number), zap.String("name", s.Name))
	return nil
}

// MustRegister registers a section and panics on error.
func (r *Registry) MustRegister(s *Section) {
	if err := r.Register(s); err != nil {
		panic(fmt.Sprintf("failed to register section %s: %v", s.Name, err))
	}
}

// Get returns a section by exact name, or nil if not found.
func (r *Registry) Get(name string) *Section {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byName[name]
}

// Has returns true if a section with the given name is registered.
func (r *Registry) Has(name string) bool {
	return r.Get(name) != nil
}

// All returns every section in registration order.
func (r *Registry) All() []*Section {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.sections)
}

// Names returns section names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.sections))
	for i, s := range r.sections {
		names[i] = s.Name
	}
	return names
}

// Count returns the number of registered sections.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sections)
}

// Lookup resolves a user-supplied key: an exact name, a name in any case,
// or a section number. Misses wrap ErrSectionNotFound and carry the closest
// name when one is near enough.
func (r *Registry) Lookup(key string) (*Section, error) {
	key = strings.TrimSpace(key)
	if s := r.Get(key); s != nil {
		return s, nil
	}

	r.mu.RLock()
	lower := strings.ToLower(key)
	n, numErr := strconv.Atoi(key)
	for _, s := range r.sections {
		if strings.ToLower(s.Name) == lower || (numErr == nil && s.Number == n) {
			r.mu.RUnlock()
			return s, nil
		}
	}
	r.mu.RUnlock()

	if suggestion := r.Suggest(key); suggestion != "" {
		return nil, fmt.Errorf("%w: %s (did you mean %q?)", ErrSectionNotFound, key, suggestion)
	}
	return nil, fmt.Errorf("%w: %s", ErrSectionNotFound, key)
}

// Resolve looks up every key, failing on the first miss. No keys means all
// sections.
func (r *Registry) Resolve(keys ...string) ([]*Section, error) {
	if len(keys) == 0 {
		return r.All(), nil
	}
	out := make([]*Section, 0, len(keys))
	for _, k := range keys {
		s, err := r.Lookup(k)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Suggest returns the registered name closest to key by edit distance, or
// "" when nothing is within a third of the key's length (minimum 2).
func (r *Registry) Suggest(key string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key = strings.ToLower(key)
	limit := max(2, len(key)/3)
	best, bestDist := "", limit+1
	for _, s := range r.sections {
		d := levenshtein.ComputeDistance(key, strings.ToLower(s.Name))
		if d < bestDist {
			best, bestDist = s.Name, d
		}
	}
	return best
}
