package record

import "slices"

// FieldStore holds the raw column values of an entity.
//
// Keys are kept in ascending byte-wise order. Defaults registered with
// SetDefault are visible to Get but never enumerated by Keys until the key is
// written with Set.
type FieldStore struct {
	keys     []string
	values   map[string]any
	defaults map[string]any
}

// NewFieldStore returns an empty store.
func NewFieldStore() *FieldStore {
	return &FieldStore{
		values:   make(map[string]any),
		defaults: make(map[string]any),
	}
}

// Get returns the stored value for key, falling back to its default and then nil.
func (s *FieldStore) Get(key string) any {
	if v, ok := s.values[key]; ok {
		return v
	}
	return s.defaults[key]
}

// Set stores value under key, making the key visible to Keys.
func (s *FieldStore) Set(key string, value any) {
	if _, ok := s.values[key]; !ok {
		i, _ := slices.BinarySearch(s.keys, key)
		s.keys = slices.Insert(s.keys, i, key)
	}
	s.values[key] = value
}

// SetDefault registers the value returned by Get while key has never been Set.
func (s *FieldStore) SetDefault(key string, value any) {
	s.defaults[key] = value
}

// Has reports whether key has been explicitly stored.
func (s *FieldStore) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Keys returns the stored keys in order. Default-only keys are excluded.
func (s *FieldStore) Keys() []string {
	return slices.Clone(s.keys)
}

// Len returns the number of stored keys.
func (s *FieldStore) Len() int {
	return len(s.keys)
}
