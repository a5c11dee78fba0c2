package conf

import "iter"

// Entry is a single key/value pair from a Store.
type Entry struct {
	Key   string
	Value string
}

// Store is an insertion-ordered mapping from configuration key to raw
// string value. The zero value is not usable; create instances with New.
type Store struct {
	order  []string
	values map[string]string
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		values: make(map[string]string),
	}
}

// Get returns the value stored under key and whether the key is present.
func (s *Store) Get(key string) (string, bool) {
	value, ok := s.values[key]

	return value, ok
}

// Set stores value under key. A new key is appended to the iteration
// order; an existing key keeps its position and has its value replaced.
func (s *Store) Set(key, value string) {
	if _, exists := s.values[key]; !exists {
		s.order = append(s.order, key)
	}

	s.values[key] = value
}

// Len returns the number of keys in the store.
func (s *Store) Len() int {
	return len(s.order)
}

// Keys returns all keys in insertion order. The returned slice is a copy.
func (s *Store) Keys() []string {
	keys := make([]string, len(s.order))
	copy(keys, s.order)

	return keys
}

// All returns an iterator over (key, value) pairs in insertion order.
// The sequence is finite and restartable.
func (s *Store) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, key := range s.order {
			if !yield(key, s.values[key]) {
				return
			}
		}
	}
}

// Entries returns all pairs in insertion order as a slice.
func (s *Store) Entries() []Entry {
	entries := make([]Entry, 0, len(s.order))
	for key, value := range s.All() {
		entries = append(entries, Entry{Key: key, Value: value})
	}

	return entries
}
