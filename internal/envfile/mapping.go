package envfile

// Mapping is an ordered collection of key/value pairs parsed from a .env
// file. Keys are unique; assigning an existing key overwrites its value in
// place without disturbing the original position. Iteration follows first
// encounter order, which keeps serialization deterministic.
type Mapping struct {
	keys   []string
	values map[string]string
}

// NewMapping returns an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]string)}
}

// Set assigns value to key. A new key is appended to the iteration order;
// an existing key keeps its position (last write wins on the value).
func (m *Mapping) Set(key, value string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether the key is present.
func (m *Mapping) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m *Mapping) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	return len(m.keys)
}

// Clone returns a deep copy of the mapping, preserving order.
func (m *Mapping) Clone() *Mapping {
	out := NewMapping()
	for _, k := range m.keys {
		out.Set(k, m.values[k])
	}
	return out
}

// Equal reports whether two mappings hold the same keys in the same order
// with the same values.
func (m *Mapping) Equal(other *Mapping) bool {
	if len(m.keys) != len(other.keys) {
		return false
	}
	for i, k := range m.keys {
		if other.keys[i] != k {
			return false
		}
		if m.values[k] != other.values[k] {
			return false
		}
	}
	return true
}

// Entry is a single parsed pair with its 1-indexed source line. Entries are
// used where line numbers matter (diagnostics, scanning); Mapping is the
// canonical representation everywhere else.
type Entry struct {
	Key   string
	Value string
	Line  int
}
