package core

// Mapping is the insertion-ordered key/value container the lock parser
// produces. Values are coerced scalars or nested *Mapping blocks.
type Mapping struct {
	keys   []string
	values map[string]any
}

func NewMapping() *Mapping {
	return &Mapping{values: map[string]any{}}
}

// Set stores value under key. A repeated key keeps its original
// position and the last value wins.
func (m *Mapping) Set(key string, value any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *Mapping) Get(key string) (any, bool) {
	value, ok := m.values[key]
	return value, ok
}

func (m *Mapping) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Keys returns the keys in insertion order. The slice is a copy.
func (m *Mapping) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

func (m *Mapping) Len() int {
	return len(m.keys)
}
