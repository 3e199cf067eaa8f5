package savedata

// MemoryBackend keeps items in a map. Used for throwaway sessions and tests.
type MemoryBackend struct {
	Items map[string][]byte

	// Fail, when set, is returned by every call
	Fail error
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{Items: map[string][]byte{}}
}

func (m *MemoryBackend) LoadItem(key string) ([]byte, error) {
	if m.Fail != nil {
		return nil, m.Fail
	}
	return m.Items[key], nil
}

func (m *MemoryBackend) SaveItem(key string, data []byte) error {
	if m.Fail != nil {
		return m.Fail
	}
	m.Items[key] = append([]byte{}, data...)
	return nil
}

func (m *MemoryBackend) DeleteItem(key string) error {
	if m.Fail != nil {
		return m.Fail
	}
	delete(m.Items, key)
	return nil
}
