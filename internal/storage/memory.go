package storage

// MemoryStore is an in-memory blob store used by tests and dry runs.
type MemoryStore struct {
	data []byte
	// FailSave, when set, makes Save return this error. Tests use it to
	// exercise the uncommitted-mutation path.
	FailSave error
	// Saves counts successful Save calls.
	Saves int
}

// NewMemoryStore creates an empty in-memory blob store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the last saved blob, or nil when nothing has been saved.
func (s *MemoryStore) Load() ([]byte, error) {
	if s.data == nil {
		return nil, nil
	}
	return append([]byte(nil), s.data...), nil
}

// Save replaces the stored blob.
func (s *MemoryStore) Save(data []byte) error {
	if s.FailSave != nil {
		return s.FailSave
	}
	s.data = append([]byte(nil), data...)
	s.Saves++
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
