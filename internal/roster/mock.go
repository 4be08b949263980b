package roster

import "sync"

// MockStore is a mock implementation of the PlayerStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	UpsertFunc  func(record *PlayerRecord) error
	GetFunc     func(puuid string) (*PlayerRecord, error)
	ListAllFunc func() ([]PlayerRecord, error)
	ClearFunc   func()

	// Call records
	UpsertCalls []*PlayerRecord
	GetCalls    []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

var _ PlayerStore = (*MockStore)(nil)

func (m *MockStore) Upsert(record *PlayerRecord) error {
	m.mu.Lock()
	m.UpsertCalls = append(m.UpsertCalls, record)
	m.mu.Unlock()
	if m.UpsertFunc != nil {
		return m.UpsertFunc(record)
	}
	return nil
}

func (m *MockStore) Get(puuid string) (*PlayerRecord, error) {
	m.mu.Lock()
	m.GetCalls = append(m.GetCalls, puuid)
	m.mu.Unlock()
	if m.GetFunc != nil {
		return m.GetFunc(puuid)
	}
	return nil, nil
}

func (m *MockStore) ListAll() ([]PlayerRecord, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc()
	}
	return nil, nil
}

func (m *MockStore) Clear() {
	if m.ClearFunc != nil {
		m.ClearFunc()
	}
}
