package notifier

import (
	"sync"

	"github.com/riftboard/riftboard/internal/roster"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Call records
	SendRefreshSummaryCalls []RefreshSummary
	SendPlayerAddedCalls    []*roster.PlayerRecord

	// Spies
	SendRefreshSummaryFunc func(summary RefreshSummary, dryRun bool) error
	SendPlayerAddedFunc    func(player *roster.PlayerRecord, dryRun bool) error
}

var _ Notifier = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendRefreshSummaryCalls = nil
	m.SendPlayerAddedCalls = nil
}

func (m *Mock) SendRefreshSummary(summary RefreshSummary, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendRefreshSummaryCalls = append(m.SendRefreshSummaryCalls, summary)
	if m.SendRefreshSummaryFunc != nil {
		return m.SendRefreshSummaryFunc(summary, dryRun)
	}
	return nil
}

func (m *Mock) SendPlayerAdded(player *roster.PlayerRecord, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPlayerAddedCalls = append(m.SendPlayerAddedCalls, player)
	if m.SendPlayerAddedFunc != nil {
		return m.SendPlayerAddedFunc(player, dryRun)
	}
	return nil
}
