package metrics

import "sync"

// MockMetrics is a no-op Metrics implementation that records call counts.
type MockMetrics struct {
	mu sync.Mutex

	RefreshRunsCount        int
	PlayersEnrichedCount    int
	EnrichmentFailuresCount int
	EnrichmentDurations     []float64
	SlackNotifSentCount     int
	SlackNotifFailedCount   int
	StartupTime             float64
}

// NewMock creates a new mock instance.
func NewMock() *MockMetrics {
	return &MockMetrics{}
}

var _ Metrics = (*MockMetrics)(nil)

func (m *MockMetrics) IncRefreshRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RefreshRunsCount++
}

func (m *MockMetrics) IncPlayersEnriched() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PlayersEnrichedCount++
}

func (m *MockMetrics) IncEnrichmentFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EnrichmentFailuresCount++
}

func (m *MockMetrics) ObserveEnrichmentDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EnrichmentDurations = append(m.EnrichmentDurations, seconds)
}

func (m *MockMetrics) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlackNotifSentCount++
}

func (m *MockMetrics) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlackNotifFailedCount++
}

func (m *MockMetrics) SetStartupTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTime = seconds
}
