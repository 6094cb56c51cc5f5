package widget

import (
	"context"
	"sync"

	"cv-ranking-web/internal/domain"
)

type MockLogger struct{}

func (l *MockLogger) Info(msg string, fields ...interface{})             {}
func (l *MockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *MockLogger) Debug(msg string, fields ...interface{})            {}
func (l *MockLogger) Warn(msg string, fields ...interface{})             {}

type mockUploader struct {
	mu      sync.Mutex
	calls   int
	last    *domain.SelectedFile
	err     error
	release chan struct{} // when set, Upload blocks until closed
	started chan struct{}
}

func (m *mockUploader) Upload(ctx context.Context, file *domain.SelectedFile) error {
	m.mu.Lock()
	m.calls++
	m.last = file
	release, started := m.release, m.started
	m.mu.Unlock()

	if started != nil {
		close(started)
	}
	if release != nil {
		<-release
	}
	return m.err
}

func (m *mockUploader) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockFetcher struct {
	mu      sync.Mutex
	calls   int
	entries []domain.RankingEntry
	err     error
	release chan struct{}
	started chan struct{}
}

func (m *mockFetcher) FetchRanking(ctx context.Context) ([]domain.RankingEntry, error) {
	m.mu.Lock()
	m.calls++
	entries, err := m.entries, m.err
	release, started := m.release, m.started
	m.mu.Unlock()

	if started != nil {
		close(started)
	}
	if release != nil {
		<-release
	}
	return entries, err
}

func (m *mockFetcher) respond(entries []domain.RankingEntry, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries, m.err = entries, err
}
