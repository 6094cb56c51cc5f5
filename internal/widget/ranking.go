package widget

import (
	"context"
	"sync"

	"cv-ranking-web/internal/domain"
)

// RankingState is a point-in-time copy of a RankingWidget.
type RankingState struct {
	Status   domain.StatusMessage  `json:"status"`
	Entries  []domain.RankingEntry `json:"entries"`
	InFlight bool                  `json:"in_flight"`
}

// RankingWidget holds the last successfully fetched ranking.
type RankingWidget struct {
	fetcher domain.RankingFetcher
	logger  domain.Logger

	mu       sync.Mutex
	entries  []domain.RankingEntry
	status   domain.StatusMessage
	inFlight bool
}

func NewRankingWidget(fetcher domain.RankingFetcher, logger domain.Logger) *RankingWidget {
	return &RankingWidget{
		fetcher: fetcher,
		logger:  logger,
		entries: []domain.RankingEntry{},
		status:  domain.IdleStatus(),
	}
}

// FetchRanking replaces the held collection with the remote one. On failure
// the previous collection is kept and only the status changes.
func (w *RankingWidget) FetchRanking(ctx context.Context) (domain.StatusMessage, error) {
	w.mu.Lock()
	if w.inFlight {
		status := w.status
		w.mu.Unlock()
		return status, domain.ErrOperationInFlight
	}
	w.inFlight = true
	w.mu.Unlock()

	entries, err := w.fetcher.FetchRanking(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.inFlight = false

	if err != nil {
		w.status = failureStatus(domain.MessageRankingFailed, err)
		w.logger.Warn("Ranking fetch failed",
			"kind", errorKind(err),
			"upstream_status", upstreamStatus(err),
			"detail", w.status.Detail,
		)
		return w.status, err
	}

	w.entries = append(make([]domain.RankingEntry, 0, len(entries)), entries...)
	w.status = domain.StatusMessage{Kind: domain.StatusSuccess, Text: domain.MessageRankingFetched}
	w.logger.Info("Ranking fetched", "entries", len(entries))
	return w.status, nil
}

// Entries returns a copy of the held collection in display order.
func (w *RankingWidget) Entries() []domain.RankingEntry {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]domain.RankingEntry(nil), w.entries...)
}

func (w *RankingWidget) Status() domain.StatusMessage {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

func (w *RankingWidget) InFlight() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.inFlight
}

// Snapshot returns a copy of the widget state for rendering.
func (w *RankingWidget) Snapshot() RankingState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return RankingState{
		Status:   w.status,
		Entries:  append(make([]domain.RankingEntry, 0, len(w.entries)), w.entries...),
		InFlight: w.inFlight,
	}
}
