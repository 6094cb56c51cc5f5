// Package session keeps one pair of widgets per browser visitor.
package session

import (
	"context"
	"sync"
	"time"

	"cv-ranking-web/internal/domain"
	"cv-ranking-web/internal/widget"

	"github.com/google/uuid"
)

// Page is the state behind one visitor's page.
type Page struct {
	ID      string
	Upload  *widget.UploadWidget
	Ranking *widget.RankingWidget

	lastSeen time.Time
}

// Store is an in-memory page store keyed by session id. It holds at most
// maxPages pages; a new page evicts the least recently seen one.
type Store struct {
	uploader domain.Uploader
	fetcher  domain.RankingFetcher
	logger   domain.Logger
	ttl      time.Duration
	maxPages int
	now      func() time.Time

	mu    sync.Mutex
	pages map[string]*Page
}

// NewStore creates a store whose pages share the given remote clients.
func NewStore(
	uploader domain.Uploader,
	fetcher domain.RankingFetcher,
	ttl time.Duration,
	maxPages int,
	logger domain.Logger,
) *Store {
	return &Store{
		uploader: uploader,
		fetcher:  fetcher,
		logger:   logger,
		ttl:      ttl,
		maxPages: maxPages,
		now:      time.Now,
		pages:    make(map[string]*Page),
	}
}

// Get returns the page for id. Unknown, empty or malformed ids get a fresh
// stored page under a new id; callers compare Page.ID to decide whether to
// reissue the cookie.
func (s *Store) Get(id string) *Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if page, ok := s.pages[id]; ok {
		page.lastSeen = now
		return page
	}

	if s.maxPages > 0 && len(s.pages) >= s.maxPages {
		s.evictLocked()
	}

	page := s.newPage(uuid.NewString(), now)
	s.pages[page.ID] = page
	s.logger.Debug("Page session created", "session_id", page.ID)
	return page
}

// Lookup returns the stored page for id, or an idle page that is not stored
// and has an empty ID. Read-only requests use it so they never grow the store.
func (s *Store) Lookup(id string) *Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if page, ok := s.pages[id]; ok {
		page.lastSeen = now
		return page
	}
	return s.newPage("", now)
}

func (s *Store) newPage(id string, now time.Time) *Page {
	return &Page{
		ID:       id,
		Upload:   widget.NewUploadWidget(s.uploader, s.logger),
		Ranking:  widget.NewRankingWidget(s.fetcher, s.logger),
		lastSeen: now,
	}
}

// evictLocked drops the least recently seen page, preferring pages with no
// operation in flight. s.mu must be held.
func (s *Store) evictLocked() {
	var victim, victimIdle *Page
	for _, page := range s.pages {
		if victim == nil || page.lastSeen.Before(victim.lastSeen) {
			victim = page
		}
		if page.Upload.InFlight() || page.Ranking.InFlight() {
			continue
		}
		if victimIdle == nil || page.lastSeen.Before(victimIdle.lastSeen) {
			victimIdle = page
		}
	}
	if victimIdle != nil {
		victim = victimIdle
	}
	if victim == nil {
		return
	}

	delete(s.pages, victim.ID)
	s.logger.Debug("Page session evicted", "session_id", victim.ID, "pages", len(s.pages))
}

// Len returns the number of live pages.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pages)
}

// Sweep drops pages idle for longer than the TTL. Pages with an operation in
// flight are kept.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, page := range s.pages {
		if page.lastSeen.After(cutoff) || page.Upload.InFlight() || page.Ranking.InFlight() {
			continue
		}
		delete(s.pages, id)
		removed++
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.Sweep(); removed > 0 {
				s.logger.Debug("Expired page sessions removed", "count", removed)
			}
		}
	}
}
