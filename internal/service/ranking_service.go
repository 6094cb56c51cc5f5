package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"cv-ranking-web/internal/domain"
	apperrors "cv-ranking-web/pkg/errors"
)

// maxRankingBody caps how much of the ranking response is read.
const maxRankingBody = 8 << 20

// RankingService reads the ranking collection from the remote ranking endpoint.
type RankingService struct {
	endpoint string
	client   domain.Doer
	logger   domain.Logger
}

func NewRankingService(endpoint string, client domain.Doer, logger domain.Logger) *RankingService {
	return &RankingService{
		endpoint: endpoint,
		client:   client,
		logger:   logger,
	}
}

// FetchRanking returns the entries in response order. Entries are not
// validated, sorted or paginated.
func (s *RankingService) FetchRanking(ctx context.Context) ([]domain.RankingEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to create ranking request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperrors.NewNetworkError("ranking request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, apperrors.NewUpstreamError("ranking endpoint returned an error", resp.StatusCode, nil)
	}

	var entries []domain.RankingEntry
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxRankingBody)).Decode(&entries); err != nil {
		return nil, apperrors.NewUpstreamError("ranking response is not a JSON array of entries", 0, err)
	}
	if entries == nil {
		entries = []domain.RankingEntry{}
	}

	s.logger.Debug("Ranking fetched", "url", s.endpoint, "entries", len(entries))
	return entries, nil
}
