package handler

import (
	"errors"
	"net/http"

	"cv-ranking-web/internal/domain"
	"cv-ranking-web/internal/widget"
	apperrors "cv-ranking-web/pkg/errors"
)

// APIHandler exposes the widgets as JSON endpoints.
type APIHandler struct {
	maxFileSize int64
	logger      domain.Logger
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(maxFileSize int64, logger domain.Logger) *APIHandler {
	return &APIHandler{
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

type operationResponse struct {
	Status domain.StatusMessage `json:"status"`
	Error  string               `json:"error,omitempty"`
}

type rankingResponse struct {
	widget.RankingState
	Error string `json:"error,omitempty"`
}

type stateResponse struct {
	Upload  widget.UploadState  `json:"upload"`
	Ranking widget.RankingState `json:"ranking"`
}

// operationStatusCode maps a widget operation outcome to an HTTP status.
func operationStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, domain.ErrOperationInFlight):
		return http.StatusConflict
	case apperrors.IsType(err, apperrors.ErrorTypeValidation):
		return apperrors.GetStatusCode(err)
	case apperrors.IsType(err, apperrors.ErrorTypeNetwork), apperrors.IsType(err, apperrors.ErrorTypeUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// SelectFile stores the posted file as the current selection.
func (h *APIHandler) SelectFile(w http.ResponseWriter, r *http.Request) {
	page, ok := GetPageFromContext(r)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Session not found")
		return
	}

	file, err := readUploadedFile(w, r, h.maxFileSize)
	if err != nil {
		if errors.Is(err, errNoFilePart) {
			writeError(w, http.StatusBadRequest, "File is required")
			return
		}
		writeError(w, apperrors.GetStatusCode(err), err.Error())
		return
	}

	page.Upload.SelectFile(file)
	writeJSON(w, http.StatusOK, page.Upload.Snapshot())
}

// Upload uploads the current selection.
func (h *APIHandler) Upload(w http.ResponseWriter, r *http.Request) {
	page, ok := GetPageFromContext(r)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Session not found")
		return
	}

	status, err := page.Upload.Upload(r.Context())
	writeJSON(w, operationStatusCode(err), operationResponse{Status: status, Error: errorText(err)})
}

// FetchRanking refreshes the ranking and returns the resulting state.
func (h *APIHandler) FetchRanking(w http.ResponseWriter, r *http.Request) {
	page, ok := GetPageFromContext(r)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Session not found")
		return
	}

	_, err := page.Ranking.FetchRanking(r.Context())
	writeJSON(w, operationStatusCode(err), rankingResponse{
		RankingState: page.Ranking.Snapshot(),
		Error:        errorText(err),
	})
}

// GetRanking returns the held ranking without fetching.
func (h *APIHandler) GetRanking(w http.ResponseWriter, r *http.Request) {
	page, ok := GetPageFromContext(r)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Session not found")
		return
	}

	writeJSON(w, http.StatusOK, page.Ranking.Snapshot())
}

// GetState returns both widgets' state.
func (h *APIHandler) GetState(w http.ResponseWriter, r *http.Request) {
	page, ok := GetPageFromContext(r)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Session not found")
		return
	}

	writeJSON(w, http.StatusOK, stateResponse{
		Upload:  page.Upload.Snapshot(),
		Ranking: page.Ranking.Snapshot(),
	})
}
