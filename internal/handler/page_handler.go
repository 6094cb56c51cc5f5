package handler

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"cv-ranking-web/internal/domain"
	"cv-ranking-web/internal/widget"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// pageView is the data rendered by templates/index.html.
type pageView struct {
	Upload  widget.UploadState
	Ranking widget.RankingState
	Headers [3]string
	Rows    []widget.RankingRow
}

func newPageView(upload widget.UploadState, ranking widget.RankingState) pageView {
	return pageView{
		Upload:  upload,
		Ranking: ranking,
		Headers: widget.RankingHeaders,
		Rows:    widget.RenderRankingRows(ranking.Entries),
	}
}

// PageHandler serves the server-rendered page and its form posts.
type PageHandler struct {
	maxFileSize int64
	logger      domain.Logger
}

// NewPageHandler creates a new page handler instance
func NewPageHandler(maxFileSize int64, logger domain.Logger) *PageHandler {
	return &PageHandler{
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Index renders both widgets.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	page, ok := GetPageFromContext(r)
	if !ok {
		http.Error(w, "Session not found", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	view := newPageView(page.Upload.Snapshot(), page.Ranking.Snapshot())
	if err := pageTemplate.Execute(&buf, view); err != nil {
		h.logger.Error("Failed to render page", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}

// Upload selects the posted file, if any, and uploads the selection.
func (h *PageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	page, ok := GetPageFromContext(r)
	if !ok {
		http.Error(w, "Session not found", http.StatusInternalServerError)
		return
	}

	file, err := readUploadedFile(w, r, h.maxFileSize)
	switch {
	case err == nil:
		page.Upload.SelectFile(file)
	case errors.Is(err, errNoFilePart):
		// Nothing chosen in the form; fall through to the widget's own check.
	default:
		page.Upload.RejectFile(err)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	// Failures are already reflected in the widget status and logs.
	_, _ = page.Upload.Upload(r.Context())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// FetchRanking refreshes the ranking table.
func (h *PageHandler) FetchRanking(w http.ResponseWriter, r *http.Request) {
	page, ok := GetPageFromContext(r)
	if !ok {
		http.Error(w, "Session not found", http.StatusInternalServerError)
		return
	}

	_, _ = page.Ranking.FetchRanking(r.Context())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
