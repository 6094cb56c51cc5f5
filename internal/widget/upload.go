package widget

import (
	"context"
	"sync"

	"cv-ranking-web/internal/domain"
	apperrors "cv-ranking-web/pkg/errors"
)

// UploadState is a point-in-time copy of an UploadWidget.
type UploadState struct {
	Status       domain.StatusMessage `json:"status"`
	SelectedFile string               `json:"selected_file,omitempty"`
	SelectedSize int                  `json:"selected_size,omitempty"`
	InFlight     bool                 `json:"in_flight"`
}

// UploadWidget holds at most one selected file and the outcome of the last
// upload attempt.
type UploadWidget struct {
	uploader domain.Uploader
	logger   domain.Logger

	mu       sync.Mutex
	selected *domain.SelectedFile
	status   domain.StatusMessage
	inFlight bool
}

// NewUploadWidget creates an upload widget with nothing selected.
func NewUploadWidget(uploader domain.Uploader, logger domain.Logger) *UploadWidget {
	return &UploadWidget{
		uploader: uploader,
		logger:   logger,
		status:   domain.IdleStatus(),
	}
}

// SelectFile replaces the selected file and clears the status message.
// A nil file clears the selection.
func (w *UploadWidget) SelectFile(file *domain.SelectedFile) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.selected = file
	w.status = domain.IdleStatus()
}

// Upload sends the selected file. Without a selection it sets the
// "no file selected" message and makes no request. A successful upload
// clears the selection; a failed one keeps it so the user can retry.
//
// The returned status is the one stored in the widget. ErrOperationInFlight
// is returned, without touching the status, while another upload is running.
func (w *UploadWidget) Upload(ctx context.Context) (domain.StatusMessage, error) {
	w.mu.Lock()
	if w.inFlight {
		status := w.status
		w.mu.Unlock()
		return status, domain.ErrOperationInFlight
	}
	if w.selected == nil {
		w.status = domain.StatusMessage{Kind: domain.StatusInfo, Text: domain.MessageNoFileSelected}
		status := w.status
		w.mu.Unlock()

		appErr := apperrors.NewValidationError(domain.ErrNoFileSelected.Error())
		appErr.Cause = domain.ErrNoFileSelected
		return status, appErr
	}
	file := w.selected
	w.inFlight = true
	w.mu.Unlock()

	err := w.uploader.Upload(ctx, file)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.inFlight = false

	if err != nil {
		w.status = failureStatus(domain.MessageUploadFailed, err)
		w.logger.Warn("Upload failed",
			"filename", file.Filename,
			"kind", errorKind(err),
			"upstream_status", upstreamStatus(err),
			"detail", w.status.Detail,
		)
		return w.status, err
	}

	w.status = domain.StatusMessage{Kind: domain.StatusSuccess, Text: domain.MessageUploadSucceeded}
	if w.selected == file {
		w.selected = nil
	}
	w.logger.Info("File uploaded", "filename", file.Filename, "size", file.Size())
	return w.status, nil
}

// RejectFile records a selection that could not be accepted, such as an
// oversized form upload, as a failed attempt. No request is made and the
// current selection is left as is.
func (w *UploadWidget) RejectFile(err error) domain.StatusMessage {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.status = failureStatus(domain.MessageUploadFailed, err)
	w.logger.Warn("File rejected", "kind", errorKind(err), "detail", w.status.Detail)
	return w.status
}

// Status returns the current status message.
func (w *UploadWidget) Status() domain.StatusMessage {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

// Selected returns the selected file, or nil.
func (w *UploadWidget) Selected() *domain.SelectedFile {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.selected
}

// InFlight reports whether an upload is outstanding.
func (w *UploadWidget) InFlight() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.inFlight
}

// Snapshot returns a copy of the widget state for rendering.
func (w *UploadWidget) Snapshot() UploadState {
	w.mu.Lock()
	defer w.mu.Unlock()

	state := UploadState{Status: w.status, InFlight: w.inFlight}
	if w.selected != nil {
		state.SelectedFile = w.selected.Filename
		state.SelectedSize = w.selected.Size()
	}
	return state
}
