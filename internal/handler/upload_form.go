package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"cv-ranking-web/internal/domain"
	apperrors "cv-ranking-web/pkg/errors"
)

// formOverhead is allowed on top of the file size for multipart headers.
const formOverhead = 1 << 20

// errNoFilePart means the form was submitted without a chosen file.
var errNoFilePart = errors.New("no file in form")

// readUploadedFile reads the "file" part of a multipart request into memory.
func readUploadedFile(w http.ResponseWriter, r *http.Request, maxFileSize int64) (*domain.SelectedFile, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFileSize+formOverhead)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return nil, fileTooLarge(maxFileSize)
		case errors.Is(err, http.ErrNotMultipart):
			return nil, errNoFilePart
		default:
			return nil, apperrors.NewValidationError("malformed upload form", err.Error())
		}
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, errNoFilePart
		}
		return nil, apperrors.NewValidationError("malformed upload form", err.Error())
	}
	defer file.Close()

	if header.Size > maxFileSize {
		return nil, fileTooLarge(maxFileSize)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, apperrors.NewValidationError("failed to read uploaded file", err.Error())
	}

	// Strip any path components the browser may send.
	filename := strings.TrimSpace(filepath.Base(header.Filename))
	if filename == "" || filename == "." || filename == string(filepath.Separator) {
		filename = "document"
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return &domain.SelectedFile{
		Filename:    filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}

func fileTooLarge(maxFileSize int64) *apperrors.AppError {
	appErr := apperrors.NewValidationError("file too large", fmt.Sprintf("maximum size is %d bytes", maxFileSize))
	appErr.StatusCode = http.StatusRequestEntityTooLarge
	return appErr
}
