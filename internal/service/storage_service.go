package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"cv-ranking-web/internal/domain"
	apperrors "cv-ranking-web/pkg/errors"
)

// UploadFieldName is the multipart field the upload endpoint reads the file from.
const UploadFieldName = "file"

// UploadService posts selected files to the remote upload endpoint.
type UploadService struct {
	endpoint string
	client   domain.Doer
	logger   domain.Logger
}

func NewUploadService(
	endpoint string,
	client domain.Doer,
	logger domain.Logger,
) *UploadService {
	return &UploadService{
		endpoint: endpoint,
		client:   client,
		logger:   logger,
	}
}

// Upload sends file as multipart/form-data. Any 2xx answer is a success and
// the response body is ignored.
func (s *UploadService) Upload(ctx context.Context, file *domain.SelectedFile) error {
	if file == nil {
		return apperrors.NewValidationError(domain.ErrNoFileSelected.Error())
	}

	body, contentType, err := buildMultipartBody(file)
	if err != nil {
		return apperrors.NewInternalError("failed to build upload body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, body)
	if err != nil {
		return apperrors.NewInternalError("failed to create upload request", err)
	}
	req.Header.Set("Content-Type", contentType)

	s.logger.Debug("Uploading file", "url", s.endpoint, "filename", file.Filename, "size", file.Size())

	resp, err := s.client.Do(req)
	if err != nil {
		return apperrors.NewNetworkError("upload request failed", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.NewUpstreamError("upload endpoint rejected the file", resp.StatusCode, nil)
	}

	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func buildMultipartBody(file *domain.SelectedFile) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		UploadFieldName, quoteEscaper.Replace(file.Filename)))
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(file.Data); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return body, writer.FormDataContentType(), nil
}
