// Package uploader forwards uploaded files to the external media host and
// hands back the hosted URL.
package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"go.uber.org/zap"
)

var ErrNotConfigured = errors.New("upload endpoint not configured")

type Uploader interface {
	Upload(ctx context.Context, filename string, file io.Reader) (string, error)
}

type HTTPUploader struct {
	endpoint string
	apiKey   string
	folder   string
	client   *http.Client
	logger   *zap.Logger
}

func NewHTTPUploader(endpoint, apiKey, folder string, logger *zap.Logger) *HTTPUploader {
	return &HTTPUploader{
		endpoint: endpoint,
		apiKey:   apiKey,
		folder:   folder,
		client:   &http.Client{Timeout: 30 * time.Second},
		logger:   logger,
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends the file as multipart form data and returns the hosted URL.
func (u *HTTPUploader) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	if u.endpoint == "" {
		return "", ErrNotConfigured
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("read upload payload: %w", err)
	}

	if err := writer.WriteField("folder", u.folder); err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	if u.apiKey != "" {
		if err := writer.WriteField("api_key", u.apiKey); err != nil {
			return "", fmt.Errorf("build upload request: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("media host unreachable: %w", err)
	}
	defer resp.Body.Close()

	var result uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode media host response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || (result.SecureURL == "" && result.URL == "") {
		msg := result.Error.Message
		if msg == "" {
			msg = resp.Status
		}
		u.logger.Error("upload rejected by media host", zap.String("status", resp.Status))
		return "", fmt.Errorf("upload failed: %s", msg)
	}

	if result.SecureURL != "" {
		return result.SecureURL, nil
	}
	return result.URL, nil
}
