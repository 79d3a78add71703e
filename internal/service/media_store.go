package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"gameforge/internal/interfaces"

	"go.uber.org/zap"
)

// maxImageBytes bounds a single downloaded image.
const maxImageBytes = 20 << 20

// MediaStore saves downloaded images below a media root directory.
type MediaStore struct {
	root   string
	client *http.Client
	logger *zap.Logger
}

var _ interfaces.ImageStore = (*MediaStore)(nil)

func NewMediaStore(root string, timeout time.Duration, logger *zap.Logger) *MediaStore {
	return &MediaStore{
		root:   root,
		client: &http.Client{Timeout: timeout},
		logger: logger.Named("MediaStore"),
	}
}

// DownloadAndSave fetches url into <root>/<subfolder>/<filename> and returns
// "<subfolder>/<filename>". filename must already be sanitized.
func (m *MediaStore) DownloadAndSave(ctx context.Context, url, filename, subfolder string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build image request: %w", err)
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image download returned status %d", resp.StatusCode)
	}

	dir := filepath.Join(m.root, subfolder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}
	target := filepath.Join(dir, filename)
	tmp, err := os.CreateTemp(dir, ".download-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	written, err := io.Copy(tmp, io.LimitReader(resp.Body, maxImageBytes))
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	m.logger.Debug("Image saved", zap.String("path", target), zap.Int64("bytes", written))
	return path.Join(subfolder, filename), nil
}
