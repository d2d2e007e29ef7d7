// Package assets talks to the hosted storage bucket that serves the public
// site's images. The service holds the bucket token; clients never see it.
package assets

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"stravigo-admin/internal/config"

	"github.com/google/uuid"
)

// MaxUploadSize is the largest asset accepted, checked before any network
// call is made.
const MaxUploadSize = 5 << 20 // 5 MiB

// ErrTooLarge is returned for payloads over MaxUploadSize.
var ErrTooLarge = fmt.Errorf("file exceeds the 5MB upload limit")

// Uploader pushes objects into the storage bucket and derives their public
// URLs.
type Uploader struct {
	endpoint string
	token    string
	bucket   string
	client   *http.Client
}

// New creates an Uploader for the configured bucket.
func New(cfg config.AssetsConfig) *Uploader {
	return &Uploader{
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		token:    cfg.Token,
		bucket:   cfg.Bucket,
		client:   &http.Client{},
	}
}

// Upload stores the payload under a generated object key and returns the
// public URL. The key combines a random token, a millisecond timestamp and
// the original extension so concurrent uploads cannot collide; overwrite is
// disabled at the bucket as a second guard.
func (u *Uploader) Upload(ctx context.Context, payload []byte, contentType, filename string) (string, error) {
	if len(payload) > MaxUploadSize {
		return "", ErrTooLarge
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := objectKey(filename)
	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", u.endpoint, u.bucket, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+u.token)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Cache-Control", "max-age=3600")
	req.Header.Set("x-upsert", "false")

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach asset storage: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", rewriteStorageError(resp.StatusCode, string(body), contentType)
	}

	return u.PublicURL(key), nil
}

// PublicURL returns the address the marketing site serves the object from.
func (u *Uploader) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", u.endpoint, u.bucket, key)
}

func objectKey(filename string) string {
	ext := filepath.Ext(filename)
	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%s_%d%s", token, time.Now().UnixMilli(), ext)
}

// rewriteStorageError turns the collaborator's raw rejection into guidance
// an editor can act on, instead of surfacing its internal wording verbatim.
func rewriteStorageError(status int, body, contentType string) error {
	switch {
	case status == http.StatusUnsupportedMediaType || strings.Contains(strings.ToLower(body), "mime"):
		return fmt.Errorf("the storage bucket does not accept %s files; upload a standard image format such as PNG, JPEG or WebP", contentType)
	case status == http.StatusRequestEntityTooLarge:
		return fmt.Errorf("the storage bucket rejected the file as too large; keep assets under 5MB")
	case status == http.StatusNotFound:
		return fmt.Errorf("the storage bucket does not exist; create it in the storage dashboard and make it public")
	default:
		return fmt.Errorf("asset storage rejected the upload (status %d)", status)
	}
}
