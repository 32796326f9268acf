// Package media downloads remote profile images.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/fr0stylo/pfsync/internal/app/domain"
	"github.com/fr0stylo/pfsync/internal/app/ports"
	"github.com/fr0stylo/pfsync/internal/observability"
)

// DefaultMaxBytes caps downloaded image size.
const DefaultMaxBytes = 5 << 20

var (
	// ErrTooLarge is returned for images over the size limit.
	ErrTooLarge = errors.New("image exceeds size limit")
	// ErrNotImage is returned when the payload is not an image.
	ErrNotImage = errors.New("payload is not an image")
)

// Fetcher implements ports.ImageFetcher over HTTP.
type Fetcher struct {
	client   *http.Client
	maxBytes int64
}

// NewFetcher builds a fetcher. maxBytes <= 0 uses DefaultMaxBytes.
func NewFetcher(maxBytes int64, timeout time.Duration) *Fetcher {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Fetcher{
		client: &http.Client{
			Timeout:   timeout,
			Transport: observability.InstrumentTransport(http.DefaultTransport),
		},
		maxBytes: maxBytes,
	}
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (domain.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Image{}, fmt.Errorf("build image request: %w", err)
	}
	req.Header.Set("Accept", "image/webp,image/jpeg,image/*")

	resp, err := f.client.Do(req)
	if err != nil {
		return domain.Image{}, fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return domain.Image{}, fmt.Errorf("download image: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return domain.Image{}, fmt.Errorf("read image: %w", err)
	}
	if int64(len(data)) > f.maxBytes {
		return domain.Image{}, ErrTooLarge
	}

	contentType := resp.Header.Get("Content-Type")
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mediaType
	}
	if !strings.HasPrefix(contentType, "image/") {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return domain.Image{}, ErrNotImage
	}
	return domain.Image{SourceURL: url, ContentType: contentType, Data: data}, nil
}

var _ ports.ImageFetcher = (*Fetcher)(nil)
