// Package media provides logo fetching and image processing
package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	logoMaxDimension = 512
	fetchTimeout     = 5 * time.Second
)

// LogoProcessor fetches remote brand logos and normalizes them into
// WebP bundles capped at logoMaxDimension on the longest edge.
type LogoProcessor struct {
	client    *http.Client
	byteLimit int64
}

// NewLogoProcessor creates a LogoProcessor. byteLimit caps how many
// bytes of a remote logo will be read.
func NewLogoProcessor(byteLimit int64) *LogoProcessor {
	return &LogoProcessor{
		client:    &http.Client{Timeout: fetchTimeout},
		byteLimit: byteLimit,
	}
}

// Fetch downloads the logo at logoURL and returns the raw bytes.
func (p *LogoProcessor) Fetch(ctx context.Context, logoURL string) ([]byte, error) {
	u, err := url.Parse(logoURL)
	if err != nil {
		return nil, fmt.Errorf("invalid logo URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported logo URL scheme: %s", u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build logo request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch logo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("logo fetch returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, p.byteLimit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read logo body: %w", err)
	}
	if int64(len(data)) > p.byteLimit {
		return nil, fmt.Errorf("logo exceeds %d byte limit", p.byteLimit)
	}

	return data, nil
}

// ProcessToWebP decodes raw image bytes, downscales anything larger
// than logoMaxDimension, and re-encodes as WebP.
func (p *LogoProcessor) ProcessToWebP(raw []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode logo image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > logoMaxDimension || bounds.Dy() > logoMaxDimension {
		if bounds.Dx() >= bounds.Dy() {
			img = imaging.Resize(img, logoMaxDimension, 0, imaging.Lanczos)
		} else {
			img = imaging.Resize(img, 0, logoMaxDimension, imaging.Lanczos)
		}
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("failed to encode logo as webp: %w", err)
	}

	return buf.Bytes(), nil
}

// FetchAndProcess runs Fetch then ProcessToWebP in one step.
func (p *LogoProcessor) FetchAndProcess(ctx context.Context, logoURL string) ([]byte, error) {
	raw, err := p.Fetch(ctx, logoURL)
	if err != nil {
		return nil, err
	}
	return p.ProcessToWebP(raw)
}
