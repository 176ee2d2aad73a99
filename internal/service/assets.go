package service

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"
)

// AssetVerifier checks that remote images load before they are applied
type AssetVerifier struct {
	httpClient *http.Client
}

// NewAssetVerifier creates a verifier with a short timeout
func NewAssetVerifier() *AssetVerifier {
	return &AssetVerifier{
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Resolve returns url if a HEAD request shows a loadable image, otherwise fallback
func (v *AssetVerifier) Resolve(ctx context.Context, url, fallback string) string {
	if url == "" {
		return fallback
	}
	if err := v.check(ctx, url); err != nil {
		log.Printf("Asset %s unavailable, using fallback: %v", url, err)
		return fallback
	}
	return url
}

func (v *AssetVerifier) check(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return err
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &assetError{status: resp.StatusCode}
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return &assetError{status: resp.StatusCode, contentType: ct}
	}
	return nil
}

type assetError struct {
	status      int
	contentType string
}

func (e *assetError) Error() string {
	if e.contentType != "" {
		return "unexpected content type " + e.contentType
	}
	return "status " + http.StatusText(e.status)
}
