// Package pubdev retrieves package capability data from pub.dev.
//
// Each package's detail page carries tag badges declaring the platforms and
// SDKs the package supports. The client fetches the page markup and the
// extractor scans it for those badges. The page structure is a best-effort
// contract against third-party markup, not a versioned protocol: a page
// without recognizable badges is a valid zero-capability result.
package pubdev

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ygorazambuja/pubspec-platform/pkg/compat"
)

const (
	defaultBaseURL = "https://pub.dev/packages"
	httpTimeout    = 10 * time.Second
)

var (
	// ErrNotFound is returned when a package doesn't exist on pub.dev.
	ErrNotFound = errors.New("package not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors,
	// non-success responses).
	ErrNetwork = errors.New("network error")
)

// Client fetches package detail pages from pub.dev.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient creates a pub.dev client with a standard request timeout.
func NewClient() *Client {
	return &Client{
		http:    &http.Client{Timeout: httpTimeout},
		baseURL: defaultBaseURL,
	}
}

// PackageURL returns the canonical detail-page address for a package name.
func (c *Client) PackageURL(name string) string {
	return fmt.Sprintf("%s/%s", c.baseURL, name)
}

// FetchCapabilities retrieves the detail page for pkg and extracts its
// declared platform and SDK support.
//
// Returns:
//   - Capabilities on success, possibly empty if the page declares nothing
//   - [ErrNotFound] if the package doesn't exist
//   - [ErrNetwork] for transport failures and non-success responses
func (c *Client) FetchCapabilities(ctx context.Context, pkg string) (compat.Capabilities, error) {
	page, err := c.fetchPage(ctx, pkg)
	if err != nil {
		return compat.Capabilities{}, err
	}
	return compat.Capabilities{
		Platforms: ExtractPlatforms(page),
		SDKs:      ExtractSDKs(page),
	}, nil
}

func (c *Client) fetchPage(ctx context.Context, pkg string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.PackageURL(pkg), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "text/html")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return "", fmt.Errorf("%w: package %s", err, pkg)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return string(body), nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
