package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"krokindex/internal/config"
	"krokindex/internal/services"
)

const operationList = "list contents"

// EntryTypeFile is the contents API type for regular files.
const EntryTypeFile = "file"

// HTTPDoer describes the HTTP client used by the contents client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ContentEntry is one item of a contents API directory listing.
type ContentEntry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// IsFile reports whether the entry is a regular file.
func (e ContentEntry) IsFile() bool {
	return e.Type == EntryTypeFile
}

// Client calls the contents API of a GitHub-compatible host.
type Client struct {
	baseURL   string
	token     string
	userAgent string
	client    HTTPDoer
}

// NewClient constructs a contents client. A nil doer falls back to
// http.DefaultClient.
func NewClient(baseURL, token, userAgent string, doer HTTPDoer) *Client {
	if doer == nil {
		doer = http.DefaultClient
	}
	return &Client{
		baseURL:   strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		token:     strings.TrimSpace(token),
		userAgent: strings.TrimSpace(userAgent),
		client:    doer,
	}
}

// NewConfiguredClient returns a client for the remote section of cfg whose
// requests are bounded by the configured timeout.
func NewConfiguredClient(cfg *config.Config) *Client {
	if cfg == nil {
		return NewClient("", "", "", nil)
	}
	httpClient := &http.Client{Timeout: cfg.RemoteTimeout()}
	if cfg.Remote.TimeoutSeconds <= 0 {
		httpClient.Timeout = 30 * time.Second
	}
	return NewClient(cfg.Remote.APIBaseURL, cfg.Remote.Token, cfg.Remote.UserAgent, httpClient)
}

// ListURL returns the contents endpoint for repository ("owner/name") and a
// slash-separated path inside it.
func (c *Client) ListURL(repository, dir string) string {
	var b strings.Builder
	b.WriteString(c.baseURL)
	b.WriteString("/repos")
	for _, part := range strings.Split(strings.Trim(repository, "/"), "/") {
		b.WriteString("/")
		b.WriteString(url.PathEscape(part))
	}
	b.WriteString("/contents")
	for _, part := range strings.Split(strings.Trim(dir, "/"), "/") {
		if part == "" {
			continue
		}
		b.WriteString("/")
		b.WriteString(url.PathEscape(part))
	}
	return b.String()
}

// ListDirectory fetches the entries directly under dir.
func (c *Client) ListDirectory(ctx context.Context, repository, dir string) ([]ContentEntry, error) {
	if c == nil || c.baseURL == "" {
		return nil, services.Wrap(services.ErrConfiguration, "github", operationList, "api base url not configured", nil)
	}
	if strings.TrimSpace(repository) == "" {
		return nil, services.Wrap(services.ErrConfiguration, "github", operationList, "repository not configured", nil)
	}

	endpoint := c.ListURL(repository, dir)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "github", operationList, "build request", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, services.Wrap(services.TransportMarker(err), "github", operationList, endpoint, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, services.Wrap(services.ErrNotFound, "github", operationList, fmt.Sprintf("%s returned %d", endpoint, resp.StatusCode), nil)
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, services.Wrap(services.ErrConfiguration, "github", operationList, fmt.Sprintf("%s returned %d", endpoint, resp.StatusCode), nil)
	case resp.StatusCode != http.StatusOK:
		return nil, services.Wrap(services.ErrExternalService, "github", operationList, fmt.Sprintf("%s returned %d", endpoint, resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, services.Wrap(services.TransportMarker(err), "github", operationList, "read response", err)
	}
	var entries []ContentEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, services.Wrap(services.ErrValidation, "github", operationList, "decode listing", err)
	}
	return entries, nil
}
