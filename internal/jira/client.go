package jira

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	jirav2 "github.com/ctreminiom/go-atlassian/v2/jira/v2"

	"github.com/ylchen07/jira-loader/internal/config"
)

// ClientOption allows callers to customise construction of the Jira SDK client.
type ClientOption func(*jirav2.Client)

// WithUserAgent sets a custom user agent on the Jira client.
func WithUserAgent(agent string) ClientOption {
	return func(client *jirav2.Client) {
		if strings.TrimSpace(agent) != "" {
			client.Auth.SetUserAgent(agent)
		}
	}
}

// WithHTTPClient overrides the HTTP client used by the Jira SDK.
// Note: The SDK stores the http.Client by reference, so customise transport/timeouts before passing it in.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(client *jirav2.Client) {
		if httpClient != nil {
			client.HTTP = httpClient
		}
	}
}

// NewClient creates a Jira REST API v2 client backed by the go-atlassian SDK.
// The base URL must be an absolute URL for the Jira site
// (e.g. https://<tenant>.atlassian.net). Authentication uses basic auth
// (email/API token).
func NewClient(cfg config.JiraConfig, opts ...ClientOption) (*jirav2.Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		return nil, fmt.Errorf("jira: base URL is required to construct client")
	}

	parsed, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("jira: parse base url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("jira: base URL must be absolute, got %q", base)
	}

	defaultHTTPClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	client, err := jirav2.New(defaultHTTPClient, base)
	if err != nil {
		return nil, fmt.Errorf("jira: initialise client: %w", err)
	}

	client.Auth.SetUserAgent("jira-loader")

	for _, opt := range opts {
		opt(client)
	}

	if strings.TrimSpace(cfg.Email) == "" || strings.TrimSpace(cfg.APIToken) == "" {
		return nil, fmt.Errorf("jira: insufficient credentials for client")
	}
	client.Auth.SetBasicAuth(cfg.Email, cfg.APIToken)

	return client, nil
}
