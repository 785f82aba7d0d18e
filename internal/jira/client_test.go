package jira

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/ylchen07/jira-loader/internal/config"
)

func TestNewClientRequiresBaseURL(t *testing.T) {
	t.Parallel()

	_, err := NewClient(config.JiraConfig{Email: "user", APIToken: "token"})
	if err == nil || !strings.Contains(err.Error(), "base URL") {
		t.Fatalf("expected base URL validation error, got %v", err)
	}
}

func TestNewClientRequiresAbsoluteURL(t *testing.T) {
	t.Parallel()

	_, err := NewClient(config.JiraConfig{
		BaseURL:  "example.atlassian.net",
		Email:    "user",
		APIToken: "token",
	})
	if err == nil || !strings.Contains(err.Error(), "absolute") {
		t.Fatalf("expected absolute URL error, got %v", err)
	}
}

func TestNewClientRequiresCredentials(t *testing.T) {
	t.Parallel()

	_, err := NewClient(config.JiraConfig{BaseURL: "https://example.atlassian.net"})
	if err == nil || !strings.Contains(err.Error(), "credentials") {
		t.Fatalf("expected credentials error, got %v", err)
	}
}

func TestNewClientBasicAuth(t *testing.T) {
	t.Parallel()

	client, err := NewClient(config.JiraConfig{
		BaseURL:  "https://example.atlassian.net",
		Email:    "user@example.com",
		APIToken: "secret",
	})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	if !client.Auth.HasBasicAuth() {
		t.Fatalf("expected basic auth to be configured")
	}

	mail, token := client.Auth.GetBasicAuth()
	if mail != "user@example.com" || token != "secret" {
		t.Fatalf("unexpected basic auth credentials: %s %s", mail, token)
	}

	if agent := client.Auth.GetUserAgent(); agent != "jira-loader" {
		t.Fatalf("expected default user agent, got %s", agent)
	}
}

func TestNewClientOptions(t *testing.T) {
	t.Parallel()

	customHTTP := &http.Client{Timeout: 5 * time.Second}

	client, err := NewClient(
		config.JiraConfig{
			BaseURL:  "https://example.atlassian.net",
			Email:    "user",
			APIToken: "token",
		},
		WithHTTPClient(customHTTP),
		WithUserAgent("custom-agent"),
	)
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	httpClient, ok := client.HTTP.(*http.Client)
	if !ok || httpClient != customHTTP {
		t.Fatalf("expected HTTP client override to be applied")
	}

	if agent := client.Auth.GetUserAgent(); agent != "custom-agent" {
		t.Fatalf("expected custom user agent, got %s", agent)
	}
}
