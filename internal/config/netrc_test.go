package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeNetrc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "netrc")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write netrc: %v", err)
	}
	return path
}

func TestParseNetrcMissingFile(t *testing.T) {
	entries, err := parseNetrc(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if entries != nil {
		t.Fatalf("expected nil entries, got %v", entries)
	}
}

func TestParseNetrcEntries(t *testing.T) {
	path := writeNetrc(t, `# credentials
machine one.example.com login alice password p1
machine two.example.com
  login bob
  password p2
default login fallback password p3
`)

	entries, err := parseNetrc(path)
	if err != nil {
		t.Fatalf("parseNetrc error: %v", err)
	}

	cases := []struct {
		machine  string
		login    string
		password string
	}{
		{"one.example.com", "alice", "p1"},
		{"two.example.com", "bob", "p2"},
		{"default", "fallback", "p3"},
	}

	for _, tc := range cases {
		entry, ok := entries[tc.machine]
		if !ok {
			t.Fatalf("missing entry for %s", tc.machine)
		}
		if entry.Login != tc.login || entry.Password != tc.password {
			t.Fatalf("unexpected entry for %s: %+v", tc.machine, entry)
		}
	}
}

func TestLookupNetrcMatchesHost(t *testing.T) {
	path := writeNetrc(t, "machine example.atlassian.net login alice password p1\n")
	t.Setenv("NETRC", path)

	login, password, err := lookupNetrc("https://example.atlassian.net")
	if err != nil {
		t.Fatalf("lookupNetrc error: %v", err)
	}
	if login != "alice" || password != "p1" {
		t.Fatalf("unexpected credentials %s/%s", login, password)
	}
}

func TestLookupNetrcDefaultEntry(t *testing.T) {
	path := writeNetrc(t, "default login fallback password p3\n")
	t.Setenv("NETRC", path)

	login, password, err := lookupNetrc("https://unknown.example.com")
	if err != nil {
		t.Fatalf("lookupNetrc error: %v", err)
	}
	if login != "fallback" || password != "p3" {
		t.Fatalf("unexpected credentials %s/%s", login, password)
	}
}

func TestApplyNetrcDefaultsSkipsWhenSet(t *testing.T) {
	path := writeNetrc(t, "machine example.atlassian.net login alice password p1\n")
	t.Setenv("NETRC", path)

	cfg := &Config{Jira: JiraConfig{
		BaseURL:  "https://example.atlassian.net",
		Email:    "configured@example.com",
		APIToken: "token",
	}}
	if err := cfg.applyNetrcDefaults(); err != nil {
		t.Fatalf("applyNetrcDefaults error: %v", err)
	}

	if cfg.Jira.Email != "configured@example.com" || cfg.Jira.APIToken != "token" {
		t.Fatalf("explicit credentials should win, got %s/%s", cfg.Jira.Email, cfg.Jira.APIToken)
	}
}
