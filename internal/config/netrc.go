package config

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// netrcEntry represents credentials for a single machine in .netrc.
type netrcEntry struct {
	Machine  string
	Login    string
	Password string
}

// parseNetrc reads and parses a .netrc file into a map of machine -> entry.
// A missing file is not an error.
func parseNetrc(path string) (map[string]netrcEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("netrc: open: %w", err)
	}
	defer file.Close()

	entries := make(map[string]netrcEntry)
	var current netrcEntry

	save := func() {
		if current.Machine != "" {
			entries[current.Machine] = current
		}
	}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		tokens := strings.Fields(line)
		for i := 0; i < len(tokens); i++ {
			switch tokens[i] {
			case "machine":
				save()
				current = netrcEntry{}
				if i+1 < len(tokens) {
					current.Machine = tokens[i+1]
					i++
				}
			case "default":
				save()
				current = netrcEntry{Machine: "default"}
			case "login":
				if i+1 < len(tokens) {
					current.Login = tokens[i+1]
					i++
				}
			case "password":
				if i+1 < len(tokens) {
					current.Password = tokens[i+1]
					i++
				}
			}
		}
	}
	save()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("netrc: scan: %w", err)
	}

	return entries, nil
}

// findNetrcPath locates the .netrc file: NETRC env var first, then ~/.netrc.
func findNetrcPath() string {
	if path := os.Getenv("NETRC"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".netrc")
}

// lookupNetrc returns login and password for the host of the given site URL,
// falling back to the default entry. Empty strings when nothing matches.
func lookupNetrc(site string) (login, password string, err error) {
	path := findNetrcPath()
	if path == "" {
		return "", "", nil
	}

	entries, err := parseNetrc(path)
	if err != nil {
		return "", "", err
	}
	if len(entries) == 0 {
		return "", "", nil
	}

	hostname := site
	if parsed, err := url.Parse(site); err == nil && parsed.Host != "" {
		hostname = parsed.Host
	}

	if entry, ok := entries[hostname]; ok {
		return entry.Login, entry.Password, nil
	}

	if host := strings.Split(hostname, ":")[0]; host != hostname {
		if entry, ok := entries[host]; ok {
			return entry.Login, entry.Password, nil
		}
	}

	if entry, ok := entries["default"]; ok {
		return entry.Login, entry.Password, nil
	}

	return "", "", nil
}

// applyNetrcDefaults fills in missing email/api_token from .netrc if available.
func (c *Config) applyNetrcDefaults() error {
	if c.Jira.BaseURL == "" || c.Jira.Email != "" || c.Jira.APIToken != "" {
		return nil
	}

	login, password, err := lookupNetrc(c.Jira.BaseURL)
	if err != nil {
		return fmt.Errorf("config: load netrc: %w", err)
	}
	if login != "" && password != "" {
		c.Jira.Email = login
		c.Jira.APIToken = password
	}

	return nil
}
