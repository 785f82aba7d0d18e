package main

import (
	"testing"

	"github.com/ylchen07/jira-loader/internal/issue"
)

func TestRootRegistersSubcommands(t *testing.T) {
	t.Parallel()

	expected := map[string]bool{
		"create": false,
		"import": false,
		"serve":  false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, ok := expected[cmd.Name()]; ok {
			expected[cmd.Name()] = true
		}
	}

	for name, seen := range expected {
		if !seen {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestCreateDefaultsToStory(t *testing.T) {
	t.Parallel()

	flag := createCmd.Flags().Lookup("type")
	if flag == nil {
		t.Fatal("type flag not registered")
	}
	if flag.DefValue != issue.TypeStory {
		t.Fatalf("unexpected default issue type %q", flag.DefValue)
	}
}
