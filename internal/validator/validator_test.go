package validator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func containsText(list []string, text string) bool {
	for _, s := range list {
		if strings.Contains(s, text) {
			return true
		}
	}
	return false
}

func TestValidateGoodConfig(t *testing.T) {
	path := writeConfig(t, `
deck_size = 16
rows = 2
initial_cards = ["a14", "b11"]
`)
	results, err := NewValidator(path).Validate()
	if err != nil {
		t.Fatal(err)
	}
	if len(results.Errors) != 0 || len(results.Warnings) != 0 {
		t.Errorf("unexpected results: %+v", results)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad size", "deck_size = 10\n", "deck_size"},
		{"over cap", "deck_size = 52\nmax_deck_size = 40\n", "larger than 40"},
		{"no rows", "rows = 0\n", "rows must be at least 1"},
		{"too many rows", "deck_size = 4\nrows = 5\n", "larger than deck_size"},
		{"count mismatch", "rows = 3\ninitial_cards = [\"a1\", \"b2\"]\n", "has 2 cards but rows is 3"},
		{"bad token", "initial_cards = [\"z4\"]\n", "initial_cards[0]"},
		{"out of range", "deck_size = 8\ninitial_cards = [\"a2\"]\n", "not in a 8 card deck"},
		{"duplicate", "rows = 2\ninitial_cards = [\"a2\", \"a2\"]\n", "dealt twice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := NewValidator(writeConfig(t, tt.body)).Validate()
			if err != nil {
				t.Fatal(err)
			}
			if !containsText(results.Errors, tt.want) {
				t.Errorf("errors %v do not mention %q", results.Errors, tt.want)
			}
		})
	}
}

func TestValidateWarnings(t *testing.T) {
	path := writeConfig(t, "deck_size = 0\nmax_deck_size = 0\nspeed = 3\n")
	results, err := NewValidator(path).Validate()
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"unknown key: speed", "uncapped", "cannot be played"} {
		if !containsText(results.Warnings, want) {
			t.Errorf("warnings %v do not mention %q", results.Warnings, want)
		}
	}
}

func TestValidateMissingFile(t *testing.T) {
	if _, err := NewValidator(filepath.Join(t.TempDir(), "nope.toml")).Validate(); err == nil {
		t.Error("Validate accepted a missing file")
	}
}
