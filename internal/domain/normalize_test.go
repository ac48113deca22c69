package domain

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple word", "fetch", "fetch"},
		{"uppercase", "Flexbox", "flexbox"},
		{"camel case stays joined", "useState", "usestate"},
		{"spaces to hyphen", "media query", "media-query"},
		{"run of separators", "CSS -- Grid", "css-grid"},
		{"leading separators stripped", "--hover", "hover"},
		{"trailing separators stripped", "hover!!", "hover"},
		{"dots and slashes", "Node.js / npm", "node-js-npm"},
		{"digits kept", "HTTP 2", "http-2"},
		{"accents collapsed", "función", "funci-n"},
		{"only separators", "***", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Slugs must contain only [a-z0-9-], never start or end with a hyphen, and
// never contain two consecutive hyphens. Re-slugging a slug is a no-op.
func TestSlugifyInvariants(t *testing.T) {
	inputs := []string{
		"fetch", "useState", "  box-sizing:  border-box ", "¿qué es DOM?",
		"API REST", "a--b---c", "-x-", "GRID_template_areas", "z-index: 999",
	}

	for _, in := range inputs {
		slug := Slugify(in)

		if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
			t.Errorf("Slugify(%q) = %q has a leading or trailing hyphen", in, slug)
		}
		if strings.Contains(slug, "--") {
			t.Errorf("Slugify(%q) = %q has consecutive hyphens", in, slug)
		}
		for _, r := range slug {
			if r != '-' && !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') {
				t.Errorf("Slugify(%q) = %q contains invalid rune %q", in, slug, r)
			}
		}
		if again := Slugify(slug); again != slug {
			t.Errorf("Slugify(%q) = %q, not idempotent on its own output (%q)", in, slug, again)
		}
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"useState", "usestate"},
		{"  Fetch  ", "fetch"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := NormalizeKey(tt.in); got != tt.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
