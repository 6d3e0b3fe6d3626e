package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple title",
			input:    "Hello World",
			expected: "hello-world",
		},
		{
			name:     "punctuation collapses",
			input:    "Hello, World!",
			expected: "hello-world",
		},
		{
			name:     "numbers kept",
			input:    "10 Things I Learned in 2024",
			expected: "10-things-i-learned-in-2024",
		},
		{
			name:     "accents folded",
			input:    "Café résumé",
			expected: "cafe-resume",
		},
		{
			name:     "multiple spaces",
			input:    "Hello   World",
			expected: "hello-world",
		},
		{
			name:     "leading and trailing junk trimmed",
			input:    "  --Hello World--  ",
			expected: "hello-world",
		},
		{
			name:     "all special characters",
			input:    "!@#$%^&*()",
			expected: "",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "mixed case",
			input:    "HeLLo WoRLd",
			expected: "hello-world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Slugify(tt.input)
			if result != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSlugBaseFallback(t *testing.T) {
	if got := SlugBase("!!!"); got != FallbackSlugBase {
		t.Errorf("SlugBase(%q) = %q, want %q", "!!!", got, FallbackSlugBase)
	}
	if got := SlugBase(""); got != FallbackSlugBase {
		t.Errorf("SlugBase(%q) = %q, want %q", "", got, FallbackSlugBase)
	}
	if got := SlugBase("Hello"); got != "hello" {
		t.Errorf("SlugBase(%q) = %q, want %q", "Hello", got, "hello")
	}
}
