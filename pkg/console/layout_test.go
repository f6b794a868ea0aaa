//go:build !integration

package console

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestLayoutTitleBox(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		width    int
		expected []string // Substrings that should be present in output
	}{
		{
			name:  "basic title",
			title: "Available Recipes",
			width: 40,
			expected: []string{
				"Available Recipes",
			},
		},
		{
			name:  "longer title",
			title: "Lexer Benchmark Results",
			width: 80,
			expected: []string{
				"Lexer Benchmark Results",
			},
		},
		{
			name:  "title with special characters",
			title: "⚠️ Important Notice",
			width: 60,
			expected: []string{
				"⚠️ Important Notice",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := LayoutTitleBox(tt.title, tt.width)

			if output == "" {
				t.Error("LayoutTitleBox() returned empty string")
			}

			for _, expected := range tt.expected {
				if !strings.Contains(output, expected) {
					t.Errorf("LayoutTitleBox() output missing expected string '%s'\nGot:\n%s", expected, output)
				}
			}
		})
	}
}

func TestLayoutInfoSection(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		value    string
		expected []string // Substrings that should be present in output
	}{
		{
			name:  "simple label and value",
			label: "Recipe",
			value: "bench",
			expected: []string{
				"Recipe",
				"bench",
			},
		},
		{
			name:  "file path value",
			label: "Manifest",
			value: "/path/to/cri-tasks.yml",
			expected: []string{
				"Manifest",
				"/path/to/cri-tasks.yml",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := LayoutInfoSection(tt.label, tt.value)

			if output == "" {
				t.Error("LayoutInfoSection() returned empty string")
			}

			for _, expected := range tt.expected {
				if !strings.Contains(output, expected) {
					t.Errorf("LayoutInfoSection() output missing expected string '%s'\nGot:\n%s", expected, output)
				}
			}
		})
	}
}

func TestLayoutEmphasisBox(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		color    lipgloss.AdaptiveColor
		expected []string // Substrings that should be present in output
	}{
		{
			name:    "warning message",
			content: "⚠️ WARNING",
			color:   ColorWarning,
			expected: []string{
				"⚠️ WARNING",
			},
		},
		{
			name:    "error message",
			content: "✗ ERROR: Failed",
			color:   ColorError,
			expected: []string{
				"✗ ERROR: Failed",
			},
		},
		{
			name:    "success message",
			content: "✓ Success",
			color:   ColorSuccess,
			expected: []string{
				"✓ Success",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := LayoutEmphasisBox(tt.content, tt.color)

			if output == "" {
				t.Error("LayoutEmphasisBox() returned empty string")
			}

			for _, expected := range tt.expected {
				if !strings.Contains(output, expected) {
					t.Errorf("LayoutEmphasisBox() output missing expected string '%s'\nGot:\n%s", expected, output)
				}
			}
		})
	}
}

func TestLayoutJoinVertical(t *testing.T) {
	tests := []struct {
		name     string
		sections []string
		expected []string // Substrings that should be present in output
	}{
		{
			name:     "single section",
			sections: []string{"Section 1"},
			expected: []string{"Section 1"},
		},
		{
			name:     "multiple sections",
			sections: []string{"Section 1", "Section 2", "Section 3"},
			expected: []string{
				"Section 1",
				"Section 2",
				"Section 3",
			},
		},
		{
			name:     "sections with empty strings",
			sections: []string{"Section 1", "", "Section 2"},
			expected: []string{
				"Section 1",
				"Section 2",
			},
		},
		{
			name:     "empty sections",
			sections: []string{},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := LayoutJoinVertical(tt.sections...)

			// For empty sections, output should be empty
			if len(tt.sections) == 0 {
				if output != "" {
					t.Errorf("LayoutJoinVertical() expected empty string, got: %s", output)
				}
				return
			}

			for _, expected := range tt.expected {
				if expected == "" {
					continue
				}
				if !strings.Contains(output, expected) {
					t.Errorf("LayoutJoinVertical() output missing expected string '%s'\nGot:\n%s", expected, output)
				}
			}
		})
	}
}

func TestLayoutCompositionAPI(t *testing.T) {
	t.Run("compose multiple layout elements", func(t *testing.T) {
		title := LayoutTitleBox("Available Recipes", 60)
		info := LayoutInfoSection("Manifest", "cri-tasks.yml")
		warning := LayoutEmphasisBox("⚠️ WARNING: rustup not found", ColorWarning)

		// Compose sections vertically with spacing
		output := LayoutJoinVertical(title, "", info, "", warning)

		expected := []string{
			"Available Recipes",
			"Manifest",
			"cri-tasks.yml",
			"⚠️ WARNING",
		}

		for _, exp := range expected {
			if !strings.Contains(output, exp) {
				t.Errorf("Composed output missing expected string '%s'\nGot:\n%s", exp, output)
			}
		}
	})
}

func TestLayoutWidthConstraints(t *testing.T) {
	tests := []struct {
		name  string
		width int
	}{
		{"narrow width", 40},
		{"medium width", 60},
		{"wide width", 80},
		{"very wide width", 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := LayoutTitleBox("Test", tt.width)

			if output == "" {
				t.Error("LayoutTitleBox() returned empty string")
			}

			lines := strings.Split(output, "\n")
			if len(lines) > 0 && len(lines[0]) == 0 {
				t.Error("LayoutTitleBox() first line is empty")
			}
		})
	}
}
