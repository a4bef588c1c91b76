package wizard

import (
	"reflect"
	"strings"
	"testing"

	"github.com/andywolf/readmecards/internal/buttons"
)

func TestParseProjects(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []buttons.Project
		errMsg   string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			input:    "  \n\t\n",
			expected: nil,
		},
		{
			name:  "single project",
			input: "engine | project:engine | buttons/engine.png",
			expected: []buttons.Project{
				{Name: "engine", Label: "project:engine", Image: "buttons/engine.png"},
			},
		},
		{
			name:  "multiple projects with blank lines",
			input: "engine|project:engine|buttons/engine.png\n\n  docs | project: docs |buttons/docs.png  \n",
			expected: []buttons.Project{
				{Name: "engine", Label: "project:engine", Image: "buttons/engine.png"},
				{Name: "docs", Label: "project: docs", Image: "buttons/docs.png"},
			},
		},
		{
			name:   "missing field",
			input:  "engine | project:engine",
			errMsg: "line 1: expected name | label | image",
		},
		{
			name:   "empty field",
			input:  "engine | project:engine | buttons/engine.png\nbad |  | x.png",
			errMsg: "line 2: name, label and image are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseProjects(tt.input)
			if tt.errMsg != "" {
				if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error %q, got %v", tt.errMsg, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("parseProjects() = %+v, want %+v", result, tt.expected)
			}
		})
	}
}

func TestFormatProjectsRoundTrip(t *testing.T) {
	projects := []buttons.Project{
		{Name: "engine", Label: "project:engine", Image: "buttons/engine.png"},
		{Name: "docs", Label: "project:docs", Image: "buttons/docs.png"},
	}

	formatted := formatProjects(projects)
	if got := strings.Count(formatted, "\n"); got != 1 {
		t.Errorf("expected one line per project, got %q", formatted)
	}

	parsed, err := parseProjects(formatted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(parsed, projects) {
		t.Errorf("round trip = %+v, want %+v", parsed, projects)
	}

	if formatProjects(nil) != "" {
		t.Error("formatProjects(nil) should be empty")
	}
}
