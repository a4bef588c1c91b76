// Package wizard provides interactive prompts for CLI commands.
package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/andywolf/readmecards/internal/buttons"
	"github.com/andywolf/readmecards/internal/config"
)

// Answers collects the values asked by the init wizard.
type Answers struct {
	Repository   string
	OutputDir    string
	StatusPrefix string
	Bucket       string
	Projects     []buttons.Project
}

// PromptInit asks for the project settings, starting from the values already
// in a.
func PromptInit(a *Answers) error {
	projects := formatProjects(a.Projects)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Repository (owner/name)").
				Value(&a.Repository).
				Validate(func(s string) error {
					_, _, err := config.ParseRepository(s)
					return err
				}),

			huh.NewInput().
				Title("Card output directory").
				Value(&a.OutputDir),

			huh.NewInput().
				Title("Status label prefix").
				Value(&a.StatusPrefix),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Button bucket (optional)").
				Value(&a.Bucket),

			huh.NewText().
				Title("Projects, one per line: name | tracking label | image path").
				Value(&projects).
				Validate(func(s string) error {
					_, err := parseProjects(s)
					return err
				}),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("prompt cancelled: %w", err)
	}

	parsed, err := parseProjects(projects)
	if err != nil {
		return err
	}
	a.Projects = parsed
	return nil
}

// ConfirmOverwrite asks before replacing an existing config file.
func ConfirmOverwrite(path string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Existing configuration found").
				Description(path+" will be replaced."),

			huh.NewConfirm().
				Title("Overwrite?").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		return false, err
	}

	return confirmed, nil
}

func formatProjects(projects []buttons.Project) string {
	lines := make([]string, 0, len(projects))
	for _, p := range projects {
		lines = append(lines, fmt.Sprintf("%s | %s | %s", p.Name, p.Label, p.Image))
	}
	return strings.Join(lines, "\n")
}

func parseProjects(s string) ([]buttons.Project, error) {
	var result []buttons.Project
	for i, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "|")
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected name | label | image", i+1)
		}
		p := buttons.Project{
			Name:  strings.TrimSpace(fields[0]),
			Label: strings.TrimSpace(fields[1]),
			Image: strings.TrimSpace(fields[2]),
		}
		if p.Name == "" || p.Label == "" || p.Image == "" {
			return nil, fmt.Errorf("line %d: name, label and image are required", i+1)
		}
		result = append(result, p)
	}
	return result, nil
}
