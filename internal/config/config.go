package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/andywolf/readmecards/internal/buttons"
	"github.com/andywolf/readmecards/internal/logging"
)

// ErrMissingToken is returned when neither an API token nor GitHub App
// credentials are configured.
var ErrMissingToken = errors.New("no GitHub credentials: set the token environment variable or configure a GitHub App")

// Config represents the full readmecards configuration
type Config struct {
	Repository string        `mapstructure:"repository" yaml:"repository"`
	GitHub     GitHubConfig  `mapstructure:"github" yaml:"github"`
	Cards      CardsConfig   `mapstructure:"cards" yaml:"cards"`
	Buttons    ButtonsConfig `mapstructure:"buttons" yaml:"buttons"`
	Logging    LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// GitHubConfig contains API endpoints and authentication settings
type GitHubConfig struct {
	TokenEnv         string `mapstructure:"token_env" yaml:"token_env"`
	AppID            string `mapstructure:"app_id" yaml:"app_id,omitempty"`
	InstallationID   int64  `mapstructure:"installation_id" yaml:"installation_id,omitempty"`
	PrivateKeySecret string `mapstructure:"private_key_secret" yaml:"private_key_secret,omitempty"`
	GraphQLURL       string `mapstructure:"graphql_url" yaml:"graphql_url,omitempty"`
	APIURL           string `mapstructure:"api_url" yaml:"api_url,omitempty"`
	DefaultBranch    string `mapstructure:"default_branch" yaml:"default_branch,omitempty"`
}

// AppConfigured reports whether GitHub App credentials are set.
func (g GitHubConfig) AppConfigured() bool {
	return g.AppID != "" && g.InstallationID != 0 && g.PrivateKeySecret != ""
}

// CardsConfig contains SVG card settings
type CardsConfig struct {
	OutputDir    string `mapstructure:"output_dir" yaml:"output_dir"`
	IssueCount   int    `mapstructure:"issue_count" yaml:"issue_count"`
	StatusPrefix string `mapstructure:"status_prefix" yaml:"status_prefix"`
	Avatars      bool   `mapstructure:"avatars" yaml:"avatars"`
	LabelsAlign  string `mapstructure:"labels_align" yaml:"labels_align"`
}

// ButtonsConfig contains progress button settings
type ButtonsConfig struct {
	Bucket   string            `mapstructure:"bucket" yaml:"bucket"`
	TempDir  string            `mapstructure:"temp_dir" yaml:"temp_dir,omitempty"`
	Ring     RingConfig        `mapstructure:"ring" yaml:"ring"`
	Projects []buttons.Project `mapstructure:"projects" yaml:"projects"`
}

// RingConfig is the progress arc geometry in image pixels
type RingConfig struct {
	CenterX   float64 `mapstructure:"center_x" yaml:"center_x"`
	CenterY   float64 `mapstructure:"center_y" yaml:"center_y"`
	Radius    float64 `mapstructure:"radius" yaml:"radius"`
	Thickness float64 `mapstructure:"thickness" yaml:"thickness"`
	Color     string  `mapstructure:"color" yaml:"color"`
}

// Ring converts the config into the compositor's ring.
func (r RingConfig) Ring() buttons.Ring {
	return buttons.Ring{
		CenterX:   r.CenterX,
		CenterY:   r.CenterY,
		Radius:    r.Radius,
		Thickness: r.Thickness,
		Color:     r.Color,
	}
}

// LoggingConfig contains log output settings
type LoggingConfig struct {
	Level        string `mapstructure:"level" yaml:"level"`
	CloudProject string `mapstructure:"cloud_project" yaml:"cloud_project,omitempty"`
	LogID        string `mapstructure:"log_id" yaml:"log_id,omitempty"`
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	viper.SetDefault("cards.avatars", true)

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// GitHub Actions exposes the current repository as owner/name
	if cfg.Repository == "" {
		cfg.Repository = os.Getenv("GITHUB_REPOSITORY")
	}

	applyDefaults(cfg)

	return cfg, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{Cards: CardsConfig{Avatars: true}}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults sets default values for unset fields
func applyDefaults(cfg *Config) {
	if cfg.GitHub.TokenEnv == "" {
		cfg.GitHub.TokenEnv = "GITHUB_TOKEN"
	}

	if cfg.Cards.OutputDir == "" {
		cfg.Cards.OutputDir = "."
	}

	if cfg.Cards.IssueCount == 0 {
		cfg.Cards.IssueCount = 10
	}

	if cfg.Cards.StatusPrefix == "" {
		cfg.Cards.StatusPrefix = "status:"
	}

	if cfg.Cards.LabelsAlign == "" {
		cfg.Cards.LabelsAlign = "left"
	}

	ring := buttons.DefaultRing
	if cfg.Buttons.Ring.CenterX == 0 {
		cfg.Buttons.Ring.CenterX = ring.CenterX
	}
	if cfg.Buttons.Ring.CenterY == 0 {
		cfg.Buttons.Ring.CenterY = ring.CenterY
	}
	if cfg.Buttons.Ring.Radius == 0 {
		cfg.Buttons.Ring.Radius = ring.Radius
	}
	if cfg.Buttons.Ring.Thickness == 0 {
		cfg.Buttons.Ring.Thickness = ring.Thickness
	}
	if cfg.Buttons.Ring.Color == "" {
		cfg.Buttons.Ring.Color = ring.Color
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if cfg.Logging.LogID == "" {
		cfg.Logging.LogID = "readmecards"
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Repository == "" {
		return fmt.Errorf("repository is required")
	}
	if _, _, err := ParseRepository(c.Repository); err != nil {
		return err
	}

	if c.Cards.IssueCount < 0 {
		return fmt.Errorf("invalid issue_count: %d (must not be negative)", c.Cards.IssueCount)
	}

	if c.Cards.LabelsAlign != "left" && c.Cards.LabelsAlign != "right" {
		return fmt.Errorf("invalid labels_align: %s (must be left or right)", c.Cards.LabelsAlign)
	}

	if _, err := logging.ParseSeverity(c.Logging.Level); err != nil {
		return err
	}

	if c.GitHub.AppID != "" || c.GitHub.InstallationID != 0 || c.GitHub.PrivateKeySecret != "" {
		if !c.GitHub.AppConfigured() {
			return fmt.Errorf("GitHub App requires app_id, installation_id and private_key_secret")
		}
	}

	return nil
}

// ValidateForButtons performs additional validation required before
// compositing progress buttons
func (c *Config) ValidateForButtons() error {
	if err := c.Validate(); err != nil {
		return err
	}

	if c.Buttons.Bucket == "" {
		return fmt.Errorf("buttons.bucket is required")
	}

	if len(c.Buttons.Projects) == 0 {
		return fmt.Errorf("at least one project is required")
	}

	for i, p := range c.Buttons.Projects {
		if p.Name == "" || p.Label == "" || p.Image == "" {
			return fmt.Errorf("project %d: name, label and image are required", i)
		}
	}

	if err := c.Buttons.Ring.Ring().Validate(); err != nil {
		return err
	}

	return nil
}

// Token returns the API token from the configured environment variable.
func (c *Config) Token() string {
	return strings.TrimSpace(os.Getenv(c.GitHub.TokenEnv))
}

// ValidateAuth returns ErrMissingToken when no credentials are available.
func (c *Config) ValidateAuth() error {
	if c.Token() == "" && !c.GitHub.AppConfigured() {
		return ErrMissingToken
	}
	return nil
}

// ParseRepository splits "owner/name", "github.com/owner/name" or a GitHub
// URL into owner and name.
func ParseRepository(repo string) (owner, name string, err error) {
	r := strings.TrimSpace(repo)
	r = strings.TrimPrefix(r, "https://")
	r = strings.TrimPrefix(r, "http://")
	r = strings.TrimPrefix(r, "github.com/")
	r = strings.TrimSuffix(strings.TrimSuffix(r, "/"), ".git")

	parts := strings.Split(r, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository %q (expected owner/name)", repo)
	}
	return parts[0], parts[1], nil
}
