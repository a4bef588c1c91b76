package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/andywolf/readmecards/internal/cli/wizard"
	"github.com/andywolf/readmecards/internal/config"
)

const configFileName = ".readmecards.yaml"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize project configuration",
	Long: `Initialize readmecards configuration for the current project.

This creates a .readmecards.yaml file with sensible defaults that you can customize.

Example:
  readmecards init
  readmecards init --repo owner/name --bucket my-buttons
  readmecards init --interactive`,
	RunE: initProject,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("output", "", "Card output directory")
	initCmd.Flags().String("bucket", "", "Cloud Storage bucket holding button images")
	initCmd.Flags().String("app-id", "", "GitHub App ID")
	initCmd.Flags().Int64("installation-id", 0, "GitHub App Installation ID")
	initCmd.Flags().BoolP("interactive", "i", false, "Prompt for the settings")
	initCmd.Flags().Bool("force", false, "Overwrite existing config")
}

func initProject(cmd *cobra.Command, args []string) error {
	configPath := filepath.Join(".", configFileName)
	interactive, _ := cmd.Flags().GetBool("interactive")
	force, _ := cmd.Flags().GetBool("force")

	if _, err := os.Stat(configPath); err == nil && !force {
		if !interactive {
			return fmt.Errorf("config file already exists at %s (use --force to overwrite)", configPath)
		}
		ok, err := wizard.ConfirmOverwrite(configPath)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Keeping existing configuration")
			return nil
		}
	}

	cfg := config.Default()
	cfg.Repository, _ = cmd.Flags().GetString("repo")
	if cfg.Repository == "" {
		cfg.Repository = os.Getenv("GITHUB_REPOSITORY")
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.Cards.OutputDir = out
	}
	cfg.Buttons.Bucket, _ = cmd.Flags().GetString("bucket")
	cfg.GitHub.AppID, _ = cmd.Flags().GetString("app-id")
	cfg.GitHub.InstallationID, _ = cmd.Flags().GetInt64("installation-id")
	if cfg.GitHub.AppID != "" {
		cfg.GitHub.PrivateKeySecret = "projects/YOUR_PROJECT/secrets/readmecards-github-key"
	}

	if interactive {
		answers := answersFromConfig(cfg)
		if err := wizard.PromptInit(&answers); err != nil {
			return err
		}
		applyAnswers(cfg, answers)
	}

	data, err := marshalConfig(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Created %s\n\n", configPath)
	fmt.Println("Next steps:")
	fmt.Println("  1. Check the repository and output directory")
	fmt.Printf("  2. Export %s or set your GitHub App credentials\n", cfg.GitHub.TokenEnv)
	fmt.Println("  3. Add projects and a bucket to enable progress buttons")
	fmt.Println("  4. Run 'readmecards generate' to render the cards")

	return nil
}

func answersFromConfig(cfg *config.Config) wizard.Answers {
	return wizard.Answers{
		Repository:   cfg.Repository,
		OutputDir:    cfg.Cards.OutputDir,
		StatusPrefix: cfg.Cards.StatusPrefix,
		Bucket:       cfg.Buttons.Bucket,
		Projects:     cfg.Buttons.Projects,
	}
}

func applyAnswers(cfg *config.Config, a wizard.Answers) {
	cfg.Repository = a.Repository
	if a.OutputDir != "" {
		cfg.Cards.OutputDir = a.OutputDir
	}
	if a.StatusPrefix != "" {
		cfg.Cards.StatusPrefix = a.StatusPrefix
	}
	cfg.Buttons.Bucket = a.Bucket
	cfg.Buttons.Projects = a.Projects
}

func marshalConfig(cfg *config.Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	header := `# readmecards configuration
# Every value can be overridden with a READMECARDS_ environment variable.

`
	return append([]byte(header), data...), nil
}
