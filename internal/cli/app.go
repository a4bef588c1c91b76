package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"golang.org/x/oauth2"

	"github.com/andywolf/readmecards/internal/cloud/gcp"
	"github.com/andywolf/readmecards/internal/config"
	"github.com/andywolf/readmecards/internal/github"
	"github.com/andywolf/readmecards/internal/logging"
	"github.com/andywolf/readmecards/internal/security"
	"github.com/andywolf/readmecards/internal/version"
)

// app holds what every command needs after configuration is loaded.
type app struct {
	cfg       *config.Config
	logger    logging.Logger
	sanitizer *security.LogSanitizer
	runID     string
	closers   []io.Closer
}

// newApp loads and validates the configuration and builds the logger for
// the named command.
func newApp(ctx context.Context, command string) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.ValidateAuth(); err != nil {
		return nil, err
	}

	a := &app{
		cfg:       cfg,
		sanitizer: security.NewLogSanitizer(),
		runID:     uuid.New().String(),
	}
	a.sanitizer.AddSecret(cfg.Token())

	if err := a.initLogger(ctx, command); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *app) initLogger(ctx context.Context, command string) error {
	min, err := logging.ParseSeverity(a.cfg.Logging.Level)
	if err != nil {
		return err
	}
	if viper.GetBool("verbose") {
		min = logging.SeverityDebug
	}

	labels := map[string]string{
		"run_id":     a.runID,
		"command":    command,
		"repository": a.cfg.Repository,
	}

	project := a.cfg.Logging.CloudProject
	if project == "" && gcp.OnGCP() {
		if id, err := gcp.ProjectID(ctx); err == nil {
			project = id
		}
	}

	var next logging.Logger
	if project != "" {
		cl, err := gcp.NewCloudLogger(ctx, project, a.cfg.Logging.LogID, labels, min)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, cl)
		next = cl
	} else {
		next = logging.NewStructuredLogger(command,
			logging.WithWriter(os.Stderr),
			logging.WithLabels(labels),
			logging.WithMinSeverity(min),
		)
	}

	a.logger = logging.NewSanitizingLogger(next, a.sanitizer)
	return nil
}

// tokenSource returns the static token when one is set, otherwise a GitHub
// App installation token source whose private key comes from Secret Manager.
func (a *app) tokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	if token := a.cfg.Token(); token != "" {
		return github.StaticTokenSource(token), nil
	}

	sm, err := gcp.NewSecretManagerClient(ctx)
	if err != nil {
		return nil, err
	}
	defer sm.Close()

	key, err := sm.FetchSecret(ctx, a.cfg.GitHub.PrivateKeySecret)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch GitHub App private key: %w", err)
	}

	return github.NewInstallationTokenSource(github.AppCredentials{
		AppID:          a.cfg.GitHub.AppID,
		InstallationID: a.cfg.GitHub.InstallationID,
		PrivateKey:     []byte(key),
	})
}

func (a *app) githubClient(ctx context.Context) (*github.Client, error) {
	ts, err := a.tokenSource(ctx)
	if err != nil {
		return nil, err
	}

	owner, name, err := config.ParseRepository(a.cfg.Repository)
	if err != nil {
		return nil, err
	}

	opts := []github.ClientOption{
		github.WithLogger(a.logger),
		github.WithUserAgent(version.UserAgent()),
	}
	if a.cfg.GitHub.GraphQLURL != "" {
		opts = append(opts, github.WithGraphQLURL(a.cfg.GitHub.GraphQLURL))
	}
	if a.cfg.GitHub.APIURL != "" {
		opts = append(opts, github.WithRESTBaseURL(a.cfg.GitHub.APIURL))
	}
	if a.cfg.GitHub.DefaultBranch != "" {
		opts = append(opts, github.WithDefaultBranch(a.cfg.GitHub.DefaultBranch))
	}

	return github.NewClient(github.NewHTTPClient(ctx, ts), owner, name, opts...)
}

// Close flushes loggers and releases clients in reverse order.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			fmt.Fprintf(os.Stderr, "close: %v\n", err)
		}
	}
}
