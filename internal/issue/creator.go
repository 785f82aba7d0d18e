package issue

import (
	"context"
	"log/slog"
	"strings"
	"time"

	jirav2 "github.com/ctreminiom/go-atlassian/v2/jira/v2"
	"github.com/ctreminiom/go-atlassian/v2/pkg/infra/models"

	"github.com/ylchen07/jira-loader/internal/config"
	"github.com/ylchen07/jira-loader/internal/jira"
)

// issueAPI is the slice of the go-atlassian issue service used by the Creator.
type issueAPI interface {
	Create(ctx context.Context, payload *models.IssueSchemeV2, customFields *models.CustomFields) (*models.IssueResponseScheme, *models.ResponseScheme, error)
}

// myselfAPI covers the authenticated-identity lookup.
type myselfAPI interface {
	Details(ctx context.Context, expand []string) (*models.UserScheme, *models.ResponseScheme, error)
}

// projectAPI covers the project lookup.
type projectAPI interface {
	Get(ctx context.Context, projectKeyOrID string, expand []string) (*models.ProjectScheme, *models.ResponseScheme, error)
}

// Creator creates issues in the configured Jira project with bounded retries
// and typed failures. It holds no per-call state beyond the immutable
// configuration, so a single Creator serves any number of sequential calls.
type Creator struct {
	issues   issueAPI
	myself   myselfAPI
	projects projectAPI

	projectKey string
	maxRetries int
	backoff    Backoff
	logger     *slog.Logger

	// sleep is replaced in tests to observe waits without pausing.
	sleep func(time.Duration)
}

// NewCreator validates the configuration and builds a Creator on top of the
// provided SDK client. A missing/blank required field yields a
// *ConfigurationError before any network call is possible.
func NewCreator(cfg *config.Config, client *jirav2.Client, logger *slog.Logger) (*Creator, error) {
	if err := ValidateConfig(cfg.Jira); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	maxRetries := cfg.Retry.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	return &Creator{
		issues:     client.Issue,
		myself:     client.MySelf,
		projects:   client.Project,
		projectKey: cfg.Jira.ProjectKey,
		maxRetries: maxRetries,
		backoff:    Backoff{Base: cfg.Retry.Delay},
		logger:     logger,
		sleep:      time.Sleep,
	}, nil
}

// attempt runs call until it succeeds, fails non-retryably, or the retry
// budget is spent. It reports the number of attempts made and the last error.
func (c *Creator) attempt(ctx context.Context, op string, call func(context.Context) (*models.ResponseScheme, error)) (int, error) {
	var lastErr error

	for n := 1; n <= c.maxRetries; n++ {
		resp, err := call(ctx)
		if err == nil {
			return n, nil
		}
		lastErr = err

		if !retryable(resp, err) {
			c.logger.Error("operation failed",
				slog.String("op", op),
				slog.Int("attempt", n),
				slog.Any("error", err))
			return n, err
		}

		if n < c.maxRetries {
			delay := c.backoff.Delay(n)
			c.logger.Warn("attempt failed, retrying",
				slog.String("op", op),
				slog.Int("attempt", n),
				slog.Int("max_attempts", c.maxRetries),
				slog.Duration("delay", delay),
				slog.Any("error", err))
			c.sleep(delay)
		}
	}

	return c.maxRetries, lastErr
}

// CreateIssue validates the request and creates it in the configured project,
// returning the remote issue key. Transient failures are retried with
// backoff; the final failure is wrapped in *IssueCreationError carrying the
// attempt count. A retried create may duplicate the issue when the service
// partially succeeded before the error was observed.
func (c *Creator) CreateIssue(ctx context.Context, req Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	payload := &models.IssueSchemeV2{
		Fields: &models.IssueFieldsSchemeV2{
			Summary:     strings.TrimSpace(req.Summary),
			Description: strings.TrimSpace(req.Description),
			Project:     &models.ProjectScheme{Key: c.projectKey},
			IssueType:   &models.IssueTypeScheme{Name: strings.TrimSpace(req.Type)},
		},
	}

	var created *models.IssueResponseScheme
	attempts, err := c.attempt(ctx, "create issue", func(ctx context.Context) (*models.ResponseScheme, error) {
		res, resp, err := c.issues.Create(ctx, payload, nil)
		if err == nil {
			created = res
		}
		return resp, err
	})
	if err != nil {
		return "", &IssueCreationError{Attempts: attempts, Cause: err}
	}

	c.logger.Info("created issue",
		slog.String("key", created.Key),
		slog.Int("attempts", attempts))
	return created.Key, nil
}

// TestConnection performs a read-only identity lookup through the retry
// machinery. It never returns an error: failures are logged with their cause
// and reported as false so health-check callers can branch on the boolean.
func (c *Creator) TestConnection(ctx context.Context) bool {
	var me *models.UserScheme
	attempts, err := c.attempt(ctx, "test connection", func(ctx context.Context) (*models.ResponseScheme, error) {
		res, resp, err := c.myself.Details(ctx, nil)
		if err == nil {
			me = res
		}
		return resp, err
	})
	if err != nil {
		connErr := &ConnectionError{Op: "test connection", Attempts: attempts, Cause: err}
		c.logger.Error("connection test failed", slog.Any("error", connErr))
		return false
	}

	c.logger.Info("connection test succeeded", slog.String("user", me.DisplayName))
	return true
}

// ProjectInfo looks up the configured project. A project key that does not
// resolve reports found=false without an error, distinct from transport
// failures which surface as *ConnectionError.
func (c *Creator) ProjectInfo(ctx context.Context) (*jira.ProjectInfo, bool, error) {
	var (
		project *models.ProjectScheme
		absent  bool
	)

	attempts, err := c.attempt(ctx, "get project", func(ctx context.Context) (*models.ResponseScheme, error) {
		res, resp, err := c.projects.Get(ctx, c.projectKey, nil)
		if err == nil {
			project = res
			return resp, nil
		}
		if notFound(resp) {
			absent = true
			return resp, nil
		}
		return resp, err
	})
	if err != nil {
		return nil, false, &ConnectionError{Op: "get project", Attempts: attempts, Cause: err}
	}

	if absent {
		c.logger.Warn("project not found", slog.String("key", c.projectKey))
		return nil, false, nil
	}

	info := &jira.ProjectInfo{
		ID:          project.ID,
		Key:         project.Key,
		Name:        project.Name,
		Description: project.Description,
	}
	if project.Lead != nil {
		info.Lead = project.Lead.DisplayName
	}

	return info, true, nil
}
