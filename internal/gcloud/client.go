// Package gcloud invokes the cloud SDK and git as external collaborators:
// listing authoritative regions and projects, creating and activating
// projects, authenticating, and cloning example repositories.
package gcloud

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/telkam/iosetup/configs"
)

// Client issues cloud SDK and git commands through a Runner.
type Client struct {
	runner Runner
	bin    string
	git    string
}

// NewClient creates a Client using the library default binary names.
func NewClient(runner Runner) *Client {
	return &Client{
		runner: runner,
		bin:    configs.Defaults.Cloud.Binary,
		git:    configs.Defaults.Cloud.GitBinary,
	}
}

// Login runs the interactive cloud authentication flow.
func (c *Client) Login(ctx context.Context) error {
	_, err := c.runner.Run(ctx, c.bin, "auth", "login")
	return err
}

// ListRegions returns the authoritative list of deployment regions.
func (c *Client) ListRegions(ctx context.Context) ([]string, error) {
	out, err := c.runner.Run(ctx, c.bin, "app", "regions", "list", "--format=value(region)")
	if err != nil {
		return nil, err
	}
	return splitValues(out), nil
}

// ListProjects returns the authoritative list of project identifiers.
func (c *Client) ListProjects(ctx context.Context) ([]string, error) {
	out, err := c.runner.Run(ctx, c.bin, "projects", "list", "--format=value(projectId)")
	if err != nil {
		return nil, err
	}
	return splitValues(out), nil
}

// CreateProject creates a new cloud project. Project IDs must be globally
// unique; creation failures surface as CommandError for the caller to
// explain and retry.
func (c *Client) CreateProject(ctx context.Context, id string) error {
	_, err := c.runner.Run(ctx, c.bin, "projects", "create", id)
	return err
}

// SetProject activates the given project for subsequent commands.
func (c *Client) SetProject(ctx context.Context, id string) error {
	_, err := c.runner.Run(ctx, c.bin, "config", "set", "project", id)
	return err
}

// CloneRepo clones a repository into dir.
func (c *Client) CloneRepo(ctx context.Context, url, dir string) error {
	_, err := c.runner.Run(ctx, c.git, "clone", url, dir)
	return err
}

// NewProjectID derives a globally-unique project ID from a human-entered
// name: lowercased, non-alphanumeric runs collapsed to hyphens, truncated,
// and suffixed with a short random tag.
func NewProjectID(name string) string {
	base := sanitize(name)
	if base == "" {
		base = "project"
	}
	if len(base) > 22 {
		base = strings.TrimRight(base[:22], "-")
	}
	suffix := uuid.NewString()[:6]
	return base + "-" + suffix
}

func sanitize(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphens
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// splitValues splits line-oriented command output into trimmed, non-empty
// values.
func splitValues(out string) []string {
	var values []string
	for _, line := range strings.Split(out, "\n") {
		if v := strings.TrimSpace(line); v != "" {
			values = append(values, v)
		}
	}
	return values
}
