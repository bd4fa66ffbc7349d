// Package app orchestrates the setup workflow: authenticate, pick an example
// from the remote catalog, resolve cloud parameters against authoritative
// listings, run the configuration wizard, and clone the example repository.
// The flow is strictly sequential; each prompt and each external call
// suspends it until resolved.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/telkam/iosetup/configs"
	"github.com/telkam/iosetup/internal/catalog"
	"github.com/telkam/iosetup/internal/config"
	"github.com/telkam/iosetup/internal/debug"
	"github.com/telkam/iosetup/internal/gcloud"
	"github.com/telkam/iosetup/internal/picker"
	"github.com/telkam/iosetup/internal/prompt"
	"github.com/telkam/iosetup/internal/template"
	"github.com/telkam/iosetup/internal/wizard"
)

// Configuration keys reconciled against authoritative listings.
const (
	KeyExample = "EXAMPLE"
	KeyProject = "PROJECT_ID"
	KeyRegion  = "REGION"
)

// Catalog is the remote example catalog capability.
type Catalog interface {
	FetchCatalog(ctx context.Context) ([]catalog.Descriptor, error)
	FetchTemplate(ctx context.Context, repository string) (string, error)
}

// Cloud is the external provisioning capability.
type Cloud interface {
	Login(ctx context.Context) error
	ListRegions(ctx context.Context) ([]string, error)
	ListProjects(ctx context.Context) ([]string, error)
	CreateProject(ctx context.Context, id string) error
	SetProject(ctx context.Context, id string) error
	CloneRepo(ctx context.Context, url, dir string) error
}

// Notifier receives user-facing workflow notices.
type Notifier interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Successf(format string, args ...interface{})
	Progressf(format string, args ...interface{})
}

// Options configures a Setup run.
type Options struct {
	Catalog Catalog
	Cloud   Cloud
	Prompts prompt.Prompter
	Notify  Notifier
	Store   *config.FileStore

	// ConfigPath points at a previously saved configuration to reconcile
	// against. Empty or missing means every value is chosen interactively.
	ConfigPath string
	// CloneDir overrides the clone destination (defaults to the example
	// name).
	CloneDir string
	// SkipClone leaves the repository untouched after writing the
	// configuration.
	SkipClone bool
}

// Result is the outcome of a successful Setup run.
type Result struct {
	Example    string
	Project    string
	Region     string
	ConfigPath string
	CloneDir   string
}

// Setup runs the full interactive flow.
func Setup(ctx context.Context, opts Options) (*Result, error) {
	opts.Notify.Progressf("Authenticating with the cloud SDK")
	if err := opts.Cloud.Login(ctx); err != nil {
		return nil, NewAppError(AuthFailed, "authentication failed", err)
	}

	previous := loadPrevious(opts)
	pick := picker.New(opts.Prompts, opts.Notify)

	// Example selection against the remote catalog.
	opts.Notify.Progressf("Fetching the example catalog")
	descriptors, err := opts.Catalog.FetchCatalog(ctx)
	if err != nil {
		return nil, NewAppError(CatalogFailed, "failed to fetch example catalog", err)
	}
	example, _, err := pick.Resolve(previous, picker.Field{
		ConfigKey: KeyExample,
		Prompt:    "Choose an example",
	}, descriptorOptions(descriptors))
	if err != nil {
		return nil, NewAppError(CatalogFailed, "example selection failed", err)
	}
	debug.DebugValue("example", example)

	// Template of the chosen example.
	text, err := opts.Catalog.FetchTemplate(ctx, example)
	if err != nil {
		return nil, NewAppError(TemplateFailed, "failed to fetch environment template", err)
	}
	questions, err := template.Parse(text)
	if err != nil {
		return nil, NewAppError(TemplateFailed, "failed to parse environment template", err)
	}

	// Cloud project, with create-on-miss.
	project, err := resolveProject(ctx, opts, pick, previous)
	if err != nil {
		return nil, err
	}
	if err := opts.Cloud.SetProject(ctx, project); err != nil {
		return nil, NewAppError(ProjectSetupFailed, "failed to activate project", err)
	}

	// Deployment region.
	regions, err := opts.Cloud.ListRegions(ctx)
	if err != nil {
		return nil, NewAppError(RegionSetupFailed, "failed to list regions", err)
	}
	region, _, err := pick.Resolve(previous, picker.Field{
		ConfigKey: KeyRegion,
		Prompt:    "Choose a deployment region",
	}, keyOptions(regions))
	if err != nil {
		return nil, NewAppError(RegionSetupFailed, "region selection failed", err)
	}

	// Guided configuration.
	w := &wizard.Wizard{
		Prompts:     wizard.NewPromptAdapter(opts.Prompts),
		Store:       opts.Store,
		Notify:      opts.Notify,
		DefaultName: example + configs.Defaults.Config.FileExtension,
	}
	wres, err := w.Run(seedDefaults(questions, project, region))
	if err != nil {
		return nil, NewAppError(WizardFailed, "configuration wizard failed", err)
	}
	opts.Notify.Successf("Configuration written to %s", wres.Path)

	result := &Result{
		Example:    example,
		Project:    project,
		Region:     region,
		ConfigPath: wres.Path,
		CloneDir:   opts.CloneDir,
	}
	if result.CloneDir == "" {
		result.CloneDir = example
	}

	if !opts.SkipClone {
		url := cloneURL(example)
		opts.Notify.Progressf("Cloning %s", url)
		if err := opts.Cloud.CloneRepo(ctx, url, result.CloneDir); err != nil {
			return nil, NewAppError(CloneFailed, "failed to clone example repository", err)
		}
		opts.Notify.Successf("Example ready at %s", result.CloneDir)
	}
	return result, nil
}

// loadPrevious loads the previously saved configuration if one exists. A
// missing file simply means no preconfigured values; an unreadable or
// malformed one is reported and ignored, since validation problems always
// degrade to interactive choice.
func loadPrevious(opts Options) *config.Config {
	if opts.ConfigPath == "" || !opts.Store.Exists(opts.ConfigPath) {
		return nil
	}
	cfg, err := opts.Store.Load(opts.ConfigPath)
	if err != nil {
		opts.Notify.Warnf("ignoring unreadable configuration %s: %v", opts.ConfigPath, err)
		return nil
	}
	debug.Debug("[app] loaded %d preconfigured values from %s", cfg.Len(), opts.ConfigPath)
	return cfg
}

// resolveProject reconciles the configured project against the authoritative
// listing. Free-form input that names no existing project triggers creation
// of a new one under a derived globally-unique ID, with a retry prompt on
// failure.
func resolveProject(ctx context.Context, opts Options, pick *picker.Picker, previous *config.Config) (string, error) {
	projects, err := opts.Cloud.ListProjects(ctx)
	if err != nil {
		return "", NewAppError(ProjectSetupFailed, "failed to list projects", err)
	}

	name, _, err := pick.Resolve(previous, picker.Field{
		ConfigKey: KeyProject,
		Prompt:    "Choose a project, or enter a name to create one",
		PathLike:  true,
		AllowNew:  true,
	}, keyOptions(projects))
	if err == nil {
		return name, nil
	}
	if !errors.Is(err, picker.ErrNotFound) {
		return "", NewAppError(ProjectSetupFailed, "project selection failed", err)
	}

	return createProject(ctx, opts, name)
}

// createProject derives unique IDs from name until creation succeeds or the
// user gives up.
func createProject(ctx context.Context, opts Options, name string) (string, error) {
	for {
		id := gcloud.NewProjectID(name)
		opts.Notify.Progressf("Creating project %s", id)
		err := opts.Cloud.CreateProject(ctx, id)
		if err == nil {
			opts.Notify.Successf("Created project %s", id)
			return id, nil
		}

		opts.Notify.Warnf("project creation failed, project IDs must be globally unique: %v", err)
		retry, perr := opts.Prompts.Confirm("Try again with a fresh ID?", true)
		if perr != nil {
			return "", NewAppError(ProjectSetupFailed, "project creation aborted", perr)
		}
		if !retry {
			return "", NewAppError(ProjectSetupFailed, "project creation declined", err)
		}
	}
}

// seedDefaults overrides the defaults of questions answered by the resolved
// project and region, so the wizard proposes them.
func seedDefaults(questions []template.Question, project, region string) []template.Question {
	seeded := make([]template.Question, len(questions))
	copy(seeded, questions)
	for i, q := range seeded {
		switch q.Name {
		case KeyProject:
			seeded[i].Default = project
			seeded[i].HasDefault = true
		case KeyRegion:
			seeded[i].Default = region
			seeded[i].HasDefault = true
		}
	}
	return seeded
}

func descriptorOptions(descriptors []catalog.Descriptor) []picker.Option {
	options := make([]picker.Option, len(descriptors))
	for i, d := range descriptors {
		options[i] = picker.Option{Key: d.Repository, Description: d.Description}
	}
	return options
}

func keyOptions(keys []string) []picker.Option {
	options := make([]picker.Option, len(keys))
	for i, k := range keys {
		options[i] = picker.Option{Key: k}
	}
	return options
}

func cloneURL(example string) string {
	d := configs.Defaults.Catalog
	return fmt.Sprintf("%s/%s/%s.git", d.CloneBaseURL, d.Org, example)
}
