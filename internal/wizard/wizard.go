// Package wizard drives the question/confirm/overwrite flow that turns
// template questions into a persisted configuration file. The retry on a
// declined confirmation is an explicit loop over the state machine, not a
// recursive call, so repeated rejections cannot grow the stack.
package wizard

import (
	"strings"

	"github.com/telkam/iosetup/internal/config"
	"github.com/telkam/iosetup/internal/debug"
	"github.com/telkam/iosetup/internal/template"
)

// Prompter is the narrow prompting capability the wizard depends on.
type Prompter interface {
	// Ask collects a value for one question. Implementations may return a
	// plain string or a list of strings; lists are flattened to their
	// first element at commit time.
	Ask(q template.Question) (interface{}, error)

	// Confirm asks a yes/no question.
	Confirm(msg string, def bool) (bool, error)
}

// Store is the persistence capability the wizard commits through.
type Store interface {
	Exists(path string) bool
	Save(path string, cfg *config.Config) error
}

// Notifier receives user-facing wizard notices.
type Notifier interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// Wizard asks every question in order, reviews the collected answers, guards
// overwrites of an existing destination, and saves exactly once per
// successful run.
type Wizard struct {
	Prompts Prompter
	Store   Store
	Notify  Notifier

	// DefaultName pre-fills the destination file name prompt.
	DefaultName string
}

// Result is the outcome of a successful wizard run.
type Result struct {
	// Config holds the committed answers in question order.
	Config *config.Config
	// Path is the destination the configuration was written to.
	Path string
}

// answer pairs a question name with the value the user entered. Every name
// corresponds to exactly one question from the same parse pass.
type answer struct {
	name  string
	value interface{}
}

// Run executes the state machine until the user confirms and the
// configuration is written. A declined review or declined overwrite restarts
// the question sequence from scratch.
func (w *Wizard) Run(questions []template.Question) (*Result, error) {
	for {
		// Prompting
		answers, err := w.collect(questions)
		if err != nil {
			return nil, err
		}
		dest, err := w.askDestination()
		if err != nil {
			return nil, err
		}

		// Reviewing
		w.review(answers, dest)
		confirmed, err := w.Prompts.Confirm("Save this configuration?", true)
		if err != nil {
			return nil, err
		}
		if !confirmed {
			// Retrying: full restart, not partial edit.
			w.Notify.Infof("discarded; starting over")
			continue
		}

		// Committing, with the overwrite guard for existing destinations.
		if w.Store.Exists(dest) {
			overwrite, err := w.Prompts.Confirm(dest+" already exists. Overwrite it?", false)
			if err != nil {
				return nil, err
			}
			if !overwrite {
				w.Notify.Warnf("keeping existing %s; starting over", dest)
				continue
			}
		}

		cfg := config.New()
		for _, a := range answers {
			cfg.Set(a.name, flatten(a.value))
		}
		if err := w.Store.Save(dest, cfg); err != nil {
			return nil, err
		}
		debug.Debug("[wizard] wrote %d entries to %s", cfg.Len(), dest)
		return &Result{Config: cfg, Path: dest}, nil
	}
}

// collect asks every question in template order.
func (w *Wizard) collect(questions []template.Question) ([]answer, error) {
	answers := make([]answer, 0, len(questions))
	for _, q := range questions {
		value, err := w.Prompts.Ask(q)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer{name: q.Name, value: value})
	}
	return answers, nil
}

// askDestination asks for the configuration file name.
func (w *Wizard) askDestination() (string, error) {
	q := template.Question{
		Name:   "filename",
		Prompt: "Configuration file name",
	}
	if w.DefaultName != "" {
		q.Default = w.DefaultName
		q.HasDefault = true
	}
	value, err := w.Prompts.Ask(q)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(flatten(value)), nil
}

// review presents the full collected answer set before confirmation.
func (w *Wizard) review(answers []answer, dest string) {
	w.Notify.Infof("About to write %s:", dest)
	for _, a := range answers {
		w.Notify.Infof("  %s=%s", a.name, flatten(a.value))
	}
}

// flatten converts an entered value to a string, taking the first element of
// any value that arrived as a list.
func flatten(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []string:
		if len(v) == 0 {
			return ""
		}
		return v[0]
	case []interface{}:
		if len(v) == 0 {
			return ""
		}
		return flatten(v[0])
	default:
		return ""
	}
}
