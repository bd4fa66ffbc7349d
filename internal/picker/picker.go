// Package picker implements catalog selection: fuzzy filtering over named
// entries, column-aligned rendering, and validation of preconfigured values
// against authoritative lists with interactive fallback.
package picker

import (
	"errors"
	"strings"

	"github.com/telkam/iosetup/configs"
	"github.com/telkam/iosetup/internal/align"
	"github.com/telkam/iosetup/internal/prompt"
)

// ErrNotFound reports that free-form input matched no existing key. Callers
// may treat the returned key as a request to create a new entity.
var ErrNotFound = errors.New("no entry matches the entered key")

// ellipsis marks a truncated description.
const ellipsis = "..."

// Option is one selectable entry.
type Option struct {
	// Key is the entry identifier (repository name, region, project ID).
	Key string
	// Description is the optional human-readable summary.
	Description string
}

// Notifier receives user-facing selection notices.
type Notifier interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// Picker drives interactive selection through a Prompter.
type Picker struct {
	Prompts prompt.Prompter
	Notify  Notifier
}

// New creates a Picker.
func New(prompts prompt.Prompter, notify Notifier) *Picker {
	return &Picker{Prompts: prompts, Notify: notify}
}

// Filter returns the options whose key or description contains query as a
// case-insensitive substring, preserving original order.
func Filter(options []Option, query string) []Option {
	q := strings.ToLower(query)
	var out []Option
	for _, o := range options {
		if strings.Contains(strings.ToLower(o.Key), q) ||
			strings.Contains(strings.ToLower(o.Description), q) {
			out = append(out, o)
		}
	}
	return out
}

// Render formats options as display lines: key, alignment padding, and the
// description truncated to the configured limit.
func Render(options []Option) []string {
	names := make([]string, len(options))
	for i, o := range options {
		names[i] = o.Key
	}
	stops := align.TabStops(names)

	limit := configs.Defaults.Display.DescriptionLimit
	lines := make([]string, len(options))
	for i, o := range options {
		if o.Description == "" {
			lines[i] = o.Key
			continue
		}
		lines[i] = align.Pad(o.Key, stops[i]) + truncate(o.Description, limit)
	}
	return lines
}

// KeyOf strips alignment padding and description from a rendered line,
// returning the bare key.
func KeyOf(line string) string {
	key, _, _ := strings.Cut(line, "\t")
	return strings.TrimSpace(key)
}

// Pick asks the user to choose one of options and returns the bare key.
func (p *Picker) Pick(msg string, options []Option, help string) (string, error) {
	choice, err := p.Prompts.Select(msg, Render(options), help)
	if err != nil {
		return "", err
	}
	return KeyOf(choice), nil
}

// PickOrNew asks for free-form input with completion over options. When the
// entered key matches no option exactly, the key is returned together with
// ErrNotFound so the caller can create the entity.
func (p *Picker) PickOrNew(msg string, options []Option, help string) (string, error) {
	input, err := p.Prompts.SuggestInput(msg, Render(options), help)
	if err != nil {
		return "", err
	}
	key := KeyOf(input)
	for _, o := range options {
		if o.Key == key {
			return key, nil
		}
	}
	return key, ErrNotFound
}

// truncate shortens s to limit characters, appending an ellipsis marker when
// anything was cut.
func truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	return s[:limit] + ellipsis
}
