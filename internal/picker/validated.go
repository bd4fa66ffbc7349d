package picker

import (
	"strings"

	"github.com/telkam/iosetup/internal/config"
)

// Field describes a configurable value resolved against an authoritative
// list.
type Field struct {
	// ConfigKey is the configuration key that may supply the value.
	ConfigKey string
	// Prompt is the selection message shown on interactive fallback.
	Prompt string
	// Help is the optional prompt help text.
	Help string
	// PathLike marks identifiers that must not contain parent-directory
	// traversal sequences.
	PathLike bool
	// AllowNew permits free-form input that creates a new entity; the
	// resolver then returns ErrNotFound alongside the entered key.
	AllowNew bool
}

// Resolve reconciles a configured value against an authoritative list. A
// candidate that is present, non-empty, listed, and (for path-like fields)
// free of traversal sequences is accepted and reported. Anything else emits
// a validation warning and degrades to interactive selection; invalid
// configuration never fails the run.
func (p *Picker) Resolve(cfg *config.Config, field Field, authoritative []Option) (string, bool, error) {
	if cfg != nil {
		if candidate, ok := cfg.Get(field.ConfigKey); ok {
			switch {
			case candidate == "":
				p.Notify.Warnf("%s is configured but empty", field.ConfigKey)
			case field.PathLike && strings.Contains(candidate, ".."):
				p.Notify.Warnf("%s=%q contains a parent-directory traversal sequence", field.ConfigKey, candidate)
			case !containsKey(authoritative, candidate):
				p.Notify.Warnf("%s=%q is not a valid choice", field.ConfigKey, candidate)
			default:
				p.Notify.Infof("using %s from configuration (%s)", candidate, field.ConfigKey)
				return candidate, true, nil
			}
		}
	}

	if field.AllowNew {
		value, err := p.PickOrNew(field.Prompt, authoritative, field.Help)
		return value, false, err
	}
	value, err := p.Pick(field.Prompt, authoritative, field.Help)
	return value, false, err
}

func containsKey(options []Option, key string) bool {
	for _, o := range options {
		if o.Key == key {
			return true
		}
	}
	return false
}
