// Package prompt wraps survey/v2 behind a narrow interface so the wizard and
// selection layers can be driven by a scripted fake in tests. All prompt
// configuration travels in an explicit Options value; there is no
// package-level state.
package prompt

import (
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Prompter is the capability the interactive flows depend on. Each call
// suspends the caller until the user responds; no two prompts are ever
// concurrently active.
type Prompter interface {
	// Input asks for free-form text. An empty submission returns def.
	Input(msg, def, help string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(msg string, def bool) (bool, error)

	// Select asks the user to pick one of options, filtering with a
	// case-insensitive substring match as they type.
	Select(msg string, options []string, help string) (string, error)

	// SuggestInput asks for free-form text with completion over
	// suggestions. The returned value may be any string, not only a
	// suggestion.
	SuggestInput(msg string, suggestions []string, help string) (string, error)
}

// Options configures a survey-backed Prompter.
type Options struct {
	// PageSize is the number of select options shown per page (0 uses the
	// survey default).
	PageSize int
	// Stdin, Stdout and Stderr override the terminal streams. All three
	// must be set together; leaving them nil uses the process terminal.
	Stdin  terminal.FileReader
	Stdout terminal.FileWriter
	Stderr io.Writer
}

// Survey implements Prompter on top of survey/v2.
type Survey struct {
	opts Options
}

// NewSurvey creates a survey-backed Prompter with the given options.
func NewSurvey(opts Options) *Survey {
	return &Survey{opts: opts}
}

func (s *Survey) askOpts() []survey.AskOpt {
	var opts []survey.AskOpt
	if s.opts.Stdin != nil {
		opts = append(opts, survey.WithStdio(s.opts.Stdin, s.opts.Stdout, s.opts.Stderr))
	}
	return opts
}

// Input implements Prompter.
func (s *Survey) Input(msg, def, help string) (string, error) {
	var result string
	p := &survey.Input{
		Message: msg,
		Default: def,
		Help:    help,
	}
	if err := survey.AskOne(p, &result, s.askOpts()...); err != nil {
		return "", err
	}
	return result, nil
}

// Confirm implements Prompter.
func (s *Survey) Confirm(msg string, def bool) (bool, error) {
	var result bool
	p := &survey.Confirm{
		Message: msg,
		Default: def,
	}
	if err := survey.AskOne(p, &result, s.askOpts()...); err != nil {
		return false, err
	}
	return result, nil
}

// Select implements Prompter.
func (s *Survey) Select(msg string, options []string, help string) (string, error) {
	var result string
	p := &survey.Select{
		Message:  msg,
		Options:  options,
		Help:     help,
		PageSize: s.opts.PageSize,
		Filter:   substringFilter,
	}
	if err := survey.AskOne(p, &result, s.askOpts()...); err != nil {
		return "", err
	}
	return result, nil
}

// SuggestInput implements Prompter.
func (s *Survey) SuggestInput(msg string, suggestions []string, help string) (string, error) {
	var result string
	p := &survey.Input{
		Message: msg,
		Help:    help,
		Suggest: func(toComplete string) []string {
			return filterSuggestions(suggestions, toComplete)
		},
	}
	if err := survey.AskOne(p, &result, s.askOpts()...); err != nil {
		return "", err
	}
	return result, nil
}

// substringFilter is the select filter: case-insensitive substring match.
func substringFilter(filter string, value string, _ int) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(filter))
}

// filterSuggestions keeps suggestions containing toComplete, original order.
func filterSuggestions(suggestions []string, toComplete string) []string {
	var out []string
	for _, s := range suggestions {
		if substringFilter(toComplete, s, 0) {
			out = append(out, s)
		}
	}
	return out
}
