package wizard

import (
	"github.com/telkam/iosetup/internal/prompt"
	"github.com/telkam/iosetup/internal/template"
)

// promptAsker adapts the survey-backed prompt layer to the wizard's Prompter.
type promptAsker struct {
	prompts prompt.Prompter
}

// NewPromptAdapter wraps a prompt.Prompter for use by the wizard. Empty
// submissions fall back to the question's default when one exists.
func NewPromptAdapter(p prompt.Prompter) Prompter {
	return &promptAsker{prompts: p}
}

// Ask implements Prompter.
func (a *promptAsker) Ask(q template.Question) (interface{}, error) {
	def := ""
	if q.HasDefault {
		def = q.Default
	}
	return a.prompts.Input(q.Prompt, def, q.Help)
}

// Confirm implements Prompter.
func (a *promptAsker) Confirm(msg string, def bool) (bool, error) {
	return a.prompts.Confirm(msg, def)
}
