package template

import (
	"fmt"
	"strings"
)

// helpTag prefixes each accumulated comment line in a question's help text.
const helpTag = "INFO: "

// Parse scans template text line by line and returns the questions it
// declares, in template order. Comment lines accumulate into the help text of
// the next assignment; blank lines are skipped without resetting the
// accumulator; a line that is neither blank, comment, nor assignment fails
// with a ParseError identifying the line.
func Parse(text string) ([]Question, error) {
	var questions []Question
	var help []string

	for i, line := range strings.Split(text, "\n") {
		var err error
		help, questions, err = step(help, questions, line, i+1)
		if err != nil {
			return nil, err
		}
	}
	return questions, nil
}

// step consumes one line, threading the comment accumulator and the emitted
// questions explicitly.
func step(help []string, questions []Question, line string, lineNo int) ([]string, []Question, error) {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		// Blank lines do not reset accumulated help.
		return help, questions, nil
	case strings.HasPrefix(trimmed, "#"):
		body := strings.TrimSpace(strings.TrimPrefix(trimmed, "#"))
		return append(help, helpTag+body), questions, nil
	case strings.Contains(trimmed, "="):
		q, err := buildQuestion(trimmed, help, lineNo)
		if err != nil {
			return help, questions, err
		}
		// Emitting a question resets the accumulator.
		return nil, append(questions, q), nil
	default:
		return help, questions, newParseError(MalformedDeclaration,
			fmt.Sprintf("declaration %q has no '=' separator", trimmed), lineNo)
	}
}

// buildQuestion turns one assignment line into a Question.
func buildQuestion(line string, help []string, lineNo int) (Question, error) {
	name, rest, _ := strings.Cut(line, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return Question{}, newParseError(EmptyName,
			fmt.Sprintf("declaration %q has no variable name", line), lineNo)
	}

	q := Question{
		Name:   name,
		Prompt: name,
		Help:   strings.Join(help, "\n"),
	}
	if value, ok := ExtractValue(rest); ok {
		q.Default = value
		q.HasDefault = true
	}
	return q, nil
}
