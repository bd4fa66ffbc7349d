// Package template turns line-oriented environment templates into ordered
// question sequences. A template is UTF-8 text where each line is a comment
// (`# free text`), an assignment (`NAME=value` with optional shell-style
// quoting), or blank.
package template

// Question is one prompt generated from a template assignment line.
// Ordering is significant and matches template order.
type Question struct {
	// Name is the variable identifier preceding '='.
	Name string
	// Prompt is the message shown when asking for a value.
	Prompt string
	// Help accumulates the comment lines immediately preceding the assignment.
	Help string
	// Default is the value extracted after '='. Only meaningful when
	// HasDefault is true; an absent default is distinct from an empty one.
	Default string
	// HasDefault reports whether the assignment carried a default value.
	HasDefault bool
}
