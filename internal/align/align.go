// Package align computes tab-stop padding so variable-length names line up
// in columns when rendered in a terminal.
package align

import "strings"

// TabStopWidth is the fixed tab stop width assumed by terminals.
const TabStopWidth = 8

// TabStops returns one tab count per name, in the same order. Padding a name
// with its tab count reaches at least the rendered column of the longest
// name, using the minimum number of tab stops. Must be recomputed whenever
// the name set changes.
func TabStops(names []string) []int {
	maxLen := 0
	for _, name := range names {
		if len(name) > maxLen {
			maxLen = len(name)
		}
	}

	stops := make([]int, len(names))
	for i, name := range names {
		stops[i] = (maxLen-len(name))/TabStopWidth + 1
	}
	return stops
}

// Pad appends stops tab characters to name.
func Pad(name string, stops int) string {
	return name + strings.Repeat("\t", stops)
}
