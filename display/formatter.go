// Package display renders per-attempt display names from a plan's name
// pattern.
package display

import (
	"strconv"
	"strings"
)

// Placeholder tokens recognized in name patterns. Anything else in the
// pattern passes through literally.
const (
	DisplayNameToken       = "{displayName}"
	CurrentRepetitionToken = "{currentRepetition}"
	TotalRepetitionsToken  = "{totalRepetitions}"
)

// Formatter produces attempt labels from a pattern and a base display name.
// It is stateless given its inputs and has no failure modes: a blank pattern
// falls back to the base name unchanged.
type Formatter struct {
	pattern string
	base    string
}

func NewFormatter(pattern, base string) *Formatter {
	return &Formatter{pattern: pattern, base: base}
}

// Format renders the display name for attempt index of total.
func (f *Formatter) Format(index, total int) string {
	if strings.TrimSpace(f.pattern) == "" {
		return f.base
	}
	r := strings.NewReplacer(
		DisplayNameToken, f.base,
		CurrentRepetitionToken, strconv.Itoa(index),
		TotalRepetitionsToken, strconv.Itoa(total),
	)
	return r.Replace(f.pattern)
}
