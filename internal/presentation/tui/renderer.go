// Package tui pretty-prints DSL output for interactive terminals.
package tui

import (
	"github.com/charmbracelet/glamour"
)

// Preview renders the DSL text as a fenced code block through glamour, so
// terminal users get a framed preview instead of raw text. On any renderer
// failure the raw DSL is returned unchanged.
func Preview(dsl string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return dsl
	}

	out, err := r.Render("```\n" + dsl + "```\n")
	if err != nil {
		return dsl
	}
	return out
}
