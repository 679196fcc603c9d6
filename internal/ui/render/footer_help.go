package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/assetpick/internal/state"
)

// buildFooterHelpText returns the contextual footer hint string with leading/trailing padding.
func buildFooterHelpText(state *statepkg.AppState) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments assembles context-aware help hints for the footer.
func buildFooterHelpSegments(state *statepkg.AppState) []string {
	if state == nil {
		return nil
	}

	segments := contextualHelpSegments(state)
	segments = append(segments, persistentHelpSegments(state)...)

	return segments
}

func contextualHelpSegments(state *statepkg.AppState) []string {
	escHint := "Esc: close"
	if state.Query != "" {
		escHint = "Esc: clear"
	}
	return []string{
		"↵: " + commitHint(state.CommitVerb),
		"↑↓: select",
		"Tab: category",
		escHint,
	}
}

func persistentHelpSegments(state *statepkg.AppState) []string {
	segments := []string{"^R: reload"}
	if state.CommitVerb != "copy" {
		segments = append(segments, "^Y: copy link")
	}
	segments = append(segments, "^O: reveal", "F1: help")
	return segments
}

func commitHint(verb string) string {
	switch verb {
	case "open":
		return "open"
	case "copy":
		return "copy link"
	default:
		return "insert link"
	}
}
