package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/assetpick/internal/state"
	"github.com/kk-code-lab/assetpick/internal/textutil"
)

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

func buildHelpOverlayLines(state *statepkg.AppState) []string {
	verb := "insert link"
	if state != nil {
		verb = commitHint(state.CommitVerb)
	}

	sections := []helpOverlaySection{
		{
			title: "Search",
			entries: []helpOverlayEntry{
				{keys: "type", desc: "Fuzzy search by name"},
				{keys: "Backspace", desc: "Delete last character"},
				{keys: "Ctrl+W", desc: "Delete last word"},
				{keys: "Ctrl+U", desc: "Clear query"},
			},
		},
		{
			title: "Navigation",
			entries: []helpOverlayEntry{
				{keys: "↑/↓", desc: "Move selection"},
				{keys: "Ctrl+P/Ctrl+N", desc: "Move selection"},
				{keys: "Home/End", desc: "First or last asset"},
				{keys: "wheel", desc: "Scroll the list"},
				{keys: "↵", desc: "Pick asset (" + verb + ")"},
			},
		},
		{
			title: "Categories",
			entries: []helpOverlayEntry{
				{keys: "Tab", desc: "Next category"},
				{keys: "Shift+Tab", desc: "Previous category"},
				{keys: "click", desc: "Select category or pick row"},
			},
		},
		{
			title: "Actions",
			entries: []helpOverlayEntry{
				{keys: "Ctrl+R", desc: "Reload assets"},
				{keys: "Ctrl+Y", desc: "Copy link to clipboard"},
				{keys: "Ctrl+O", desc: "Reveal in folder"},
			},
		},
		{
			title: "Exit",
			entries: []helpOverlayEntry{
				{keys: "Esc", desc: "Clear query, then close"},
				{keys: "Ctrl+C", desc: "Quit immediately"},
				{keys: "Ctrl+Z", desc: "Suspend to shell"},
				{keys: "F1", desc: "Close this help"},
			},
		},
	}

	lines := make([]string, 0, 32)
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, formatHelpOverlayEntry(entry))
		}
	}

	return lines
}

func formatHelpOverlayEntry(entry helpOverlayEntry) string {
	key := textutil.SanitizeTerminalText(entry.keys)
	desc := textutil.SanitizeTerminalText(entry.desc)
	return fmt.Sprintf("  %-14s %s", key, desc)
}

func (r *Renderer) drawHelpOverlay(state *statepkg.AppState, w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	for y := 0; y < h; y++ {
		r.fillRow(0, y, w, baseStyle)
	}

	title := " Help "
	headerStyle := baseStyle.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg).Bold(true)
	titleStart := 0
	titleWidth := r.measureTextWidth(title)
	if w > titleWidth {
		titleStart = (w - titleWidth) / 2
	}
	r.drawTextLine(titleStart, 0, w-titleStart, title, headerStyle)

	lines := buildHelpOverlayLines(state)
	row := 2
	maxRow := h - 1
	for _, line := range lines {
		if row >= maxRow {
			break
		}
		text := textutil.Fit(strings.TrimRight(line, " "), w-4)
		r.drawTextLine(2, row, w-4, text, baseStyle)
		row++
	}

	footer := textutil.Fit("F1 toggle · Esc close", w)
	r.drawTextLine(0, h-1, w, footer, headerStyle)
}
