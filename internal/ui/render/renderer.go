package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/assetpick/internal/asset"
	"github.com/kk-code-lab/assetpick/internal/category"
	statepkg "github.com/kk-code-lab/assetpick/internal/state"
	"github.com/kk-code-lab/assetpick/internal/textutil"
)

const (
	promptText  = "› "
	badgeWidth  = 5
	minNameCols = 12

	// commitNoticeDuration is how long the status line reports the last commit.
	commitNoticeDuration = 1500 * time.Millisecond
	flashDuration        = 100 * time.Millisecond
)

// Renderer handles all UI rendering
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
	widths map[rune]int

	tabHits []tabHit
}

type tabHit struct {
	start, end int
	tab        category.Tab
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()
	r.screen.HideCursor()

	w, h := r.screen.Size()
	if state == nil || w <= 0 || h <= 0 {
		r.screen.Show()
		return
	}

	if state.HelpVisible {
		r.tabHits = r.tabHits[:0]
		r.drawHelpOverlay(state, w, h)
		r.screen.Show()
		return
	}

	r.drawQueryLine(state, w)
	r.drawTabs(state, w)
	r.drawList(state, w, h)
	r.drawStatusLine(state, w, h)
	r.drawFooter(state, w, h)

	r.screen.Show()
}

// TabAt maps a click on the tab row to a tab.
func (r *Renderer) TabAt(x, y int) (category.Tab, bool) {
	if y != 1 {
		return "", false
	}
	for _, hit := range r.tabHits {
		if x >= hit.start && x < hit.end {
			return hit.tab, true
		}
	}
	return "", false
}

// drawQueryLine renders the prompt, the query with a cursor and the match count.
func (r *Renderer) drawQueryLine(state *statepkg.AppState, w int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	promptStyle := baseStyle.Foreground(r.theme.PromptFg).Bold(true)
	metaStyle := baseStyle.Foreground(r.theme.MetaFg)

	counter := r.formatCounter(state)
	counterWidth := r.measureTextWidth(counter)

	x := r.drawTextLine(0, 0, w, promptText, promptStyle)
	queryRoom := w - x - counterWidth - 2
	query := textutil.FitLeft(textutil.SanitizeTerminalText(state.Query), queryRoom)
	x = r.drawTextLine(x, 0, max(queryRoom, 0), query, baseStyle)
	if x < w {
		r.screen.ShowCursor(x, 0)
	}

	if counter != "" && w-counterWidth-1 > x {
		r.drawTextLine(w-counterWidth-1, 0, counterWidth, counter, metaStyle)
	}
}

func (r *Renderer) formatCounter(state *statepkg.AppState) string {
	if state.Loading && len(state.Records()) == 0 {
		return "Loading…"
	}
	total := state.TabCount(state.Tab)
	counter := fmt.Sprintf("%d/%d", len(state.Visible), total)
	if state.Loading {
		counter += " · loading"
	}
	return counter
}

// drawTabs renders the tab strip and remembers each tab's columns for clicks.
func (r *Renderer) drawTabs(state *statepkg.AppState, w int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.TabFg)
	activeStyle := tcell.StyleDefault.Background(r.theme.TabActiveBg).Foreground(r.theme.TabActiveFg).Bold(true)

	r.tabHits = r.tabHits[:0]
	tabs := state.Tabs()
	x := 0
	for _, tab := range tabs.Tabs() {
		if x >= w {
			break
		}
		label := " " + tabs.Label(tab)
		if tab == category.All {
			label += " " + humanize.Comma(int64(len(state.Records())))
		}
		label += " "

		style := baseStyle
		if tab == state.Tab {
			style = activeStyle
		}
		start := x
		x = r.drawTextLine(x, 1, w-x, label, style)
		r.tabHits = append(r.tabHits, tabHit{start: start, end: x, tab: tab})
		x++
	}
}

// drawList renders the visible rows, or the empty/loading placeholder.
func (r *Renderer) drawList(state *statepkg.AppState, w, h int) {
	top := statepkg.HeaderRows
	bottom := h - statepkg.FooterRows
	if bottom <= top {
		return
	}

	if len(state.Visible) == 0 {
		placeholder := ""
		switch {
		case state.Loading:
			placeholder = "Loading…"
		case state.Loaded:
			placeholder = "No results"
		}
		if placeholder != "" {
			style := tcell.StyleDefault.Foreground(r.theme.MetaFg)
			x := max((w-r.measureTextWidth(placeholder))/2, 0)
			y := top + (bottom-top)/2
			r.drawTextLine(x, y, w-x, placeholder, style)
		}
		return
	}

	selected := state.Selection.Index()
	for row := 0; row < bottom-top; row++ {
		idx := state.ScrollOffset + row
		if idx < 0 || idx >= len(state.Visible) {
			break
		}
		r.drawRow(state.Visible[idx], top+row, w, idx == selected)
	}
}

func (r *Renderer) drawRow(res statepkg.Result, y, w int, selected bool) {
	rowStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	badgeStyle := rowStyle.Foreground(r.theme.BadgeFg)
	metaStyle := rowStyle.Foreground(r.theme.MetaFg)
	matchStyle := rowStyle.Foreground(r.theme.MatchFg).Bold(true)
	if selected {
		rowStyle = tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
		badgeStyle = rowStyle.Bold(true)
		metaStyle = rowStyle
		matchStyle = rowStyle.Bold(true).Underline(true)
	}
	r.fillRow(0, y, w, rowStyle)

	x := r.drawTextLine(1, y, badgeWidth, formatBadge(res.Record), badgeStyle)
	x = max(x, 1+badgeWidth)

	meta := formatRowMeta(res.Record)
	metaWidth := r.measureTextWidth(meta)
	nameEnd := w - 1
	if meta != "" && nameEnd-metaWidth-2 >= x+minNameCols {
		nameEnd = w - metaWidth - 3
		r.drawTextLine(w-metaWidth-1, y, metaWidth, meta, metaStyle)
	}

	r.drawSegments(x, y, nameEnd, res.Segments(), rowStyle, matchStyle)
}

func formatBadge(rec asset.Record) string {
	if !rec.HasExtension() {
		return "·"
	}
	badge := strings.ToUpper(rec.Extension)
	if len(badge) > badgeWidth-1 {
		badge = badge[:badgeWidth-1]
	}
	return badge
}

func formatRowMeta(rec asset.Record) string {
	meta := rec.SizeLabel
	if rec.ModifiedLabel != "" {
		meta += " • Modified " + rec.ModifiedLabel
	}
	return meta
}

// drawStatusLine shows errors, commit notices or the active row's location.
func (r *Renderer) drawStatusLine(state *statepkg.AppState, w, h int) {
	y := h - 2
	if y < statepkg.HeaderRows {
		return
	}

	normalStyle := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)
	metaStyle := normalStyle.Foreground(r.theme.MetaFg)
	r.fillRow(0, y, w, normalStyle)

	var text string
	style := normalStyle
	switch {
	case state.LastError != nil:
		text = "error: " + state.LastError.Error()
		style = normalStyle.Foreground(r.theme.ErrorFg)
	case commitNoticeActive(state):
		text = formatCommitNotice(state)
		if time.Since(state.LastCommitTime) < flashDuration {
			style = tcell.StyleDefault.Background(r.theme.FlashBg).Foreground(r.theme.FlashFg)
		}
	default:
		if res, ok := state.ActiveResult(); ok {
			text = formatRecordLocation(state.Root, res.Record)
		}
	}

	summary := formatCollectionSummary(state)
	summaryWidth := r.measureTextWidth(summary)
	textRoom := w
	if summary != "" && w-summaryWidth-2 >= minNameCols {
		textRoom = w - summaryWidth - 2
		r.drawTextLine(w-summaryWidth, y, summaryWidth, summary, metaStyle)
	}

	text = textutil.SanitizeTerminalText(text)
	if state.LastError == nil {
		text = textutil.FitLeft(text, textRoom)
	} else {
		text = textutil.Fit(text, textRoom)
	}
	r.drawTextLine(0, y, textRoom, text, style)
}

func (r *Renderer) drawFooter(state *statepkg.AppState, w, h int) {
	y := h - 1
	if y < statepkg.HeaderRows {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.MetaFg)
	text := textutil.Fit(buildFooterHelpText(state), w)
	r.drawTextLine(0, y, w, text, style)
}

// ShouldAnimate reports whether a time-based effect is still on screen.
func ShouldAnimate(state *statepkg.AppState) bool {
	return state != nil && commitNoticeActive(state)
}
