package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/assetpick/internal/search"
	"github.com/kk-code-lab/assetpick/internal/textutil"
	"github.com/mattn/go-runewidth"
)

// runeWidth memoizes runewidth lookups. Rendering happens on the event loop
// goroutine only.
func (r *Renderer) runeWidth(ru rune) int {
	if w, ok := r.widths[ru]; ok {
		return w
	}
	w := max(runewidth.RuneWidth(ru), 0)
	if r.widths == nil {
		r.widths = make(map[rune]int, 128)
	}
	r.widths[ru] = w
	return w
}

func (r *Renderer) measureTextWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += r.runeWidth(ru)
	}
	return width
}

// drawTextLine draws text from startX using at most maxWidth columns and
// returns the column after the last cell drawn. Zero-width runes are attached
// to the preceding cell.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	limit := startX + maxWidth
	x := startX
	runes := []rune(text)
	for i := 0; i < len(runes); {
		mainc := runes[i]
		i++
		var combc []rune
		for i < len(runes) && r.runeWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		width := max(r.runeWidth(mainc), 1)
		if x+width > limit {
			break
		}
		r.screen.SetContent(x, y, mainc, combc, style)
		x += width
	}
	return x
}

// drawClipped draws text cell by cell up to maxX, padding wide runes so the
// following cell is not left stale.
func (r *Renderer) drawClipped(x, y, maxX int, text string, style tcell.Style) int {
	for _, ru := range text {
		width := max(r.runeWidth(ru), 1)
		if x+width > maxX {
			return x
		}
		r.screen.SetContent(x, y, ru, nil, style)
		for pad := 1; pad < width; pad++ {
			r.screen.SetContent(x+pad, y, ' ', nil, style)
		}
		x += width
	}
	return x
}

func (r *Renderer) fillRow(startX, y, endX int, style tcell.Style) {
	for x := startX; x < endX; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

// drawSegments draws highlight segments, ending with an ellipsis when the
// name does not fit before maxX.
func (r *Renderer) drawSegments(startX, y, maxX int, segments []search.Segment, baseStyle, matchStyle tcell.Style) int {
	texts := make([]string, len(segments))
	total := 0
	for i, seg := range segments {
		texts[i] = textutil.SanitizeTerminalText(seg.Text)
		total += r.measureTextWidth(texts[i])
	}

	limit := maxX
	truncated := startX+total > maxX
	if truncated {
		limit = maxX - 1
	}

	x := startX
	for i, seg := range segments {
		style := baseStyle
		if seg.Match {
			style = matchStyle
		}
		x = r.drawClipped(x, y, limit, texts[i], style)
		if x >= limit {
			break
		}
	}
	if truncated && limit >= startX {
		x = r.drawClipped(x, y, maxX, textutil.Ellipsis, baseStyle)
	}
	return x
}
