package render

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/kk-code-lab/assetpick/internal/asset"
	statepkg "github.com/kk-code-lab/assetpick/internal/state"
)

// formatCollectionSummary renders e.g. "1,204 assets · 82 MB · loaded 3 minutes ago".
func formatCollectionSummary(state *statepkg.AppState) string {
	if !state.Loaded {
		return ""
	}
	parts := []string{
		fmt.Sprintf("%s assets", humanize.Comma(int64(len(state.Records())))),
		humanize.Bytes(uint64(max(state.TotalBytes, 0))),
	}
	if !state.LoadedAt.IsZero() {
		parts = append(parts, "loaded "+humanize.Time(state.LoadedAt))
	}
	if state.Stale {
		parts = append(parts, "changed · ^R reload")
	}
	return strings.Join(parts, " · ")
}

// formatRecordLocation shows the original name and the folder it lives in,
// relative to root when possible.
func formatRecordLocation(root string, rec asset.Record) string {
	dir := filepath.Dir(filepath.FromSlash(rec.Path))
	if root != "" {
		if rel, err := filepath.Rel(root, dir); err == nil && !strings.HasPrefix(rel, "..") {
			dir = rel
		}
	}
	if dir == "." {
		return rec.OriginalName
	}
	return rec.OriginalName + "  " + filepath.ToSlash(dir)
}

func commitNoticeActive(state *statepkg.AppState) bool {
	if state.LastCommitTime.IsZero() {
		return false
	}
	return time.Since(state.LastCommitTime) < commitNoticeDuration
}

func formatCommitNotice(state *statepkg.AppState) string {
	verb := "picked"
	kind := state.LastCommitVerb
	if kind == "" {
		kind = state.CommitVerb
	}
	switch kind {
	case "open":
		verb = "opened"
	case "reveal":
		verb = "revealed"
	case "copy":
		verb = "copied link to"
	case "insert":
		verb = "inserted link to"
	}
	return fmt.Sprintf("✓ %s %s", verb, filepath.Base(filepath.FromSlash(state.LastCommit)))
}
