package asset

import (
	"path/filepath"
	"strings"
)

// DefaultRichExtensions are embedded ("![...]") rather than linked.
var DefaultRichExtensions = []string{"png", "jpg", "jpeg", "webp", "gif", "pdf", "mp3", "mp4"}

// LinkBuilder renders Markdown references to records.
type LinkBuilder struct {
	// Root is the asset root; used when Marker does not occur in a path.
	Root string
	// Marker locates the asset-relative part of a path, e.g. "/assets/".
	Marker string
	// Prefix is prepended to the relative part, e.g. "assets/".
	Prefix string
	rich   map[string]struct{}
}

// NewLinkBuilder returns a LinkBuilder. Empty rich means DefaultRichExtensions.
func NewLinkBuilder(root, marker, prefix string, rich []string) *LinkBuilder {
	if len(rich) == 0 {
		rich = DefaultRichExtensions
	}
	set := make(map[string]struct{}, len(rich))
	for _, ext := range rich {
		set[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}
	return &LinkBuilder{Root: root, Marker: marker, Prefix: prefix, rich: set}
}

// IsRich reports whether ext is rendered as an embed.
func (b *LinkBuilder) IsRich(ext string) bool {
	_, ok := b.rich[strings.ToLower(ext)]
	return ok
}

// Link returns the Markdown link for rec. It reports false when no
// asset-relative path can be derived.
func (b *LinkBuilder) Link(rec Record) (string, bool) {
	if rec.DisplayName == "" || rec.Path == "" {
		return "", false
	}
	rel, ok := b.relative(rec.Path)
	if !ok {
		return "", false
	}

	var sb strings.Builder
	if b.IsRich(rec.Extension) {
		sb.WriteByte('!')
	}
	sb.WriteByte('[')
	sb.WriteString(rec.DisplayName)
	sb.WriteString("](")
	sb.WriteString(b.Prefix)
	sb.WriteString(rel)
	sb.WriteByte(')')
	return sb.String(), true
}

func (b *LinkBuilder) relative(p string) (string, bool) {
	slashed := filepath.ToSlash(p)
	if b.Marker != "" {
		if _, after, found := strings.Cut(slashed, b.Marker); found && after != "" {
			return after, true
		}
	}
	if b.Root == "" {
		return "", false
	}
	rel, err := filepath.Rel(b.Root, p)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
