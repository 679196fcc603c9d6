package asset

import (
	"strings"
	"testing"
	"time"
)

func newTestNormalizer() *Normalizer {
	return NewNormalizer(NoiseOptions{}, NewLocaleLabeler("en-US", time.UTC))
}

func TestNormalizeStripsTimestampNoise(t *testing.T) {
	n := newTestNormalizer()
	rec, ok := n.Normalize(RawRecord{
		Path:           "/g/assets/photo_1699999999999.png",
		Size:           2048000,
		ModifiedMillis: 1700000000000,
	})
	if !ok {
		t.Fatalf("expected record to normalize")
	}
	if rec.DisplayName != "photo.png" {
		t.Fatalf("DisplayName = %q, want photo.png", rec.DisplayName)
	}
	if rec.OriginalName != "photo_1699999999999.png" {
		t.Fatalf("OriginalName = %q", rec.OriginalName)
	}
	if rec.Extension != "png" {
		t.Fatalf("Extension = %q, want png", rec.Extension)
	}
	if rec.SizeLabel != "2.00MB" {
		t.Fatalf("SizeLabel = %q, want 2.00MB", rec.SizeLabel)
	}
	if rec.ModifiedLabel != "11/14/2023, 10:13:20 PM" {
		t.Fatalf("ModifiedLabel = %q", rec.ModifiedLabel)
	}
}

func TestNormalizeDropsEmptyPaths(t *testing.T) {
	n := newTestNormalizer()
	for _, p := range []string{"", "/", "//"} {
		if _, ok := n.Normalize(RawRecord{Path: p, Size: 10}); ok {
			t.Fatalf("Normalize(%q) should be absent", p)
		}
	}
}

func TestNormalizeDropsHiddenFiles(t *testing.T) {
	n := newTestNormalizer()
	for _, p := range []string{"/a/.DS_Store", ".hidden.png", `C:\assets\.git`} {
		if rec, ok := n.Normalize(RawRecord{Path: p}); ok {
			t.Fatalf("Normalize(%q) = %+v, want absent", p, rec)
		}
	}
}

func TestNormalizeKeepsNameThatIsOnlyNoise(t *testing.T) {
	n := newTestNormalizer()
	rec, ok := n.Normalize(RawRecord{Path: "/a/20240101_120000.jpg"})
	if !ok {
		t.Fatalf("expected record")
	}
	if rec.DisplayName != "20240101_120000.jpg" {
		t.Fatalf("DisplayName = %q", rec.DisplayName)
	}
	if strings.HasPrefix(rec.DisplayName, ".") {
		t.Fatalf("display name must never start with a dot")
	}
}

func TestNormalizeDisplayNameCases(t *testing.T) {
	tests := []struct {
		name string
		opts NoiseOptions
		in   string
		want string
		ext  string
	}{
		{"short run kept", NoiseOptions{}, "scan1234.pdf", "scan1234.pdf", "pdf"},
		{"five char run with underscore stripped", NoiseOptions{}, "scan_1234.pdf", "scan.pdf", "pdf"},
		{"run inside name kept", NoiseOptions{}, "v12345x.png", "v12345x.png", "png"},
		{"run at end stripped", NoiseOptions{}, "notes_2023_0101", "notes", ""},
		{"uppercase ext lowered", NoiseOptions{}, "Image_1700000000.PNG", "Image.PNG", "png"},
		{"multiple dots", NoiseOptions{}, "archive.tar_12345.gz", "archive.tar.gz", "gz"},
		{"custom min run", NoiseOptions{MinRun: 3}, "scan_123.pdf", "scan.pdf", "pdf"},
		{"length gate keeps short names", NoiseOptions{MinNameLength: 32}, "photo_1699999999999.png", "photo_1699999999999.png", "png"},
		{"length gate strips long names", NoiseOptions{MinNameLength: 10}, "photo_1699999999999.png", "photo.png", "png"},
		{"no extension", NoiseOptions{}, "README", "README", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNormalizer(tt.opts, nil)
			rec, ok := n.Normalize(RawRecord{Path: "/x/" + tt.in})
			if !ok {
				t.Fatalf("expected record for %q", tt.in)
			}
			if rec.DisplayName != tt.want {
				t.Fatalf("DisplayName = %q, want %q", rec.DisplayName, tt.want)
			}
			if rec.Extension != tt.ext {
				t.Fatalf("Extension = %q, want %q", rec.Extension, tt.ext)
			}
			if rec.HasExtension() != (tt.ext != "") {
				t.Fatalf("HasExtension mismatch for %q", tt.in)
			}
		})
	}
}

func TestNormalizeIsIdempotentOnOriginalName(t *testing.T) {
	n := newTestNormalizer()
	first, ok := n.Normalize(RawRecord{Path: "/g/assets/report_20231212_101010.pdf", Size: 1})
	if !ok {
		t.Fatalf("expected record")
	}
	again, ok := n.Normalize(RawRecord{Path: first.Path, Size: first.Size})
	if !ok || again.OriginalName != first.OriginalName {
		t.Fatalf("re-normalizing changed OriginalName: %q -> %q", first.OriginalName, again.OriginalName)
	}
	fromName, ok := n.Normalize(RawRecord{Path: first.OriginalName})
	if !ok || fromName.OriginalName != first.OriginalName {
		t.Fatalf("normalizing OriginalName changed it: %q -> %q", first.OriginalName, fromName.OriginalName)
	}
}

func TestNormalizeAllOrdersByModifiedDescending(t *testing.T) {
	n := newTestNormalizer()
	raws := []RawRecord{
		{Path: "/a/old.png", ModifiedMillis: 1000},
		{Path: "/a/unknown.png"},
		{Path: "/a/.hidden"},
		{Path: ""},
		{Path: "/a/new.png", ModifiedMillis: 3000},
		{Path: "/a/mid.png", ModifiedMillis: 2000},
		{Path: "/a/unknown2.png", ModifiedMillis: -5},
	}
	got := n.NormalizeAll(raws)
	want := []string{"new.png", "mid.png", "old.png", "unknown.png", "unknown2.png"}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i, rec := range got {
		if rec.DisplayName != want[i] {
			t.Fatalf("record %d = %q, want %q", i, rec.DisplayName, want[i])
		}
	}
	if raws[0].Path != "/a/old.png" {
		t.Fatalf("NormalizeAll must not reorder its input")
	}
}

func TestNormalizeStripNoiseOnlyNames(t *testing.T) {
	n := NewNormalizer(NoiseOptions{StripNoiseOnlyNames: true}, nil)
	rec, ok := n.Normalize(RawRecord{Path: "/a/20240101_120000.jpg"})
	if !ok {
		t.Fatalf("expected record")
	}
	if rec.DisplayName != ".jpg" || rec.Extension != "jpg" {
		t.Fatalf("DisplayName = %q ext %q, want .jpg / jpg", rec.DisplayName, rec.Extension)
	}
	if rec.OriginalName != "20240101_120000.jpg" {
		t.Fatalf("OriginalName = %q", rec.OriginalName)
	}
	if _, ok := n.Normalize(RawRecord{Path: "/a/.DS_Store"}); ok {
		t.Fatalf("hidden original names stay absent")
	}
}

func TestNormalizeKeepsOriginalNameBytes(t *testing.T) {
	n := newTestNormalizer()
	decomposed := "cafe\u0301_1700000000.png"
	rec, ok := n.Normalize(RawRecord{Path: "/a/" + decomposed})
	if !ok {
		t.Fatalf("expected record")
	}
	if rec.OriginalName != decomposed {
		t.Fatalf("OriginalName = %q, want unaltered %q", rec.OriginalName, decomposed)
	}
	if rec.DisplayName != "caf\u00e9.png" {
		t.Fatalf("DisplayName = %q, want NFC %q", rec.DisplayName, "caf\u00e9.png")
	}
}
