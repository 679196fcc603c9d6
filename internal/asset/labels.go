package asset

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	bytesPerKB = 1024
	kbPerMB    = 1000
	// sizePromoteKB is the KB value above which sizes are labelled in MB.
	sizePromoteKB = 999
)

// FormatSize renders size as "<n.nn>KB", or "<n.nn>MB" once the KB value
// exceeds 999.
func FormatSize(size int64) string {
	if size < 0 {
		size = 0
	}
	kb := float64(size) / bytesPerKB
	if kb > sizePromoteKB {
		return strconv.FormatFloat(kb/kbPerMB, 'f', 2, 64) + "MB"
	}
	return strconv.FormatFloat(kb, 'f', 2, 64) + "KB"
}

// TimeLabeler renders a modification time for display.
type TimeLabeler interface {
	Label(t time.Time) string
}

// LocaleLabeler formats timestamps the way the given locale's date/time
// pattern expects.
type LocaleLabeler struct {
	tag    language.Tag
	layout string
	loc    *time.Location
}

var localeLayouts = map[language.Base]string{}

var regionLayouts = map[language.Region]string{}

func init() {
	layouts := []struct {
		tag    string
		layout string
	}{
		{"en", "1/2/2006, 3:04:05 PM"},
		{"de", "2.1.2006, 15:04:05"},
		{"fr", "02/01/2006 15:04:05"},
		{"es", "2/1/2006, 15:04:05"},
		{"it", "2/1/2006, 15:04:05"},
		{"pt", "02/01/2006, 15:04:05"},
		{"nl", "2-1-2006, 15:04:05"},
		{"pl", "2.01.2006, 15:04:05"},
		{"ru", "02.01.2006, 15:04:05"},
		{"ja", "2006/1/2 15:04:05"},
		{"zh", "2006/1/2 15:04:05"},
		{"ko", "2006. 1. 2. 오후 3:04:05"},
	}
	for _, l := range layouts {
		base, _ := language.MustParse(l.tag).Base()
		localeLayouts[base] = l.layout
	}
	gb, _ := language.MustParse("en-GB").Region()
	regionLayouts[gb] = "02/01/2006, 15:04:05"
	tw, _ := language.MustParse("zh-TW").Region()
	regionLayouts[tw] = "2006/1/2 下午3:04:05"
}

// NewLocaleLabeler builds a labeler for a BCP 47 locale such as "de-DE" or a
// POSIX value such as "ja_JP.UTF-8". Unknown locales fall back to en-US. A nil
// location means time.Local.
func NewLocaleLabeler(locale string, loc *time.Location) *LocaleLabeler {
	tag := ParseLocale(locale)
	if loc == nil {
		loc = time.Local
	}
	return &LocaleLabeler{tag: tag, layout: layoutFor(tag), loc: loc}
}

// Label renders t, or "" for the zero time.
func (l *LocaleLabeler) Label(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	t = t.In(l.loc)
	label := t.Format(l.layout)
	return localizeMeridiem(l.tag, t, label)
}

// ParseLocale accepts BCP 47 tags and POSIX locale strings.
func ParseLocale(locale string) language.Tag {
	cleaned := locale
	for i, r := range cleaned {
		if r == '.' || r == '@' {
			cleaned = cleaned[:i]
			break
		}
	}
	if cleaned == "" || cleaned == "C" || cleaned == "POSIX" {
		return language.AmericanEnglish
	}
	tag, err := language.Parse(strings.ReplaceAll(cleaned, "_", "-"))
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

func layoutFor(tag language.Tag) string {
	if region, conf := tag.Region(); conf != language.No {
		if layout, ok := regionLayouts[region]; ok {
			return layout
		}
	}
	base, _ := tag.Base()
	if layout, ok := localeLayouts[base]; ok {
		return layout
	}
	return localeLayouts[language.MustParseBase("en")]
}

// localizeMeridiem swaps the fixed "오후"/"下午" markers for the morning
// variant before noon.
func localizeMeridiem(tag language.Tag, t time.Time, label string) string {
	if t.Hour() >= 12 {
		return label
	}
	base, _ := tag.Base()
	switch base.String() {
	case "ko":
		return strings.Replace(label, "오후", "오전", 1)
	case "zh":
		return strings.Replace(label, "下午", "上午", 1)
	}
	return label
}
