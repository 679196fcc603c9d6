package asset

import "time"

// RawRecord is a file-like record as reported by a Source.
type RawRecord struct {
	Path string
	Size int64
	// ModifiedMillis is the modification time in epoch milliseconds; zero means unknown.
	ModifiedMillis int64
}

// Modified returns the modification time, or the zero time when unknown.
func (r RawRecord) Modified() time.Time {
	if r.ModifiedMillis <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(r.ModifiedMillis)
}

// Record is the canonical, searchable form of a RawRecord. It is built once by
// a Normalizer and never modified afterwards.
type Record struct {
	// Path is the original full path and the only stable identity key.
	Path string
	// OriginalName is the final path segment, unaltered.
	OriginalName string
	// DisplayName is OriginalName with numeric/timestamp noise removed. It is
	// only used for search and display, never for file operations.
	DisplayName string
	// Extension is the lower-cased text after the last '.' of DisplayName.
	Extension string

	Size           int64
	ModifiedMillis int64
	SizeLabel      string
	ModifiedLabel  string
}

// HasExtension reports whether the display name carries an extension.
func (r Record) HasExtension() bool {
	return r.Extension != ""
}

// Modified returns the modification time, or the zero time when unknown.
func (r Record) Modified() time.Time {
	if r.ModifiedMillis <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(r.ModifiedMillis)
}
