//go:build windows

package fs

import "golang.org/x/sys/windows"

// skipEntry reports whether an entry stays out of the asset collection:
// dot names, entries carrying the hidden attribute and system junctions.
func skipEntry(fullPath string, name string) bool {
	if isDotName(name) {
		return true
	}
	if fullPath == "" {
		return false
	}
	ptr, err := windows.UTF16PtrFromString(fullPath)
	if err != nil {
		return false
	}
	attrs, err := windows.GetFileAttributes(ptr)
	if err != nil {
		return false
	}
	if attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0 {
		return true
	}
	const junction = windows.FILE_ATTRIBUTE_SYSTEM | windows.FILE_ATTRIBUTE_REPARSE_POINT
	return attrs&junction == junction
}
