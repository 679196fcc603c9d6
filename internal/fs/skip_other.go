//go:build !windows

package fs

// skipEntry reports whether an entry stays out of the asset collection.
// Dotfiles and dot-directories are skipped.
func skipEntry(_ string, name string) bool {
	return isDotName(name)
}
