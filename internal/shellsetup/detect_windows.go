//go:build windows

package shellsetup

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// DetectParentShellName finds the parent process in a toolhelp snapshot and
// returns its executable name. Callers normalize the result.
func DetectParentShellName() string {
	ppid := uint32(os.Getppid())
	if ppid == 0 {
		return ""
	}

	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(snapshot)

	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))
	for err = windows.Process32First(snapshot, &entry); err == nil; err = windows.Process32Next(snapshot, &entry) {
		if entry.ProcessID == ppid {
			return windows.UTF16ToString(entry.ExeFile[:])
		}
	}
	return ""
}
