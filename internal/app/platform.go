package app

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/junegunn/go-shellwords"
	"github.com/kk-code-lab/assetpick/internal/logging"
)

var (
	// ErrNoOpener is returned when no command can open files on this system.
	ErrNoOpener = errors.New("no opener available")
	// ErrNoClipboard is returned when no clipboard utility is installed.
	ErrNoClipboard = errors.New("no clipboard available")
)

var commandBuilder = exec.Command

// platformOpeners lists the stock openers per GOOS in preference order. The
// asset path is appended as the last argument.
var platformOpeners = map[string][][]string{
	"darwin":  {{"open"}},
	"windows": {{"cmd", "/c", "start", ""}},
}

var fallbackOpeners = [][]string{
	{"xdg-open"},
	{"wslview"},
	{"gio", "open"},
}

func detectOpener(configured string) ([]string, bool) {
	return detectOpenerInternal(runtime.GOOS, configured, exec.LookPath)
}

// detectOpenerInternal resolves the configured opener command line first and
// falls back to the stock opener for goos.
func detectOpenerInternal(goos string, configured string, lookPath func(string) (string, error)) ([]string, bool) {
	candidates := platformOpeners[strings.ToLower(goos)]
	if candidates == nil {
		candidates = fallbackOpeners
	}

	args, err := parseCommand(configured)
	if err != nil {
		logging.L().Warn("ignoring opener setting", logging.String("opener", configured), logging.Err(err))
	} else if len(args) > 0 {
		candidates = append([][]string{args}, candidates...)
	}

	for _, argv := range candidates {
		resolved, err := lookPath(argv[0])
		if err != nil {
			continue
		}
		return append([]string{resolved}, argv[1:]...), true
	}
	return nil, false
}

// parseCommand splits a shell-quoted command line and expands a leading ~ in
// the program path.
func parseCommand(cmd string) ([]string, error) {
	if strings.TrimSpace(cmd) == "" {
		return nil, nil
	}
	args, err := shellwords.Parse(cmd)
	if err != nil {
		return nil, fmt.Errorf("parse command %q: %w", cmd, err)
	}
	if len(args) == 0 {
		return nil, nil
	}
	args[0] = expandHome(args[0])
	return args, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
