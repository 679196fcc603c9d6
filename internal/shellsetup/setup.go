// Package shellsetup prints shell widgets that run the picker and insert the
// chosen link at the command-line cursor.
package shellsetup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strconv"
	"strings"
)

// KeyBinding is the chord every widget binds to.
const KeyBinding = "Ctrl+X Ctrl+A"

// ErrUnsupportedShell is returned for shells without a line-editor widget API.
var ErrUnsupportedShell = errors.New("unsupported shell")

type ParentShellFunc func() string

type Config struct {
	DetectParent ParentShellFunc
	// Executable is the picker path embedded in the widget. Default: os.Executable.
	Executable string
	Out        io.Writer
}

// PrintSetup writes the widget for shellOverride, or for the detected shell
// when shellOverride is empty.
func PrintSetup(shellOverride string, cfg Config) error {
	parent := cfg.DetectParent
	if parent == nil {
		parent = DetectParentShellName
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	shell := normalizeShellName(shellOverride)
	if shell == "" {
		shell = detectShell(parent)
	}
	shell = canonicalShellName(shell)

	exe := cfg.Executable
	if exe == "" {
		var err error
		exe, err = os.Executable()
		if err != nil {
			exe = "assetpick"
		}
	}
	quoted := strconv.Quote(exe)

	var err error
	switch shell {
	case "zsh":
		_, err = fmt.Fprintf(out, `# assetpick: %s inserts an asset link at the cursor
assetpick-widget() {
    local link
    link="$(command %s </dev/tty)"
    if [ -n "$link" ]; then
        LBUFFER+="$link"
    fi
    zle reset-prompt
}
zle -N assetpick-widget
bindkey '^X^A' assetpick-widget
`, KeyBinding, quoted)
	case "bash", "sh", "ksh":
		_, err = fmt.Fprintf(out, `# assetpick: %s inserts an asset link at the cursor
__assetpick_insert() {
    local link
    link="$(command %s </dev/tty)" || return
    READLINE_LINE="${READLINE_LINE:0:READLINE_POINT}${link}${READLINE_LINE:READLINE_POINT}"
    READLINE_POINT=$((READLINE_POINT + ${#link}))
}
bind -x '"\C-x\C-a": __assetpick_insert'
`, KeyBinding, quoted)
	case "fish":
		_, err = fmt.Fprintf(out, `# assetpick: %s inserts an asset link at the cursor
function __assetpick_insert
    set -l link (command %s </dev/tty)
    if test -n "$link"
        commandline -i -- $link
    end
    commandline -f repaint
end
bind \cx\ca __assetpick_insert
`, KeyBinding, quoted)
	case "pwsh":
		_, err = fmt.Fprintf(out, `# assetpick: %s inserts an asset link at the cursor
Set-PSReadLineKeyHandler -Chord 'Ctrl+x,Ctrl+a' -ScriptBlock {
    $link = & %s
    if ($link) {
        [Microsoft.PowerShell.PSConsoleReadLine]::Insert($link)
    }
}
`, KeyBinding, quoted)
	default:
		return fmt.Errorf("%w: %s (supported: zsh, bash, fish, pwsh)", ErrUnsupportedShell, shell)
	}
	return err
}

func detectShell(parent ParentShellFunc) string {
	return detectShellInternal(runtime.GOOS, os.Getenv, parent)
}

func detectShellInternal(goos string, getenv func(string) string, parent ParentShellFunc) string {
	if shell := canonicalShellName(normalizeShellName(getenv("SHELL"))); shell != "" {
		return shell
	}

	if parent != nil {
		if shell := canonicalShellName(normalizeShellName(parent())); shell != "" {
			return shell
		}
	}

	if strings.EqualFold(goos, "windows") {
		return "pwsh"
	}

	return "bash"
}

func canonicalShellName(name string) string {
	switch name {
	case "powershell":
		return "pwsh"
	default:
		return name
	}
}

func normalizeShellName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	value = extractExecutable(value)
	if value == "" {
		return ""
	}

	value = strings.Trim(value, `"'`)
	value = strings.ReplaceAll(value, "\\", "/")
	base := path.Base(value)
	base = strings.ToLower(base)
	base = strings.TrimSuffix(base, ".exe")
	// Login shells report themselves as "-zsh".
	base = strings.TrimPrefix(base, "-")
	return strings.TrimSpace(base)
}

func extractExecutable(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	if strings.HasPrefix(value, "\"") {
		value = value[1:]
		if idx := strings.IndexRune(value, '"'); idx >= 0 {
			return value[:idx]
		}
		return value
	}

	if strings.HasPrefix(value, "'") {
		value = value[1:]
		if idx := strings.IndexRune(value, '\''); idx >= 0 {
			return value[:idx]
		}
		return value
	}

	if idx := strings.IndexAny(value, " \t"); idx >= 0 {
		return value[:idx]
	}

	return value
}
