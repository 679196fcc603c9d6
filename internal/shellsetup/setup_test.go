package shellsetup

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDetectShellInternal(t *testing.T) {
	tests := []struct {
		name          string
		goos          string
		envShell      string
		parent        func() string
		expectedShell string
	}{
		{
			name:          "uses SHELL when set",
			goos:          "linux",
			envShell:      "/bin/zsh",
			expectedShell: "zsh",
		},
		{
			name:          "falls back to parent shell",
			goos:          "linux",
			parent:        func() string { return "/usr/bin/bash" },
			expectedShell: "bash",
		},
		{
			name:          "login shell parent",
			goos:          "darwin",
			parent:        func() string { return "-fish" },
			expectedShell: "fish",
		},
		{
			name:          "windows powershell parent",
			goos:          "windows",
			parent:        func() string { return `C:\Windows\System32\WindowsPowerShell\v1.0\powershell.exe` },
			expectedShell: "pwsh",
		},
		{
			name:          "windows fallback",
			goos:          "windows",
			expectedShell: "pwsh",
		},
		{
			name:          "unix fallback",
			goos:          "linux",
			expectedShell: "bash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := func(key string) string {
				if key == "SHELL" {
					return tt.envShell
				}
				return ""
			}
			got := detectShellInternal(tt.goos, env, tt.parent)
			if got != tt.expectedShell {
				t.Fatalf("detectShellInternal() = %q, want %q", got, tt.expectedShell)
			}
		})
	}
}

func TestPrintSetupWidgets(t *testing.T) {
	tests := []struct {
		shell string
		want  []string
	}{
		{"zsh", []string{`"/opt/bin/assetpick"`, "zle -N assetpick-widget", "bindkey '^X^A' assetpick-widget", `LBUFFER+="$link"`}},
		{"bash", []string{`bind -x '"\C-x\C-a": __assetpick_insert'`, "READLINE_POINT"}},
		{"/usr/local/bin/fish", []string{`bind \cx\ca __assetpick_insert`, "commandline -i"}},
		{"powershell", []string{"Set-PSReadLineKeyHandler", "Ctrl+x,Ctrl+a"}},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			var out bytes.Buffer
			err := PrintSetup(tt.shell, Config{Executable: "/opt/bin/assetpick", Out: &out})
			if err != nil {
				t.Fatalf("PrintSetup: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out.String(), want) {
					t.Fatalf("widget for %s missing %q:\n%s", tt.shell, want, out.String())
				}
			}
		})
	}
}

func TestPrintSetupDetectsShell(t *testing.T) {
	t.Setenv("SHELL", "")
	var out bytes.Buffer
	err := PrintSetup("", Config{
		DetectParent: func() string { return "zsh" },
		Executable:   "assetpick",
		Out:          &out,
	})
	if err != nil {
		t.Fatalf("PrintSetup: %v", err)
	}
	if !strings.Contains(out.String(), "zle -N") {
		t.Fatalf("expected zsh widget, got:\n%s", out.String())
	}
}

func TestPrintSetupRejectsUnsupportedShell(t *testing.T) {
	var out bytes.Buffer
	err := PrintSetup("tcsh", Config{Executable: "assetpick", Out: &out})
	if !errors.Is(err, ErrUnsupportedShell) {
		t.Fatalf("expected ErrUnsupportedShell, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}
