// assetpick is a terminal picker for the files under an asset folder. It
// fuzzy-searches file names, filters them by type and, on Enter, prints a
// Markdown link for the shell widget to insert (see --setup), copies the
// link to the clipboard (--clipboard) or opens the file (--open).
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	apppkg "github.com/kk-code-lab/assetpick/internal/app"
	"github.com/kk-code-lab/assetpick/internal/config"
	"github.com/kk-code-lab/assetpick/internal/logging"
	"github.com/kk-code-lab/assetpick/internal/shellsetup"
)

var parentShellDetector = shellsetup.DetectParentShellName

type options struct {
	root      string
	config    string
	open      bool
	clipboard bool
	matcher   string
	pageSize  int
	logFile   string
	logLevel  string
	query     string
	setup     string
	noWatch   bool
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "assetpick: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Set UTF-8 as fallback encoding so non-ASCII file names display correctly.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	var opts options
	flagSet := pflag.NewFlagSet("assetpick", pflag.ContinueOnError)
	flagSet.StringVarP(&opts.root, "root", "r", "", "asset folder to list (default: config root or the working directory)")
	flagSet.StringVarP(&opts.config, "config", "c", "", "config file (default: $"+config.EnvConfig+" or ~/.config/assetpick/config.yaml)")
	flagSet.BoolVarP(&opts.open, "open", "o", false, "open the picked file instead of inserting a link")
	flagSet.BoolVar(&opts.clipboard, "clipboard", false, "copy the picked link to the clipboard")
	flagSet.StringVar(&opts.matcher, "matcher", "", "ranking engine: fuzzy or fzf")
	flagSet.IntVar(&opts.pageSize, "page-size", 0, "maximum number of listed results")
	flagSet.StringVar(&opts.logFile, "log-file", "", "write JSON logs to this file")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flagSet.StringVarP(&opts.query, "query", "q", "", "initial search query")
	flagSet.BoolVar(&opts.noWatch, "no-watch", false, "do not watch the asset folder for changes")
	flagSet.StringVarP(&opts.setup, "setup", "s", "", "print the shell widget for SHELL (zsh, bash, fish, pwsh) and exit")
	flagSet.Lookup("setup").NoOptDefVal = "auto"
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}
	if opts.open && opts.clipboard {
		return errors.New("--open and --clipboard are mutually exclusive")
	}

	if flagSet.Changed("setup") {
		shell := opts.setup
		if shell == "auto" {
			shell = ""
		}
		return shellsetup.PrintSetup(shell, shellsetup.Config{DetectParent: parentShellDetector})
	}

	cfg, _, err := config.Load(opts.config)
	if err != nil {
		return err
	}
	applyFlags(cfg, flagSet, opts)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Root != "" {
		abs, err := filepath.Abs(cfg.Root)
		if err != nil {
			return fmt.Errorf("resolve asset root: %w", err)
		}
		cfg.Root = abs
	}

	if err := logging.Init(logging.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		OutputPath: cfg.Log.File,
	}); err != nil {
		return err
	}
	defer func() {
		_ = logging.Sync()
	}()

	mode := apppkg.ModeInsert
	switch {
	case opts.open:
		mode = apppkg.ModeOpen
	case opts.clipboard:
		mode = apppkg.ModeCopy
	}

	app, err := apppkg.NewApplication(apppkg.Options{Config: cfg, Mode: mode, Query: opts.query})
	if err != nil {
		return fmt.Errorf("initializing application: %w", err)
	}
	app.Run()
	if err := app.Close(); err != nil {
		logging.L().Warn("close", logging.Err(err))
	}

	// The screen is gone; stdout now belongs to the shell widget.
	if link := app.Result(); link != "" {
		fmt.Println(link)
	}
	return nil
}

// applyFlags overrides config values with the flags the user set.
func applyFlags(cfg *config.Config, flagSet *pflag.FlagSet, opts options) {
	if flagSet.Changed("root") {
		cfg.Root = opts.root
	}
	if flagSet.Changed("matcher") {
		cfg.Matcher = opts.matcher
	}
	if flagSet.Changed("page-size") {
		cfg.PageSize = opts.pageSize
	}
	if flagSet.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if flagSet.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if opts.noWatch {
		cfg.Watch = false
	}
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprint(os.Stderr, `assetpick - fuzzy picker for asset files

USAGE:
    assetpick [OPTIONS]

Enter inserts a Markdown link to the picked asset (printed on exit), Tab
cycles file-type categories, F1 shows all key bindings.

OPTIONS:
`)
	fmt.Fprint(os.Stderr, flagSet.FlagUsages())
}
