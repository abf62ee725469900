// Package main is the entry point for the keychord tool.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/keychord/keychord/internal/config"
	"github.com/keychord/keychord/internal/keymap"
	"github.com/keychord/keychord/internal/keys"
	"github.com/keychord/keychord/internal/term"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	ConfigPath string
	KeymapDir  string
	Mode       string
	Parse      string
	Platform   string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.Parse != "" {
		seq, err := keys.ParseSequence(opts.Parse)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Println(seq)
		return 0
	}

	reg := keymap.NewRegistry()
	if err := keymap.RegisterDefaults(reg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to register defaults: %v\n", err)
		return 1
	}

	platform := keys.PlatformGeneric
	if opts.ConfigPath != "" {
		cfg, err := config.Load(opts.ConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
			return 1
		}
		if err := cfg.Apply(reg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to apply config: %v\n", err)
			return 1
		}
		platform = cfg.Platform()
	}
	if opts.KeymapDir != "" {
		loader := keymap.NewLoader()
		loader.AddSearchPath(opts.KeymapDir)
		// Broken keymap files are reported but do not block the ones
		// that loaded cleanly.
		if err := loader.LoadAndRegister(reg); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
	switch opts.Platform {
	case "":
	case "generic":
		platform = keys.PlatformGeneric
	case "macos":
		platform = keys.PlatformMac
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid platform %q (must be generic or macos)\n", opts.Platform)
		return 1
	}

	if err := interactive(reg, opts.Mode, platform); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// interactive runs a tcell screen that echoes each chord as it is
// entered along with the binding lookup result. Press Escape twice in
// a row to quit.
func interactive(reg *keymap.Registry, mode string, platform keys.Platform) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	var seq keys.Sequence
	var lastEsc bool
	status := "press keys (Esc Esc quits)"

	for {
		draw(screen, mode, seq, status)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			raw, err := term.EventFromTcell(ev)
			if err != nil {
				status = err.Error()
				continue
			}
			esc := raw.Code == keys.KeyEscape && raw.Mods.IsEmpty()
			if esc && lastEsc {
				return nil
			}
			lastEsc = esc

			next, err := seq.AppendEvent(raw, platform)
			if err != nil {
				seq = keys.Sequence{}
				status = err.Error()
				continue
			}
			seq = next

			res := reg.Lookup(seq, mode)
			switch res.Type() {
			case keys.ExactMatch:
				status = fmt.Sprintf("%s -> %s", seq, res.Exact.Command)
				seq = keys.Sequence{}
			case keys.PartialMatch:
				status = fmt.Sprintf("%s ... (%d candidates)", seq, len(res.Partial))
			default:
				status = fmt.Sprintf("%s is unbound", seq)
				seq = keys.Sequence{}
			}
		}
	}
}

func draw(screen tcell.Screen, mode string, seq keys.Sequence, status string) {
	screen.Clear()
	style := tcell.StyleDefault
	puts(screen, 0, 0, fmt.Sprintf("mode: %s", mode), style.Bold(true))
	puts(screen, 0, 1, fmt.Sprintf("pending: %s", seq), style)
	puts(screen, 0, 2, status, style)
	screen.Show()
}

func puts(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.KeymapDir, "keymaps", "", "Directory of YAML keymap files to load")
	flag.StringVar(&opts.Mode, "mode", "normal", "Binding mode to look up")
	flag.StringVar(&opts.Parse, "parse", "", "Parse a key string, print its canonical form, and exit")
	flag.StringVar(&opts.Platform, "platform", "", "Key platform (generic, macos)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "keychord - key sequence parser and binding inspector\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keychord [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  keychord -parse '<ctrl-x><ctrl-s>'   Print the canonical form\n")
		fmt.Fprintf(os.Stderr, "  keychord -c keychord.toml            Interactive with a config\n")
		fmt.Fprintf(os.Stderr, "  keychord -mode insert                Look up insert-mode bindings\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("keychord %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}
