// =============================================================================
// main.go - gosh Entry Point
// =============================================================================
//
// This is the main entry point for gosh, a small interactive shell built
// around a from-scratch line editor. The binary wires together the pieces:
// user configuration, the persistent command history, the two-tier tab
// completer, the raw-terminal adapter, and the REPL that dispatches built-in
// commands.
//
// Usage:
//
//	gosh                       Start an interactive session
//	gosh --plain               Disable prompt styling
//	gosh --config <path>       Load configuration from a specific file
//	gosh --history <path>      Use a specific history file
//	gosh --help                Show help
//
// When stdin is not a terminal (piped input, scripted use), the shell reads
// plain lines without the interactive editor, so `echo 'pwd' | gosh` works.
//
// =============================================================================

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"

	"github.com/gosh-shell/gosh/config"
	"github.com/gosh-shell/gosh/lineedit"
)

const (
	// version is the current gosh version.
	version = "0.3.0"

	// appName is the application name.
	appName = "gosh"
)

// fullTitle returns the application name with version.
func fullTitle() string {
	return fmt.Sprintf("%s v%s", appName, version)
}

// welcomeBanner returns the banner displayed when an interactive session
// starts.
func welcomeBanner() string {
	return fmt.Sprintf(`%s - an interactive shell
Type 'type <name>' to inspect a command, 'history' to review past input,
and 'exit' to leave.
`, fullTitle())
}

// =============================================================================
// Command-Line Arguments
// =============================================================================

// arguments holds the parsed command-line arguments.
type arguments struct {
	// plain disables ANSI styling of the prompt and banner.
	plain bool

	// configPath overrides the default config file location.
	// Empty means ~/.config/gosh/config.yaml.
	configPath string

	// historyPath overrides the configured history file location.
	historyPath string

	// showHelp causes usage information to be printed and the program to exit.
	showHelp bool

	// showVersion causes version information to be printed and the program to exit.
	showVersion bool
}

// parseArguments parses command-line arguments.
//
// This is a simple hand-written parser: there are only five flags and no
// subcommands, so a CLI framework would be over-engineering.
func parseArguments() arguments {
	var args arguments

	remaining := os.Args[1:]
	for len(remaining) > 0 {
		arg := remaining[0]
		remaining = remaining[1:]

		switch arg {
		case "--plain":
			args.plain = true

		case "--config":
			if len(remaining) == 0 {
				printError("--config requires a path argument")
				os.Exit(1)
			}
			args.configPath = remaining[0]
			remaining = remaining[1:]

		case "--history":
			if len(remaining) == 0 {
				printError("--history requires a path argument")
				os.Exit(1)
			}
			args.historyPath = remaining[0]
			remaining = remaining[1:]

		case "--help", "-h":
			args.showHelp = true

		case "--version", "-v":
			args.showVersion = true

		default:
			printError(fmt.Sprintf("Unknown argument: %s", arg))
			printUsage()
			os.Exit(1)
		}
	}

	return args
}

// =============================================================================
// Help and Usage
// =============================================================================

// printUsage prints usage information to stdout.
func printUsage() {
	fmt.Print(`USAGE: gosh [options]

OPTIONS:
  --plain              Disable prompt and banner styling
  --config <path>      Load configuration from a specific file
  --history <path>     Use a specific history file
  --help, -h           Show this help
  --version, -v        Show version

BUILT-IN COMMANDS:
  echo, cd, pwd, ls, cat, type, history, exit

LINE EDITING:
  Left/Right arrows move within the line, Up/Down recall history,
  Tab completes commands and file names (press Tab twice to list
  ambiguous candidates), Ctrl-D ends the session.

Output of echo, ls, and cat can be redirected with >, >>, 1>, and 1>>.
`)
}

// printVersion prints version information to stdout.
func printVersion() {
	fmt.Println(fullTitle())
}

// printError prints an error message to stderr.
func printError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
}

// =============================================================================
// Prompt Styling
// =============================================================================

// renderPrompt returns the prompt string, styled with the configured color
// unless plain mode is requested.
func renderPrompt(cfg *config.Config, plain bool) string {
	if plain || cfg.PromptColor == "" {
		return cfg.Prompt
	}
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(cfg.PromptColor)).
		Bold(true)
	return style.Render(cfg.Prompt)
}

// =============================================================================
// Signal Handling
// =============================================================================

// setupSignalHandler installs handlers for SIGINT and SIGTERM so the shell
// can restore the terminal state and close the history file before exiting.
func setupSignalHandler(cleanup func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println()
		cleanup()
		os.Exit(0)
	}()
}

// =============================================================================
// Main
// =============================================================================

func main() {
	args := parseArguments()

	if args.showHelp {
		printUsage()
		return
	}
	if args.showVersion {
		printVersion()
		return
	}

	// Load configuration (defaults when no file exists).
	var cfg *config.Config
	var err error
	if args.configPath != "" {
		cfg, err = config.LoadFrom(args.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		printError(fmt.Sprintf("Failed to load configuration: %v", err))
		os.Exit(1)
	}

	// Open the persistent history store. A history that cannot be
	// persisted is still usable in memory.
	historyPath := args.historyPath
	if historyPath == "" {
		historyPath, err = cfg.HistoryFile()
		if err != nil {
			printError(fmt.Sprintf("Failed to resolve history file: %v", err))
			os.Exit(1)
		}
	}
	history, err := lineedit.OpenHistory(historyPath, cfg.History.Limit)
	if err != nil {
		printError(fmt.Sprintf("History persistence disabled: %v", err))
		history = lineedit.NewHistory()
	}

	term := lineedit.NewTerm(os.Stdin, os.Stdout)
	completer := lineedit.NewCompleter(builtinNames)
	editor := lineedit.NewEditor(term, history, completer)

	cleanup := func() {
		term.Restore()
		history.Close()
	}
	setupSignalHandler(cleanup)

	// The end-of-input key leaves the editor through this path: restore
	// the terminal first, then terminate with a non-zero status.
	editor.Exit = func(code int) {
		term.WriteString("\r\n")
		cleanup()
		os.Exit(code)
	}

	sh := &shell{
		history:   history,
		completer: completer,
		out:       os.Stdout,
		errOut:    os.Stderr,
		exit: func(code int) {
			cleanup()
			os.Exit(code)
		},
	}

	if term.IsTerminal() {
		fmt.Print(welcomeBanner())
	}

	runREPL(sh, editor, term, os.Stdin, renderPrompt(cfg, args.plain))

	cleanup()
}
