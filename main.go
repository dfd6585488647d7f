package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hsbacot/ghfind/client"
	"github.com/hsbacot/ghfind/cmd"
	"github.com/hsbacot/ghfind/search"
	"github.com/hsbacot/ghfind/tui"
	"github.com/hsbacot/ghfind/ui"
)

const debugLogFile = "ghfind-debug.log"

func main() {
	os.Exit(run())
}

func run() int {
	// Parse command-line flags
	interactive := flag.Bool("i", false, "interactive mode - search from a terminal UI")
	flag.BoolVar(interactive, "interactive", false, "interactive mode - search from a terminal UI")
	prompt := flag.Bool("p", false, "prompt for the username before looking it up")
	flag.BoolVar(prompt, "prompt", false, "prompt for the username before looking it up")
	output := flag.String("o", "card", "output format: card, plain or json")
	flag.StringVar(output, "output", "card", "output format: card, plain or json")
	verbose := flag.Bool("v", false, "verbose mode - show detailed logs")
	flag.BoolVar(verbose, "verbose", false, "verbose mode - show detailed logs")
	flag.Usage = printUsage
	flag.Parse()

	// Initialize logger
	logger := ui.InitLogger(*verbose)

	format, err := cmd.ParseOutputFormat(*output)
	if err != nil {
		logger.Error("Invalid flag", "error", err)
		return 2
	}

	args := flag.Args()
	if len(args) > 1 {
		printUsage()
		return 2
	}

	var username string
	if len(args) == 1 {
		username = args[0]
	}

	// Interactive mode is the default when no username is given
	if *interactive || (username == "" && !*prompt) {
		return runTUI(username, *verbose)
	}

	if *prompt && username == "" {
		username, err = ui.PromptUsername()
		if err != nil {
			logger.Error("Prompt failed", "error", err)
			return 1
		}
	}

	apiClient := client.NewClient(client.Options{Logger: logger})
	ctrl := search.New(apiClient, search.Options{Logger: logger})
	defer ctrl.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Debug("Starting lookup", "username", username, "format", *output)

	if err := cmd.RunLookup(ctx, ctrl, username, cmd.LookupOptions{Format: format, Out: os.Stdout}); err != nil {
		logger.Error("Lookup failed", "username", username, "error", err)
		return 1
	}

	return 0
}

func runTUI(query string, verbose bool) int {
	logger, closeLog, err := ui.InitTUILogger(debugLogFile, verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", debugLogFile, err)
		return 1
	}
	defer closeLog()

	apiClient := client.NewClient(client.Options{Logger: logger})
	ctrl := search.New(apiClient, search.Options{Logger: logger})
	defer ctrl.Close()

	p := tea.NewProgram(tui.NewModel(ctrl, tui.Options{Query: query, Logger: logger}))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: ghfind [OPTIONS] [username]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  -i, --interactive    Search from a terminal UI (default without a username)")
	fmt.Fprintln(os.Stderr, "  -p, --prompt         Prompt for the username, then print the profile")
	fmt.Fprintln(os.Stderr, "  -o, --output FORMAT  Output format: card, plain or json (default card)")
	fmt.Fprintln(os.Stderr, "  -v, --verbose        Show detailed logs")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintln(os.Stderr, "  ghfind octocat")
	fmt.Fprintln(os.Stderr, "  ghfind -o json torvalds")
	fmt.Fprintln(os.Stderr, "  ghfind -i")
}
