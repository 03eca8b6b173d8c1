package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	"personal-assistant/config"
	"personal-assistant/internal/assistant"
	"personal-assistant/internal/assistant/delivery/cli"
	"personal-assistant/internal/model"
	"personal-assistant/internal/wiring"
)

const usage = `Usage: assistant [flags] [chat | ask <question>]

Commands:
  chat            Start an interactive session (default)
  ask <question>  Ask a single question and exit

Flags:
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("assistant", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "path to config file")
	voice := fs.Bool("voice", false, "enable voice mode (not available yet)")
	debug := fs.Bool("debug", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "Failed to load config:", err)
		return 1
	}
	if *debug {
		cfg.Logger.Level = "debug"
	}
	if *voice {
		cfg.UI.VoiceEnabled = true
	}

	logger := wiring.NewLogger(cfg)
	a, err := wiring.New(cfg, logger).NewAssistant(localScope(cfg.UI.VoiceEnabled))
	if err != nil {
		fmt.Fprintln(stderr, "Failed to initialize assistant:", err)
		return 1
	}

	h := cli.New(logger, a, cli.Config{
		VoiceEnabled: cfg.UI.VoiceEnabled,
		Interactive:  isTerminal(stdin),
	})

	rest := fs.Args()
	cmd := "chat"
	if len(rest) > 0 {
		cmd, rest = rest[0], rest[1:]
	}

	switch cmd {
	case "chat":
		fmt.Fprintf(stdout, "🤖 %s\n", a.Name())
		if err := h.Run(ctx, stdin, stdout); err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return 1
		}
	case "ask":
		err := h.Ask(ctx, strings.Join(rest, " "), stdout)
		if errors.Is(err, assistant.ErrEmptyInput) {
			fmt.Fprintln(stderr, "Please provide a question: assistant ask <question>")
			return 2
		}
		if err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return 1
		}
	default:
		fmt.Fprintf(stderr, "Unknown command %q\n\n", cmd)
		fs.Usage()
		return 2
	}
	return 0
}

// localScope is the single session of a terminal user. Voice mode still runs
// in text but is reported on its own channel.
func localScope(voice bool) model.Scope {
	sc := model.Scope{
		SessionID: "cli",
		UserID:    "cli_local",
		Channel:   model.ChannelCLI,
	}
	if voice {
		sc.Channel = model.ChannelVoice
	}
	return sc
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
