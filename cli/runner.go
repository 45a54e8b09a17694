// Command execution for CLI commands.
//
// Information Hiding:
// - Agent setup hidden
// - Logger construction hidden
// - Output formatting hidden

package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/richinex/persona/agent"
	"github.com/richinex/persona/config"
)

// Options holds CLI execution options.
type Options struct {
	Provider string
	Model    string
	Verbose  bool
}

// RunAsk answers a single question and prints the reply.
func RunAsk(ctx context.Context, question string, opts Options) error {
	a, cleanup, err := setup(ctx, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	reply, err := a.Chat(ctx, question)
	if err != nil {
		return err
	}
	fmt.Println(reply)
	return nil
}

// RunChat starts an interactive chat session on stdin/stdout. The session
// ends on EOF or an "exit"/"quit" line.
func RunChat(ctx context.Context, opts Options) error {
	a, cleanup, err := setup(ctx, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Println("Type your message (exit to quit).")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		reply, err := a.Chat(ctx, line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Printf("\n%s\n\n", reply)
	}
	return scanner.Err()
}

func setup(ctx context.Context, opts Options) (*agent.Agent, func(), error) {
	settings, err := config.New(opts.Provider)
	if err != nil {
		return nil, nil, err
	}
	if opts.Model != "" {
		settings.ChatModel = opts.Model
	}

	return agent.Build(ctx, settings, newLogger(opts.Verbose))
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
