// Package main provides the persona CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/richinex/persona/cli"
)

var (
	// Global flags
	provider string
	model    string
	verbose  bool
)

func main() {
	// Load .env file if present (ignore "file not found" errors)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to load .env file: %v\n", err)
		}
	}

	rootCmd := &cobra.Command{
		Use:   "persona",
		Short: "Chat agent that answers as the represented person",
		Long: `A conversational agent that answers questions on behalf of a represented
person, grounded in a biography summary and retrieval over a resume.
Unanswerable questions and offered contact details are escalated to a
push-notification channel.`,
	}

	rootCmd.PersistentFlags().StringVarP(&provider, "provider", "p", "", "LLM provider (openai, anthropic, deepseek, gemini)")
	rootCmd.PersistentFlags().StringVarP(&model, "model", "m", "", "Chat model identifier (provider default when empty)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logging")

	rootCmd.AddCommand(chatCmd())
	rootCmd.AddCommand(askCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunChat(cmd.Context(), options())
		},
	}
}

func askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a single question and print the reply",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunAsk(cmd.Context(), args[0], options())
		},
	}
}

func options() cli.Options {
	return cli.Options{
		Provider: provider,
		Model:    model,
		Verbose:  verbose,
	}
}
