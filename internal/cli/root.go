// Package cli wires argument parsing, token resolution, the two API fetches,
// and rendering into the gitstat command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/vukan322/gitstat/internal/core"
	"github.com/vukan322/gitstat/internal/github"
	"github.com/vukan322/gitstat/internal/layout"
	"github.com/vukan322/gitstat/internal/render"
)

const tokenEnvVar = "GITHUB_TOKEN"

// exitError carries a process exit code up through cobra.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	cmd := NewRootCommand(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		var ee exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCommand builds the gitstat command. Output streams are injected so
// tests can capture them; clientOpts let tests point the API client at a
// local server.
func NewRootCommand(out, errOut io.Writer, clientOpts ...github.Option) *cobra.Command {
	var (
		token string
		demo  bool
	)

	cmd := &cobra.Command{
		Use:           "gitstat <username>",
		Short:         "Display GitHub activity for any user",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), out, errOut, args[0], token, demo, clientOpts)
		},
	}

	cmd.Flags().StringVarP(&token, "token", "t", "",
		"GitHub access token (or use GITHUB_TOKEN environment variable)")
	cmd.Flags().BoolVar(&demo, "demo", false,
		"render a synthetic dashboard without contacting the API")

	return cmd
}

func run(ctx context.Context, out, errOut io.Writer, username, token string, demo bool, clientOpts []github.Option) error {
	logger := newLogger(errOut)

	if demo {
		render.Dashboard(out, core.DemoProfile(username), core.DemoCalendar(), detectGeometry(out))
		return nil
	}

	if token == "" {
		token = os.Getenv(tokenEnvVar)
	}
	if token == "" {
		printTokenGuidance(errOut)
		return exitError{code: 1}
	}

	client := github.New(token, clientOpts...)

	profile, err := client.FetchProfile(ctx, username)
	if err != nil {
		logger.Error("profile lookup failed", "user", username, "err", err)
		return exitError{code: 1}
	}

	calendar, err := client.FetchContributions(ctx, username)
	if err != nil {
		logger.Error("error retrieving contributions", "user", username, "err", err)
		logger.Warn("verify your token is valid and has the read:user scope")
		return nil
	}

	render.Dashboard(out, profile, calendar, detectGeometry(out))
	return nil
}

func printTokenGuidance(w io.Writer) {
	fmt.Fprintln(w, "Error: GitHub token required!")
	fmt.Fprintln(w, "You can:")
	fmt.Fprintln(w, "   1. Pass token with --token YOUR_TOKEN")
	fmt.Fprintln(w, "   2. Set GITHUB_TOKEN environment variable")
	fmt.Fprintln(w, "   3. Create a token at: https://github.com/settings/tokens")
	fmt.Fprintln(w, "      (Required permissions: 'read:user' only)")
}

type fdWriter interface {
	Fd() uintptr
}

// detectGeometry probes the output stream's terminal, falling back to 80x24
// when the stream has no file descriptor (buffers, pipes).
func detectGeometry(out io.Writer) layout.Geometry {
	if f, ok := out.(fdWriter); ok {
		return layout.Detect(f.Fd())
	}
	return layout.Geometry{Width: 80, Height: 24}
}

func newLogger(w io.Writer) *slog.Logger {
	noColor := true
	if f, ok := w.(fdWriter); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	return slog.New(tint.NewHandler(w, &tint.Options{NoColor: noColor}))
}
