package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/at-ishikawa/flypysync/internal/opener"
	"github.com/at-ishikawa/flypysync/internal/remote"
	"github.com/at-ishikawa/flypysync/internal/userdict"
)

const (
	exitCodeOK = iota
	exitCodeFailure
	exitCodeFileFailure
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, opener.New()))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, folderOpener FolderOpener) int {
	rootCommand := newRootCommand(stdout, stderr, folderOpener)
	rootCommand.SetArgs(args)
	rootCommand.SetOut(stdout)
	rootCommand.SetErr(stderr)

	err := rootCommand.ExecuteContext(ctx)
	if err == nil {
		return exitCodeOK
	}

	var unavailable *remote.UnavailableError
	if errors.As(err, &unavailable) {
		printError(stderr, "request failed: %s, please check that the path is correct\nfor example: %s\n", unavailable.URL, remote.ExampleURL)
	}
	printError(stderr, "failed to execute a command: %+v\n", err)
	return exitCode(err)
}

func exitCode(err error) int {
	if errors.Is(err, userdict.ErrBackupFailed) || errors.Is(err, userdict.ErrWriteFailed) {
		return exitCodeFileFailure
	}
	return exitCodeFailure
}

// printError ignores write failures so that the exit code stays the one decided by the import.
func printError(stderr io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(stderr, format, args...)
}

// setupLogger configures the default logger based on debug mode
func setupLogger(writer io.Writer, debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}
