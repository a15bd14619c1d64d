package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/blog-posts/internal/client"
	"github.com/daniilsolovey/blog-posts/internal/tui"
)

var (
	flSource = flag.String("source", "http://localhost:8080", "base URL of the posts server")
	flLog    = flag.String("log", "", "write debug logs to this file")
)

func main() {
	_ = godotenv.Load()

	flag.Parse()

	lg, closeLog, err := newLogger(*flLog)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open log file:", err)
		os.Exit(1)
	}
	defer closeLog()

	model := tui.NewModel(client.New(*flSource, nil), lg)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		lg.Error("tui failed", "error", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newLogger keeps logs off the terminal the program draws on.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	f, err := tea.LogToFile(path, "tui")
	if err != nil {
		return nil, nil, err
	}

	lg := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return lg, func() { _ = f.Close() }, nil
}
