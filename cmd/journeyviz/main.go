package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alexanderramin/journeyviz/internal/cli"
	"github.com/alexanderramin/journeyviz/internal/config"
	"github.com/alexanderramin/journeyviz/internal/editor"
	"github.com/alexanderramin/journeyviz/internal/template"
	_ "github.com/joho/godotenv/autoload"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Determine template directory
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = defaultTemplateDir()
	}

	// The TUI owns the terminal, so logs only go to a file when asked for.
	var logOut io.Writer
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	logger := slog.New(slog.DiscardHandler)
	if logOut != nil {
		logger = slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.Level()}))
	}

	templates, err := template.NewRegistry(cfg.TemplateDir)
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}
	for _, p := range templates.Problems() {
		logger.Warn("template skipped", slog.String("error", p.Error()))
	}

	app := &cli.App{
		Config:    cfg,
		Templates: templates,
		Observer:  editor.NewLogObserver(logOut, cfg.Level()),
		Logger:    logger,
	}

	// Detect interactive terminal for the editor-only entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}

// defaultTemplateDir prefers ./templates during development, then
// ~/.journeyviz/templates. It returns "" when neither exists.
func defaultTemplateDir() string {
	if stat, err := os.Stat("./templates"); err == nil && stat.IsDir() {
		return "./templates"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	dir := filepath.Join(home, ".journeyviz", "templates")
	if stat, err := os.Stat(dir); err == nil && stat.IsDir() {
		return dir
	}
	return ""
}
