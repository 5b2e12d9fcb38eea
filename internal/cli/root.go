package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/alexanderramin/journeyviz/internal/config"
	"github.com/alexanderramin/journeyviz/internal/editor"
	"github.com/alexanderramin/journeyviz/internal/template"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds the configuration and collaborators used by CLI commands.
type App struct {
	Config    config.Config
	Templates *template.Registry
	Observer  editor.Observer
	Logger    *slog.Logger

	// Clock starts editor transitions. Nil means time.Now.
	Clock func() time.Time

	// IsInteractive reports whether stdin is a terminal. The bare root
	// command opens the editor only when it is.
	IsInteractive func() bool

	// RunProgram runs the editor model. Nil runs a full-screen
	// tea.Program alongside the template watcher.
	RunProgram func(ctx context.Context, m tea.Model) error
}

func (a *App) now() time.Time {
	if a.Clock != nil {
		return a.Clock()
	}
	return time.Now()
}

func (a *App) observer() editor.Observer {
	if a.Observer != nil {
		return a.Observer
	}
	return editor.NoopObserver{}
}

func (a *App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// NewRootCmd creates the top-level "journeyviz" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "journeyviz",
		Short:         "Map customer journeys on a stage timeline",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return cmd.Help()
			}
			return runEditor(cmd.Context(), app, nil)
		},
	}

	root.AddCommand(
		newEditCmd(app),
		newLayoutCmd(app),
		newTemplateCmd(app),
		newTouchpointsCmd(),
	)

	return root
}
