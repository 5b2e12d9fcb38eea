package cli

import (
	"context"
	"log/slog"

	"github.com/alexanderramin/journeyviz/internal/template"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newEditCmd(app *App) *cobra.Command {
	var templateID string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the journey editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var initial *template.Template
			if templateID != "" {
				t, err := app.Templates.Get(templateID)
				if err != nil {
					return err
				}
				initial = t
			}
			return runEditor(cmd.Context(), app, initial)
		},
	}

	cmd.Flags().StringVarP(&templateID, "template", "t", "", "start from a template (id, name or list number)")
	return cmd
}

// runEditor runs the TUI until the user quits.
func runEditor(ctx context.Context, app *App, initial *template.Template) error {
	if ctx == nil {
		ctx = context.Background()
	}
	m := newAppModel(app, initial)
	// Quitting from the editor disposes the session too; a cancelled
	// context or a program error ends the run without reaching quit.
	defer m.state.Session.Dispose()
	if app.RunProgram != nil {
		return app.RunProgram(ctx, m)
	}
	return runProgram(ctx, app, m)
}

// runProgram runs the full-screen program and the template watcher
// together. Quitting the program stops the watcher; a watcher failure is
// logged and leaves the editor running.
func runProgram(ctx context.Context, app *App, m tea.Model) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(gctx),
	)

	if app.Templates != nil && app.Templates.Dir() != "" {
		g.Go(func() error {
			err := template.Watch(gctx, app.Templates, app.logger(), func() {
				p.Send(templatesReloadedMsg{})
			})
			if err != nil {
				app.logger().Warn("template watcher: not running", slog.String("error", err.Error()))
			}
			return nil
		})
	}

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})

	return g.Wait()
}
