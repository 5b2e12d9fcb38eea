package cli

import (
	"fmt"

	"github.com/alexanderramin/journeyviz/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Browse journey templates",
	}

	cmd.AddCommand(
		newTemplateListCmd(app),
		newTemplateShowCmd(app),
	)

	return cmd
}

func newTemplateListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			templates := app.Templates.List()
			if len(templates) == 0 {
				fmt.Fprintln(out, "No templates found.")
				return nil
			}

			fmt.Fprintln(out, formatter.FormatTemplateList(templates))
			for _, p := range app.Templates.Problems() {
				fmt.Fprintln(out, formatter.StyleYellow.Render("skipped: ")+p.Error())
			}
			return nil
		},
	}
}

func newTemplateShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID|NAME|NUMBER",
		Short: "Show a template's cards by stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Templates.Get(args[0])
			if err != nil {
				return err
			}
			stages := app.Config.Editor().Stages
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTemplateShow(t, stages))
			if err := t.Validate(stages); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleYellow.Render("warning: ")+err.Error())
			}
			return nil
		},
	}
}
