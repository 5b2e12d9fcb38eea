package cli

import (
	"fmt"

	"github.com/alexanderramin/journeyviz/internal/cli/formatter"
	"github.com/alexanderramin/journeyviz/internal/domain"
	"github.com/alexanderramin/journeyviz/internal/layout"
	"github.com/spf13/cobra"
)

func newLayoutCmd(app *App) *cobra.Command {
	var (
		width, height float64
		stages        []string
		snap          []float64
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print stage column geometry for a canvas size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if width <= 0 || height <= 0 {
				return fmt.Errorf("width and height must be positive, got %gx%g", width, height)
			}
			ec := app.Config.Editor()
			st := ec.Stages
			if len(stages) > 0 {
				st = domain.NewStages(stages)
			}
			g := layout.NewGrid(width, height, len(st), ec.Metrics)

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatLayout(g, st))
			for _, x := range snap {
				fmt.Fprintln(out, formatter.FormatSnap(g, st, x))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", 960, "canvas width")
	cmd.Flags().Float64Var(&height, "height", 600, "canvas height")
	cmd.Flags().StringSliceVar(&stages, "stages", nil, "stage labels (defaults to the configured stages)")
	cmd.Flags().Float64SliceVar(&snap, "snap", nil, "x positions to resolve to a stage")
	return cmd
}
