package cli

import (
	"fmt"

	"github.com/alexanderramin/journeyviz/internal/cli/formatter"
	"github.com/alexanderramin/journeyviz/internal/domain"
	"github.com/spf13/cobra"
)

func newTouchpointsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "touchpoints",
		Short: "List the touchpoint palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTouchpoints(domain.Touchpoints()))
			return nil
		},
	}
}
