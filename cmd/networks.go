package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"sonicmigrate/internal/network"
	"sonicmigrate/internal/ui"
)

func newNetworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List available Sonic networks and their RPC URLs",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Styles.Title.Render("Available Sonic Networks:"))
			for _, net := range network.All() {
				fmt.Fprintf(out, "\n%s\n", ui.Warning(net.DisplayName()))
				fmt.Fprintf(out, "RPC URL: %s\n", ui.Styles.Endpoint.Render(net.Endpoint()))
				fmt.Fprintf(out, "Usage: %s\n", ui.Styles.Muted.Render(fmt.Sprintf("sonic-migrate --network %s", net)))
			}
		},
	}
}
