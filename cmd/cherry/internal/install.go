package internal

import (
	"fmt"

	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install Cherry for the system",
	Args:  cobra.NoArgs,
	RunE:  runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

// Installation is a placeholder for now; it runs nothing.
func runInstall(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), "Not yet supported!")
	return nil
}
