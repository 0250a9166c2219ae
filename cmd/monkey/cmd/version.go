package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/monkey/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Zeigt die Version an",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), version.Info())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
