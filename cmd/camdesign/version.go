package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/camdesign-ml/camdesign/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of camdesign",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("camdesign %s (%s, %s)\n", version.Version, version.Commit, version.Date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
