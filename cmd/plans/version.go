package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/plans"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of plans",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("plans version %s\n", strings.TrimSpace(plans.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
