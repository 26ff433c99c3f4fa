package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/castdice/tumbler"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tumbler",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tumbler version %s\n", strings.TrimSpace(tumbler.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
