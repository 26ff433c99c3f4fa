package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/castdice/tumbler/internal/presentation/tui"
)

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the key bindings and configuration guide",
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner()
		out, err := tui.RenderGuide()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
