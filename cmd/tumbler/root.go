package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tumbler",
	Short: "Tumbler is a terminal multi-dice roller",
	Long: `Tumbler rolls up to eight animated six-sided dice in your terminal.
Lock the dice you want to keep, roll the rest, and watch the running
sum and face breakdown.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to the config file (default ~/.config/tumbler/config.yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}
