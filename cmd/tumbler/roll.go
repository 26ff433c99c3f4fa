package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/castdice/tumbler/internal/cli"
)

// rollCmd performs a single roll without entering the TUI, for scripts and
// quick decisions.
var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll once and print the result",
	Run: func(cmd *cobra.Command, args []string) {
		dice, _ := cmd.Flags().GetInt("dice")
		check, _ := cmd.Flags().GetBool("check")

		if err := cli.Roll(os.Stdout, cli.RollOptions{Dice: dice, Check: check}); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(rollCmd)

	rollCmd.Flags().IntP("dice", "n", 1, "Number of dice to roll (1-8)")
	rollCmd.Flags().Bool("check", false, "Validate the recorded roll history")
}
