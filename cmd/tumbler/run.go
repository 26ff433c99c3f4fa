package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/castdice/tumbler/internal/cli"
	"github.com/castdice/tumbler/internal/config"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive dice roller",
	Long:  `Starts the full-screen dice roller in the current terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		explicit := cmd.Flags().Changed("config")
		if !explicit {
			configPath = config.DefaultPath()
		}
		dice, _ := cmd.Flags().GetInt("dice")
		noColor, _ := cmd.Flags().GetBool("no-color")
		debug, _ := cmd.Flags().GetBool("debug")

		opts := cli.RunOptions{
			ConfigPath:     configPath,
			ConfigExplicit: explicit,
			Dice:           dice,
			NoColor:        noColor,
			Debug:          debug,
		}
		if err := cli.Run(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Make 'run' the default when no subcommand is given. Its flags must be
	// registered on both commands so `tumbler -n 3` parses the same way as
	// `tumbler run -n 3`.
	rootCmd.Run = runCmd.Run
	for _, c := range []*cobra.Command{runCmd, rootCmd} {
		c.Flags().IntP("dice", "n", 0, "Number of dice to start with (1-8)")
		c.Flags().Bool("debug", false, "Enable debug logging to stderr")
	}
}
