package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// currentReleaseVersion is used to print the version the user currently has downloaded
const currentReleaseVersion = "v0.1.0"

// rootCmd is the base for all commands.
var rootCmd = &cobra.Command{
	Use:   "r8 [command]",
	Short: "r8 is a Chip-8 interpreter and assembler",
	Long:  "r8 is a Chip-8 interpreter and assembler",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Unknown command. Try `r8 help` for more information")
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(asmCmd)
	rootCmd.AddCommand(disasmCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs r8 according to the user's command/subcommand/flags
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
