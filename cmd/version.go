package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// versionCmd returns the callers installed r8 version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Retrieve the currently installed r8 version",
	Long:  "Run `r8 version` to get your current r8 version",
	Args:  cobra.NoArgs,
	Run:   runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	if len(args) != 0 {
		fmt.Println("The version command does not take any arguments")
		os.Exit(1)
	}
	fmt.Println(currentReleaseVersion)
}
