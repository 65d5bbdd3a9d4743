package cmd

import (
	"fmt"
	"os"

	"github.com/SolracHQ/r8/internal/assembler"
	"github.com/spf13/cobra"
)

// asmCmd assembles a Chip-8 source file into a ROM image.
var asmCmd = &cobra.Command{
	Use:   "asm <src.8s> <out.8o>",
	Short: "assemble Chip-8 source into a ROM image",
	Args:  cobra.ExactArgs(2),
	Run:   runAsm,
}

func runAsm(cmd *cobra.Command, args []string) {
	src, err := os.Open(args[0])
	if err != nil {
		fmt.Printf("error opening source: %v\n", err)
		os.Exit(1)
	}
	defer src.Close()

	out, err := os.Create(args[1])
	if err != nil {
		fmt.Printf("error creating output: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := assembler.Assemble(src, out); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
