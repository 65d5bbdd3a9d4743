package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/SolracHQ/r8/internal/chip8"
	"github.com/spf13/cobra"
)

var (
	runHz    int
	runTrace bool
)

// runCmd drives the interpreter headlessly against a ROM file, printing
// "BEEP" whenever the sound timer transitions from zero to non-zero.
var runCmd = &cobra.Command{
	Use:   "run <path/to/rom>",
	Short: "run a Chip-8 ROM headlessly",
	Args:  cobra.ExactArgs(1),
	Run:   runRom,
}

func init() {
	runCmd.Flags().IntVar(&runHz, "hz", 500, "interpreter clock rate in ticks per second")
	runCmd.Flags().BoolVar(&runTrace, "trace", false, "print a debug snapshot and decoded opcode every tick")
}

func runRom(cmd *cobra.Command, args []string) {
	f, err := os.Open(args[0])
	if err != nil {
		fmt.Printf("error opening rom: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	ip := chip8.NewInterpreter()
	if err := ip.LoadROM(f); err != nil {
		fmt.Printf("error loading rom: %v\n", err)
		os.Exit(1)
	}

	ticker := time.NewTicker(time.Second / time.Duration(runHz))
	defer ticker.Stop()

	wasSounding := false
	for range ticker.C {
		if runTrace {
			if op, err := ip.FetchOpcode(); err == nil {
				fmt.Printf("| %s | %s\n", ip.PC(), op)
			}
			fmt.Print(ip.DebugString())
		}

		if err := ip.Tick(); err != nil {
			fmt.Printf("error during tick: %v\n", err)
			os.Exit(1)
		}

		sounding := ip.SoundTimer() > 0
		if sounding && !wasSounding {
			fmt.Println("BEEP")
		}
		wasSounding = sounding
	}
}
