package cmd

import (
	"fmt"
	"os"

	"github.com/SolracHQ/r8/internal/chip8"
	"github.com/spf13/cobra"
)

// disasmCmd loads a ROM and prints its decoded disassembly, two bytes at
// a time, starting at the entry point.
var disasmCmd = &cobra.Command{
	Use:   "disasm <rom>",
	Short: "disassemble a Chip-8 ROM image",
	Args:  cobra.ExactArgs(1),
	Run:   runDisasm,
}

func runDisasm(cmd *cobra.Command, args []string) {
	f, err := os.Open(args[0])
	if err != nil {
		fmt.Printf("error opening rom: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		fmt.Printf("error stating rom: %v\n", err)
		os.Exit(1)
	}

	ip := chip8.NewInterpreter()
	if err := ip.LoadROM(f); err != nil {
		fmt.Printf("error loading rom: %v\n", err)
		os.Exit(1)
	}

	romLen := info.Size()
	var buf [2]byte
	for addr := chip8.EntryPoint; int64(addr)-int64(chip8.EntryPoint) < romLen; {
		if err := ip.ReadMemory(addr, buf[:]); err != nil {
			fmt.Printf("error reading memory at %s: %v\n", addr, err)
			os.Exit(1)
		}
		op := chip8.Decode(uint16(buf[0])<<8 | uint16(buf[1]))
		fmt.Printf("%s: %s\n", addr, op)

		next, err := addr.Add(2)
		if err != nil {
			break
		}
		addr = next
	}
}
