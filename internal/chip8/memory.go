package chip8

import (
	"errors"
	"io"
	"syscall"
)

// MemorySize is the total size of CHIP-8 RAM.
const MemorySize = 0x1000

// FontSet is the canonical 16-glyph, 5-bytes-per-glyph hexadecimal font,
// preloaded at the start of memory on every ROM load. Glyph d begins at
// offset d*5. http://www.multigesture.net/articles/how-to-write-an-emulator-chip-8-interpreter
var FontSet = [80]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the fixed 4 KiB CHIP-8 RAM.
type Memory struct {
	ram [MemorySize]byte
}

// LoadROM resets memory, preloads the font set at [0x000, 0x050), zeroes
// [0x050, 0x200), reads the ROM into [0x200, 0x200+len(rom)), and zeroes
// the remaining tail. Short reads and reads interrupted with
// syscall.EINTR are retried; any other error except io.EOF fails with
// LoadError.
func (m *Memory) LoadROM(reader io.Reader) error {
	copy(m.ram[:len(FontSet)], FontSet[:])
	for i := len(FontSet); i < int(EntryPoint); i++ {
		m.ram[i] = 0
	}

	buf := m.ram[EntryPoint:]
	for len(buf) > 0 {
		n, err := reader.Read(buf)
		if n > 0 {
			buf = buf[n:]
		}
		if err == io.EOF {
			break
		}
		if errors.Is(err, syscall.EINTR) {
			continue
		}
		if err != nil {
			return LoadError{Cause: err}
		}
		if n == 0 {
			break
		}
	}
	for i := range buf {
		buf[i] = 0
	}
	return nil
}

// ReadRange copies data.len() bytes from memory starting at start into
// data. Fails with OutOfBounds if the range would touch >= 0x1000.
func (m *Memory) ReadRange(start Address, data []byte) error {
	end := int(start) + len(data)
	if end > MemorySize {
		return OutOfBounds(end)
	}
	copy(data, m.ram[start:end])
	return nil
}

// WriteRange copies data into memory starting at start. Fails with
// OutOfBounds if the range would touch >= 0x1000.
func (m *Memory) WriteRange(start Address, data []byte) error {
	end := int(start) + len(data)
	if end > MemorySize {
		return OutOfBounds(end)
	}
	copy(m.ram[start:end], data)
	return nil
}

// At returns the byte at addr without bounds checking beyond what Address
// already guarantees (addr is always <= 0xFFF).
func (m *Memory) At(addr Address) byte {
	return m.ram[addr]
}
