package chip8

import "fmt"

// Address is a 12-bit CHIP-8 memory address in [0x000, 0xFFF]. It is used
// for PC, I, stack entries, and memory indices so that bounds checking
// lives in one place instead of being duplicated at every call site.
type Address uint16

// EntryPoint is the address most CHIP-8 programs are loaded at and start
// executing from. http://devernay.free.fr/hacks/chip8/C8TECH10.HTM#memmap
const EntryPoint Address = 0x200

// MaxAddress is the highest addressable byte in CHIP-8 memory.
const MaxAddress = 0xFFF

// CheckedAddress constructs an Address, failing if value exceeds 0xFFF.
func CheckedAddress(value uint16) (Address, error) {
	if value > MaxAddress {
		return 0, InvalidAddress(value)
	}
	return Address(value), nil
}

// MaskedAddress constructs an Address by dropping bits 12 and above.
func MaskedAddress(value uint16) Address {
	return Address(value & MaxAddress)
}

// Add returns a+other as a checked Address, failing if the sum exceeds
// 0xFFF.
func (a Address) Add(other uint16) (Address, error) {
	if uint32(a)+uint32(other) > MaxAddress {
		return 0, InvalidAddress(uint16(a) + other)
	}
	return Address(uint16(a) + other), nil
}

// Inner returns the address as a plain uint16.
func (a Address) Inner() uint16 {
	return uint16(a)
}

func (a Address) String() string {
	return fmt.Sprintf("0x%X", uint16(a))
}
