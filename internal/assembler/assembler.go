// Package assembler implements a two-pass CHIP-8 assembler: a line-oriented
// tokenizer feeds a label-resolving first pass that emits MemSlice values,
// and a second pass writes the final ROM bytes once every label is known.
package assembler

import (
	"bytes"
	"io"
)

const entryPoint uint16 = 0x200

// Assemble reads CHIP-8 assembly source from src and writes the resolved
// ROM image to out. Pass 1 collects one MemSlice per source line and every
// label's address; pass 1 failures are collected line by line and the
// first by source order is returned, with no partial output written.
// Pass 2 then resolves every label and writes the final bytes to out in
// emission order; an undefined label in pass 2 also leaves out untouched.
func Assemble(src io.Reader, out io.Writer) error {
	text, err := io.ReadAll(src)
	if err != nil {
		return IOError{Cause: err}
	}

	tok := NewTokenizer(string(text))
	labels := make(map[string]uint16)
	address := entryPoint

	var slices []MemSlice
	var firstErr error

	for {
		line, ok, err := tok.NextLine()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if !ok {
			break
		}
		slice, err := assembleLine(line, &address, labels)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		slices = append(slices, slice)
	}

	if firstErr != nil {
		return firstErr
	}

	var rom bytes.Buffer
	for _, slice := range slices {
		if err := slice.Write(labels, &rom); err != nil {
			return err
		}
	}
	if _, err := out.Write(rom.Bytes()); err != nil {
		return IOError{Cause: err}
	}
	return nil
}

func assembleLine(line Line, address *uint16, labels map[string]uint16) (MemSlice, error) {
	toks := line.Tokens
	ln := line.Number

	checkAddr := func(v uint16) (uint16, error) {
		if v > 0xFFF {
			return 0, InvalidAddressError{Value: v, Line: ln}
		}
		return v, nil
	}
	checkByte := func(v uint16) (byte, error) {
		if v > 0xFF {
			return 0, InvalidByteError{Value: v, Line: ln}
		}
		return byte(v), nil
	}
	checkNibble := func(v uint16) (byte, error) {
		if v > 0xF {
			return 0, InvalidNibbleError{Value: v, Line: ln}
		}
		return byte(v), nil
	}

	opSxyn := func(s, x, y, n uint16) (MemSlice, error) {
		*address += 2
		sb, err := checkNibble(s)
		if err != nil {
			return MemSlice{}, err
		}
		xb, err := checkNibble(x)
		if err != nil {
			return MemSlice{}, err
		}
		yb, err := checkNibble(y)
		if err != nil {
			return MemSlice{}, err
		}
		nb, err := checkNibble(n)
		if err != nil {
			return MemSlice{}, err
		}
		op := uint16(sb)<<12 | uint16(xb)<<8 | uint16(yb)<<4 | uint16(nb)
		return MemSlice{Kind: SliceOpcode, Opcode: op}, nil
	}
	opSnnn := func(s, nnn uint16) (MemSlice, error) {
		*address += 2
		sb, err := checkNibble(s)
		if err != nil {
			return MemSlice{}, err
		}
		addr, err := checkAddr(nnn)
		if err != nil {
			return MemSlice{}, err
		}
		return MemSlice{Kind: SliceOpcode, Opcode: uint16(sb)<<12 | addr}, nil
	}
	opSxkk := func(s, x, kk uint16) (MemSlice, error) {
		*address += 2
		kb, err := checkByte(kk)
		if err != nil {
			return MemSlice{}, err
		}
		return MemSlice{Kind: SliceOpcode, Opcode: s<<12 | x<<8 | uint16(kb)}, nil
	}
	opSlabel := func(s uint16, label string) (MemSlice, error) {
		*address += 2
		return MemSlice{
			Kind:               SlicePending,
			PendingFirstNibble: uint8(s),
			PendingLabel:       label,
			PendingLine:        ln,
		}, nil
	}

	id := func(t Token) (string, bool) {
		if t.Kind == TokIdentifier {
			return t.Text, true
		}
		return "", false
	}
	regOf := func(t Token) (uint16, bool) {
		if t.Kind == TokRegister {
			return t.Value, true
		}
		return 0, false
	}
	numOf := func(t Token) (uint16, bool) {
		if t.Kind == TokNumber {
			return t.Value, true
		}
		return 0, false
	}
	isComma := func(t Token) bool { return t.Kind == TokComma }

	switch {
	case len(toks) == 0:
		return MemSlice{Kind: SliceEmpty}, nil

	case len(toks) == 1 && toks[0].Kind == TokLabel:
		name := toks[0].Text
		if _, exists := labels[name]; exists {
			return MemSlice{}, DuplicateLabelError{Name: name, Line: ln}
		}
		labels[name] = *address
		return MemSlice{Kind: SliceEmpty}, nil

	case match1(toks, id, "CLS"):
		return opSxyn(0x0, 0x0, 0xE, 0x0)

	case match1(toks, id, "RET"):
		return opSxyn(0x0, 0x0, 0xE, 0xE)

	case len(toks) == 2:
		name, isIdent := id(toks[0])
		if !isIdent {
			break
		}
		switch name {
		case "SYS", "JP", "CALL":
			s := map[string]uint16{"SYS": 0x0, "JP": 0x1, "CALL": 0x2}[name]
			if n, ok := numOf(toks[1]); ok {
				return opSnnn(s, n)
			}
			if lbl, ok := id(toks[1]); ok {
				return opSlabel(s, lbl)
			}
		case "SHR":
			if x, ok := regOf(toks[1]); ok {
				return opSxyn(0x8, x, 0x1, 0x6)
			}
		case "SHL":
			if x, ok := regOf(toks[1]); ok {
				return opSxyn(0x8, x, 0x0, 0xE)
			}
		case "SKP":
			if x, ok := regOf(toks[1]); ok {
				return opSxyn(0xE, x, 0x9, 0xE)
			}
		case "SKNP":
			if x, ok := regOf(toks[1]); ok {
				return opSxyn(0xE, x, 0xA, 0x1)
			}
		case "DB":
			if n, ok := numOf(toks[1]); ok {
				*address += 1
				b, err := checkByte(n)
				if err != nil {
					return MemSlice{}, err
				}
				return MemSlice{Kind: SliceByte, Byte: b}, nil
			}
		case "DW":
			if n, ok := numOf(toks[1]); ok {
				*address += 2
				return MemSlice{Kind: SliceWord, Opcode: n}, nil
			}
		}

	case len(toks) == 4 && isComma(toks[2]):
		name, isIdent := id(toks[0])
		if !isIdent {
			break
		}
		xReg, xIsReg := regOf(toks[1])
		xName, xIsID := id(toks[1])

		switch name {
		case "SE", "SNE", "LD", "ADD", "OR", "AND", "XOR", "SUB", "SUBN":
			if xIsReg {
				if kk, ok := numOf(toks[3]); ok {
					switch name {
					case "SE":
						return opSxkk(0x3, xReg, kk)
					case "SNE":
						return opSxkk(0x4, xReg, kk)
					case "LD":
						return opSxkk(0x6, xReg, kk)
					case "ADD":
						return opSxkk(0x7, xReg, kk)
					}
				}
				if y, ok := regOf(toks[3]); ok {
					switch name {
					case "SE":
						return opSxyn(0x5, xReg, y, 0x0)
					case "SNE":
						return opSxyn(0x9, xReg, y, 0x0)
					case "LD":
						return opSxyn(0x8, xReg, y, 0x0)
					case "ADD":
						return opSxyn(0x8, xReg, y, 0x4)
					case "OR":
						return opSxyn(0x8, xReg, y, 0x1)
					case "AND":
						return opSxyn(0x8, xReg, y, 0x2)
					case "XOR":
						return opSxyn(0x8, xReg, y, 0x3)
					case "SUB":
						return opSxyn(0x8, xReg, y, 0x5)
					case "SUBN":
						return opSxyn(0x8, xReg, y, 0x7)
					}
				}
			}
		case "RND":
			if xIsReg {
				if kk, ok := numOf(toks[3]); ok {
					return opSxkk(0xC, xReg, kk)
				}
			}
		case "JP":
			// JP V0, n / JP V0, label
			if xIsReg && xReg == 0 {
				if n, ok := numOf(toks[3]); ok {
					return opSnnn(0xB, n)
				}
				if lbl, ok := id(toks[3]); ok {
					return opSlabel(0xB, lbl)
				}
			}
		}

		// LD I, n / LD I, label and LD DT/ST/F/B/[I], Vx and LD Vx, DT/K/[I]
		if name == "LD" && xIsID {
			switch xName {
			case "I":
				if n, ok := numOf(toks[3]); ok {
					return opSnnn(0xA, n)
				}
				if lbl, ok := id(toks[3]); ok {
					return opSlabel(0xA, lbl)
				}
			case "DT":
				if y, ok := regOf(toks[3]); ok {
					return opSxyn(0xF, y, 0x1, 0x5)
				}
			case "ST":
				if y, ok := regOf(toks[3]); ok {
					return opSxyn(0xF, y, 0x1, 0x8)
				}
			case "F":
				if y, ok := regOf(toks[3]); ok {
					return opSxyn(0xF, y, 0x2, 0x9)
				}
			case "B":
				if y, ok := regOf(toks[3]); ok {
					return opSxyn(0xF, y, 0x3, 0x3)
				}
			case "[I]":
				if y, ok := regOf(toks[3]); ok {
					return opSxyn(0xF, y, 0x5, 0x5)
				}
			}
		}
		if name == "LD" && xIsReg {
			if target, ok := id(toks[3]); ok {
				switch target {
				case "DT":
					return opSxyn(0xF, xReg, 0x0, 0x7)
				case "K":
					return opSxyn(0xF, xReg, 0x0, 0xA)
				case "[I]":
					return opSxyn(0xF, xReg, 0x6, 0x5)
				}
			}
		}
		if name == "ADD" && xIsID && xName == "I" {
			if y, ok := regOf(toks[3]); ok {
				return opSxyn(0xF, y, 0x1, 0xE)
			}
		}

	case len(toks) == 6 && isComma(toks[2]) && isComma(toks[4]):
		name, isIdent := id(toks[0])
		if isIdent && name == "DRW" {
			x, xok := regOf(toks[1])
			y, yok := regOf(toks[3])
			n, nok := numOf(toks[5])
			if xok && yok && nok {
				return opSxyn(0xD, x, y, n)
			}
		}
	}

	return MemSlice{}, InvalidLineError{Line: ln}
}

// match1 reports whether toks is exactly [Identifier(name)].
func match1(toks []Token, id func(Token) (string, bool), name string) bool {
	if len(toks) != 1 {
		return false
	}
	text, ok := id(toks[0])
	return ok && text == name
}
