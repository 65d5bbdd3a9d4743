package chip8

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestDecodeRoundTrip checks that every instruction template from the
// instruction table decodes to the expected tagged Opcode.
func TestDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		word uint16
		want Opcode
	}{
		{"CLS", 0x00E0, Opcode{Kind: OpCls, Raw: 0x00E0}},
		{"RET", 0x00EE, Opcode{Kind: OpRet, Raw: 0x00EE}},
		{"SYS", 0x0123, Opcode{Kind: OpSys, Addr: 0x123, Raw: 0x0123}},
		{"JP", 0x1344, Opcode{Kind: OpJp, Addr: 0x344, Raw: 0x1344}},
		{"CALL", 0x2346, Opcode{Kind: OpCall, Addr: 0x346, Raw: 0x2346}},
		{"SE byte", 0x3A11, Opcode{Kind: OpSeByte, X: 0xA, KK: 0x11, Raw: 0x3A11}},
		{"SNE byte", 0x4B22, Opcode{Kind: OpSneByte, X: 0xB, KK: 0x22, Raw: 0x4B22}},
		{"SE reg", 0x5120, Opcode{Kind: OpSeReg, X: 1, Y: 2, Raw: 0x5120}},
		{"invalid 5xy1", 0x5121, Opcode{Kind: OpInvalid, Raw: 0x5121}},
		{"LD byte", 0x60AB, Opcode{Kind: OpLdByte, X: 0, KK: 0xAB, Raw: 0x60AB}},
		{"ADD byte", 0x70AB, Opcode{Kind: OpAddByte, X: 0, KK: 0xAB, Raw: 0x70AB}},
		{"LD reg", 0x8010, Opcode{Kind: OpLdReg, X: 0, Y: 1, Raw: 0x8010}},
		{"OR", 0x8011, Opcode{Kind: OpOr, X: 0, Y: 1, Raw: 0x8011}},
		{"AND", 0x8012, Opcode{Kind: OpAnd, X: 0, Y: 1, Raw: 0x8012}},
		{"XOR", 0x8013, Opcode{Kind: OpXor, X: 0, Y: 1, Raw: 0x8013}},
		{"ADD reg", 0x8014, Opcode{Kind: OpAddReg, X: 0, Y: 1, Raw: 0x8014}},
		{"SUB", 0x8015, Opcode{Kind: OpSub, X: 0, Y: 1, Raw: 0x8015}},
		{"SHR", 0x8016, Opcode{Kind: OpShr, X: 0, Y: 1, Raw: 0x8016}},
		{"SUBN", 0x8017, Opcode{Kind: OpSubn, X: 0, Y: 1, Raw: 0x8017}},
		{"SHL", 0x801E, Opcode{Kind: OpShl, X: 0, Y: 1, Raw: 0x801E}},
		{"invalid 8xy8", 0x8018, Opcode{Kind: OpInvalid, Raw: 0x8018}},
		{"SNE reg", 0x9120, Opcode{Kind: OpSneReg, X: 1, Y: 2, Raw: 0x9120}},
		{"invalid 9xy1", 0x9121, Opcode{Kind: OpInvalid, Raw: 0x9121}},
		{"LD I", 0xA300, Opcode{Kind: OpLdI, Addr: 0x300, Raw: 0xA300}},
		{"JP V0", 0xB300, Opcode{Kind: OpJpV0, Addr: 0x300, Raw: 0xB300}},
		{"RND", 0xC0FF, Opcode{Kind: OpRnd, X: 0, KK: 0xFF, Raw: 0xC0FF}},
		{"DRW", 0xD015, Opcode{Kind: OpDrw, X: 0, Y: 1, N: 5, Raw: 0xD015}},
		{"SKP", 0xE09E, Opcode{Kind: OpSkp, X: 0, Raw: 0xE09E}},
		{"SKNP", 0xE0A1, Opcode{Kind: OpSknp, X: 0, Raw: 0xE0A1}},
		{"invalid Exkk", 0xE000, Opcode{Kind: OpInvalid, Raw: 0xE000}},
		{"LD Vx, DT", 0xF007, Opcode{Kind: OpLdVxDT, X: 0, Raw: 0xF007}},
		{"LD Vx, K", 0xF00A, Opcode{Kind: OpLdVxK, X: 0, Raw: 0xF00A}},
		{"LD DT, Vx", 0xF015, Opcode{Kind: OpLdDTVx, X: 0, Raw: 0xF015}},
		{"LD ST, Vx", 0xF018, Opcode{Kind: OpLdSTVx, X: 0, Raw: 0xF018}},
		{"ADD I, Vx", 0xF01E, Opcode{Kind: OpAddIVx, X: 0, Raw: 0xF01E}},
		{"LD F, Vx", 0xF029, Opcode{Kind: OpLdFVx, X: 0, Raw: 0xF029}},
		{"LD B, Vx", 0xF033, Opcode{Kind: OpLdBVx, X: 0, Raw: 0xF033}},
		{"LD [I], Vx", 0xF055, Opcode{Kind: OpLdIVx, X: 0, Raw: 0xF055}},
		{"LD Vx, [I]", 0xF065, Opcode{Kind: OpLdVxI, X: 0, Raw: 0xF065}},
		{"invalid Fxkk", 0xF000, Opcode{Kind: OpInvalid, Raw: 0xF000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.word)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Decode(0x%04X) mismatch (-want +got):\n%s", tt.word, diff)
			}
		})
	}
}

func TestOpcodeString(t *testing.T) {
	tests := []struct {
		word uint16
		want string
	}{
		{0x00E0, "CLS"},
		{0x00EE, "RET"},
		{0x1344, "JP 0x344"},
		{0x60AB, "LD V0, 0xAB"},
		{0xD015, "DRW V0, V1, 0x5"},
		{0xF055, "LD [I], V0"},
		{0xF065, "LD V0, [I]"},
	}
	for _, tt := range tests {
		if got := Decode(tt.word).String(); got != tt.want {
			t.Errorf("Decode(0x%04X).String() = %q, want %q", tt.word, got, tt.want)
		}
	}
}
