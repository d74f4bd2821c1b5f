package bytecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode_RoundTripsSymbols(t *testing.T) {
	for _, op := range Opcodes {
		assert.Equal(t, op, Decode(op.Symbol()), "opcode %s should decode from its own symbol", op)
	}
}

func TestDecode_UnknownCharactersAreNOP(t *testing.T) {
	for _, c := range "abc 019\n\t#!é→" {
		assert.Equal(t, NOP, Decode(c), "expected %q to decode to NOP", c)
	}
	assert.Equal(t, rune(0), NOP.Symbol())
}

func TestOpcode_String(t *testing.T) {
	assert.Equal(t, "LOOP_START", LOOP_START.String())
	assert.Equal(t, "OUTPUT", OUTPUT.String())
	assert.Equal(t, "UNKNOWN_OPCODE(200)", Opcode(200).String())
}

func TestOpcode_IsBracket(t *testing.T) {
	assert.True(t, LOOP_START.IsBracket())
	assert.True(t, LOOP_END.IsBracket())
	assert.False(t, INC.IsBracket())
	assert.False(t, NOP.IsBracket())
}
