// bytecode/instructions.go

package bytecode

import "fmt"

// Opcode represents the type of a tape instruction.
type Opcode byte

// Tape instructions
const (
	// Pointer instructions
	MOVE_RIGHT Opcode = iota
	MOVE_LEFT

	// Cell instructions
	INC
	DEC

	// I/O instructions
	OUTPUT
	INPUT

	// Control flow instructions
	LOOP_START
	LOOP_END

	// Anything else in the program text
	NOP
)

// Decode maps a program character to its opcode. Unknown characters decode to NOP.
func Decode(c rune) Opcode {
	switch c {
	case '>':
		return MOVE_RIGHT
	case '<':
		return MOVE_LEFT
	case '+':
		return INC
	case '-':
		return DEC
	case '.':
		return OUTPUT
	case ',':
		return INPUT
	case '[':
		return LOOP_START
	case ']':
		return LOOP_END
	default:
		return NOP
	}
}

// Symbol returns the program character for the opcode, or 0 for NOP.
func (op Opcode) Symbol() rune {
	switch op {
	case MOVE_RIGHT:
		return '>'
	case MOVE_LEFT:
		return '<'
	case INC:
		return '+'
	case DEC:
		return '-'
	case OUTPUT:
		return '.'
	case INPUT:
		return ','
	case LOOP_START:
		return '['
	case LOOP_END:
		return ']'
	default:
		return 0
	}
}

// IsBracket reports whether the opcode opens or closes a loop.
func (op Opcode) IsBracket() bool {
	return op == LOOP_START || op == LOOP_END
}

// String returns the string representation of the opcode.
func (op Opcode) String() string {
	switch op {
	case MOVE_RIGHT:
		return "MOVE_RIGHT"
	case MOVE_LEFT:
		return "MOVE_LEFT"
	case INC:
		return "INC"
	case DEC:
		return "DEC"
	case OUTPUT:
		return "OUTPUT"
	case INPUT:
		return "INPUT"
	case LOOP_START:
		return "LOOP_START"
	case LOOP_END:
		return "LOOP_END"
	case NOP:
		return "NOP"
	default:
		return fmt.Sprintf("UNKNOWN_OPCODE(%d)", byte(op))
	}
}

// Opcodes lists every opcode that maps to a program character, in dispatch order.
var Opcodes = []Opcode{MOVE_RIGHT, MOVE_LEFT, INC, DEC, OUTPUT, INPUT, LOOP_START, LOOP_END}
