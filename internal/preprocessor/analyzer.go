package preprocessor

import (
	"rgehrsitz/bfvm/internal/bytecode"
)

// Stats summarizes the instructions in a program. Counts are in characters.
type Stats struct {
	Counts       map[bytecode.Opcode]int
	Instructions int
	Ignored      int
	Loops        int
	MaxDepth     int
}

// Analyze counts instructions per opcode and measures loop nesting.
// Unbalanced brackets do not fail here; run ValidateProgram for that.
func Analyze(program string) Stats {
	stats := Stats{Counts: make(map[bytecode.Opcode]int, len(bytecode.Opcodes))}
	depth := 0
	for _, c := range program {
		op := bytecode.Decode(c)
		if op == bytecode.NOP {
			stats.Ignored++
			continue
		}
		stats.Counts[op]++
		stats.Instructions++

		if !op.IsBracket() {
			continue
		}
		if op == bytecode.LOOP_START {
			stats.Loops++
			depth++
			if depth > stats.MaxDepth {
				stats.MaxDepth = depth
			}
		} else if depth > 0 {
			depth--
		}
	}
	return stats
}
