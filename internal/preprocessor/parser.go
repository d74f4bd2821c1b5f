package preprocessor

import (
	"errors"
	"fmt"
	"os"

	"rgehrsitz/bfvm/internal/bytecode"
	"rgehrsitz/bfvm/internal/runtime"

	"github.com/rs/zerolog/log"
)

// ErrNoProgram is returned when neither a file nor a literal program is given.
var ErrNoProgram = errors.New("no program specified")

// LoadProgram returns the program text from path when it is set, otherwise
// from the first argument.
func LoadProgram(path string, args []string) (string, error) {
	if path != "" {
		log.Info().Str("path", path).Msg("Loading program file...")
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read program file: %w", err)
		}
		return string(data), nil
	}
	if len(args) == 0 {
		return "", ErrNoProgram
	}
	return args[0], nil
}

// ValidateProgram checks bracket balance without running the program. It
// reports the first closing bracket with nothing open, or else the first
// opening bracket that is never closed, as a runtime VMError indexed by
// character. The check is stricter than Execute: a trailing open loop such
// as "+[" runs without error but fails here.
func ValidateProgram(program string) error {
	log.Debug().Int("length", len(program)).Msg("Started validating program...")
	var open []int
	ip := 0
	for _, c := range program {
		op := bytecode.Decode(c)
		if op.IsBracket() {
			if op == bytecode.LOOP_START {
				open = append(open, ip)
			} else if len(open) == 0 {
				return &runtime.VMError{Kind: runtime.ErrUnexpectedClosingBracket, IP: ip}
			} else {
				open = open[:len(open)-1]
			}
		}
		ip++
	}
	if len(open) > 0 {
		return &runtime.VMError{Kind: runtime.ErrUnclosedBracket, IP: open[0]}
	}
	return nil
}
