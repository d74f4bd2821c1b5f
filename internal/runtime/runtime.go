// runtime/runtime.go

package runtime

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"rgehrsitz/bfvm/internal/bytecode"

	"github.com/rs/zerolog"
)

// DefaultMemorySize is the number of cells used when no size is given.
const DefaultMemorySize = 32

// VM represents the virtual machine that executes tape programs.
type VM struct {
	memory  []byte
	pointer int
	ip      int
	input   *bufio.Reader
	output  io.Writer
	logger  zerolog.Logger
}

// Option configures a VM.
type Option func(*VM)

// WithInput sets the line-based source read by the input instruction.
func WithInput(r io.Reader) Option {
	return func(vm *VM) {
		vm.input = bufio.NewReader(r)
	}
}

// WithOutput sets the sink written by the output instruction.
func WithOutput(w io.Writer) Option {
	return func(vm *VM) {
		vm.output = w
	}
}

// WithLogger sets the logger used for instruction tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(vm *VM) {
		vm.logger = logger
	}
}

// NewVM creates a new instance of the virtual machine with a zeroed tape of
// memorySize cells. A non-positive size falls back to DefaultMemorySize.
func NewVM(memorySize int, opts ...Option) *VM {
	if memorySize <= 0 {
		memorySize = DefaultMemorySize
	}
	vm := &VM{
		memory:  make([]byte, memorySize),
		pointer: 0,
		ip:      0,
		output:  os.Stdout,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(vm)
	}
	if vm.input == nil {
		vm.input = bufio.NewReader(os.Stdin)
	}
	return vm
}

// Execute runs program to completion. The instruction pointer indexes
// characters, not bytes. Characters outside the instruction set are skipped.
// Loops left open when the program ends are abandoned silently.
func (vm *VM) Execute(program string) error {
	code := []rune(program)
	var jumps []int

	for vm.ip = 0; vm.ip < len(code); vm.ip++ {
		opcode := bytecode.Decode(code[vm.ip])
		if opcode == bytecode.NOP {
			continue
		}

		vm.logger.Debug().Int("IP", vm.ip).Str("Opcode", opcode.String()).Int("Pointer", vm.pointer).Msg("Processing instruction")

		switch opcode {
		case bytecode.MOVE_RIGHT:
			vm.pointer++

		case bytecode.MOVE_LEFT:
			vm.pointer--

		case bytecode.INC:
			if err := vm.Increment(); err != nil {
				return err
			}

		case bytecode.DEC:
			if err := vm.Decrement(); err != nil {
				return err
			}

		case bytecode.OUTPUT:
			if err := vm.writeCell(); err != nil {
				return err
			}

		case bytecode.INPUT:
			if err := vm.readCell(); err != nil {
				return err
			}

		case bytecode.LOOP_START:
			value, err := vm.Get()
			if err != nil {
				return err
			}
			if value != 0 {
				jumps = append(jumps, vm.ip)
				continue
			}
			end, err := vm.matchForward(code)
			if err != nil {
				return err
			}
			vm.ip = end

		case bytecode.LOOP_END:
			if len(jumps) == 0 {
				return &VMError{Kind: ErrUnexpectedClosingBracket, IP: vm.ip}
			}
			value, err := vm.Get()
			if err != nil {
				return err
			}
			if value != 0 {
				// Resume right after the loop's '[' once ip is incremented.
				vm.ip = jumps[len(jumps)-1]
			} else {
				jumps = jumps[:len(jumps)-1]
			}
		}
	}

	if len(jumps) > 0 {
		vm.logger.Debug().Ints("OpenLoops", jumps).Msg("Program ended inside loops")
	}
	return nil
}

// matchForward returns the position of the ']' matching the '[' at vm.ip.
func (vm *VM) matchForward(code []rune) (int, error) {
	depth := 1
	for i := vm.ip + 1; i < len(code); i++ {
		switch bytecode.Decode(code[i]) {
		case bytecode.LOOP_START:
			depth++
		case bytecode.LOOP_END:
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, &VMError{Kind: ErrUnclosedBracket, IP: vm.ip}
}

// writeCell emits the character whose code point is the current cell value.
func (vm *VM) writeCell() error {
	value, err := vm.Get()
	if err != nil {
		return err
	}
	if _, err := io.WriteString(vm.output, string(rune(value))); err != nil {
		return err
	}
	return nil
}

// readCell stores the code point of the first character of the next input
// line in the current cell. The line is consumed before the pointer is checked.
func (vm *VM) readCell() error {
	line, err := vm.input.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		if err == io.EOF {
			err = nil
		}
		return &VMError{Kind: ErrInputExhausted, IP: vm.ip, Err: err}
	}
	r, _ := utf8.DecodeRuneInString(line)
	if r > 0xFF {
		return &VMError{Kind: ErrInputOutOfRange, IP: vm.ip, Err: fmt.Errorf("%q is U+%04X", r, r)}
	}
	return vm.Set(byte(r))
}
