package runtime

import (
	"fmt"
	"strconv"
	"strings"
)

// State is a copy of the tape and data pointer taken for diagnostics.
type State struct {
	Memory  []byte `cbor:"1,keyasint"`
	Pointer int    `cbor:"2,keyasint"`
}

// String renders the state as two lines: the cell values, then the pointer.
func (s State) String() string {
	cells := make([]string, len(s.Memory))
	for i, v := range s.Memory {
		cells[i] = strconv.Itoa(int(v))
	}
	return fmt.Sprintf("%s\npointer = %d", strings.Join(cells, " "), s.Pointer)
}

// checkPointer fails unless 0 <= pointer < len(memory).
func (vm *VM) checkPointer() error {
	if vm.pointer < 0 || vm.pointer >= len(vm.memory) {
		return &VMError{Kind: ErrPointerOutOfRange, IP: vm.ip, Pointer: vm.pointer}
	}
	return nil
}

// Get returns the value of the current cell.
func (vm *VM) Get() (byte, error) {
	if err := vm.checkPointer(); err != nil {
		return 0, err
	}
	return vm.memory[vm.pointer], nil
}

// Set stores value in the current cell.
func (vm *VM) Set(value byte) error {
	if err := vm.checkPointer(); err != nil {
		return err
	}
	vm.memory[vm.pointer] = value
	return nil
}

// Increment adds one to the current cell, wrapping 255 to 0.
func (vm *VM) Increment() error {
	if err := vm.checkPointer(); err != nil {
		return err
	}
	vm.memory[vm.pointer]++
	return nil
}

// Decrement subtracts one from the current cell, wrapping 0 to 255.
func (vm *VM) Decrement() error {
	if err := vm.checkPointer(); err != nil {
		return err
	}
	vm.memory[vm.pointer]--
	return nil
}

// Pointer returns the data pointer. It may be outside the tape.
func (vm *VM) Pointer() int {
	return vm.pointer
}

// MemorySize returns the number of cells on the tape.
func (vm *VM) MemorySize() int {
	return len(vm.memory)
}

// Dump returns a copy of the tape and the current data pointer.
func (vm *VM) Dump() State {
	memory := make([]byte, len(vm.memory))
	copy(memory, vm.memory)
	return State{Memory: memory, Pointer: vm.pointer}
}
