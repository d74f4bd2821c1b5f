// Package snapshot encodes VM state as canonical CBOR.
package snapshot

import (
	"fmt"
	"os"

	"rgehrsitz/bfvm/internal/runtime"

	"github.com/fxamacker/cbor/v2"
)

var encMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("snapshot: failed to create CBOR enc mode: %v", err))
	}
	encMode = em
}

// Marshal serializes a State to CBOR bytes.
func Marshal(state runtime.State) ([]byte, error) {
	return encMode.Marshal(state)
}

// Unmarshal deserializes a State from CBOR bytes.
func Unmarshal(data []byte) (runtime.State, error) {
	var state runtime.State
	if err := cbor.Unmarshal(data, &state); err != nil {
		return runtime.State{}, fmt.Errorf("snapshot: unmarshal state: %w", err)
	}
	return state, nil
}

// WriteFile writes the encoded state to path.
func WriteFile(path string, state runtime.State) error {
	data, err := Marshal(state)
	if err != nil {
		return fmt.Errorf("snapshot: marshal state: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("snapshot: write %s: %w", path, err)
	}
	return nil
}

// ReadFile reads a state written by WriteFile.
func ReadFile(path string) (runtime.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return runtime.State{}, fmt.Errorf("snapshot: read %s: %w", path, err)
	}
	return Unmarshal(data)
}
