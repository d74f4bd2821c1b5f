// test/runtime/runtime_test.go

package runtime_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rgehrsitz/bfvm/internal/preprocessor"
	"rgehrsitz/bfvm/internal/runtime"
	"rgehrsitz/bfvm/internal/snapshot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_ProgramFromFile(t *testing.T) {
	source := `
Print "Hi" then reset the cell
++++++++[>+++++++++<-]>.   H is 72
+++++++++++++++++++++++++++++++++.  i is 105
[-]
`
	path := filepath.Join(t.TempDir(), "hi.bf")
	require.NoError(t, os.WriteFile(path, []byte(source), 0644))

	program, err := preprocessor.LoadProgram(path, nil)
	require.NoError(t, err)
	require.NoError(t, preprocessor.ValidateProgram(program))

	out := &bytes.Buffer{}
	vm := runtime.NewVM(runtime.DefaultMemorySize, runtime.WithOutput(out), runtime.WithInput(strings.NewReader("")))
	require.NoError(t, vm.Execute(program))
	assert.Equal(t, "Hi", out.String())

	state := vm.Dump()
	assert.Equal(t, 1, state.Pointer)
	assert.Equal(t, byte(0), state.Memory[1])
}

func TestExecute_EchoUppercase(t *testing.T) {
	// Reads three lines and prints each first character shifted down by 32.
	program := ",--------------------------------.>,--------------------------------.>,--------------------------------."
	out := &bytes.Buffer{}
	vm := runtime.NewVM(3, runtime.WithOutput(out), runtime.WithInput(strings.NewReader("go\no\nxyz\n")))
	require.NoError(t, vm.Execute(program))
	assert.Equal(t, "GOX", out.String())
}

func TestExecute_FailureLeavesStateForSnapshot(t *testing.T) {
	out := &bytes.Buffer{}
	vm := runtime.NewVM(2, runtime.WithOutput(out), runtime.WithInput(strings.NewReader("")))
	err := vm.Execute("+>++>+")
	require.ErrorIs(t, err, runtime.ErrPointerOutOfRange)

	data, err := snapshot.Marshal(vm.Dump())
	require.NoError(t, err)
	state, err := snapshot.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, "1 2\npointer = 2", state.String())
}
