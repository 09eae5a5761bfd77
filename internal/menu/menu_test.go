package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize(t *testing.T) {
	// Byte-order sort: uppercase before lowercase, trailing newline.
	got := Serialize([]string{"Zed", "Atom", "vim"})
	assert.Equal(t, "Atom\nZed\nvim\n", got)
}

func TestSerializeEmpty(t *testing.T) {
	assert.Equal(t, "", Serialize(nil))
}

func TestSerializeDoesNotMutateInput(t *testing.T) {
	names := []string{"b", "a"}
	Serialize(names)
	assert.Equal(t, []string{"b", "a"}, names)
}

func TestChooseReturnsSelection(t *testing.T) {
	// A chooser that always picks the first line.
	selection, ok, err := Choose([]string{"Zed", "Atom", "vim"}, []string{"sh", "-c", "head -n 1"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Atom", selection)
}

func TestChooseTrimsOutput(t *testing.T) {
	selection, ok, err := Choose([]string{"Zed"}, []string{"sh", "-c", `cat >/dev/null; printf "  Zed \n"`})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Zed", selection)
}

func TestChooseNonZeroExitIsCancellation(t *testing.T) {
	_, ok, err := Choose([]string{"Zed"}, []string{"sh", "-c", "cat >/dev/null; exit 1"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChooseBlankOutputIsCancellation(t *testing.T) {
	_, ok, err := Choose([]string{"Zed"}, []string{"sh", "-c", `cat >/dev/null; printf "  \n"`})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChooseSpawnFailure(t *testing.T) {
	_, _, err := Choose([]string{"Zed"}, []string{"/no/such/menu-program"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/no/such/menu-program")
}

func TestChooseInvalidUTF8IsFatal(t *testing.T) {
	_, _, err := Choose([]string{"Zed"}, []string{"sh", "-c", `cat >/dev/null; printf "\377\376"`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UTF-8")
}
