package core_test

import (
	"testing"

	"github.com/statkit/pmle/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewParameterVector_Empty verifies that an empty name list errors.
func TestNewParameterVector_Empty(t *testing.T) {
	_, err := core.NewParameterVector(nil, nil)
	assert.ErrorIs(t, err, core.ErrEmptyParams, "empty vector must error")
}

// TestNewParameterVector_LengthMismatch verifies length agreement between
// names and values.
func TestNewParameterVector_LengthMismatch(t *testing.T) {
	_, err := core.NewParameterVector([]string{"a", "b"}, []float64{1})
	assert.ErrorIs(t, err, core.ErrLengthMismatch, "unequal lengths must error")
}

// TestNewParameterVector_DuplicateName verifies name uniqueness.
func TestNewParameterVector_DuplicateName(t *testing.T) {
	_, err := core.NewParameterVector([]string{"a", "a"}, []float64{1, 2})
	assert.ErrorIs(t, err, core.ErrDuplicateName, "duplicate names must error")
}

// TestParameterVector_OrderAndAccess checks that order is preserved and
// both positional and by-name access agree.
func TestParameterVector_OrderAndAccess(t *testing.T) {
	pv, err := core.NewParameterVector(
		[]string{"Intercept", "ppltrst", "male"},
		[]float64{0.9659383, 0.0109796, -0.1890401},
	)
	require.NoError(t, err)

	require.Equal(t, 3, pv.Len())
	assert.Equal(t, "ppltrst", pv.Name(1))
	assert.Equal(t, 0.0109796, pv.Value(1))
	assert.Equal(t, []string{"Intercept", "ppltrst", "male"}, pv.Names())

	v, ok := pv.ValueOf("male")
	require.True(t, ok, "existing name must be found")
	assert.Equal(t, -0.1890401, v)

	_, ok = pv.ValueOf("income")
	assert.False(t, ok, "missing name must report absence")
}

// TestParameterVector_InputOwnership verifies that mutating the caller's
// slices after construction does not leak into the vector.
func TestParameterVector_InputOwnership(t *testing.T) {
	names := []string{"a", "b"}
	values := []float64{1, 2}
	pv, err := core.NewParameterVector(names, values)
	require.NoError(t, err)

	values[0] = 99
	names[1] = "mutated"

	assert.Equal(t, 1.0, pv.Value(0), "vector must copy values")
	assert.Equal(t, "b", pv.Name(1), "vector must copy names")
}

// TestParameterVector_CloneIsolation verifies that SetValue on a clone
// leaves the original untouched.
func TestParameterVector_CloneIsolation(t *testing.T) {
	pv, err := core.NewParameterVector([]string{"a", "b"}, []float64{1, 2})
	require.NoError(t, err)

	cl := pv.Clone()
	require.NoError(t, cl.SetValue(0, 42))

	assert.Equal(t, 42.0, cl.Value(0), "clone must take the new value")
	assert.Equal(t, 1.0, pv.Value(0), "original must be unchanged")

	assert.ErrorIs(t, cl.SetValue(5, 0), core.ErrIndexOutOfRange,
		"out-of-range SetValue must error")
}
