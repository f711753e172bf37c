package core

import "errors"

// Sentinel errors for parameter-vector construction and access.
var (
	// ErrEmptyParams indicates that a parameter vector with no entries was provided.
	ErrEmptyParams = errors.New("core: parameter vector is empty")

	// ErrLengthMismatch indicates that names and values differ in length.
	ErrLengthMismatch = errors.New("core: names and values differ in length")

	// ErrDuplicateName indicates that the same parameter name appears more than once.
	ErrDuplicateName = errors.New("core: duplicate parameter name")

	// ErrIndexOutOfRange indicates indexed access outside [0, Len).
	ErrIndexOutOfRange = errors.New("core: parameter index out of range")
)

// ParameterVector is an ordered mapping from parameter name to real value.
//
// Names are unique; their order defines matrix and vector indexing across
// the whole library. A ParameterVector is immutable from the outside: the
// accessors return copies, and perturbation during differentiation happens
// on clones.
type ParameterVector struct {
	names  []string
	values []float64
	index  map[string]int
}

// NewParameterVector builds a ParameterVector from parallel name/value
// slices. The slices are copied; the caller keeps ownership of its inputs.
//
// Returns ErrEmptyParams when names is empty, ErrLengthMismatch when the
// slices disagree in length, and ErrDuplicateName on a repeated name.
func NewParameterVector(names []string, values []float64) (ParameterVector, error) {
	if len(names) == 0 {
		return ParameterVector{}, ErrEmptyParams
	}
	if len(names) != len(values) {
		return ParameterVector{}, ErrLengthMismatch
	}

	idx := make(map[string]int, len(names))
	for i, name := range names {
		if _, seen := idx[name]; seen {
			return ParameterVector{}, ErrDuplicateName
		}
		idx[name] = i
	}

	pv := ParameterVector{
		names:  make([]string, len(names)),
		values: make([]float64, len(values)),
		index:  idx,
	}
	copy(pv.names, names)
	copy(pv.values, values)

	return pv, nil
}

// Len returns the number of parameters.
func (p ParameterVector) Len() int { return len(p.names) }

// Name returns the name of parameter i. Panics are avoided: out-of-range
// access returns the empty string (use Len to stay in bounds).
func (p ParameterVector) Name(i int) string {
	if i < 0 || i >= len(p.names) {
		return ""
	}
	return p.names[i]
}

// Value returns the value of parameter i, or 0 when out of range.
func (p ParameterVector) Value(i int) float64 {
	if i < 0 || i >= len(p.values) {
		return 0
	}
	return p.values[i]
}

// Names returns a copy of the parameter names in order.
func (p ParameterVector) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Values returns a copy of the parameter values in order.
func (p ParameterVector) Values() []float64 {
	out := make([]float64, len(p.values))
	copy(out, p.values)
	return out
}

// ValueOf looks a parameter up by name. The second return reports presence.
func (p ParameterVector) ValueOf(name string) (float64, bool) {
	i, ok := p.index[name]
	if !ok {
		return 0, false
	}
	return p.values[i], true
}

// Clone returns a deep copy sharing no backing storage with the receiver.
// The name index is shared: names never change after construction.
func (p ParameterVector) Clone() ParameterVector {
	out := ParameterVector{
		names:  p.names,
		values: make([]float64, len(p.values)),
		index:  p.index,
	}
	copy(out.values, p.values)
	return out
}

// SetValue overwrites the value of parameter i on the receiver.
// Intended for perturbation on clones during numeric differentiation.
func (p *ParameterVector) SetValue(i int, v float64) error {
	if i < 0 || i >= len(p.values) {
		return ErrIndexOutOfRange
	}
	p.values[i] = v
	return nil
}
