package forecast

import "fmt"

// MissingInputError reports a required reading field that was not supplied.
// No forecast is computed when any input is missing.
type MissingInputError struct {
	Field string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing required input: %s", e.Field)
}

// OutOfRangeInputError reports a reading field outside its physically
// plausible band. The engine refuses to compute rather than clamping
// user-supplied input.
type OutOfRangeInputError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *OutOfRangeInputError) Error() string {
	return fmt.Sprintf("input %s=%g out of range [%g, %g]", e.Field, e.Value, e.Min, e.Max)
}
