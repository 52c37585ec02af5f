package render

import "fmt"

// UnsupportedTypeError is returned for objects whose class tag the
// dispatcher does not draw.
type UnsupportedTypeError struct {
	Class string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported object type %q", e.Class)
}

// InvalidHistogramError wraps a payload that failed shape validation.
type InvalidHistogramError struct {
	Name string
	Err  error
}

func (e *InvalidHistogramError) Error() string {
	return fmt.Sprintf("invalid histogram %q: %v", e.Name, e.Err)
}

func (e *InvalidHistogramError) Unwrap() error {
	return e.Err
}
