package rootio

import "fmt"

// OpenError reports a file that could not be opened or parsed.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// ResolutionError reports a path that does not resolve to a node.
type ResolutionError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("resolve %q: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("resolve %q: %s", e.Path, e.Reason)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}
