package tfoutput

import "fmt"

// ExternalToolError means the terraform invocation itself failed: the
// binary was missing, or it ran and exited non-zero.
type ExternalToolError struct {
	ExitCode int
	Stderr   string
}

func (e *ExternalToolError) Error() string {
	return fmt.Sprintf("terraform exited with code %d: %s", e.ExitCode, e.Stderr)
}

// MalformedOutputError means terraform ran successfully but printed
// something that is not the expected JSON document.
type MalformedOutputError struct {
	Err error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("terraform output is not valid JSON: %s", e.Err.Error())
}

func (e *MalformedOutputError) Cause() error {
	return e.Err
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Err
}
