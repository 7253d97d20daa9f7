package localsystem

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCommand is returned by Runner.Run when no program was given.
	ErrNoCommand = errors.New("no program to launch")

	// ErrProcessNotFound indicates the trusted process is not running or the
	// process table could not be read.
	ErrProcessNotFound = errors.New("trusted process not found")

	// ErrPrivilegeNotHeld indicates the privilege adjustment succeeded but
	// the token does not hold the privilege. This is what a non-elevated
	// caller gets.
	ErrPrivilegeNotHeld = errors.New("token does not hold the privilege")

	// ErrNoCapability is returned by the token broker when it is given a
	// capability that was never enabled.
	ErrNoCapability = errors.New("privilege capability not enabled")
)

// PlatformError records a failed operating system call.
type PlatformError struct {
	Op  string // name of the failing call, e.g. "DuplicateTokenEx"
	Err error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

func platformError(op string, err error) error {
	return &PlatformError{Op: op, Err: err}
}

// Failure is returned by Runner.Run when the launch sequence stops early.
type Failure struct {
	// State is the last state the run reached before the failing step.
	State State
	// Step names the failing step.
	Step string
	// Err is the underlying error.
	Err error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s (from %s): %v", f.Step, f.State, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}
