package localsystem

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultProcessName is the trusted system process whose token is borrowed.
// winlogon.exe runs as SYSTEM in every interactive session.
const DefaultProcessName = "winlogon.exe"

// FindProcess returns the PID of the first process in a fresh snapshot whose
// executable name equals name, ignoring case.
//
// A zero PID means not found. The error is then ErrProcessNotFound; if the
// snapshot could not be taken or read it also wraps a *PlatformError naming
// the failing call. The snapshot handle is always closed before returning;
// if that fails the close error is joined to the result, so a non-zero PID
// can come with an error and is still valid.
func FindProcess(sys System, name string) (uint32, error) {
	scope := newHandleScope(sys)
	pid, err := findProcess(scope, name)
	if closeErr := scope.closeAll(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}
	return pid, err
}

// findProcess is FindProcess with the snapshot owned by scope. The snapshot
// is closed before returning; close failures stay with scope.
func findProcess(scope *handleScope, name string) (uint32, error) {
	sys := scope.sys
	h, err := sys.CreateProcessSnapshot()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrProcessNotFound, platformError("CreateToolhelp32Snapshot", err))
	}
	snapshot := scope.track("process snapshot", h)
	defer scope.close(snapshot)

	op := "Process32First"
	entry, err := sys.FirstProcess(snapshot)
	for err == nil {
		if strings.EqualFold(entry.ExeFile, name) {
			return entry.PID, nil
		}
		op = "Process32Next"
		entry, err = sys.NextProcess(snapshot)
	}

	if errors.Is(err, ErrNoMoreProcesses) {
		return 0, ErrProcessNotFound
	}
	return 0, fmt.Errorf("%w: %w", ErrProcessNotFound, platformError(op, err))
}
