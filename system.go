package localsystem

import "errors"

// Handle is an opaque operating system handle (a kernel object reference).
type Handle uintptr

// LUID is a locally unique identifier, used to name privileges.
type LUID struct {
	LowPart  uint32
	HighPart int32
}

// ProcessEntry is one row of a process table snapshot.
type ProcessEntry struct {
	PID     uint32
	ExeFile string
}

// ProcessInfo describes a newly created process. Both handles belong to the
// caller and must be closed.
type ProcessInfo struct {
	Process Handle
	Thread  Handle
	PID     uint32
}

var (
	// ErrNoMoreProcesses is returned by System.FirstProcess and
	// System.NextProcess when the snapshot has no further entries.
	ErrNoMoreProcesses = errors.New("no more processes in snapshot")

	// ErrNotAllAssigned is returned by System.AdjustTokenPrivilege when the
	// call succeeded but the token does not hold the requested privilege
	// (ERROR_NOT_ALL_ASSIGNED).
	ErrNotAllAssigned = errors.New("not all privileges assigned")
)

// System is the set of operating system services the launch sequence uses.
// Failing calls return the platform error unchanged (a syscall.Errno on
// Windows) so it can be decoded by FormatMessage.
type System interface {
	// CreateProcessSnapshot snapshots the process table.
	CreateProcessSnapshot() (Handle, error)
	// FirstProcess returns the first entry of a snapshot.
	FirstProcess(snapshot Handle) (ProcessEntry, error)
	// NextProcess returns the entry after the last one returned.
	NextProcess(snapshot Handle) (ProcessEntry, error)

	// OpenCurrentProcessToken opens the caller's own token with rights to
	// adjust and query privileges.
	OpenCurrentProcessToken() (Handle, error)
	// LookupPrivilegeValue resolves a privilege name on the local system.
	LookupPrivilegeValue(name string) (LUID, error)
	// AdjustTokenPrivilege enables or disables a single privilege.
	AdjustTokenPrivilege(token Handle, privilege LUID, enable bool) error
	// OpenProcess opens a process for query-information access only.
	OpenProcess(pid uint32) (Handle, error)
	// OpenProcessToken opens a process token for duplicate access only.
	OpenProcessToken(process Handle) (Handle, error)
	// DuplicateToken creates a primary token with maximum allowed access at
	// impersonation level SecurityImpersonation.
	DuplicateToken(token Handle) (Handle, error)

	// CreateProcessAsUser runs commandLine under token with default startup
	// info, no handle inheritance and no creation flags. No application
	// name is passed, so the program is resolved from the command line.
	CreateProcessAsUser(token Handle, commandLine string) (ProcessInfo, error)

	// CloseHandle releases a handle returned by any of the calls above.
	CloseHandle(h Handle) error
	// FormatMessage describes a platform error code.
	FormatMessage(code uint32) (string, error)
	// IsElevated reports whether the caller runs with an elevated token.
	IsElevated() bool
}
