//go:build !windows

package platform

import "github.com/crafted-tech/localsystem"

// System is a stand-in for the Windows System. Every call fails with
// ErrUnsupported.
type System struct{}

var _ localsystem.System = (*System)(nil)

// New returns a System that reports ErrUnsupported from every call.
func New() *System {
	return &System{}
}

func (*System) CreateProcessSnapshot() (localsystem.Handle, error) {
	return 0, ErrUnsupported
}

func (*System) FirstProcess(localsystem.Handle) (localsystem.ProcessEntry, error) {
	return localsystem.ProcessEntry{}, ErrUnsupported
}

func (*System) NextProcess(localsystem.Handle) (localsystem.ProcessEntry, error) {
	return localsystem.ProcessEntry{}, ErrUnsupported
}

func (*System) OpenCurrentProcessToken() (localsystem.Handle, error) {
	return 0, ErrUnsupported
}

func (*System) LookupPrivilegeValue(string) (localsystem.LUID, error) {
	return localsystem.LUID{}, ErrUnsupported
}

func (*System) AdjustTokenPrivilege(localsystem.Handle, localsystem.LUID, bool) error {
	return ErrUnsupported
}

func (*System) OpenProcess(uint32) (localsystem.Handle, error) {
	return 0, ErrUnsupported
}

func (*System) OpenProcessToken(localsystem.Handle) (localsystem.Handle, error) {
	return 0, ErrUnsupported
}

func (*System) DuplicateToken(localsystem.Handle) (localsystem.Handle, error) {
	return 0, ErrUnsupported
}

func (*System) CreateProcessAsUser(localsystem.Handle, string) (localsystem.ProcessInfo, error) {
	return localsystem.ProcessInfo{}, ErrUnsupported
}

func (*System) CloseHandle(localsystem.Handle) error {
	return ErrUnsupported
}

func (*System) FormatMessage(uint32) (string, error) {
	return "", ErrUnsupported
}

func (*System) IsElevated() bool {
	return false
}

// UserLanguage is not supported on non-Windows platforms.
func UserLanguage() string {
	return ""
}
