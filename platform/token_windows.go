//go:build windows

package platform

import (
	"errors"
	"unsafe"

	"github.com/crafted-tech/localsystem"
	"golang.org/x/sys/windows"
)

var (
	modadvapi32               = windows.NewLazySystemDLL("advapi32.dll")
	procAdjustTokenPrivileges = modadvapi32.NewProc("AdjustTokenPrivileges")
)

// OpenCurrentProcessToken opens the caller's token with
// TOKEN_ADJUST_PRIVILEGES|TOKEN_QUERY.
func (*System) OpenCurrentProcessToken() (localsystem.Handle, error) {
	var token windows.Token
	err := windows.OpenProcessToken(windows.CurrentProcess(),
		windows.TOKEN_ADJUST_PRIVILEGES|windows.TOKEN_QUERY, &token)
	if err != nil {
		return 0, err
	}
	return localsystem.Handle(token), nil
}

// LookupPrivilegeValue resolves a privilege name on the local system.
func (*System) LookupPrivilegeValue(name string) (localsystem.LUID, error) {
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return localsystem.LUID{}, err
	}

	var luid windows.LUID
	if err := windows.LookupPrivilegeValue(nil, namePtr, &luid); err != nil {
		return localsystem.LUID{}, err
	}
	return localsystem.LUID{LowPart: luid.LowPart, HighPart: luid.HighPart}, nil
}

// AdjustTokenPrivilege enables or disables one privilege on token.
//
// The x/sys wrapper drops the last-error value when the call succeeds, and
// ERROR_NOT_ALL_ASSIGNED is only reported there, so the proc is called
// directly.
func (*System) AdjustTokenPrivilege(token localsystem.Handle, privilege localsystem.LUID, enable bool) error {
	var attributes uint32
	if enable {
		attributes = windows.SE_PRIVILEGE_ENABLED
	}

	tp := windows.Tokenprivileges{
		PrivilegeCount: 1,
		Privileges: [1]windows.LUIDAndAttributes{
			{
				Luid:       windows.LUID{LowPart: privilege.LowPart, HighPart: privilege.HighPart},
				Attributes: attributes,
			},
		},
	}

	r1, _, e1 := procAdjustTokenPrivileges.Call(
		uintptr(token),
		0, // DisableAllPrivileges = FALSE
		uintptr(unsafe.Pointer(&tp)),
		uintptr(unsafe.Sizeof(tp)),
		0, // no previous state
		0,
	)
	if r1 == 0 {
		return e1
	}
	if errors.Is(e1, windows.ERROR_NOT_ALL_ASSIGNED) {
		return localsystem.ErrNotAllAssigned
	}
	return nil
}

// IsElevated reports whether the caller's token is elevated, through the
// current process pseudo-token so nothing needs closing.
func (*System) IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// OpenProcess opens pid with PROCESS_QUERY_INFORMATION only.
func (*System) OpenProcess(pid uint32) (localsystem.Handle, error) {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_INFORMATION, false, pid)
	if err != nil {
		return 0, err
	}
	return localsystem.Handle(h), nil
}

// OpenProcessToken opens the token of process with TOKEN_DUPLICATE only.
func (*System) OpenProcessToken(process localsystem.Handle) (localsystem.Handle, error) {
	var token windows.Token
	if err := windows.OpenProcessToken(windows.Handle(process), windows.TOKEN_DUPLICATE, &token); err != nil {
		return 0, err
	}
	return localsystem.Handle(token), nil
}

// DuplicateToken duplicates token as a primary token usable by
// CreateProcessAsUser.
func (*System) DuplicateToken(token localsystem.Handle) (localsystem.Handle, error) {
	var primary windows.Token
	err := windows.DuplicateTokenEx(
		windows.Token(token),
		windows.MAXIMUM_ALLOWED,
		nil,
		windows.SecurityImpersonation,
		windows.TokenPrimary,
		&primary,
	)
	if err != nil {
		return 0, err
	}
	return localsystem.Handle(primary), nil
}
