//go:build windows

package platform

import (
	"unsafe"

	"github.com/crafted-tech/localsystem"
	"golang.org/x/sys/windows"
)

// CreateProcessAsUser runs commandLine under token.
//
// No application name is passed: the program is taken from the command line,
// relative paths and quoting included. Environment and working directory are
// inherited from the caller.
func (*System) CreateProcessAsUser(token localsystem.Handle, commandLine string) (localsystem.ProcessInfo, error) {
	cmd, err := windows.UTF16PtrFromString(commandLine)
	if err != nil {
		return localsystem.ProcessInfo{}, err
	}

	si := windows.StartupInfo{
		Cb: uint32(unsafe.Sizeof(windows.StartupInfo{})),
	}
	var pi windows.ProcessInformation

	err = windows.CreateProcessAsUser(
		windows.Token(token),
		nil, // application name
		cmd,
		nil,   // process security attributes
		nil,   // thread security attributes
		false, // inherit handles
		0,     // creation flags
		nil,   // environment
		nil,   // current directory
		&si,
		&pi,
	)
	if err != nil {
		return localsystem.ProcessInfo{}, err
	}

	return localsystem.ProcessInfo{
		Process: localsystem.Handle(pi.Process),
		Thread:  localsystem.Handle(pi.Thread),
		PID:     pi.ProcessId,
	}, nil
}
