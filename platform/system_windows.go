//go:build windows

package platform

import (
	"strings"

	"github.com/crafted-tech/localsystem"
	"golang.org/x/sys/windows"
)

// System implements localsystem.System with the Win32 API.
type System struct{}

var _ localsystem.System = (*System)(nil)

// New returns the Windows System.
func New() *System {
	return &System{}
}

// CloseHandle closes any handle returned by System.
func (*System) CloseHandle(h localsystem.Handle) error {
	return windows.CloseHandle(windows.Handle(h))
}

// MAKELANGID(LANG_NEUTRAL, SUBLANG_DEFAULT): the user's default language.
const langUserDefault = 0x0400

// FormatMessage returns the system description of a Win32 error code,
// without the trailing line break.
func (*System) FormatMessage(code uint32) (string, error) {
	buf := make([]uint16, 512)
	n, err := windows.FormatMessage(
		windows.FORMAT_MESSAGE_FROM_SYSTEM|windows.FORMAT_MESSAGE_IGNORE_INSERTS,
		0,
		code,
		langUserDefault,
		buf,
		nil,
	)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(windows.UTF16ToString(buf[:n])), nil
}
