// Package platform provides the operating system side of localsystem.
//
// Currently, only Windows is supported. On other platforms New returns a
// System whose every call fails with ErrUnsupported, so callers still build
// and report a readable error.
//
// # Features
//
// The Windows System provides:
//
//   - Process table: toolhelp snapshot iteration
//   - Tokens: open own/foreign process tokens, adjust privileges, duplicate
//   - Process creation: CreateProcessAsUser with a primary token
//   - Errors: FormatMessage for Win32 error codes
//   - Elevation: check whether the caller runs elevated
//   - Language: the user's preferred UI language
//
// # Example Usage
//
//	sys := platform.New()
//	runner := localsystem.New(sys)
//	if _, err := runner.Run([]string{"cmd.exe"}); err != nil {
//	    os.Exit(1)
//	}
package platform

import "errors"

// ErrUnsupported is returned by every System call on platforms other than
// Windows.
var ErrUnsupported = errors.New("platform: not supported on this operating system")
