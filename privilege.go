package localsystem

import (
	"errors"
	"fmt"
)

// DebugPrivilege lets the holder open any process regardless of its
// security descriptor. It is needed to open winlogon.exe.
const DebugPrivilege = "SeDebugPrivilege"

// Capability is proof that a privilege was adjusted on the caller's token.
// It can only be obtained from EnablePrivilege.
type Capability struct {
	privilege string
	enabled   bool
}

// Privilege returns the privilege name.
func (c Capability) Privilege() string {
	return c.privilege
}

// Enabled reports whether the privilege was enabled (as opposed to removed).
func (c Capability) Enabled() bool {
	return c.enabled
}

// EnablePrivilege enables or disables the named privilege on token.
//
// The adjustment can succeed while leaving the privilege unassigned because
// the token never held it. That case returns ErrPrivilegeNotHeld instead of a
// *PlatformError.
func EnablePrivilege(sys System, token Handle, name string, enable bool) (Capability, error) {
	luid, err := sys.LookupPrivilegeValue(name)
	if err != nil {
		return Capability{}, platformError("LookupPrivilegeValue", err)
	}

	if err := sys.AdjustTokenPrivilege(token, luid, enable); err != nil {
		if errors.Is(err, ErrNotAllAssigned) {
			return Capability{}, fmt.Errorf("%w: %s", ErrPrivilegeNotHeld, name)
		}
		return Capability{}, platformError("AdjustTokenPrivileges", err)
	}

	return Capability{privilege: name, enabled: enable}, nil
}
