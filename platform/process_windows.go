//go:build windows

package platform

import (
	"errors"
	"unsafe"

	"github.com/crafted-tech/localsystem"
	"golang.org/x/sys/windows"
)

// CreateProcessSnapshot snapshots all processes in the system.
func (*System) CreateProcessSnapshot() (localsystem.Handle, error) {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return 0, err
	}
	return localsystem.Handle(snapshot), nil
}

// FirstProcess returns the first entry of the snapshot.
func (*System) FirstProcess(snapshot localsystem.Handle) (localsystem.ProcessEntry, error) {
	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))

	if err := windows.Process32First(windows.Handle(snapshot), &entry); err != nil {
		return localsystem.ProcessEntry{}, iterationError(err)
	}
	return toProcessEntry(&entry), nil
}

// NextProcess returns the next entry of the snapshot. The snapshot keeps
// its own cursor, so a fresh entry buffer is fine.
func (*System) NextProcess(snapshot localsystem.Handle) (localsystem.ProcessEntry, error) {
	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))

	if err := windows.Process32Next(windows.Handle(snapshot), &entry); err != nil {
		return localsystem.ProcessEntry{}, iterationError(err)
	}
	return toProcessEntry(&entry), nil
}

func toProcessEntry(entry *windows.ProcessEntry32) localsystem.ProcessEntry {
	return localsystem.ProcessEntry{
		PID:     entry.ProcessID,
		ExeFile: windows.UTF16ToString(entry.ExeFile[:]),
	}
}

// iterationError maps the end-of-snapshot code to ErrNoMoreProcesses.
func iterationError(err error) error {
	if errors.Is(err, windows.ERROR_NO_MORE_FILES) {
		return localsystem.ErrNoMoreProcesses
	}
	return err
}
