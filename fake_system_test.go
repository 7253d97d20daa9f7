package localsystem

import (
	"fmt"
	"syscall"
)

const (
	errAccessDenied  = syscall.Errno(5)
	errFileNotFound  = syscall.Errno(2)
	errInvalidHandle = syscall.Errno(6)
)

// fakeSystem is an in-memory System. It hands out numbered handles, records
// which are open, and fails any call named in fail.
type fakeSystem struct {
	processes      []ProcessEntry
	fail           map[string]error
	notAllAssigned bool
	notElevated    bool
	messages       map[uint32]string

	nextHandle   Handle
	nextPID      uint32
	open         map[Handle]string
	cursor       map[Handle]int
	calls        []string
	launched     []ProcessInfo
	commandLines []string
	closed       []Handle
	badCloses    int
}

func newFakeSystem(processes ...ProcessEntry) *fakeSystem {
	return &fakeSystem{
		processes: processes,
		fail:      map[string]error{},
		messages: map[uint32]string{
			2: "The system cannot find the file specified.\r\n",
			5: "Access is denied.\r\n",
		},
		nextHandle: 0x100,
		nextPID:    4000,
		open:       map[Handle]string{},
		cursor:     map[Handle]int{},
	}
}

// standardProcesses resembles the head of a real Windows process table.
func standardProcesses() []ProcessEntry {
	return []ProcessEntry{
		{PID: 0, ExeFile: "[System Process]"},
		{PID: 4, ExeFile: "System"},
		{PID: 548, ExeFile: "csrss.exe"},
		{PID: 612, ExeFile: "WinLogon.EXE"},
		{PID: 1720, ExeFile: "winlogon.exe"},
		{PID: 2300, ExeFile: "explorer.exe"},
	}
}

func (f *fakeSystem) call(name string) error {
	f.calls = append(f.calls, name)
	return f.fail[name]
}

func (f *fakeSystem) alloc(kind string) Handle {
	f.nextHandle += 4
	f.open[f.nextHandle] = kind
	return f.nextHandle
}

func (f *fakeSystem) openCount() int {
	return len(f.open)
}

func (f *fakeSystem) called(name string) bool {
	for _, c := range f.calls {
		if c == name {
			return true
		}
	}
	return false
}

func (f *fakeSystem) CreateProcessSnapshot() (Handle, error) {
	if err := f.call("CreateProcessSnapshot"); err != nil {
		return 0, err
	}
	h := f.alloc("snapshot")
	f.cursor[h] = 0
	return h, nil
}

func (f *fakeSystem) FirstProcess(snapshot Handle) (ProcessEntry, error) {
	if err := f.call("FirstProcess"); err != nil {
		return ProcessEntry{}, err
	}
	f.cursor[snapshot] = 0
	return f.entry(snapshot)
}

func (f *fakeSystem) NextProcess(snapshot Handle) (ProcessEntry, error) {
	if err := f.call("NextProcess"); err != nil {
		return ProcessEntry{}, err
	}
	f.cursor[snapshot]++
	return f.entry(snapshot)
}

func (f *fakeSystem) entry(snapshot Handle) (ProcessEntry, error) {
	if _, ok := f.open[snapshot]; !ok {
		return ProcessEntry{}, errInvalidHandle
	}
	i := f.cursor[snapshot]
	if i >= len(f.processes) {
		return ProcessEntry{}, ErrNoMoreProcesses
	}
	return f.processes[i], nil
}

func (f *fakeSystem) OpenCurrentProcessToken() (Handle, error) {
	if err := f.call("OpenCurrentProcessToken"); err != nil {
		return 0, err
	}
	return f.alloc("self token"), nil
}

func (f *fakeSystem) LookupPrivilegeValue(name string) (LUID, error) {
	if err := f.call("LookupPrivilegeValue"); err != nil {
		return LUID{}, err
	}
	return LUID{LowPart: 20}, nil
}

func (f *fakeSystem) AdjustTokenPrivilege(token Handle, privilege LUID, enable bool) error {
	if err := f.call("AdjustTokenPrivilege"); err != nil {
		return err
	}
	if f.open[token] != "self token" {
		return errInvalidHandle
	}
	if f.notAllAssigned {
		return ErrNotAllAssigned
	}
	return nil
}

func (f *fakeSystem) OpenProcess(pid uint32) (Handle, error) {
	if err := f.call("OpenProcess"); err != nil {
		return 0, err
	}
	return f.alloc(fmt.Sprintf("process %d", pid)), nil
}

func (f *fakeSystem) OpenProcessToken(process Handle) (Handle, error) {
	if err := f.call("OpenProcessToken"); err != nil {
		return 0, err
	}
	if _, ok := f.open[process]; !ok {
		return 0, errInvalidHandle
	}
	return f.alloc("source token"), nil
}

func (f *fakeSystem) DuplicateToken(token Handle) (Handle, error) {
	if err := f.call("DuplicateToken"); err != nil {
		return 0, err
	}
	if f.open[token] != "source token" {
		return 0, errInvalidHandle
	}
	return f.alloc("primary token"), nil
}

func (f *fakeSystem) CreateProcessAsUser(token Handle, commandLine string) (ProcessInfo, error) {
	if err := f.call("CreateProcessAsUser"); err != nil {
		return ProcessInfo{}, err
	}
	if f.open[token] != "primary token" {
		return ProcessInfo{}, errInvalidHandle
	}
	f.commandLines = append(f.commandLines, commandLine)
	f.nextPID += 4
	info := ProcessInfo{
		Process: f.alloc("new process"),
		Thread:  f.alloc("new thread"),
		PID:     f.nextPID,
	}
	f.launched = append(f.launched, info)
	return info, nil
}

// CloseHandle releases h even when fail["CloseHandle"] is set, so a
// failing close never shows up as a leak.
func (f *fakeSystem) CloseHandle(h Handle) error {
	f.calls = append(f.calls, "CloseHandle")
	if _, ok := f.open[h]; !ok {
		f.badCloses++
		return errInvalidHandle
	}
	delete(f.open, h)
	delete(f.cursor, h)
	f.closed = append(f.closed, h)
	return f.fail["CloseHandle"]
}

func (f *fakeSystem) FormatMessage(code uint32) (string, error) {
	msg, ok := f.messages[code]
	if !ok {
		return "", syscall.Errno(317) // ERROR_MR_MID_NOT_FOUND
	}
	return msg, nil
}

func (f *fakeSystem) IsElevated() bool {
	return !f.notElevated
}
