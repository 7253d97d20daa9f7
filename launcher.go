package localsystem

// LaunchProcess starts argv under token. argv[0] is a program path,
// relative or absolute, or a whole command line; any further elements are
// single arguments appended to it (see CommandLine).
//
// A single attempt is made. On success the caller owns both handles in the
// returned ProcessInfo.
func LaunchProcess(sys System, token Handle, argv []string) (ProcessInfo, error) {
	if len(argv) == 0 || argv[0] == "" {
		return ProcessInfo{}, ErrNoCommand
	}
	info, err := sys.CreateProcessAsUser(token, CommandLine(argv))
	if err != nil {
		return ProcessInfo{}, platformError("CreateProcessAsUser", err)
	}
	return info, nil
}
