/*
Package localsystem launches a program under the NT AUTHORITY\SYSTEM identity
by borrowing the access token of a trusted system process (winlogon.exe).

It is a one-shot tool for administrators. The caller must already be able to
enable SeDebugPrivilege on its own token, which in practice means running
from an elevated (Run as Administrator) console.

# Basic Usage

	runner := localsystem.New(platform.New(),
		localsystem.WithOutput(os.Stdout),
	)
	if _, err := runner.Run([]string{`C:\Windows\System32\cmd.exe`}); err != nil {
		os.Exit(1)
	}

# Launch Sequence

Run walks a fixed, linear sequence of states. Each transition depends on
exactly one platform call:

  - SelfTokenOpened: open the caller's own token (adjust + query)
  - PrivilegeElevated: enable SeDebugPrivilege on that token
  - TrustedProcessFound: find winlogon.exe in a process snapshot
  - TrustedProcessOpened: open it with PROCESS_QUERY_INFORMATION
  - SourceTokenOpened: open its token with TOKEN_DUPLICATE
  - ImpersonationTokenReady: DuplicateTokenEx into a primary token
  - ProcessLaunched: CreateProcessAsUser with the new token
  - Done

Any failure moves the run to Failed. Every handle acquired up to that point
is closed before Run returns, and exactly one message is printed.

# Operating System Access

The package itself never calls the operating system. Everything goes through
the System interface; the platform package provides the Windows
implementation. Tests substitute a fake that counts open handles.
*/
package localsystem
