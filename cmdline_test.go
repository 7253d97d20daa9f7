package localsystem

import "testing"

func TestCommandLine(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want string
	}{
		{"bare path", []string{`C:\Windows\System32\cmd.exe`}, `C:\Windows\System32\cmd.exe`},
		{"relative path", []string{`tools\x.exe`}, `tools\x.exe`},
		{"command line in one argument", []string{"cmd.exe /k whoami"}, "cmd.exe /k whoami"},
		{"quoted program with switch", []string{`"C:\Program Files\x.exe" -q`}, `"C:\Program Files\x.exe" -q`},
		{"unquoted path with spaces kept as is", []string{`C:\Program Files\x.exe`}, `C:\Program Files\x.exe`},
		{"plain arguments", []string{"cmd.exe", "/k", "whoami"}, "cmd.exe /k whoami"},
		{"argument with space", []string{"tool.exe", "two words"}, `tool.exe "two words"`},
		{"empty argument", []string{"tool.exe", ""}, `tool.exe ""`},
		{"argument with quotes", []string{"tool.exe", `say "hi"`}, `tool.exe "say \"hi\""`},
		{"quote without space", []string{"tool.exe", `a"b`}, `tool.exe a\"b`},
		{"trailing backslash without space", []string{"tool.exe", `C:\dir\`}, `tool.exe C:\dir\`},
		{"trailing backslash with space", []string{"tool.exe", `C:\my dir\`}, `tool.exe "C:\my dir\\"`},
		{"backslashes before quote", []string{"tool.exe", `a\\"b c`}, `tool.exe "a\\\\\"b c"`},
		{"empty argv", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CommandLine(tt.argv); got != tt.want {
				t.Errorf("CommandLine(%q) = %s, want %s", tt.argv, got, tt.want)
			}
		})
	}
}
