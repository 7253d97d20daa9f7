package localsystem

import "strings"

// CommandLine builds the command line passed to the new process.
//
// argv[0] is used as given: it may be a bare program path or a complete
// command line such as `cmd.exe /k whoami` or `"C:\Program Files\x.exe" -q`,
// and the system resolves it the same way it would from a shell. Any further
// elements are single arguments and are quoted with the Windows rules
// (the ones CommandLineToArgvW undoes) so they reach the program intact.
func CommandLine(argv []string) string {
	if len(argv) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(argv[0])
	for _, arg := range argv[1:] {
		b.WriteByte(' ')
		appendQuotedArg(&b, arg)
	}
	return b.String()
}

func appendQuotedArg(b *strings.Builder, arg string) {
	if arg == "" {
		b.WriteString(`""`)
		return
	}
	hasSpace := strings.ContainsAny(arg, " \t")
	if !hasSpace && !strings.ContainsAny(arg, `"\`) {
		b.WriteString(arg)
		return
	}

	if hasSpace {
		b.WriteByte('"')
	}
	slashes := 0
	for i := 0; i < len(arg); i++ {
		c := arg[i]
		switch c {
		case '\\':
			slashes++
		case '"':
			// Backslashes before a quote are literal only when doubled.
			b.WriteString(strings.Repeat(`\`, slashes+1))
			slashes = 0
		default:
			slashes = 0
		}
		b.WriteByte(c)
	}
	if hasSpace {
		// Same for trailing backslashes before the closing quote.
		b.WriteString(strings.Repeat(`\`, slashes))
		b.WriteByte('"')
	}
}
