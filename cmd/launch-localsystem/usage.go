package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/crafted-tech/localsystem"
)

// printUsage writes the help banner: what the tool does (bright white), how
// to call it (bright red), flags, then author, version and project (bright
// yellow).
func printUsage(w io.Writer, r *lipgloss.Renderer, flagSet *pflag.FlagSet) {
	title := r.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	usage := r.NewStyle().Foreground(lipgloss.Color("9"))
	meta := r.NewStyle().Foreground(lipgloss.Color("11"))

	fmt.Fprintln(w, title.Render(localsystem.TF("usage.title", programName)))
	fmt.Fprintln(w, title.Render(localsystem.T("usage.description")))
	fmt.Fprintln(w)
	fmt.Fprintln(w, usage.Render(localsystem.TF("usage.line", programName+".exe")))
	fmt.Fprintln(w)
	fmt.Fprintln(w, localsystem.T("usage.flags"))
	fmt.Fprint(w, flagSet.FlagUsages())
	fmt.Fprintln(w)
	fmt.Fprintln(w, meta.Render(localsystem.T("usage.author")))
	fmt.Fprintln(w, meta.Render(localsystem.TF("usage.version", localsystem.VersionInfo())))
	fmt.Fprintln(w, meta.Render(localsystem.TF("usage.project", localsystem.ProjectURL)))
	fmt.Fprintln(w, meta.Render(languageLine()))
}

func languageLine() string {
	var names []string
	for _, l := range localsystem.GetAvailableLanguages() {
		names = append(names, fmt.Sprintf("%s (%s)", l.Code, l.Name))
	}
	return "--lang: " + strings.Join(names, ", ")
}
