package localsystem

import (
	"fmt"
	"runtime"
)

// ProjectURL is the home page shown in the usage banner.
const ProjectURL = "https://github.com/crafted-tech/localsystem"

// These variables are set via -ldflags at build time, for example:
//
//	go build -ldflags "-X github.com/crafted-tech/localsystem.GitCommit=$(git rev-parse --short HEAD)"
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// VersionInfo returns a formatted version string suitable for --version output.
func VersionInfo() string {
	return fmt.Sprintf("%s (%s, %s, %s/%s)", Version, GitCommit, BuildTime, runtime.GOOS, runtime.GOARCH)
}
