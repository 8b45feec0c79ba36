package version

import "fmt"

// Set through -ldflags "-X github.com/codesphere-cloud/csvappend/internal/version.version=..." at release time.
var (
	version string = "0.0.0-dev"
	commit  string = "none"
	date    string = "unknown"
	os      string = "unknown"
	arch    string = "unknown"
)

func Version() string {
	return version
}

func Commit() string {
	return commit
}

func BuildDate() string {
	return date
}

// Platform returns os/arch of the build.
func Platform() string {
	return fmt.Sprintf("%s/%s", os, arch)
}
