package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(versionString(version))
	},
}

// versionString labels builds whose version is not a semantic version tag
// as development builds.
func versionString(v string) string {
	if !semver.IsValid(v) {
		return fmt.Sprintf("studyhub %s (development build)", v)
	}
	if semver.Prerelease(v) != "" {
		return fmt.Sprintf("studyhub %s (pre-release)", v)
	}
	return "studyhub " + v
}
