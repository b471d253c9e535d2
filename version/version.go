// Package version exposes build version information for the Genora Go client.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// ClientName identifies this client in User-Agent headers.
const ClientName = "Genora Go Client"

// Version is set at build time using -ldflags. When left at "dev" the
// module build info is consulted instead.
var Version = "dev"

// Resolve returns the effective client version.
func Resolve() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return Version
}

// UserAgent returns the standard User-Agent header value, in the form
// "<client name> <version> [Go/<runtime version>]".
func UserAgent() string {
	return fmt.Sprintf("%s %s [Go/%s]",
		ClientName, Resolve(), strings.TrimPrefix(runtime.Version(), "go"))
}
