// Package buildinfo carries the small amount of version metadata the CLI
// commands print with --version. It replaces the teacher's original
// banner-printing helper with just the data that survives the port: the
// full formatted-printing/licensing helper stack is out of scope.
package buildinfo

// Version is the module's release version. Overridden at build time via
// -ldflags "-X github.com/loblolly986/yori/internal/buildinfo.Version=...".
var Version = "dev"

// Banner returns the one-line version string CLI commands print for
// --version, naming the given program.
func Banner(program string) string {
	return program + " " + Version
}
