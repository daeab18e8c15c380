// Package version reports the respak build.
//
// Values come from, in order of preference:
//   - Version, Commit and Date set at link time with -ldflags
//   - the module and VCS settings embedded by the Go toolchain
//   - "development" / "unknown"
//
// The version string is printed by respak --version and stored in every
// index.json so an unpack can tell which build produced a packed tree.
package version
