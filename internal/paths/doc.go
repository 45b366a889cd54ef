// Package paths resolves the well-known locations of the layered
// configuration: the global config file under the XDG config home, the
// per-project .claude/config.json override, and the backup directory.
//
// Project discovery walks upward from a starting directory and stops at the
// first .claude/config.json found or at the repository boundary marked by a
// .git entry.
package paths
