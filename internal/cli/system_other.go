//go:build !windows

package cli

import "os"

// isAdmin reports whether the process runs as root, the closest
// analogue to an elevated token on non-Windows platforms.
func isAdmin() bool {
	return os.Geteuid() == 0
}
