package types

import "strings"

// FileStatus is the terminal state of a single font file.
type FileStatus string

const (
	// StatusInstalled means one of the strategies succeeded
	StatusInstalled FileStatus = "installed"

	// StatusSkipped means the conflict resolver decided not to install
	StatusSkipped FileStatus = "skipped"

	// StatusFailed means every strategy in the chain failed
	StatusFailed FileStatus = "failed"

	// StatusWouldInstall is the dry-run proposal for a file that
	// would be handed to the strategy chain
	StatusWouldInstall FileStatus = "would-install"

	// StatusWouldSkip is the dry-run proposal for a file that would
	// be skipped
	StatusWouldSkip FileStatus = "would-skip"
)

// FileResult is the single, immutable result for one FontFile.
type FileResult struct {
	File   FontFile   `json:"file"`
	Status FileStatus `json:"status"`

	// Method is the strategy that installed (or would install) the font
	Method string `json:"method,omitempty"`

	// Reason explains a skip
	Reason string `json:"reason,omitempty"`

	// Attempts holds every failed attempt, in chain order, when the
	// file failed
	Attempts []InstallationAttempt `json:"attempts,omitempty"`
}

// Installed builds a result for a successful installation via method.
func Installed(f FontFile, method string) FileResult {
	return FileResult{File: f, Status: StatusInstalled, Method: method}
}

// Skipped builds a result for a file that was not installed.
func Skipped(f FontFile, reason string) FileResult {
	return FileResult{File: f, Status: StatusSkipped, Reason: reason}
}

// Failed builds a result for a file every strategy rejected.
func Failed(f FontFile, attempts []InstallationAttempt) FileResult {
	return FileResult{File: f, Status: StatusFailed, Attempts: attempts}
}

// WouldInstall builds a dry-run proposal naming the strategy that
// would be attempted first.
func WouldInstall(f FontFile, method string) FileResult {
	return FileResult{File: f, Status: StatusWouldInstall, Method: method}
}

// WouldSkip builds a dry-run skip proposal.
func WouldSkip(f FontFile, reason string) FileResult {
	return FileResult{File: f, Status: StatusWouldSkip, Reason: reason}
}

// FailureReason joins all attempt reasons in chain order into one
// human-readable string.
func (r FileResult) FailureReason() string {
	if len(r.Attempts) == 0 {
		return ""
	}
	parts := make([]string, 0, len(r.Attempts))
	for _, a := range r.Attempts {
		parts = append(parts, a.String())
	}
	return strings.Join(parts, "; ")
}
