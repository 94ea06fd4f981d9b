package types

// Counters holds the aggregate outcome counts for a batch run.
// Invariant: Installed + Failed + Skipped == Processed at all times.
type Counters struct {
	Processed int `json:"processed"`
	Installed int `json:"installed"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

// Consistent reports whether the counter invariant holds.
func (c Counters) Consistent() bool {
	return c.Installed+c.Failed+c.Skipped == c.Processed
}

// FolderResult groups the results for one folder, in discovery order.
type FolderResult struct {
	Path  string       `json:"path"`
	Files []FileResult `json:"files"`
}

// BatchReport accumulates FileResults as files reach a terminal
// state. Folder order and file order within a folder follow discovery
// order. Finalized by the orchestrator and handed read-only to the
// reporting collaborator.
type BatchReport struct {
	Folders  []FolderResult `json:"folders"`
	Counters Counters       `json:"counters"`
	DryRun   bool           `json:"dryRun"`

	folderIndex map[string]int
}

// NewBatchReport creates an empty report.
func NewBatchReport(dryRun bool) *BatchReport {
	return &BatchReport{
		DryRun:      dryRun,
		folderIndex: make(map[string]int),
	}
}

// Add records one file result under its folder, updating the
// aggregate counters. Dry-run proposals count toward the installed
// and skipped counters so the invariant holds in every mode.
func (r *BatchReport) Add(folder string, res FileResult) {
	idx, ok := r.folderIndex[folder]
	if !ok {
		idx = len(r.Folders)
		r.folderIndex[folder] = idx
		r.Folders = append(r.Folders, FolderResult{Path: folder})
	}
	r.Folders[idx].Files = append(r.Folders[idx].Files, res)

	r.Counters.Processed++
	switch res.Status {
	case StatusInstalled, StatusWouldInstall:
		r.Counters.Installed++
	case StatusSkipped, StatusWouldSkip:
		r.Counters.Skipped++
	case StatusFailed:
		r.Counters.Failed++
	}
}

// FoldersWithFonts returns the number of folders that contained at
// least one recognized font file.
func (r *BatchReport) FoldersWithFonts() int {
	return len(r.Folders)
}
