package types

// Status is the outcome of materializing one file
type Status string

const (
	// StatusWritten indicates the filtered content was written to the destination
	StatusWritten Status = "written"

	// StatusSkipped indicates the filtered content was blank and nothing was written
	StatusSkipped Status = "skipped"
)

// FileResult records what happened to a single source file
type FileResult struct {
	// RelPath is the path relative to both the source and destination roots
	RelPath string

	// Status is written or skipped
	Status Status

	// InputLines and OutputLines count lines before and after filtering
	InputLines  int
	OutputLines int
}

// UnusedFlag is an active flag that no condition in the tree referenced
type UnusedFlag struct {
	Name string

	// Suggestion is the closest declared flag, empty when none is close enough
	Suggestion string
}

// UsageReport is the flag usage diagnostic computed after a run
type UsageReport struct {
	// Unused lists active flags never referenced, sorted by name
	Unused []UnusedFlag

	// Used lists every flag referenced by an evaluated condition, sorted
	Used []string

	// Declared lists every flag named by any directive in the tree, sorted.
	// It is only populated when there are unused flags.
	Declared []string
}

// HasUnused reports whether any active flag went unused
func (r *UsageReport) HasUnused() bool {
	return r != nil && len(r.Unused) > 0
}

// RenderTreeResult is the result of rendering over a source tree
type RenderTreeResult struct {
	SourceRoot string
	DestRoot   string
	DryRun     bool

	// Files holds one entry per processed file, in walk order
	Files []FileResult

	// Used is the union of flags referenced while filtering
	Used FlagSet

	Report *UsageReport
}

// Count returns how many files ended with the given status
func (r *RenderTreeResult) Count(status Status) int {
	n := 0
	for _, f := range r.Files {
		if f.Status == status {
			n++
		}
	}
	return n
}
