package generator

// Outcome is the terminal state of a generation request. Failures are
// reported through error returns, not an Outcome value.
type Outcome string

const (
	// OutcomeDone means files were created and wired in.
	OutcomeDone Outcome = "done"
	// OutcomeSkipped means the resource or feature was already generated;
	// nothing was written.
	OutcomeSkipped Outcome = "skipped"
)

// Result summarizes a completed generation request.
type Result struct {
	Outcome      Outcome
	Name         string   // Resource name or feature flag.
	CreatedFiles []string // New files written, relative to the project root.
	MutatedFiles []string // Existing files that gained insertions.
}
