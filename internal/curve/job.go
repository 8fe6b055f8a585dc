package curve

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// RefreshJobArgs contains the arguments for a curve refresh job submitted to
// River. The curve name is the unique key so at most one refresh per curve is
// in flight at a time.
type RefreshJobArgs struct {
	// Curve is the curve to refresh. It is marked as unique so River can
	// enforce one job per curve according to InsertOpts.UniqueOpts.
	Curve string `json:"curve" river:"unique"`
	// WindowDays is the trailing window to re-fetch.
	WindowDays int `json:"windowDays"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// NewRefreshJobArgs builds refresh job args with the retry limit applied.
func NewRefreshJobArgs(curve string, windowDays int, options Options) RefreshJobArgs {
	return RefreshJobArgs{
		Curve:       curve,
		WindowDays:  windowDays,
		maxAttempts: options.MaxAttempts,
	}
}

// Kind returns the River job kind used to register and dispatch the refresh worker.
func (args RefreshJobArgs) Kind() string { return "RefreshCurveJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// including the maximum retry attempts and uniqueness constraints to prevent
// duplicate refreshes of the same curve across non-terminal job states.
func (args RefreshJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		// make sure we only have one active refresh per curve
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
