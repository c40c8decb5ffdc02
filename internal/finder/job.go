package finder

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs contains the arguments for a discovery job submitted to River.
// The struct is used as the unique key for jobs so that one job serves every
// pending discovery of the same tenant and index range.
type JobArgs struct {
	// TenantID is the root tenant identifier to discover.
	TenantID string `json:"tenantId" river:"unique"`
	// MaxIndex is the highest implementation tenant index to probe.
	MaxIndex int `json:"maxIndex" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// uniqueJobPeriod defines the lookback window during which a job with the
	// same arguments is considered a duplicate across the specified states.
	uniqueJobPeriod time.Duration
}

// NewJobArgs creates job arguments with the retry and uniqueness settings of options.
func NewJobArgs(tenantID string, maxIndex int, options Options) JobArgs {
	return JobArgs{
		TenantID:        tenantID,
		MaxIndex:        maxIndex,
		maxAttempts:     options.MaxAttempts,
		uniqueJobPeriod: options.ResultCacheTTL,
	}
}

// Kind returns the River job kind used to register and dispatch the discovery worker.
func (args JobArgs) Kind() string { return "DiscoverTenantJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// including the maximum retry attempts and uniqueness constraints.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		// one job per tenant and index range in any live state
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
