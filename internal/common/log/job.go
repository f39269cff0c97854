package log

import (
	"context"
	"time"

	"github.com/printhaus/go-shop-finance/internal/common/xlog"
)

const jobPrefix = "[JOB]"

// JobRun describes one invocation of a batch job.
type JobRun struct {
	Name    string
	Version string
	// Date is the date flag as given; empty means today.
	Date        string
	RunningDate time.Time
	StartedAt   time.Time
}

// LogJob writes the closing line of a job run. Failures are logged as warnings
// because the worker exit code already reports them.
func LogJob(ctx context.Context, run JobRun, err error) {
	fields := []xlog.Field{
		xlog.String("job-name", run.Name),
		xlog.String("version", run.Version),
		xlog.String("execution-date", run.Date),
	}
	if !run.RunningDate.IsZero() {
		fields = append(fields, xlog.String("running-date", run.RunningDate.Format(time.DateOnly)))
	}
	if !run.StartedAt.IsZero() {
		fields = append(fields, xlog.Duration("duration", time.Since(run.StartedAt)))
	}

	if err != nil {
		xlog.Warn(ctx, jobPrefix, append(fields, xlog.String("status", "fail"), xlog.Err(err))...)
		return
	}
	xlog.Info(ctx, jobPrefix, append(fields, xlog.String("status", "success"))...)
}
