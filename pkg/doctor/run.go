package doctor

import (
	"context"
	stderrors "errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/arthur-debert/dotdoctor/pkg/checks"
	"github.com/arthur-debert/dotdoctor/pkg/config"
	"github.com/arthur-debert/dotdoctor/pkg/logging"
	"github.com/arthur-debert/dotdoctor/pkg/report"
	"github.com/arthur-debert/dotdoctor/pkg/types"
)

// RunOptions bound the execution of a plan
type RunOptions struct {
	// Concurrency is the number of checks run at once. 0 means one per CPU.
	Concurrency int
	// Timeout applies to each check. 0 means config.DefaultTimeout.
	Timeout time.Duration
}

// Run executes every check of plan and returns their outcomes in plan
// order. A check that panics or exceeds the timeout fails; it never
// affects its siblings.
func Run(ctx context.Context, plan []checks.Check, opts RunOptions) []types.CheckOutcome {
	logger := logging.GetLogger("doctor")
	done := logging.LogOperationStart(logger, "run")
	defer done()

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}

	outcomes := make([]types.CheckOutcome, len(plan))
	semaphore := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, check := range plan {
		select {
		case <-ctx.Done():
			outcomes[i] = types.Fail(check.Category(), check.Name(), "cancelled before it started", "")
			continue
		case semaphore <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, check checks.Check) {
			defer wg.Done()
			defer func() { <-semaphore }()
			outcomes[i] = runOne(ctx, check, timeout)
		}(i, check)
	}

	wg.Wait()
	return outcomes
}

func runOne(ctx context.Context, check checks.Check, timeout time.Duration) (outcome types.CheckOutcome) {
	logger := logging.GetLogger("doctor").With().
		Str("category", check.Category()).
		Str("check", check.Name()).
		Logger()

	checkCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("Check panicked")
			outcome = types.Fail(check.Category(), check.Name(), fmt.Sprintf("check panicked: %v", r), "")
		}
		logger.Debug().
			Str("severity", outcome.Severity.String()).
			Dur("duration", time.Since(start)).
			Msg("Check finished")
	}()

	outcome = check.Run(checkCtx)
	if outcome.Name == "" {
		outcome.Name = check.Name()
	}
	if outcome.Category == "" {
		outcome.Category = check.Category()
	}

	if outcome.Severity != types.SeverityPass &&
		stderrors.Is(checkCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		outcome = types.Fail(check.Category(), check.Name(), "timed out after "+timeout.String(), "")
	}
	return outcome
}

// Diagnose plans, runs and aggregates in one call
func Diagnose(ctx context.Context, opts PlanOptions) (types.Report, error) {
	plan, err := Plan(opts)
	if err != nil {
		return types.Report{}, err
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	outcomes := Run(ctx, plan, RunOptions{
		Concurrency: cfg.Engine.Concurrency,
		Timeout:     cfg.Engine.TimeoutDuration(),
	})
	return report.Aggregate(outcomes), nil
}
