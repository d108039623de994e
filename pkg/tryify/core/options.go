package core

import "context"

type OptionKey string

const (
	ProcessOptionKey OptionKey = "process_options"
	WorkerOptionKey  OptionKey = "worker_options"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

// ProcessOptions controls what happens to queued inputs once the context ends.
type ProcessOptions struct {
	// ProcessRemaining reports every queued input as a cancellation failure instead of dropping it
	ProcessRemaining bool
}

func WithProcessOptions(ctx context.Context, processRemaining bool) context.Context {
	return context.WithValue(ctx, ProcessOptionKey, ProcessOptions{ProcessRemaining: processRemaining})
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

// GetWorkerMaxCount returns the worker count stored in ctx, or defaultMaxWorkers.
// Non-positive counts fall back to a single worker.
func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	count := defaultMaxWorkers
	if options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions); ok {
		count = options.MaxCount.Value
	}
	if count < 1 {
		return 1
	}
	return count
}

func IsProcessRemainingEnabled(ctx context.Context, defaultProcessRemaining bool) bool {
	options, ok := ctx.Value(ProcessOptionKey).(ProcessOptions)
	if ok {
		return options.ProcessRemaining
	}
	return defaultProcessRemaining
}
