package plan

import (
	"time"

	"go.uber.org/zap"

	"github.com/hasbyte1/go-shaping-utils/arr"
	"github.com/hasbyte1/go-shaping-utils/shape"
)

// Runner executes compiled plans.
type Runner struct {
	logger *zap.Logger
}

// RunnerOption is a functional option for configuring a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger for the runner.
func WithLogger(logger *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner creates a new runner. Without WithLogger it logs nothing.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Result is the outcome of a run. Groups is set when the plan groups;
// Records always holds the records in their final order.
type Result struct {
	Groups  []shape.Group[Record]
	Records []Record
}

// Grouped reports whether the run produced groups.
func (r Result) Grouped() bool { return r.Groups != nil }

// Run fills c.Defaults into records that lack them, orders the records in
// place by c.Order and then, when c.Group is set, groups them. Ordering first decides the order in which buckets are first
// seen. Grouping with deleteField strips fields from the records.
func (r *Runner) Run(c *Compiled, records []Record) Result {
	if c == nil {
		c = &Compiled{}
	}
	start := time.Now()
	r.logger.Debug("running plan",
		zap.Int("records", len(records)),
		zap.Int("order_depth", c.Order.Depth()),
		zap.Bool("grouped", c.Group != nil),
	)

	if filled := fillDefaults(records, c.Defaults); filled > 0 {
		r.logger.Debug("filled defaults", zap.Int("fields", filled))
	}
	if c.Order != nil {
		shape.OrderBy(records, c.Order)
	}
	if c.Group == nil {
		r.logger.Debug("ordered records", zap.Duration("duration", time.Since(start)))
		return Result{Records: records}
	}

	if missing := countMissing(records, c.Group.Field.Name); missing > 0 {
		r.logger.Debug("records without group field",
			zap.String("field", c.Group.Field.Name),
			zap.Int("records", missing),
		)
	}
	groups := shape.GroupBy(records, c.Group)
	r.logger.Debug("grouped records",
		zap.Int("buckets", len(groups)),
		zap.String("field", c.Group.Field.Name),
		zap.Duration("duration", time.Since(start)),
	)
	return Result{Groups: groups, Records: shape.Flatten(groups)}
}

// fillDefaults sets every default path a record lacks and returns how many
// fields were written.
func fillDefaults(records []Record, defaults []Default) int {
	n := 0
	for _, rec := range records {
		for _, d := range defaults {
			if !arr.Has(rec, d.Path) {
				arr.Set(rec, d.Path, d.Value)
				n++
			}
		}
	}
	return n
}

func countMissing(records []Record, path string) int {
	n := 0
	for _, rec := range records {
		if !arr.Has(rec, path) {
			n++
		}
	}
	return n
}
