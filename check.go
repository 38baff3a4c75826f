package subsumecheck

import (
	"context"
	"time"
)

// CheckOptions configures one Check call. The zero value is usable and
// matches the defaults described in §9.
type CheckOptions struct {
	// Timeout bounds the Solver Driver's search. Zero means no deadline
	// beyond the caller's context.
	Timeout time.Duration

	// MaxArrayLen overrides the Universe's array-length bound that would
	// otherwise be derived from the schemas' prefixItems tuples (§5).
	MaxArrayLen int
}

// Option mutates a CheckOptions; functional-options, matching the teacher's
// configuration style elsewhere in this package.
type Option func(*CheckOptions)

// WithTimeout sets the Solver Driver's search deadline.
func WithTimeout(d time.Duration) Option {
	return func(o *CheckOptions) { o.Timeout = d }
}

// WithMaxArrayLen overrides the derived array-length universe bound.
func WithMaxArrayLen(n int) Option {
	return func(o *CheckOptions) { o.MaxArrayLen = n }
}

// Check decides whether every JSON value accepted by producer is also
// accepted by consumer, given their raw JSON schema documents. It is the single entry point tying together reference
// resolution, schema compilation, universe collection, and the bounded
// search (§4 steps 1-5).
func Check(ctx context.Context, producerDoc, consumerDoc []byte, opts ...Option) (*SubsumptionResult, error) {
	cfg := CheckOptions{}
	for _, opt := range opts {
		opt(&cfg)
	}

	producerRaw, err := ParseSchema(producerDoc)
	if err != nil {
		return nil, &MalformedSchemaError{Err: err}
	}
	consumerRaw, err := ParseSchema(consumerDoc)
	if err != nil {
		return nil, &MalformedSchemaError{Err: err}
	}

	producer, err := ResolveAndInline(producerRaw)
	if err != nil {
		return nil, err
	}
	consumer, err := ResolveAndInline(consumerRaw)
	if err != nil {
		return nil, err
	}

	universe := CollectUniverse(producer, consumer)
	if cfg.MaxArrayLen > 0 {
		universe.MaxArrayLen = cfg.MaxArrayLen
	}

	labels := newLabelRegistry()
	producerConstraint, err := CompileSchema(&compileCtx{side: SideProducer, labels: labels}, producer, "")
	if err != nil {
		return nil, err
	}
	consumerConstraint, err := CompileSchema(&compileCtx{side: SideConsumer, labels: labels}, consumer, "")
	if err != nil {
		return nil, err
	}

	info := collectBoundary(producer, consumer)

	solveCtx := ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		solveCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	result, err := Solve(solveCtx, producerConstraint, consumerConstraint, universe, info)
	if err != nil {
		return nil, err
	}

	if !result.SAT {
		return newSubsumed(), nil
	}

	d := diagnose(result.Witness, universe, producerConstraint.Leaves, consumerConstraint.Leaves)
	return newCounterexample(d), nil
}
