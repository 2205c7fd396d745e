// Package harness runs the rejection-sampling loop: draw a candidate from
// a generator, check it against the configured requirements, and repeat
// until a sample is accepted or the budget runs out.
package harness

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/pale-ridge/sampler/core"
	"github.com/pale-ridge/sampler/pkg/cache"
	"github.com/pale-ridge/sampler/pkg/metrics"
	"github.com/pale-ridge/sampler/pkg/tracing"
	"github.com/pale-ridge/sampler/policy/local"
)

// ErrBudgetExhausted is returned when no sample is accepted within the
// configured attempt budget.
var ErrBudgetExhausted = errors.New("harness: sampling budget exhausted")

// Harness wires a generator to a checker. Gen and Checker are required;
// everything else is optional and skipped when nil.
type Harness struct {
	Gen     core.Generator
	Checker core.SampleChecker

	Strategy    string // label for metrics and spans
	Budget      core.Budget
	Guard       *local.Guard
	Limiter     *rate.Limiter
	Cache       *cache.VerdictCache
	Fingerprint func(core.Sample) string
	Metrics     *metrics.SamplerMetrics
	Tracer      *tracing.Tracer
	Logger      *slog.Logger
}

// Sample draws candidates until one passes every requirement. It returns
// the accepted sample and the number of attempts it took.
func (h *Harness) Sample(ctx context.Context) (sample core.Sample, attempts int, err error) {
	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if h.Tracer != nil {
		var span trace.Span
		ctx, span = h.Tracer.StartSampleSpan(ctx, h.Strategy)
		defer func() {
			tracing.RecordSpanAttempts(span, attempts)
			if err != nil {
				tracing.RecordSpanError(span, err)
			} else {
				tracing.RecordSpanSuccess(span)
			}
			span.End()
		}()
	}

	start := time.Now()
	for attempt := 1; ; attempt++ {
		if h.Budget.MaxAttempts > 0 && attempt > h.Budget.MaxAttempts {
			return nil, attempt - 1, ErrBudgetExhausted
		}
		if err := ctx.Err(); err != nil {
			return nil, attempt - 1, err
		}

		if h.Limiter != nil {
			if err := h.Limiter.Wait(ctx); err != nil {
				return nil, attempt - 1, err
			}
		}

		sample, err := h.generate(ctx)
		if err != nil {
			return nil, attempt - 1, fmt.Errorf("harness: %w", err)
		}

		checkStart := time.Now()
		ok, msg := h.check(sample)
		if h.Metrics != nil {
			h.Metrics.RecordCheckLatency(h.Strategy, time.Since(checkStart))
		}

		if ok {
			if h.Metrics != nil {
				h.Metrics.RecordAccepted(attempt)
			}
			logger.InfoContext(ctx, "sample accepted",
				"attempts", attempt,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return sample, attempt, nil
		}

		if h.Metrics != nil {
			h.Metrics.RecordRejected(msg)
		}
		logger.DebugContext(ctx, "sample rejected",
			"violation", msg,
			"attempt", attempt,
		)
	}
}

func (h *Harness) generate(ctx context.Context) (core.Sample, error) {
	if h.Guard == nil {
		return h.Gen.Generate(ctx)
	}

	var sample core.Sample
	err := h.Guard.Wrap(ctx, h.Budget, func(ctx context.Context) error {
		var err error
		sample, err = h.Guard.Generate(ctx, h.Gen)
		return err
	})
	return sample, err
}

func (h *Harness) check(sample core.Sample) (bool, string) {
	if h.Cache != nil && h.Fingerprint != nil {
		key := h.Fingerprint(sample)
		before := h.Cache.Stats()
		v := h.Cache.GetOrCheck(key, func() cache.Verdict {
			ok, msg := h.Checker.CheckRequirements(sample)
			return cache.Verdict{OK: ok, Msg: msg}
		})
		if h.Metrics != nil {
			if h.Cache.Stats().Hits > before.Hits {
				h.Metrics.RecordCacheHit()
			} else {
				h.Metrics.RecordCacheMiss()
			}
		}
		return v.OK, v.Msg
	}
	return h.Checker.CheckRequirements(sample)
}
