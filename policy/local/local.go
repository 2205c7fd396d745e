package local

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"github.com/pale-ridge/sampler/core"
)

// Guard bounds calls into external collaborators:
// - Wrap enforces the budget timeout around a blocking call
// - Generate routes sample generation through a circuit breaker, so a
//   persistently failing generator stops being hammered
type Guard struct {
	breaker *gobreaker.CircuitBreaker
}

func NewGuard(name string) *Guard {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// Open if failure rate is > 50% over at least 5 requests
			return counts.Requests >= 5 && float64(counts.TotalFailures)/float64(counts.Requests) >= 0.5
		},
	})
	return &Guard{breaker: breaker}
}

// Wrap applies a timeout based on Budget and runs the function.
// A zero budget timeout falls back to 30s.
func (g *Guard) Wrap(ctx context.Context, b core.Budget, run func(ctx context.Context) error) error {
	timeout := b.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	execCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- run(execCtx)
	}()

	select {
	case <-execCtx.Done():
		if errors.Is(execCtx.Err(), context.DeadlineExceeded) {
			return context.DeadlineExceeded
		}
		return execCtx.Err()
	case err := <-done:
		return err
	}
}

// Generate draws one sample through the circuit breaker.
func (g *Guard) Generate(ctx context.Context, gen core.Generator) (core.Sample, error) {
	out, err := g.breaker.Execute(func() (interface{}, error) {
		return gen.Generate(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	return out, nil
}

// State reports the breaker state for health surfaces.
func (g *Guard) State() gobreaker.State {
	return g.breaker.State()
}
