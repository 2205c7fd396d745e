package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"math"
	"math/rand"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/pale-ridge/sampler/checker"
	"github.com/pale-ridge/sampler/core"
	"github.com/pale-ridge/sampler/harness"
	"github.com/pale-ridge/sampler/pkg/logging"
	"github.com/pale-ridge/sampler/pkg/metrics"
	"github.com/pale-ridge/sampler/pkg/tracing"
	"github.com/pale-ridge/sampler/policy/local"
	"github.com/pale-ridge/sampler/registry"
)

// scene is the demo sample: two objects on a unit-ish plane.
type scene struct {
	AX, AY float64
	BX, BY float64
}

func sceneCatalog() map[string]core.Predicate {
	return map[string]core.Predicate{
		"in_bounds": func(s core.Sample) bool {
			sc := s.(scene)
			return math.Abs(sc.AX) > 1 || math.Abs(sc.AY) > 1 ||
				math.Abs(sc.BX) > 1 || math.Abs(sc.BY) > 1
		},
		"min_separation": func(s core.Sample) bool {
			sc := s.(scene)
			return math.Hypot(sc.AX-sc.BX, sc.AY-sc.BY) < 0.1
		},
		"blanket_overlap": func(s core.Sample) bool {
			sc := s.(scene)
			return math.Hypot(sc.AX-sc.BX, sc.AY-sc.BY) < 0.02
		},
	}
}

func defaultRegistry() *registry.Registry {
	return &registry.Registry{Requirements: []registry.Entry{
		{Name: "blanket-overlap", Kind: "blanket-collision", Predicate: "blanket_overlap", Optional: true, ViolationMsg: "objects fully overlap"},
		{Name: "in-bounds", Predicate: "in_bounds", ViolationMsg: "scene out of bounds"},
		{Name: "min-separation", Kind: "intersection", Predicate: "min_separation", ViolationMsg: "objects too close"},
	}}
}

type sceneGenerator struct {
	rng *rand.Rand
}

func (g *sceneGenerator) Generate(ctx context.Context) (core.Sample, error) {
	coord := func() float64 { return g.rng.Float64()*4 - 2 }
	return scene{AX: coord(), AY: coord(), BX: coord(), BY: coord()}, nil
}

func buildChecker(cfg *harness.Config) core.SampleChecker {
	switch cfg.Strategy {
	case "basic":
		return checker.NewBasicChecker(cfg.InitialCollisionCheck)
	default:
		return checker.NewWeightedAcceptanceChecker(cfg.BufferSize)
	}
}

func main() {
	cfg := harness.LoadConfig()

	// Setup structured logging
	structured, err := logging.NewLogger(logging.Config{
		Level:  cfg.LogLevel,
		Format: "json",
		Output: "stdout",
	})
	if err != nil {
		log.Fatalf("setup logging: %v", err)
	}
	defer func() { _ = structured.Sync() }()
	logger := structured.GetSlog()
	slog.SetDefault(logger)

	// Load the requirement registry, falling back to the built-in demo set
	reg := defaultRegistry()
	if _, err := os.Stat(cfg.RegistryPath); err == nil {
		loaded, err := registry.Load(cfg.RegistryPath)
		if err != nil {
			log.Fatalf("load registry: %v", err)
		}
		reg = loaded
	}

	reqs, err := registry.Build(reg, sceneCatalog())
	if err != nil {
		log.Fatalf("build requirements: %v", err)
	}

	chk := buildChecker(cfg)
	chk.SetRequirements(reqs)

	var limiter *rate.Limiter
	if cfg.SampleRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.SampleRate), 1)
	}

	var tracer *tracing.Tracer
	if cfg.JaegerEndpoint != "" {
		tracer, err = tracing.NewTracer(tracing.Config{
			ServiceName:    "sampler",
			ServiceVersion: "dev",
			JaegerEndpoint: cfg.JaegerEndpoint,
			Environment:    "local",
		})
		if err != nil {
			log.Fatalf("setup tracing: %v", err)
		}
		defer func() { _ = tracer.Shutdown(context.Background()) }()
	}

	h := &harness.Harness{
		Gen:      &sceneGenerator{rng: rand.New(rand.NewSource(rand.Int63()))},
		Checker:  chk,
		Strategy: cfg.Strategy,
		Budget:   core.Budget{MaxAttempts: cfg.MaxAttempts, Timeout: cfg.GenerateTimeout},
		Guard:    local.NewGuard("scene-generator"),
		Limiter:  limiter,
		Metrics:  metrics.NewSamplerMetrics(nil),
		Tracer:   tracer,
		Logger:   logger,
	}

	// Setup HTTP routes
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok","service":"sampler"}`))
	})

	go func() {
		logger.Info("metrics server starting", "port", cfg.MetricsPort)
		log.Fatal(http.ListenAndServe(":"+cfg.MetricsPort, mux))
	}()

	logger.Info("sampler starting",
		"strategy", cfg.Strategy,
		"requirements", len(reqs),
		"max_attempts", cfg.MaxAttempts,
	)

	ctx := context.Background()
	accepted := 0
	for {
		_, attempts, err := h.Sample(ctx)
		if err != nil {
			if errors.Is(err, harness.ErrBudgetExhausted) {
				logger.Warn("budget exhausted", "max_attempts", cfg.MaxAttempts)
				continue
			}
			log.Fatalf("sampling failed: %v", err)
		}
		accepted++
		if accepted%100 == 0 {
			logger.Info("sampling progress", "accepted", accepted, "last_attempts", attempts)
		}
	}
}
