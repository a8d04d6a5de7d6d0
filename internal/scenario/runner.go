package scenario

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zeusync/geokit/internal/core/observability/log"
	"github.com/zeusync/geokit/pkg/collision"
	"github.com/zeusync/geokit/pkg/concurrent"
	"github.com/zeusync/geokit/pkg/gmath"
	"github.com/zeusync/geokit/pkg/hull"
	"github.com/zeusync/geokit/pkg/vector"
)

// RunnerOption is a function that configures a Runner.
type RunnerOption func(*RunnerConfig)

// RunnerConfig holds the runner settings.
type RunnerConfig struct {
	Workers int // Overrides the scenario's worker count when positive
}

// WithWorkers overrides the worker count of every scenario the runner executes.
func WithWorkers(workers int) RunnerOption {
	return func(c *RunnerConfig) { c.Workers = workers }
}

type Runner struct {
	log    log.Log
	config RunnerConfig
}

func NewRunner(logger log.Log, opts ...RunnerOption) *Runner {
	var cfg RunnerConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Runner{log: logger, config: cfg}
}

// Run evaluates every query and hull of s. A query that fails is recorded in
// the report and does not stop the run. Only an invalid scenario or a
// canceled context makes Run return an error.
func (r *Runner) Run(ctx context.Context, s *Scenario) (*Report, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	started := time.Now()
	runID := uuid.NewString()
	ctx = log.ContextWithRunID(ctx, runID)
	logger := r.log.WithContext(ctx).With(log.String("scenario", s.Name))

	workers := s.Workers
	if r.config.Workers > 0 {
		workers = r.config.Workers
	}
	workers = concurrent.Workers(workers, len(s.Queries)+len(s.Hulls)+len(s.RandomHulls))

	logger.Info("run started",
		log.Int("queries", len(s.Queries)),
		log.Int("hulls", len(s.Hulls)),
		log.Int("random_hulls", len(s.RandomHulls)),
		log.Int("workers", workers),
	)

	queries, err := concurrent.Map(ctx, s.Queries, workers, func(_ context.Context, _ int, q QuerySpec) (QueryResult, error) {
		res := evaluate(q)
		if res.Error != "" {
			logger.Warn("query failed", log.String("id", q.ID), log.String("error", res.Error))
		}
		return res, nil
	})
	if err != nil {
		logger.Error("run aborted", log.Error(err))
		return nil, err
	}

	hulls, err := r.hulls(ctx, s, workers)
	if err != nil {
		logger.Error("run aborted", log.Error(err))
		return nil, err
	}

	report := &Report{
		RunID:   runID,
		Name:    s.Name,
		Workers: workers,
		Queries: queries,
		Hulls:   hulls,
	}
	for _, q := range queries {
		switch {
		case q.Error != "":
			report.Failures++
		case q.Hit:
			report.Hits++
		default:
			report.Misses++
		}
	}
	report.Fingerprint = Fingerprint(report)
	elapsed := time.Since(started)
	report.ElapsedMs = float64(elapsed.Microseconds()) / 1000

	logger.Info("run finished",
		log.Int("hits", report.Hits),
		log.Int("misses", report.Misses),
		log.Int("failures", report.Failures),
		log.Int("hull_count", len(report.Hulls)),
		log.Uint64("fingerprint", report.Fingerprint),
		log.Duration("elapsed", elapsed),
	)
	return report, nil
}

func evaluate(q QuerySpec) QueryResult {
	res := QueryResult{ID: q.ID, A: q.A.Type, B: q.B.Type}

	built, err := q.build()
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.A, res.B = built.A.Kind.String(), built.B.Kind.String()

	var hit collision.HitData
	ok, err := collision.Intersect(built.A, built.B, &hit)
	if err != nil {
		res.Error = (&QueryError{ID: q.ID, Err: err}).Error()
		return res
	}
	res.Hit = ok
	if ok && collision.ProducesContact(built.A.Kind, built.B.Kind) {
		res.Contact = contactOf(hit)
	}
	return res
}

type hullJob struct {
	name          string
	random        bool
	points        []vector.Vec2
	keepCollinear bool
}

// hulls expands random hull entries into point sets and computes every hull.
// Each random entry draws from its own stream split off the scenario seed, so
// the points do not depend on the worker count.
func (r *Runner) hulls(ctx context.Context, s *Scenario, workers int) ([]HullResult, error) {
	jobs := make([]hullJob, 0, len(s.Hulls))
	for _, h := range s.Hulls {
		points := make([]vector.Vec2, len(h.Points))
		for i, p := range h.Points {
			points[i] = p.Vec()
		}
		jobs = append(jobs, hullJob{name: h.Name, points: points, keepCollinear: h.KeepCollinear})
	}

	streams := s.rand().Split(len(s.RandomHulls))
	for i, h := range s.RandomHulls {
		for n := 0; n < h.Count; n++ {
			jobs = append(jobs, hullJob{
				name:          fmt.Sprintf("%s#%d", h.Name, n),
				random:        true,
				points:        samplePoints(streams[i], h),
				keepCollinear: h.KeepCollinear,
			})
		}
	}

	results := make([]HullResult, len(jobs))
	err := concurrent.ForEach(ctx, jobs, workers, func(_ context.Context, idx int, job hullJob) error {
		h := hull.Convex(job.points, hull.WithCollinear(job.keepCollinear))
		out := make([]Point, len(h))
		for i, p := range h {
			out[i] = pointOf(p)
		}
		results[idx] = HullResult{
			Name:      job.name,
			Random:    job.random,
			Input:     len(job.points),
			Points:    out,
			Clockwise: len(h) >= 3 && hull.IsClockwise(h),
			Area:      gmath.Abs(hull.SignedArea(h)),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func samplePoints(rng *gmath.Rand, h RandomHullSpec) []vector.Vec2 {
	points := make([]vector.Vec2, h.Points)
	for i := range points {
		points[i] = vector.New(
			rng.Float32Range(h.Min[0], h.Max[0]),
			rng.Float32Range(h.Min[1], h.Max[1]),
		)
	}
	return points
}

// IsCanceled reports whether err comes from a canceled or expired context.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
