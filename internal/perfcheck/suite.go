package perfcheck

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// NavigationTiming carries one navigation sample in milliseconds.
type NavigationTiming struct {
	PageLoad   float64 `json:"pageLoad"`
	DOMReady   float64 `json:"domReady"`
	FirstPaint float64 `json:"firstPaint"`
	LCP        float64 `json:"lcp"`
	FID        float64 `json:"fid"`
}

// TimingSampler delivers navigation and paint timings collected from the
// render surface.
type TimingSampler interface {
	Sample(ctx context.Context) (NavigationTiming, error)
}

// ShiftObserver accumulates layout shift over the observation window.
type ShiftObserver interface {
	Observe(ctx context.Context, window time.Duration) (float64, error)
}

// ImageStat describes one catalog image as served.
type ImageStat struct {
	URL    string `json:"url"`
	Bytes  int64  `json:"bytes"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ImageEnumerator lists the images currently on the storefront.
type ImageEnumerator interface {
	Images(ctx context.Context) ([]ImageStat, error)
}

// RenderSampler reports the average card render time in milliseconds.
type RenderSampler interface {
	RenderTime(ctx context.Context) (float64, error)
}

// Endpoint is one weighted latency probe target.
type Endpoint struct {
	Name   string  `json:"name"`
	Path   string  `json:"path"`
	Weight float64 `json:"weight"`
}

// DefaultEndpoints returns the storefront probe battery.
func DefaultEndpoints() []Endpoint {
	return []Endpoint{
		{Name: "Home", Path: "/", Weight: 1.0},
		{Name: "Products", Path: "/products", Weight: 0.8},
		{Name: "Cart", Path: "/cart", Weight: 0.6},
		{Name: "Checkout", Path: "/checkout", Weight: 0.4},
	}
}

// shiftWindow is the layout-shift observation period.
const shiftWindow = 2 * time.Second

// cacheBenchIterations bounds the Redis microbenchmark.
const cacheBenchIterations = 10

// Suite runs the full performance battery.
type Suite struct {
	logger     *slog.Logger
	redis      *redis.Client
	client     *http.Client
	baseURL    string
	endpoints  []Endpoint
	timing     TimingSampler
	shifts     ShiftObserver
	images     ImageEnumerator
	render     RenderSampler
	thresholds Thresholds
	store      *ResultStore
	now        func() time.Time

	mu      sync.Mutex
	running bool
}

// SuiteDeps groups the suite collaborators.
type SuiteDeps struct {
	Logger    *slog.Logger
	Redis     *redis.Client
	Client    *http.Client
	BaseURL   string
	Endpoints []Endpoint
	Timing    TimingSampler
	Shifts    ShiftObserver
	Images    ImageEnumerator
	Render    RenderSampler
}

// NewSuite wires the battery. Missing optional samplers skip their
// sections instead of failing the run.
func NewSuite(deps SuiteDeps) *Suite {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	client := deps.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	endpoints := deps.Endpoints
	if endpoints == nil {
		endpoints = DefaultEndpoints()
	}
	return &Suite{
		logger:     logger.With(slog.String("component", "perfcheck")),
		redis:      deps.Redis,
		client:     client,
		baseURL:    deps.BaseURL,
		endpoints:  endpoints,
		timing:     deps.Timing,
		shifts:     deps.Shifts,
		images:     deps.Images,
		render:     deps.Render,
		thresholds: DefaultThresholds(),
		store:      NewResultStore(deps.Redis),
		now:        time.Now,
	}
}

// Run executes the battery once and persists the report. Concurrent runs
// are rejected.
func (s *Suite) Run(ctx context.Context) (*Report, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil, fmt.Errorf("perfcheck: suite already running")
	}
	s.running = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	start := s.now()
	sections := make(map[string]SectionResult)

	if s.timing != nil {
		basic, vitals, err := s.timingSections(ctx)
		if err != nil {
			s.logger.Warn("timing sample failed", slog.Any("error", err))
		} else {
			sections["basicMetrics"] = basic
			sections["coreWebVitals"] = vitals
		}
	}

	if s.redis != nil {
		sections["cachePerformance"] = s.cacheSection(ctx)
	}

	apiSection, err := s.apiSection(ctx)
	if err != nil {
		s.logger.Warn("endpoint probes failed", slog.Any("error", err))
	} else {
		sections["apiPerformance"] = apiSection
	}

	if s.images != nil {
		if section, err := s.imageSection(ctx); err != nil {
			s.logger.Warn("image enumeration failed", slog.Any("error", err))
		} else {
			sections["imageOptimization"] = section
		}
	}

	if s.render != nil {
		if renderTime, err := s.render.RenderTime(ctx); err != nil {
			s.logger.Warn("render sample failed", slog.Any("error", err))
		} else {
			sections["renderPerformance"] = newSection(map[string]MetricScore{
				"renderTime": {Value: renderTime, Score: s.thresholds.RenderTime.Rate(renderTime), Threshold: s.thresholds.RenderTime},
			})
		}
	}

	report := &Report{
		Timestamp: start,
		Duration:  s.now().Sub(start),
		Sections:  sections,
		Summary:   summarize(sections),
	}

	if s.store != nil && s.redis != nil {
		if err := s.store.Record(ctx, report); err != nil {
			s.logger.Warn("report persistence failed", slog.Any("error", err))
		}
	}

	s.logger.Info("performance suite completed",
		slog.String("overall", string(report.Summary.Overall)),
		slog.Int("passed", report.Summary.Passed),
		slog.Int("failed", report.Summary.Failed),
		slog.Duration("duration", report.Duration))
	return report, nil
}

// timingSections samples navigation timing once and splits it into the
// basic-metrics and core-web-vitals sections.
func (s *Suite) timingSections(ctx context.Context) (SectionResult, SectionResult, error) {
	sample, err := s.timing.Sample(ctx)
	if err != nil {
		return SectionResult{}, SectionResult{}, err
	}

	basic := newSection(map[string]MetricScore{
		"pageLoad":   {Value: sample.PageLoad, Score: s.thresholds.PageLoad.Rate(sample.PageLoad), Threshold: s.thresholds.PageLoad},
		"domReady":   {Value: sample.DOMReady, Score: s.thresholds.DOMReady.Rate(sample.DOMReady), Threshold: s.thresholds.DOMReady},
		"firstPaint": {Value: sample.FirstPaint, Score: s.thresholds.FirstPaint.Rate(sample.FirstPaint), Threshold: s.thresholds.FirstPaint},
	})

	vitals := map[string]MetricScore{
		"lcp": {Value: sample.LCP, Score: s.thresholds.LCP.Rate(sample.LCP), Threshold: s.thresholds.LCP},
		"fid": {Value: sample.FID, Score: s.thresholds.FID.Rate(sample.FID), Threshold: s.thresholds.FID},
	}
	if s.shifts != nil {
		cls, err := s.shifts.Observe(ctx, shiftWindow)
		if err != nil {
			s.logger.Warn("layout shift observation failed", slog.Any("error", err))
		} else {
			vitals["cls"] = MetricScore{Value: cls, Score: s.thresholds.CLS.Rate(cls), Threshold: s.thresholds.CLS}
		}
	}
	return basic, newSection(vitals), nil
}

// cacheSection benchmarks Redis round trips with throwaway keys.
func (s *Suite) cacheSection(ctx context.Context) SectionResult {
	prefix := "perf:bench:" + uuid.NewString()
	payload := []byte(`{"test":"data"}`)

	writeStart := s.now()
	for i := 0; i < cacheBenchIterations; i++ {
		key := fmt.Sprintf("%s:%d", prefix, i)
		if err := s.redis.Set(ctx, key, payload, time.Minute).Err(); err != nil {
			s.logger.Warn("cache write benchmark failed", slog.Any("error", err))
			break
		}
	}
	writeMs := float64(s.now().Sub(writeStart).Microseconds()) / 1000 / cacheBenchIterations

	readStart := s.now()
	for i := 0; i < cacheBenchIterations; i++ {
		key := fmt.Sprintf("%s:%d", prefix, i)
		if err := s.redis.Get(ctx, key).Err(); err != nil {
			s.logger.Warn("cache read benchmark failed", slog.Any("error", err))
			break
		}
	}
	readMs := float64(s.now().Sub(readStart).Microseconds()) / 1000 / cacheBenchIterations

	for i := 0; i < cacheBenchIterations; i++ {
		_ = s.redis.Del(ctx, fmt.Sprintf("%s:%d", prefix, i)).Err()
	}

	avg := (writeMs + readMs) / 2
	return newSection(map[string]MetricScore{
		"cacheSpeed": {Value: avg, Score: s.thresholds.CacheSpeed.Rate(avg), Threshold: s.thresholds.CacheSpeed},
	})
}

// apiSection probes the storefront endpoints concurrently and scores the
// weighted average latency.
func (s *Suite) apiSection(ctx context.Context) (SectionResult, error) {
	type probe struct {
		endpoint Endpoint
		latency  float64
		failed   bool
	}
	probes := make([]probe, len(s.endpoints))

	g, gctx := errgroup.WithContext(ctx)
	for i, ep := range s.endpoints {
		i, ep := i, ep
		g.Go(func() error {
			probes[i].endpoint = ep
			req, err := http.NewRequestWithContext(gctx, http.MethodGet, s.baseURL+ep.Path, nil)
			if err != nil {
				probes[i].failed = true
				return nil
			}
			start := s.now()
			resp, err := s.client.Do(req)
			if err != nil {
				probes[i].failed = true
				return nil
			}
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			probes[i].latency = float64(s.now().Sub(start).Microseconds()) / 1000
			probes[i].failed = resp.StatusCode >= http.StatusInternalServerError
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SectionResult{}, err
	}

	var weightedSum, weightTotal float64
	failures := 0
	for _, p := range probes {
		if p.failed {
			failures++
			continue
		}
		weightedSum += p.latency * p.endpoint.Weight
		weightTotal += p.endpoint.Weight
	}
	if weightTotal == 0 {
		return SectionResult{}, fmt.Errorf("perfcheck: every endpoint probe failed")
	}

	avg := weightedSum / weightTotal
	metrics := map[string]MetricScore{
		"apiResponse": {Value: avg, Score: s.thresholds.APIResponse.Rate(avg), Threshold: s.thresholds.APIResponse},
	}
	if failures > 0 {
		metrics["failedProbes"] = MetricScore{Value: float64(failures), Score: ScorePoor, Threshold: Threshold{}}
	}
	return newSection(metrics), nil
}

// imageSection scores the average served image weight in kilobytes and
// flags images without declared dimensions.
func (s *Suite) imageSection(ctx context.Context) (SectionResult, error) {
	images, err := s.images.Images(ctx)
	if err != nil {
		return SectionResult{}, err
	}
	if len(images) == 0 {
		return newSection(map[string]MetricScore{}), nil
	}

	var totalBytes int64
	missingDims := 0
	for _, img := range images {
		totalBytes += img.Bytes
		if img.Width == 0 || img.Height == 0 {
			missingDims++
		}
	}
	avgKB := float64(totalBytes) / float64(len(images)) / 1024

	metrics := map[string]MetricScore{
		"averageImageSize": {Value: avgKB, Score: s.thresholds.ImageSize.Rate(avgKB), Threshold: s.thresholds.ImageSize},
	}
	if missingDims > 0 {
		metrics["missingDimensions"] = MetricScore{Value: float64(missingDims), Score: ScoreNeedsImprovement, Threshold: Threshold{}}
	}
	return newSection(metrics), nil
}
