package service

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"time"

	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"

	"github.com/pixeltrack/pixeltrack/pkg/logger"
)

const (
	HealthStatusOK       = "ok"
	HealthStatusDegraded = "degraded"

	pingTimeout = 2 * time.Second
)

var (
	dependencyKey = tag.MustNewKey("dependency")

	mDependencyUp = stats.Int64("pixeltrack/dependency_up", "1 when the last ping succeeded", stats.UnitDimensionless)
	mPingLatency  = stats.Float64("pixeltrack/dependency_ping_latency", "Ping round trip", stats.UnitMilliseconds)
	mGoroutines   = stats.Int64("pixeltrack/goroutines", "Number of goroutines", stats.UnitDimensionless)
	mHeapAlloc    = stats.Int64("pixeltrack/heap_alloc", "Bytes of allocated heap objects", stats.UnitBytes)
)

// HealthViews are registered with the metrics exporters at startup
var HealthViews = []*view.View{
	{Name: "pixeltrack/dependency_up", Measure: mDependencyUp, TagKeys: []tag.Key{dependencyKey}, Aggregation: view.LastValue()},
	{Name: "pixeltrack/dependency_ping_latency", Measure: mPingLatency, TagKeys: []tag.Key{dependencyKey},
		Aggregation: view.Distribution(1, 5, 10, 25, 50, 100, 250, 500, 1000, 2000)},
	{Name: "pixeltrack/goroutines", Measure: mGoroutines, Aggregation: view.LastValue()},
	{Name: "pixeltrack/heap_alloc", Measure: mHeapAlloc, Aggregation: view.LastValue()},
}

// Pinger is satisfied by *sql.DB and by small adapters around other clients
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingFunc adapts a function to Pinger
type PingFunc func(ctx context.Context) error

func (f PingFunc) PingContext(ctx context.Context) error { return f(ctx) }

type HealthReport struct {
	Status  string            `json:"status"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

// HealthMonitor pings the backing stores and records runtime metrics
type HealthMonitor struct {
	checks          map[string]Pinger
	version         string
	checkInterval   time.Duration
	metricsInterval time.Duration
	logger          logger.Logger

	mu   sync.RWMutex
	last map[string]error
}

type HealthMonitorConfig struct {
	Checks          map[string]Pinger
	Version         string
	CheckInterval   time.Duration
	MetricsInterval time.Duration
	Logger          logger.Logger
}

func NewHealthMonitor(cfg HealthMonitorConfig) *HealthMonitor {
	m := &HealthMonitor{
		checks:          cfg.Checks,
		version:         cfg.Version,
		checkInterval:   cfg.CheckInterval,
		metricsInterval: cfg.MetricsInterval,
		logger:          cfg.Logger,
		last:            make(map[string]error),
	}
	if m.checkInterval <= 0 {
		m.checkInterval = 30 * time.Second
	}
	if m.metricsInterval <= 0 {
		m.metricsInterval = 15 * time.Second
	}
	return m
}

// Check pings every dependency now
func (m *HealthMonitor) Check(ctx context.Context) HealthReport {
	report := HealthReport{
		Status:  HealthStatusOK,
		Version: m.version,
		Checks:  make(map[string]string, len(m.checks)),
	}

	results := make(map[string]error, len(m.checks))
	for _, name := range m.names() {
		err := m.ping(ctx, name, m.checks[name])
		results[name] = err
		if err != nil {
			report.Status = HealthStatusDegraded
			report.Checks[name] = err.Error()
			continue
		}
		report.Checks[name] = HealthStatusOK
	}

	m.mu.Lock()
	m.last = results
	m.mu.Unlock()

	return report
}

// LastError returns the result of the latest background ping of name
func (m *HealthMonitor) LastError(name string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.last[name]
}

// Run pings dependencies and samples runtime metrics on their intervals until ctx is done
func (m *HealthMonitor) Run(ctx context.Context) error {
	checkTicker := time.NewTicker(m.checkInterval)
	defer checkTicker.Stop()
	metricsTicker := time.NewTicker(m.metricsInterval)
	defer metricsTicker.Stop()

	m.checkAndLog(ctx)
	m.recordSystemMetrics(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-checkTicker.C:
			m.checkAndLog(ctx)
		case <-metricsTicker.C:
			m.recordSystemMetrics(ctx)
		}
	}
}

func (m *HealthMonitor) checkAndLog(ctx context.Context) {
	previous := make(map[string]error)
	m.mu.RLock()
	for name, err := range m.last {
		previous[name] = err
	}
	m.mu.RUnlock()

	report := m.Check(ctx)
	if ctx.Err() != nil {
		return
	}

	for name, status := range report.Checks {
		wasDown := previous[name] != nil
		switch {
		case status != HealthStatusOK:
			m.logger.WithField("dependency", name).WithField("error", status).Error("Dependency unreachable")
		case wasDown:
			m.logger.WithField("dependency", name).Info("Dependency recovered")
		}
	}
}

func (m *HealthMonitor) ping(ctx context.Context, name string, p Pinger) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	err := p.PingContext(ctx)
	latency := float64(time.Since(start)) / float64(time.Millisecond)

	up := int64(1)
	if err != nil {
		up = 0
	}
	_ = stats.RecordWithTags(ctx, []tag.Mutator{tag.Upsert(dependencyKey, name)},
		mDependencyUp.M(up), mPingLatency.M(latency))

	return err
}

func (m *HealthMonitor) recordSystemMetrics(ctx context.Context) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	stats.Record(ctx, mGoroutines.M(int64(runtime.NumGoroutine())), mHeapAlloc.M(int64(mem.HeapAlloc)))
}

func (m *HealthMonitor) names() []string {
	names := make([]string, 0, len(m.checks))
	for name := range m.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
