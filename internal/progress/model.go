// Package progress holds the user-adjustable percentage sliders shown on the
// dashboard. Each metric is independent: overall progress is entered manually
// and is not derived from the phase values.
package progress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ShayCichocki/oulab/pkg/models"
)

// Metric names a tracked percentage.
type Metric string

const (
	MetricOverall Metric = "overall"
	MetricPhase1  Metric = "phase1"
	MetricPhase2  Metric = "phase2"
	MetricRoute   Metric = "route"
)

// ErrUnknownMetric is returned for metric names outside Metrics().
var ErrUnknownMetric = errors.New("unknown metric")

// Metrics returns every metric in display order.
func Metrics() []Metric {
	return []Metric{MetricOverall, MetricPhase1, MetricPhase2, MetricRoute}
}

// ParseMetric converts a name to a Metric.
func ParseMetric(name string) (Metric, error) {
	m := Metric(name)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
	return m, nil
}

// Valid returns true if the metric is a known value.
func (m Metric) Valid() bool {
	switch m {
	case MetricOverall, MetricPhase1, MetricPhase2, MetricRoute:
		return true
	default:
		return false
	}
}

// Defaults returns the initial slider positions.
func Defaults() map[Metric]models.Percent {
	return map[Metric]models.Percent{
		MetricOverall: 72,
		MetricPhase1:  88,
		MetricPhase2:  46,
		MetricRoute:   82,
	}
}

// Value pairs a metric with its current percentage.
type Value struct {
	Metric  Metric
	Percent models.Percent
}

// Model stores the current value of every metric.
// Out-of-range input is clamped rather than rejected.
type Model struct {
	mu     sync.RWMutex
	values map[Metric]models.Percent
}

// New creates a Model seeded with initial. Metrics missing from initial
// start at their default; values are clamped.
func New(initial map[Metric]models.Percent) *Model {
	m := &Model{values: Defaults()}
	for metric, v := range initial {
		if metric.Valid() {
			m.values[metric] = models.Clamp(int(v))
		}
	}
	return m
}

// Set stores v for metric, clamped to [0,100], and returns the stored value.
func (m *Model) Set(metric Metric, v int) (models.Percent, error) {
	if !metric.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}

	p := models.Clamp(v)
	m.mu.Lock()
	m.values[metric] = p
	m.mu.Unlock()
	return p, nil
}

// Get returns the current value for metric.
func (m *Model) Get(metric Metric) (models.Percent, error) {
	if !metric.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[metric], nil
}

// Adjust moves metric by delta, saturating at the bounds.
func (m *Model) Adjust(metric Metric, delta int) (models.Percent, error) {
	if !metric.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	p := models.Clamp(int(m.values[metric]) + delta)
	m.values[metric] = p
	return p, nil
}

// Snapshot returns all values in Metrics() order.
func (m *Model) Snapshot() []Value {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Value, 0, len(m.values))
	for _, metric := range Metrics() {
		out = append(out, Value{Metric: metric, Percent: m.values[metric]})
	}
	return out
}
