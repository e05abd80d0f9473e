package storage

import (
	"github.com/armon/go-metrics"
	"github.com/gostonefire/dictionary/engine"
	"github.com/hashicorp/go-hclog"
)

// MetricsPrefix - First part of every metric key emitted by the engines
const MetricsPrefix string = "dictionary"

// ModGuard - Is a snapshot of an engine's modification counter taken when an iterator is created.
// The live counter is read through a pointer so every check sees the current value.
type ModGuard struct {
	live     *int64
	expected int64
}

// NewModGuard - Returns a ModGuard that remembers the current value of the counter pointed to by live
func NewModGuard(live *int64) ModGuard {
	return ModGuard{live: live, expected: *live}
}

// Check - Returns an error of type engine.ConcurrentModification if the counter has moved since the guard was created
func (M ModGuard) Check() (err error) {
	if *M.live != M.expected {
		err = engine.ConcurrentModification{}
	}
	return
}

// Logger - Returns a logger named after the engine, or a null logger if none was given
func Logger(logger hclog.Logger, engineType int) hclog.Logger {
	if logger == nil {
		return hclog.NewNullLogger()
	}
	return logger.Named(engine.Name(engineType))
}

// IncrCounter - Increments the counter dictionary.<engine>.<name> by one
func IncrCounter(engineType int, name string) {
	metrics.IncrCounter([]string{MetricsPrefix, engine.Name(engineType), name}, 1)
}

// SetEntriesGauge - Sets the gauge dictionary.<engine>.entries to the given number of entries
func SetEntriesGauge(engineType int, entries int) {
	metrics.SetGauge([]string{MetricsPrefix, engine.Name(engineType), "entries"}, float32(entries))
}
