package query

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/marmos91/mountinfo/internal/logger"
	"github.com/marmos91/mountinfo/internal/sortedset"
	"github.com/marmos91/mountinfo/pkg/mounts"
)

// Stats summarizes one query run.
type Stats struct {
	Records  int           // records enumerated
	Rejected map[Stage]int // rejections per stage, artifacts included
	Selected int           // distinct values after the record pass
	Emitted  int           // values surviving the point filter
	Duration time.Duration
}

// Observer is notified of every decision and of the final statistics.
type Observer interface {
	ObserveDecision(r mounts.Record, d Decision)
	ObserveStats(s Stats)
}

// Emitter receives the values that survive the point filter, in output
// order. Close is called once after the last value.
type Emitter interface {
	Emit(value string) error
	Close() error
}

type lineEmitter struct {
	w io.Writer
}

// LineEmitter writes each value on its own line.
func LineEmitter(w io.Writer) Emitter {
	return &lineEmitter{w: w}
}

func (e *lineEmitter) Emit(value string) error {
	_, err := io.WriteString(e.w, value+"\n")
	return err
}

func (e *lineEmitter) Close() error {
	return nil
}

// Select runs the record pass: it enumerates src once and returns the
// distinct selected values in ascending order.
func Select(src mounts.Source, f *Filter, obs Observer) (*sortedset.Set, Stats, error) {
	set := sortedset.New()
	stats := Stats{Rejected: make(map[Stage]int)}

	err := src.Enumerate(func(r mounts.Record) {
		stats.Records++
		d := Evaluate(f, r)
		if obs != nil {
			obs.ObserveDecision(r, d)
		}
		if d.Outcome != Accept {
			stats.Rejected[d.Stage]++
			logger.Debug("mount rejected",
				logger.KeyTarget, r.Target,
				logger.KeyFSType, r.FSType,
				logger.KeyStage, d.Stage.String())
			return
		}
		set.Insert(d.Value)
	})
	if err != nil {
		return nil, stats, sourceError(err)
	}

	stats.Selected = set.Len()
	return set, stats, nil
}

// Run executes the whole query: record pass, reversal, point filter and
// emission. Values are emitted in descending order. When f.Quiet is set,
// or out is nil, nothing is emitted but the result is the same.
//
// Run returns ErrNoMatch when no value survived.
func Run(src mounts.Source, f *Filter, out Emitter, obs Observer) (Stats, error) {
	start := time.Now()

	set, stats, err := Select(src, f, obs)
	if err != nil {
		return stats, err
	}
	set.Reverse()

	if f.Quiet {
		out = nil
	}
	for v := range set.All {
		if !f.PointMatch(v) {
			continue
		}
		stats.Emitted++
		if out == nil {
			continue
		}
		if err := out.Emit(v); err != nil {
			return stats, &Error{Code: ErrOutput, Message: "write failed", Err: err}
		}
	}
	if out != nil {
		if err := out.Close(); err != nil {
			return stats, &Error{Code: ErrOutput, Message: "write failed", Err: err}
		}
	}

	stats.Duration = time.Since(start)
	if obs != nil {
		obs.ObserveStats(stats)
	}
	logger.Debug("query finished",
		logger.KeyRecords, stats.Records,
		logger.KeySelected, stats.Selected,
		logger.KeyEmitted, stats.Emitted,
		logger.KeyDurationMs, float64(stats.Duration.Microseconds())/1000.0)

	if stats.Emitted == 0 {
		return stats, ErrNoMatch
	}
	return stats, nil
}

// sourceError classifies a mount source failure.
func sourceError(err error) error {
	switch {
	case errors.Is(err, mounts.ErrMountTable):
		return &Error{Code: ErrMountTable, Err: err}
	case errors.Is(err, mounts.ErrEnumeration):
		return &Error{Code: ErrEnumeration, Err: err}
	case errors.Is(err, mounts.ErrUnsupportedPlatform):
		return &Error{Code: ErrUnsupported, Err: err}
	default:
		return fmt.Errorf("enumerate mounts: %w", err)
	}
}
