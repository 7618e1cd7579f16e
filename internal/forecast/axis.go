package forecast

import (
	"errors"
	"iter"
	"time"
)

// ISO8601Layout matches JavaScript's Date.toISOString output
const ISO8601Layout = "2006-01-02T15:04:05.000Z"

var ErrInvalidInterval = errors.New("time axis interval must be positive")

// TimeAxis is a compact description of evenly spaced instants in unix
// seconds: Start, Start+Interval, ... while strictly before End.
type TimeAxis struct {
	Start    int64
	End      int64
	Interval int64
}

func (a TimeAxis) Validate() error {
	if a.Interval <= 0 {
		return ErrInvalidInterval
	}
	return nil
}

// Len is ceil((End-Start)/Interval), or 0 for an empty or invalid axis
func (a TimeAxis) Len() int {
	if a.Interval <= 0 || a.Start >= a.End {
		return 0
	}
	return int((a.End - a.Start + a.Interval - 1) / a.Interval)
}

// Instants yields every instant on the axis. Each range over the returned
// sequence starts again from Start.
func (a TimeAxis) Instants() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		if a.Interval <= 0 {
			return
		}
		for t := a.Start; t < a.End; t += a.Interval {
			if !yield(t) {
				return
			}
		}
	}
}

// Timestamps materializes the axis as ISO-8601 strings with
// utcOffsetSeconds added to every instant.
func (a TimeAxis) Timestamps(utcOffsetSeconds int64) []string {
	out := make([]string, 0, a.Len())
	for t := range a.Instants() {
		out = append(out, FormatInstant(t, utcOffsetSeconds))
	}
	return out
}

// FormatInstant renders a unix instant shifted by utcOffsetSeconds
func FormatInstant(instant, utcOffsetSeconds int64) string {
	return time.Unix(instant+utcOffsetSeconds, 0).UTC().Format(ISO8601Layout)
}
