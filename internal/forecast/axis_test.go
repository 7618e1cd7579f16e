package forecast

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestTimeAxis_Len(t *testing.T) {
	tests := []struct {
		name string
		axis TimeAxis
		want int
	}{
		{name: "three hours", axis: TimeAxis{Start: 1700000000, End: 1700010800, Interval: 3600}, want: 3},
		{name: "one day", axis: TimeAxis{Start: 0, End: 86400, Interval: 3600}, want: 24},
		{name: "partial last step", axis: TimeAxis{Start: 0, End: 10000, Interval: 3600}, want: 3},
		{name: "single step larger than span", axis: TimeAxis{Start: 0, End: 1, Interval: 3600}, want: 1},
		{name: "quarter hours", axis: TimeAxis{Start: 100, End: 3700, Interval: 900}, want: 4},
		{name: "start equals end", axis: TimeAxis{Start: 5, End: 5, Interval: 3600}, want: 0},
		{name: "start after end", axis: TimeAxis{Start: 10, End: 5, Interval: 1}, want: 0},
		{name: "zero interval", axis: TimeAxis{Start: 0, End: 10, Interval: 0}, want: 0},
		{name: "negative interval", axis: TimeAxis{Start: 0, End: 10, Interval: -1}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.axis.Len(); got != tt.want {
				t.Errorf("Len() = %d, want %d", got, tt.want)
			}

			count := 0
			for range tt.axis.Instants() {
				count++
			}
			if count != tt.want {
				t.Errorf("Instants() yielded %d instants, want %d", count, tt.want)
			}

			if got := len(tt.axis.Timestamps(0)); got != tt.want {
				t.Errorf("len(Timestamps()) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTimeAxis_InstantsStayBelowEnd(t *testing.T) {
	axes := []TimeAxis{
		{Start: 0, End: 10000, Interval: 3600},
		{Start: 1700000000, End: 1700086400, Interval: 3600},
		{Start: -7200, End: 7201, Interval: 1800},
		{Start: 3, End: 4, Interval: 7},
	}

	for _, axis := range axes {
		k := int64(0)
		for instant := range axis.Instants() {
			if want := axis.Start + k*axis.Interval; instant != want {
				t.Errorf("%+v: instant %d = %d, want %d", axis, k, instant, want)
			}
			if instant >= axis.End {
				t.Errorf("%+v: instant %d = %d is not before end", axis, k, instant)
			}
			k++
		}
		if next := axis.Start + k*axis.Interval; next < axis.End {
			t.Errorf("%+v: stopped early, %d is still before end", axis, next)
		}
	}
}

func TestTimeAxis_InstantsRestartable(t *testing.T) {
	axis := TimeAxis{Start: 0, End: 4 * 3600, Interval: 3600}
	seq := axis.Instants()

	collect := func() []int64 {
		var out []int64
		for v := range seq {
			out = append(out, v)
		}
		return out
	}

	// stop the first pass early; the next pass must not resume from there
	for v := range seq {
		if v == 3600 {
			break
		}
	}

	first := collect()
	second := collect()
	want := []int64{0, 3600, 7200, 10800}

	if diff := cmp.Diff(want, first); diff != "" {
		t.Errorf("first pass mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, second); diff != "" {
		t.Errorf("second pass mismatch (-want +got):\n%s", diff)
	}
}

func TestTimeAxis_TimestampsWithOffset(t *testing.T) {
	axis := TimeAxis{Start: 1700000000, End: 1700010800, Interval: 3600}

	got := axis.Timestamps(3600)
	want := []string{
		"2023-11-14T23:13:20.000Z",
		"2023-11-15T00:13:20.000Z",
		"2023-11-15T01:13:20.000Z",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Timestamps() mismatch (-want +got):\n%s", diff)
	}

	raw := axis.Timestamps(0)
	for i := range got {
		shifted, err := time.Parse(ISO8601Layout, got[i])
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", got[i], err)
		}
		utc, err := time.Parse(ISO8601Layout, raw[i])
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", raw[i], err)
		}
		if d := shifted.Sub(utc); d != time.Hour {
			t.Errorf("timestamp %d shifted by %v, want 1h", i, d)
		}
		if i > 0 {
			prev, _ := time.Parse(ISO8601Layout, got[i-1])
			if d := shifted.Sub(prev); d != time.Hour {
				t.Errorf("timestamps %d and %d are %v apart, want 1h", i-1, i, d)
			}
		}
	}
}

func TestTimeAxis_TimestampsMatchFormatInstant(t *testing.T) {
	axis := TimeAxis{Start: 1700000000, End: 1700000000 + 6*3600, Interval: 3600}
	for _, offset := range []int64{-18000, 0, 3600, 7200, 19800} {
		stamps := axis.Timestamps(offset)
		for k, s := range stamps {
			want := time.UnixMilli((axis.Start + int64(k)*axis.Interval + offset) * 1000).UTC().Format(ISO8601Layout)
			if s != want {
				t.Errorf("offset %d: timestamp %d = %q, want %q", offset, k, s, want)
			}
		}
	}
}

func TestTimeAxis_Empty(t *testing.T) {
	axis := TimeAxis{Start: 1700010800, End: 1700000000, Interval: 3600}
	stamps := axis.Timestamps(3600)
	if stamps == nil || len(stamps) != 0 {
		t.Errorf("Timestamps() = %#v, want empty non-nil slice", stamps)
	}
}

func TestTimeAxis_Validate(t *testing.T) {
	if err := (TimeAxis{Start: 0, End: 1, Interval: 1}).Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
	if err := (TimeAxis{Start: 0, End: 1, Interval: 0}).Validate(); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("Validate() error = %v, want ErrInvalidInterval", err)
	}
}
