package expand

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyp0633/recurrent/rule"
)

const projectedLayout = "2006-01-02 15:04:05 -0700 MST"

func TestParseWallClock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    WallClock
		wantErr bool
	}{
		{name: "full", input: "09:30:15", want: WallClock{9, 30, 15}},
		{name: "no seconds", input: "09:30", want: WallClock{9, 30, 0}},
		{name: "whitespace", input: " 23:59:59 ", want: WallClock{23, 59, 59}},
		{name: "garbage", input: "half past nine", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWallClock(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProject(t *testing.T) {
	e := New()
	wall := WallClock{Hour: 9, Minute: 30}

	tests := []struct {
		name    string
		instant time.Time
		zone    string
		want    string
	}{
		{
			name:    "eastward zone keeps the date",
			instant: time.Date(2024, 9, 29, 13, 0, 0, 0, time.UTC),
			zone:    "Asia/Shanghai",
			want:    "2024-09-29 09:30:00 +0800 CST",
		},
		{
			name:    "westward zone keeps the date",
			instant: time.Date(2024, 9, 29, 13, 0, 0, 0, time.UTC),
			zone:    "America/New_York",
			want:    "2024-09-29 09:30:00 -0400 EDT",
		},
		{
			// 01:00 UTC is still the previous evening in New York, so
			// the projected date moves back a day.
			name:    "westward zone shifts the date",
			instant: time.Date(2024, 9, 29, 1, 0, 0, 0, time.UTC),
			zone:    "America/New_York",
			want:    "2024-09-28 09:30:00 -0400 EDT",
		},
		{
			name:    "unknown zone falls back to UTC",
			instant: time.Date(2024, 9, 29, 13, 0, 0, 0, time.UTC),
			zone:    "Mars/Olympus_Mons",
			want:    "2024-09-29 09:30:00 +0000 UTC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Project(tt.instant, tt.zone, wall))
		})
	}
}

// Whatever the target zone's offset, every projected string carries
// the reference wall-clock time of day.
func TestExpand_PinsWallClock(t *testing.T) {
	r := rule.Rule{
		Frequency: rule.Daily,
		Interval:  1,
		Count:     5,
		Start:     time.Date(2024, 9, 29, 13, 0, 0, 0, time.UTC),
	}
	e := New()

	for _, zone := range []string{"UTC", "Asia/Shanghai", "America/New_York", "Australia/Sydney"} {
		for _, s := range e.Expand(r, zone, "17:45:30") {
			parsed, err := time.Parse(projectedLayout, s)
			require.NoError(t, err, "output %q must stay generically parseable", s)
			assert.Equal(t, 17, parsed.Hour(), "zone %s output %q", zone, s)
			assert.Equal(t, 45, parsed.Minute(), "zone %s output %q", zone, s)
			assert.Equal(t, 30, parsed.Second(), "zone %s output %q", zone, s)
		}
	}
}

func TestExpand_BadReferenceTimeUsesStartClock(t *testing.T) {
	r := rule.Rule{
		Frequency: rule.Daily,
		Interval:  1,
		Count:     1,
		Start:     time.Date(2024, 9, 29, 13, 15, 45, 0, time.UTC),
	}

	got := New().Expand(r, "UTC", "not a time")
	require.Len(t, got, 1)
	assert.Equal(t, "2024-09-29 13:15:45 +0000 UTC", got[0])
}
