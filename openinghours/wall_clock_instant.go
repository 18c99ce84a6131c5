package openinghours

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

// WallClockLayout is the only accepted textual form of a WallClockInstant.
const WallClockLayout = "2006-01-02T15:04:05"

// ZoneName is the civil zone every instant and weekday is evaluated in.
const ZoneName = "Asia/Tokyo"

// ErrMalformedInstant is returned when a string is not a valid wall-clock instant.
var ErrMalformedInstant = errors.New("malformed wall-clock instant")

var wallClockPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}$`)

var zone = loadZone()

func loadZone() *time.Location {
	loc, err := time.LoadLocation(ZoneName)
	if err != nil {
		return time.FixedZone("JST", 9*60*60)
	}
	return loc
}

// Zone returns the fixed civil zone.
func Zone() *time.Location {
	return zone
}

// WallClockInstant is a date and time of day in the fixed civil zone.
// Values are only produced by ParseWallClockInstant and its helpers, so
// everything that consumes one can assume it is well formed.
type WallClockInstant struct {
	wall time.Time
}

// ParseWallClockInstant validates s against YYYY-MM-DDTHH:mm:ss and
// interprets it in the fixed civil zone.
func ParseWallClockInstant(s string) (WallClockInstant, error) {
	if !wallClockPattern.MatchString(s) {
		return WallClockInstant{}, fmt.Errorf("%w: %q", ErrMalformedInstant, s)
	}
	t, err := time.ParseInLocation(WallClockLayout, s, zone)
	if err != nil {
		return WallClockInstant{}, fmt.Errorf("%w: %q: %v", ErrMalformedInstant, s, err)
	}
	return WallClockInstant{wall: t}, nil
}

// MustParseWallClockInstant is ParseWallClockInstant for literals known to be valid.
func MustParseWallClockInstant(s string) WallClockInstant {
	w, err := ParseWallClockInstant(s)
	if err != nil {
		panic(err)
	}
	return w
}

// NewWallClockInstantAt combines the calendar date of date (read in the
// fixed zone) with an HH:mm clock. Hours of 24 and above roll over into the
// following days, so "25:30" is 01:30 on the next day.
func NewWallClockInstantAt(date time.Time, clock string) (WallClockInstant, error) {
	hourText, minuteText, ok := strings.Cut(clock, ":")
	if !ok {
		return WallClockInstant{}, fmt.Errorf("%w: clock %q is not HH:mm", ErrMalformedInstant, clock)
	}
	hours, err := strconv.Atoi(hourText)
	if err != nil || hours < 0 {
		return WallClockInstant{}, fmt.Errorf("%w: clock %q has an invalid hour", ErrMalformedInstant, clock)
	}
	minutes, err := strconv.Atoi(minuteText)
	if err != nil || minutes < 0 || minutes >= 60 {
		return WallClockInstant{}, fmt.Errorf("%w: clock %q has an invalid minute", ErrMalformedInstant, clock)
	}

	local := date.In(zone)
	y, m, d := local.Date()
	t := time.Date(y, m, d+hours/24, hours%24, minutes, 0, 0, zone)
	return WallClockInstant{wall: t}, nil
}

// Weekday returns the calendar weekday in the fixed zone.
func (w WallClockInstant) Weekday() time.Weekday {
	return w.wall.Weekday()
}

// IsZero reports whether w was never set, e.g. a field absent from JSON.
func (w WallClockInstant) IsZero() bool {
	return w.wall.IsZero()
}

func (w WallClockInstant) String() string {
	return w.wall.Format(WallClockLayout)
}

func (w WallClockInstant) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

func (w *WallClockInstant) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedInstant, err)
	}
	parsed, err := ParseWallClockInstant(s)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
