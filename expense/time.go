package expense

import "time"

// =============================================================================
// TIME POINT - Day-granularity calendar instant
// =============================================================================

// TimePoint is a calendar date. Expenses are dated to the day; all
// comparisons normalize to midnight UTC so two points on the same day
// compare equal regardless of how they were constructed.
type TimePoint struct {
	Time time.Time
}

// Constructors
func NewTimePoint(year int, month time.Month, day int) TimePoint {
	return TimePoint{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func FromTime(t time.Time) TimePoint {
	return NewTimePoint(t.Year(), t.Month(), t.Day())
}

func Today() TimePoint {
	return FromTime(time.Now())
}

// Comparison
func (tp TimePoint) Before(other TimePoint) bool        { return tp.normalize().Before(other.normalize()) }
func (tp TimePoint) Equal(other TimePoint) bool         { return tp.normalize().Equal(other.normalize()) }
func (tp TimePoint) After(other TimePoint) bool         { return tp.normalize().After(other.normalize()) }
func (tp TimePoint) BeforeOrEqual(other TimePoint) bool { return tp.Before(other) || tp.Equal(other) }
func (tp TimePoint) AfterOrEqual(other TimePoint) bool  { return tp.After(other) || tp.Equal(other) }

func (tp TimePoint) normalize() time.Time {
	return time.Date(tp.Time.Year(), tp.Time.Month(), tp.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// Arithmetic
func (tp TimePoint) AddDays(n int) TimePoint {
	return TimePoint{Time: tp.normalize().AddDate(0, 0, n)}
}

// AddMonths steps by calendar months, clamping to the nearest valid prior
// day when the target month is shorter (Mar 31 - 1 month = Feb 28). This
// differs from time.AddDate, which normalizes overflow forward into the
// next month.
func (tp TimePoint) AddMonths(n int) TimePoint {
	t := tp.normalize()
	firstOfTarget := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	day := t.Day()
	if last := daysIn(firstOfTarget.Year(), firstOfTarget.Month()); day > last {
		day = last
	}
	return NewTimePoint(firstOfTarget.Year(), firstOfTarget.Month(), day)
}

// AddYears steps by calendar years with the same clamping (Feb 29 - 1 year
// = Feb 28).
func (tp TimePoint) AddYears(n int) TimePoint {
	return tp.AddMonths(12 * n)
}

// daysIn returns the number of days in the month. Day 0 of the following
// month is the last day of this one.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Properties
func (tp TimePoint) Year() int         { return tp.Time.Year() }
func (tp TimePoint) Month() time.Month { return tp.Time.Month() }
func (tp TimePoint) Day() int          { return tp.Time.Day() }
func (tp TimePoint) IsZero() bool      { return tp.Time.IsZero() }

func (tp TimePoint) String() string {
	return tp.normalize().Format("2006-01-02")
}

// ParseDate parses a "2006-01-02" date string.
func ParseDate(s string) (TimePoint, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return TimePoint{}, err
	}
	return FromTime(t), nil
}
