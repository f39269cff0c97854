package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Frequency string

const (
	FrequencyMonthly    Frequency = "Monthly"
	FrequencyQuarterly  Frequency = "Quarterly"
	FrequencyHalfYearly Frequency = "Half-Yearly"
	FrequencyYearly     Frequency = "Yearly"

	// DefaultMaxProjectionIterations covers ten years of monthly periods.
	DefaultMaxProjectionIterations = 120
)

var (
	ErrUnknownFrequency          = errors.New("unknown recurrence frequency")
	ErrProjectionCeilingExceeded = errors.New("due date projection exceeded iteration ceiling")
)

var frequencyMonths = map[Frequency]int{
	FrequencyMonthly:    1,
	FrequencyQuarterly:  3,
	FrequencyHalfYearly: 6,
	FrequencyYearly:     12,
}

var Frequencies = []Frequency{FrequencyMonthly, FrequencyQuarterly, FrequencyHalfYearly, FrequencyYearly}

// ParseFrequency accepts the canonical names case-insensitively.
func ParseFrequency(s string) (Frequency, error) {
	for _, f := range Frequencies {
		if strings.EqualFold(string(f), strings.TrimSpace(s)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFrequency, s)
}

func (f Frequency) Months() (int, error) {
	m, ok := frequencyMonths[f]
	if !ok || m <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFrequency, string(f))
	}
	return m, nil
}

// RecurringObligation is the installment schedule of one policy.
type RecurringObligation struct {
	Frequency         Frequency       `json:"frequency"`
	AnchorDate        time.Time       `json:"anchorDate"`
	InstallmentAmount decimal.Decimal `json:"installmentAmount"`
}

// TruncateToDate drops the time of day, keeping t's location.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// CalendarDateIn is midnight in loc of the calendar day t shows in its own
// location. Unlike t.In(loc) it never moves the date across a day boundary.
func CalendarDateIn(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// addMonths moves date by n calendar months, clamping the day to the end of
// the target month, so Jan 31 plus one month is Feb 28 (or 29).
func addMonths(date time.Time, n int) time.Time {
	y, m, d := date.Date()
	firstOfTarget := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, date.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, 0, 0, 0, 0, date.Location())
}

// AdvanceOnePeriod adds one period of calendar time to date and returns it at midnight.
func AdvanceOnePeriod(date time.Time, freq Frequency) (time.Time, error) {
	months, err := freq.Months()
	if err != nil {
		return time.Time{}, err
	}
	return addMonths(date, months), nil
}

// Projection is the read-side view of an obligation at a reference date.
type Projection struct {
	AnchorDate time.Time `json:"anchorDate"`
	DueDate    time.Time `json:"dueDate"`
	// Advances is how many periods were skipped to reach DueDate, i.e. the
	// number of installments overdue at the reference date.
	Advances int `json:"advances"`
}

type ProjectionOption func(*projectionOptions)

type projectionOptions struct {
	maxIterations int
}

func WithMaxIterations(n int) ProjectionOption {
	return func(o *projectionOptions) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

// ProjectDueDate returns the first occurrence on or after ref, reached by
// applying AdvanceOnePeriod to the anchor until it is no longer in the past.
// It never mutates anything: calling it repeatedly with the same input gives
// the same answer, and paying each overdue installment through MarkPaid lands
// on the same date.
func ProjectDueDate(anchor time.Time, freq Frequency, ref time.Time, opts ...ProjectionOption) (Projection, error) {
	o := projectionOptions{maxIterations: DefaultMaxProjectionIterations}
	for _, opt := range opts {
		opt(&o)
	}

	if _, err := freq.Months(); err != nil {
		return Projection{}, err
	}

	anchor = TruncateToDate(anchor)
	ref = CalendarDateIn(ref, anchor.Location())

	next := anchor
	for k := 0; k <= o.maxIterations; k++ {
		if !next.Before(ref) {
			return Projection{AnchorDate: anchor, DueDate: next, Advances: k}, nil
		}
		if k == o.maxIterations {
			break
		}

		var err error
		next, err = AdvanceOnePeriod(next, freq)
		if err != nil {
			return Projection{}, err
		}
	}

	return Projection{}, fmt.Errorf("%w: anchor %s, frequency %s, limit %d",
		ErrProjectionCeilingExceeded, anchor.Format(time.DateOnly), freq, o.maxIterations)
}

// MarkPaid advances the stored anchor by exactly one period, however many
// periods are overdue. It must be given the stored anchor, not a projected date.
func MarkPaid(anchor time.Time, freq Frequency) (time.Time, error) {
	return AdvanceOnePeriod(anchor, freq)
}

// InitialAnchor is the first stored anchor of a new policy: the first
// installment is collected at issuance, so the next one is a period later.
func InitialAnchor(issuance time.Time, freq Frequency) (time.Time, error) {
	return AdvanceOnePeriod(issuance, freq)
}
