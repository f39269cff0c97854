package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAdvanceOnePeriod(t *testing.T) {
	tests := []struct {
		name    string
		date    time.Time
		freq    Frequency
		want    time.Time
		wantErr error
	}{
		{name: "monthly", date: date(2026, 1, 15), freq: FrequencyMonthly, want: date(2026, 2, 15)},
		{name: "monthly clamps Jan 31 to Feb 28", date: date(2026, 1, 31), freq: FrequencyMonthly, want: date(2026, 2, 28)},
		{name: "monthly clamps to Feb 29 in leap year", date: date(2028, 1, 31), freq: FrequencyMonthly, want: date(2028, 2, 29)},
		{name: "quarterly across year end", date: date(2026, 11, 30), freq: FrequencyQuarterly, want: date(2027, 2, 28)},
		{name: "half-yearly", date: date(2026, 8, 31), freq: FrequencyHalfYearly, want: date(2027, 2, 28)},
		{name: "yearly from leap day", date: date(2028, 2, 29), freq: FrequencyYearly, want: date(2029, 2, 28)},
		{name: "time of day is dropped", date: time.Date(2026, 3, 10, 17, 45, 0, 0, time.UTC), freq: FrequencyMonthly, want: date(2026, 4, 10)},
		{name: "unknown frequency", date: date(2026, 3, 10), freq: "Weekly", wantErr: ErrUnknownFrequency},
		{name: "empty frequency", date: date(2026, 3, 10), freq: "", wantErr: ErrUnknownFrequency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AdvanceOnePeriod(tt.date, tt.freq)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestAdvanceOnePeriod_KeepsLocation(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	got, err := AdvanceOnePeriod(time.Date(2026, 5, 20, 23, 0, 0, 0, loc), FrequencyMonthly)
	require.NoError(t, err)
	assert.Equal(t, loc, got.Location())
	assert.Equal(t, time.Date(2026, 6, 20, 0, 0, 0, 0, loc), got)
}

func TestProjectDueDate(t *testing.T) {
	ref := date(2026, 10, 17)

	tests := []struct {
		name         string
		anchor       time.Time
		freq         Frequency
		opts         []ProjectionOption
		wantDue      time.Time
		wantAdvances int
		wantErr      error
	}{
		{name: "anchor in the future is returned unchanged", anchor: date(2026, 11, 1), freq: FrequencyMonthly, wantDue: date(2026, 11, 1)},
		{name: "anchor equal to reference is due today", anchor: ref, freq: FrequencyMonthly, wantDue: ref},
		{name: "fourteen months behind", anchor: date(2025, 8, 20), freq: FrequencyMonthly, wantDue: date(2026, 10, 20), wantAdvances: 14},
		{name: "one day behind rolls a full quarter", anchor: date(2026, 10, 16), freq: FrequencyQuarterly, wantDue: date(2027, 1, 16), wantAdvances: 1},
		{name: "month end anchor clamps once and keeps the clamped day", anchor: date(2026, 1, 31), freq: FrequencyMonthly, wantDue: date(2026, 10, 28), wantAdvances: 9},
		{name: "yearly", anchor: date(2020, 12, 1), freq: FrequencyYearly, wantDue: date(2026, 12, 1), wantAdvances: 6},
		{name: "ceiling exceeded", anchor: date(2010, 1, 1), freq: FrequencyMonthly, wantErr: ErrProjectionCeilingExceeded},
		{name: "custom ceiling", anchor: date(2026, 1, 20), freq: FrequencyMonthly, opts: []ProjectionOption{WithMaxIterations(3)}, wantErr: ErrProjectionCeilingExceeded},
		{name: "unknown frequency", anchor: date(2025, 1, 1), freq: "Fortnightly", wantErr: ErrUnknownFrequency},
		{name: "unknown frequency with future anchor still fails", anchor: date(2027, 1, 1), freq: "Fortnightly", wantErr: ErrUnknownFrequency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ProjectDueDate(tt.anchor, tt.freq, ref, tt.opts...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.wantDue.Equal(got.DueDate), "want %s got %s", tt.wantDue, got.DueDate)
			assert.Equal(t, tt.wantAdvances, got.Advances)
			assert.False(t, got.DueDate.Before(ref))
		})
	}
}

func TestProjectDueDate_FourteenMonthsLandsInCurrentMonth(t *testing.T) {
	today := date(2026, 10, 17)
	anchor := today.AddDate(0, -14, 3)

	got, err := ProjectDueDate(anchor, FrequencyMonthly, today)
	require.NoError(t, err)
	assert.Equal(t, 14, got.Advances)
	assert.Equal(t, today.Month(), got.DueDate.Month())
	assert.Equal(t, today.Year(), got.DueDate.Year())
}

func TestProjectDueDate_Idempotent(t *testing.T) {
	anchor := date(2024, 3, 31)
	ref := time.Date(2026, 10, 17, 15, 30, 0, 0, time.UTC)

	first, err := ProjectDueDate(anchor, FrequencyMonthly, ref)
	require.NoError(t, err)
	second, err := ProjectDueDate(anchor, FrequencyMonthly, ref)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, date(2024, 3, 31), anchor, "anchor must not move")
	assert.False(t, first.DueDate.Before(TruncateToDate(ref)))
}

func TestProjectDueDate_MatchesRepeatedMarkPaid(t *testing.T) {
	ref := date(2026, 10, 17)
	tests := []struct {
		anchor time.Time
		freq   Frequency
	}{
		{anchor: date(2026, 1, 31), freq: FrequencyMonthly},
		{anchor: date(2024, 8, 31), freq: FrequencyQuarterly},
		{anchor: date(2020, 2, 29), freq: FrequencyYearly},
		{anchor: date(2025, 5, 30), freq: FrequencyHalfYearly},
	}

	for _, tt := range tests {
		t.Run(string(tt.freq)+" "+tt.anchor.Format(time.DateOnly), func(t *testing.T) {
			projection, err := ProjectDueDate(tt.anchor, tt.freq, ref)
			require.NoError(t, err)

			paid := tt.anchor
			for i := 0; i < projection.Advances; i++ {
				paid, err = MarkPaid(paid, tt.freq)
				require.NoError(t, err)
			}
			assert.Equal(t, projection.DueDate, paid, "paying every overdue installment must reach the shown due date")

			after, err := ProjectDueDate(paid, tt.freq, ref)
			require.NoError(t, err)
			assert.Equal(t, projection.DueDate, after.DueDate)
			assert.Zero(t, after.Advances)
		})
	}
}

func TestProjectDueDate_ReferenceInAnotherZone(t *testing.T) {
	wib := time.FixedZone("WIB", 7*60*60)
	// midnight in UTC+7 is still the previous evening in UTC
	ref := time.Date(2026, 10, 17, 0, 0, 0, 0, wib)

	tests := []struct {
		name         string
		anchor       time.Time
		wantDue      time.Time
		wantAdvances int
	}{
		{name: "anchor the day before is overdue", anchor: date(2026, 10, 16), wantDue: date(2026, 11, 16), wantAdvances: 1},
		{name: "anchor on the reference day is due today", anchor: date(2026, 10, 17), wantDue: date(2026, 10, 17)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ProjectDueDate(tt.anchor, FrequencyMonthly, ref)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDue, got.DueDate)
			assert.Equal(t, tt.wantAdvances, got.Advances)
			assert.False(t, FormatDate(got.DueDate) < FormatDate(ref), "due %s before reference %s", FormatDate(got.DueDate), FormatDate(ref))
		})
	}
}

func TestCalendarDateIn(t *testing.T) {
	wib := time.FixedZone("WIB", 7*60*60)

	got := CalendarDateIn(time.Date(2026, 10, 17, 3, 15, 0, 0, wib), time.UTC)
	assert.Equal(t, date(2026, 10, 17), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestProjectDueDate_ErrorsAreDistinct(t *testing.T) {
	_, ceilingErr := ProjectDueDate(date(2000, 1, 1), FrequencyMonthly, date(2026, 1, 1))
	_, freqErr := ProjectDueDate(date(2000, 1, 1), "bogus", date(2026, 1, 1))

	assert.ErrorIs(t, ceilingErr, ErrProjectionCeilingExceeded)
	assert.False(t, errors.Is(ceilingErr, ErrUnknownFrequency))
	assert.ErrorIs(t, freqErr, ErrUnknownFrequency)
	assert.False(t, errors.Is(freqErr, ErrProjectionCeilingExceeded))
}

func TestMarkPaid_AdvancesExactlyOnePeriod(t *testing.T) {
	ref := date(2026, 10, 17)
	anchors := []time.Time{date(2026, 9, 5), date(2025, 1, 5), date(2022, 6, 5), date(2026, 12, 5)}

	for _, anchor := range anchors {
		t.Run(anchor.Format(time.DateOnly), func(t *testing.T) {
			projection, err := ProjectDueDate(anchor, FrequencyMonthly, ref)
			require.NoError(t, err)

			next, err := MarkPaid(anchor, FrequencyMonthly)
			require.NoError(t, err)

			assert.Equal(t, anchor.AddDate(0, 1, 0), next)
			if projection.Advances > 1 {
				assert.True(t, next.Before(projection.DueDate), "one payment must not catch up every overdue period")
			}
		})
	}
}

func TestInitialAnchor(t *testing.T) {
	got, err := InitialAnchor(date(2026, 1, 31), FrequencyQuarterly)
	require.NoError(t, err)
	assert.Equal(t, date(2026, 4, 30), got)
}

func TestParseFrequency(t *testing.T) {
	f, err := ParseFrequency(" half-yearly ")
	require.NoError(t, err)
	assert.Equal(t, FrequencyHalfYearly, f)

	_, err = ParseFrequency("weekly")
	assert.ErrorIs(t, err, ErrUnknownFrequency)
}
