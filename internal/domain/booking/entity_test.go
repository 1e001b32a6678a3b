//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type periodCase struct {
	name     string
	start    time.Duration
	end      time.Duration
	errIs    error
	problems int
}

func TestNewPeriod(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	runPeriodCases(t, now, []periodCase{
		{
			name:  "future interval",
			start: 24 * time.Hour,
			end:   48 * time.Hour,
		},
		{
			name:  "starts right now",
			start: 0,
			end:   time.Hour,
		},
		{
			name:     "start in the past",
			start:    -time.Hour,
			end:      time.Hour,
			errIs:    booking.ErrInvalidPeriod,
			problems: 1,
		},
		{
			name:     "entirely in the past",
			start:    -48 * time.Hour,
			end:      -24 * time.Hour,
			errIs:    booking.ErrInvalidPeriod,
			problems: 2,
		},
		{
			name:     "end equals start",
			start:    24 * time.Hour,
			end:      24 * time.Hour,
			errIs:    booking.ErrInvalidPeriod,
			problems: 1,
		},
		{
			name:     "end before start",
			start:    48 * time.Hour,
			end:      24 * time.Hour,
			errIs:    booking.ErrInvalidPeriod,
			problems: 1,
		},
		{
			name:     "reversed and in the past",
			start:    -time.Hour,
			end:      -2 * time.Hour,
			errIs:    booking.ErrInvalidPeriod,
			problems: 3,
		},
	})
}

func runPeriodCases(t *testing.T, now time.Time, cases []periodCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			period, err := booking.NewPeriod(now.Add(c.start), now.Add(c.end), now)

			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, now.Add(c.start), period.Start())
				assert.Equal(t, now.Add(c.end), period.End())
				return
			}

			require.Error(t, err)
			require.ErrorIs(t, err, c.errIs)

			var perr *booking.PeriodError
			require.ErrorAs(t, err, &perr)
			assert.Len(t, perr.Problems, c.problems)
		})
	}
}

func TestBookingDecide(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	period, err := booking.NewPeriod(now.Add(24*time.Hour), now.Add(48*time.Hour), now)
	require.NoError(t, err)

	t.Run("new booking starts waiting", func(t *testing.T) {
		b := booking.NewBooking(uuid.New(), uuid.New(), period)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.True(t, b.IsWaiting())
		assert.Equal(t, booking.StatusWaiting, b.Status())
	})

	t.Run("approve", func(t *testing.T) {
		b := booking.NewBooking(uuid.New(), uuid.New(), period)

		require.NoError(t, b.Decide(true))
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("reject", func(t *testing.T) {
		b := booking.NewBooking(uuid.New(), uuid.New(), period)

		require.NoError(t, b.Decide(false))
		assert.Equal(t, booking.StatusRejected, b.Status())
	})

	t.Run("second decision fails", func(t *testing.T) {
		b := booking.NewBooking(uuid.New(), uuid.New(), period)
		require.NoError(t, b.Decide(true))

		err := b.Decide(true)
		require.ErrorIs(t, err, booking.ErrAlreadyDecided)
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("reject after approve fails", func(t *testing.T) {
		b := booking.NewBooking(uuid.New(), uuid.New(), period)
		require.NoError(t, b.Decide(true))

		require.ErrorIs(t, b.Decide(false), booking.ErrAlreadyDecided)
		assert.Equal(t, booking.StatusApproved, b.Status())
	})
}

func TestBookingHasEnded(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	period := booking.ReconstructPeriod(now.Add(-48*time.Hour), now.Add(-24*time.Hour))
	b := booking.ReconstructBooking(
		uuid.New(), uuid.New(), uuid.New(),
		period, booking.StatusApproved,
		now.Add(-72*time.Hour), now.Add(-72*time.Hour),
	)

	assert.True(t, b.HasEnded(now))
	assert.False(t, b.HasEnded(now.Add(-36*time.Hour)))
	assert.False(t, b.HasEnded(period.End()))
}

func TestParseState(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		want  booking.State
		errIs error
	}{
		{name: "empty defaults to ALL", raw: "", want: booking.StateAll},
		{name: "ALL", raw: "ALL", want: booking.StateAll},
		{name: "CURRENT", raw: "CURRENT", want: booking.StateCurrent},
		{name: "PAST", raw: "PAST", want: booking.StatePast},
		{name: "FUTURE", raw: "FUTURE", want: booking.StateFuture},
		{name: "WAITING", raw: "WAITING", want: booking.StateWaiting},
		{name: "REJECTED", raw: "REJECTED", want: booking.StateRejected},
		{name: "unknown value", raw: "UNSUPPORTED", errIs: booking.ErrUnknownState},
		{name: "lowercase is rejected", raw: "all", errIs: booking.ErrUnknownState},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			state, err := booking.ParseState(c.raw)

			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, state)
		})
	}
}
