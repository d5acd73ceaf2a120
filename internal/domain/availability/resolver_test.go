package availability

import (
	"testing"
	"time"

	"vms/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window(start, end time.Time) entity.AvailabilityWindow {
	return entity.AvailabilityWindow{
		ID:      uuid.New(),
		HostID:  uuid.New(),
		StartAt: start,
		EndAt:   end,
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2025, time.March, 14, hour, minute, 0, 0, time.UTC)
}

func TestResolve_EmptySchedule(t *testing.T) {
	decision := Resolve(nil, at(11, 0))
	assert.Equal(t, NoScheduleSet, decision.Kind)
	assert.Nil(t, decision.NextStart)

	decision = Resolve([]entity.AvailabilityWindow{}, at(23, 59))
	assert.Equal(t, NoScheduleSet, decision.Kind)
}

func TestResolve_TwoWindowDay(t *testing.T) {
	// Host is reachable 09:00-12:00 and 13:00-17:00.
	windows := []entity.AvailabilityWindow{
		window(at(9, 0), at(12, 0)),
		window(at(13, 0), at(17, 0)),
	}

	tests := []struct {
		name     string
		instant  time.Time
		kind     DecisionKind
		next     *time.Time
	}{
		{name: "inside first window", instant: at(11, 0), kind: Available},
		{name: "in the lunch gap", instant: at(12, 30), kind: UnavailableWithNext, next: ptr(at(13, 0))},
		{name: "before the day starts", instant: at(8, 0), kind: UnavailableWithNext, next: ptr(at(9, 0))},
		{name: "after the last window", instant: at(18, 0), kind: UnavailablePermanently},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Resolve(windows, tt.instant)
			assert.Equal(t, tt.kind, decision.Kind)
			if tt.next != nil {
				require.NotNil(t, decision.NextStart)
				assert.True(t, tt.next.Equal(*decision.NextStart))
			} else {
				assert.Nil(t, decision.NextStart)
			}
		})
	}
}

func TestResolve_InclusiveBoundaries(t *testing.T) {
	windows := []entity.AvailabilityWindow{window(at(9, 0), at(12, 0))}

	assert.Equal(t, Available, Resolve(windows, at(9, 0)).Kind, "exact start instant")
	assert.Equal(t, Available, Resolve(windows, at(12, 0)).Kind, "exact end instant")
	assert.Equal(t, UnavailableWithNext, Resolve(windows, at(8, 59)).Kind)
	assert.Equal(t, UnavailablePermanently, Resolve(windows, at(12, 1)).Kind)
}

func TestResolve_GapReportsEarliestLaterStart(t *testing.T) {
	windows := []entity.AvailabilityWindow{
		window(at(8, 0), at(9, 0)),
		window(at(10, 0), at(11, 0)),
		window(at(14, 0), at(15, 0)),
	}

	decision := Resolve(windows, at(11, 30))
	require.Equal(t, UnavailableWithNext, decision.Kind)
	require.NotNil(t, decision.NextStart)
	assert.True(t, at(14, 0).Equal(*decision.NextStart))
}

func TestResolve_BeforeFirstWindow(t *testing.T) {
	windows := []entity.AvailabilityWindow{
		window(at(10, 0), at(11, 0)),
		window(at(14, 0), at(15, 0)),
	}

	decision := Resolve(windows, at(6, 0))
	require.Equal(t, UnavailableWithNext, decision.Kind)
	require.NotNil(t, decision.NextStart)
	assert.True(t, at(10, 0).Equal(*decision.NextStart))
}

func TestResolve_FirstMatchWinsOnLegacyOverlap(t *testing.T) {
	// Overlapping windows violate the write-time invariant but can exist in
	// legacy data; the scan must still classify the instant as available.
	windows := []entity.AvailabilityWindow{
		window(at(9, 0), at(12, 0)),
		window(at(11, 0), at(13, 0)),
	}

	assert.Equal(t, Available, Resolve(windows, at(11, 30)).Kind)
}

func TestOverlapping(t *testing.T) {
	clean := []entity.AvailabilityWindow{
		window(at(9, 0), at(12, 0)),
		window(at(13, 0), at(17, 0)),
	}
	_, _, ok := Overlapping(clean)
	assert.False(t, ok)

	dirty := []entity.AvailabilityWindow{
		window(at(9, 0), at(12, 0)),
		window(at(12, 0), at(13, 0)), // shares the 12:00 boundary
	}
	a, b, ok := Overlapping(dirty)
	require.True(t, ok)
	assert.True(t, a.EndAt.Equal(b.StartAt))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"disjoint", at(9, 0), at(10, 0), at(11, 0), at(12, 0), false},
		{"contained", at(9, 0), at(17, 0), at(10, 0), at(11, 0), true},
		{"partial", at(9, 0), at(11, 0), at(10, 0), at(12, 0), true},
		{"touching boundaries", at(9, 0), at(10, 0), at(10, 0), at(11, 0), true},
		{"reversed order arguments", at(11, 0), at(12, 0), at(9, 0), at(10, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func ptr(t time.Time) *time.Time {
	return &t
}
