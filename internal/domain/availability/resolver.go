// Package availability implements the host-availability resolution engine.
// Given a host's schedule windows and a candidate instant it classifies the
// instant as available, unavailable until a known next start, permanently
// unavailable, or unresolvable because no schedule exists. The package is
// pure: it performs no I/O and raises no errors, it only classifies.
package availability

import (
	"encoding/json"
	"time"

	"vms/internal/domain/entity"
)

// DecisionKind enumerates the possible outcomes of an availability query.
type DecisionKind int

const (
	// NoScheduleSet means the host has zero availability windows. This is a
	// configuration problem, not a scheduling one: the visit cannot proceed
	// until the host or an admin creates a schedule.
	NoScheduleSet DecisionKind = iota
	// Available means the candidate instant falls inside a window.
	Available
	// UnavailableWithNext means the instant precedes a window or sits in a
	// gap between two windows; the decision carries the next start.
	UnavailableWithNext
	// UnavailablePermanently means the instant is after every window's end
	// and no window starts later.
	UnavailablePermanently
)

// String returns a human-readable name for the decision kind.
func (k DecisionKind) String() string {
	switch k {
	case NoScheduleSet:
		return "no-schedule-set"
	case Available:
		return "available"
	case UnavailableWithNext:
		return "unavailable-with-next"
	case UnavailablePermanently:
		return "unavailable-permanently"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the kind by its string name so API clients never see
// the internal enum value.
func (k DecisionKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Decision is the outcome of resolving a candidate instant against a host's
// schedule. NextStart is set only for UnavailableWithNext.
type Decision struct {
	Kind      DecisionKind `json:"kind"`
	NextStart *time.Time   `json:"next_start,omitempty"`
}

// Resolve classifies the candidate instant against the given windows, which
// must be sorted ascending by start time (the schedule store returns them
// that way). Window membership is inclusive at both ends: a visitor arriving
// exactly at a window's end instant is still within the host's available
// period.
//
// The scan relies on the write-time non-overlap invariant: the first window
// containing the instant is also the only one, so the scan stops at the
// first match. Overlapping windows from legacy data do not break the scan,
// they only make "first match wins" the tie-breaker; Overlapping exists for
// callers that want to detect and report that state.
func Resolve(windows []entity.AvailabilityWindow, at time.Time) Decision {
	if len(windows) == 0 {
		return Decision{Kind: NoScheduleSet}
	}

	for _, w := range windows {
		if !at.Before(w.StartAt) && !at.After(w.EndAt) {
			return Decision{Kind: Available}
		}
	}

	// No window contains the instant. The earliest window starting strictly
	// after it, if any, is the next availability; the slice is sorted, so the
	// first qualifying entry is the minimum.
	for _, w := range windows {
		if w.StartAt.After(at) {
			next := w.StartAt

			return Decision{Kind: UnavailableWithNext, NextStart: &next}
		}
	}

	return Decision{Kind: UnavailablePermanently}
}

// Overlap is a pair of windows that both claim at least one instant.
type Overlap struct {
	First  entity.AvailabilityWindow `json:"first"`
	Second entity.AvailabilityWindow `json:"second"`
}

// Overlapping performs a read-time consistency check over a sorted window
// slice and reports the first pair of windows that overlap, treating windows
// as closed intervals. It returns ok=false when the schedule is consistent.
// Callers report (log) a hit rather than failing resolution; Resolve remains
// well-defined under overlap.
func Overlapping(windows []entity.AvailabilityWindow) (a, b entity.AvailabilityWindow, ok bool) {
	for i := 1; i < len(windows); i++ {
		prev, cur := windows[i-1], windows[i]
		if !cur.StartAt.After(prev.EndAt) {
			return prev, cur, true
		}
	}

	return entity.AvailabilityWindow{}, entity.AvailabilityWindow{}, false
}

// Overlaps reports whether two closed intervals [aStart, aEnd] and
// [bStart, bEnd] intersect. Shared boundary instants count as overlap,
// mirroring the inclusive-both-ends membership used by Resolve: two windows
// touching at an instant would both claim it.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}
