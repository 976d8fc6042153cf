package availability

import (
	"time"

	"slotbook/models"
)

// GenerateSlots emits the ordered candidate slots for one working day.
//
// dayStart anchors the day (midnight in the business zone); the working
// window is [dayStart+workdayStart, dayStart+workdayEnd). Candidates are
// [t, t+slotDuration) starting at the window start and striding by step.
// The step may exceed the duration, deliberately leaving buffer gaps
// between meetings. A candidate whose start is before the window end is
// emitted even when its end runs past it.
//
// A candidate is unavailable iff it overlaps any busy entry under the
// half-open rule (candidateStart < busyEnd && candidateEnd > busyStart).
// Each busy entry is checked independently; busy may be unordered and
// contain overlapping entries. Pure function, no I/O.
func GenerateSlots(dayStart time.Time, workdayStart, workdayEnd, slotDuration, step time.Duration, busy models.BusySet) []models.SlotCandidate {
	if workdayStart >= workdayEnd {
		return nil
	}

	windowEnd := dayStart.Add(workdayEnd)

	var candidates []models.SlotCandidate
	for t := dayStart.Add(workdayStart); t.Before(windowEnd); t = t.Add(step) {
		candidate := models.TimeInterval{Start: t, End: t.Add(slotDuration)}

		available := true
		for _, b := range busy {
			if candidate.Overlaps(b) {
				available = false
				break
			}
		}

		candidates = append(candidates, models.SlotCandidate{
			TimeInterval: candidate,
			Available:    available,
		})
	}
	return candidates
}
