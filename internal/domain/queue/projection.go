package queue

import "time"

// Standing is the minimal slice of a participant needed for position math.
type Standing struct {
	Number int32
	Status ParticipantStatus
}

// Position returns the 1-based rank of the participant holding number among
// still-active participants: the count of waiting/processing participants
// whose number is less than or equal to it. Returns 0 when the number does
// not belong to an active participant.
func Position(standings []Standing, number int32) int {
	held := false
	pos := 0
	for _, s := range standings {
		if !s.Status.IsActive() {
			continue
		}
		if s.Number <= number {
			pos++
		}
		if s.Number == number {
			held = true
		}
	}
	if !held {
		return 0
	}
	return pos
}

// Progress maps a position to the display percentage used by clients.
// Purely cosmetic, clamped to [5, 100].
func Progress(position, participantCount int) float64 {
	if position <= 0 || participantCount == 0 {
		return 0
	}
	if participantCount <= 1 {
		return 100
	}
	p := 100 - (float64(position-1)/float64(participantCount))*100
	return max(5, min(100, p))
}

// EstimatedWait is the projected delay before service starts for a joiner
// with the given number of people already waiting ahead.
func EstimatedWait(peopleAhead int, serviceTime ServiceTime) time.Duration {
	return time.Duration(peopleAhead) * time.Duration(serviceTime.Minutes()) * time.Minute
}
