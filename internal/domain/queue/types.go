package queue

// ParticipantStatus is the service state of one participant. Transitions are
// conventionally waiting → processing → completed but are not enforced: the
// owner may move a participant backwards and no operation rejects it.
type ParticipantStatus string

const (
	StatusWaiting    ParticipantStatus = "waiting"
	StatusProcessing ParticipantStatus = "processing"
	StatusCompleted  ParticipantStatus = "completed"
)

func (s ParticipantStatus) String() string {
	return string(s)
}

func (s ParticipantStatus) IsValid() bool {
	switch s {
	case StatusWaiting, StatusProcessing, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsActive reports whether the participant still occupies a position in the
// line (waiting or being served).
func (s ParticipantStatus) IsActive() bool {
	return s == StatusWaiting || s == StatusProcessing
}

func NewParticipantStatus(s string) (ParticipantStatus, error) {
	status := ParticipantStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
