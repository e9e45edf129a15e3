package queue

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName          = errors.New("queue name is required")
	ErrInvalidServiceTime = errors.New("service time must be a positive number of minutes")
	ErrInvalidStatus      = errors.New("invalid participant status")
	ErrEmptyCode          = errors.New("queue code is required")
)

// DefaultServiceTimeMinutes is applied when a queue is created without an
// explicit per-participant service time.
const DefaultServiceTimeMinutes = 5

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrEmptyName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

// ServiceTime is the number of minutes one participant occupies once being
// served. Set at creation, never updated.
type ServiceTime struct {
	minutes int32
}

func NewServiceTime(minutes int32) (ServiceTime, error) {
	if minutes <= 0 {
		return ServiceTime{}, ErrInvalidServiceTime
	}
	return ServiceTime{minutes: minutes}, nil
}

func DefaultServiceTime() ServiceTime {
	return ServiceTime{minutes: DefaultServiceTimeMinutes}
}

func (s ServiceTime) Minutes() int32 {
	return s.minutes
}

// Code is the short public identifier used for code-based joining, distinct
// from the internal id.
type Code struct {
	value string
}

func NewCode(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Code{}, ErrEmptyCode
	}
	return Code{value: s}, nil
}

func (c Code) Value() string {
	return c.value
}
