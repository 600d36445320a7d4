package courier

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status is a courier's availability.
type Status int

const (
	Unknown Status = iota
	Available
	Busy
)

var statusNames = map[Status]string{
	Available: "available",
	Busy:      "busy",
}

// ParseStatus accepts the names produced by String.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("courierStatus", fmt.Errorf("%q is not a valid courier status", s))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("courierStatus", fmt.Errorf("%d is not a valid courier status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}
