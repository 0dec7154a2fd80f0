package parcel

import (
	"fmt"

	"parcels/internal/pkg/errs"
)

// Status is the lifecycle stage of a package. Values match the ids seeded in the
// package_statuses table and must never be renumbered.
//
// Transitions:
//
//	Created ──┬──> Modified ──┐
//	          │      ^  │     │
//	          │      └──┘     v
//	          └─────────────> Archived
//
// Sent, Arrived and Received are part of the enumeration and the schema but no
// operation moves a package into them yet.
type Status int

const (
	Unknown Status = iota
	Created
	Sent
	Arrived
	Received
	Archived
	Modified
)

var statusNames = map[Status]string{
	Created:  "Created",
	Sent:     "Sent",
	Arrived:  "Arrived",
	Received: "Received",
	Archived: "Archived",
	Modified: "Modified",
}

// Statuses returns every valid status ordered by id.
func Statuses() []Status {
	return []Status{Created, Sent, Arrived, Received, Archived, Modified}
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String is safe on invalid values and returns "Unknown" for them.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Archived
}

// Modify returns the status after a category or description change.
// Only Created and Modified packages may be modified.
func (s Status) Modify() (Status, error) {
	if s != Created && s != Modified {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to modify", s),
		)
	}
	return Modified, nil
}

// Archive returns Archived from any valid non-archived status.
func (s Status) Archive() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s == Archived {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status", ErrAlreadyArchived)
	}
	return Archived, nil
}
