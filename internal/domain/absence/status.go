// Package absence models the lifecycle of a Clockodo absence record.
// The numeric status codes are owned by the Gateway; this package
// names them and describes the legal transitions so the service layer
// can derive target statuses without duplicating magic numbers.
package absence

import "fmt"

// Status is the approval state of an absence record.
type Status int

const (
	StatusEnquired          Status = 0
	StatusApproved          Status = 1
	StatusDeclined          Status = 2
	StatusApprovalCancelled Status = 3
	StatusRequestCancelled  Status = 4
)

var statusNames = map[Status]string{
	StatusEnquired:          "enquired",
	StatusApproved:          "approved",
	StatusDeclined:          "declined",
	StatusApprovalCancelled: "approval cancelled",
	StatusRequestCancelled:  "request cancelled",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status %d", int(s))
}

// IsValid reports whether the status is one the Gateway defines.
func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

// Deletable reports whether the Gateway accepts deletion of a record
// in this status. Enquired and approved records must be declined or
// cancelled first.
func (s Status) Deletable() bool {
	switch s {
	case StatusDeclined, StatusApprovalCancelled, StatusRequestCancelled:
		return true
	}
	return false
}
