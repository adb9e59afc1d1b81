package absence

import "fmt"

// Trigger is a lifecycle action that moves an absence between
// statuses.
type Trigger string

const (
	TriggerApprove        Trigger = "approve"
	TriggerReject         Trigger = "reject"
	TriggerCancelApproval Trigger = "cancel_approval"
	TriggerCancelRequest  Trigger = "cancel_request"
)

// Transition describes the expected prior status and the target status
// of a trigger.
type Transition struct {
	From Status
	To   Status
}

var transitions = map[Trigger]Transition{
	TriggerApprove:        {From: StatusEnquired, To: StatusApproved},
	TriggerReject:         {From: StatusEnquired, To: StatusDeclined},
	TriggerCancelApproval: {From: StatusApproved, To: StatusApprovalCancelled},
	TriggerCancelRequest:  {From: StatusEnquired, To: StatusRequestCancelled},
}

func (t Trigger) String() string {
	return string(t)
}

// Transition returns the transition for the trigger.
func (t Trigger) Transition() (Transition, bool) {
	tr, ok := transitions[t]
	return tr, ok
}

// Target returns the status a trigger moves the record to. It panics
// on an unknown trigger; triggers are package constants, so this only
// fires on a programming error.
func (t Trigger) Target() Status {
	tr, ok := transitions[t]
	if !ok {
		panic(fmt.Sprintf("absence: unknown trigger %q", t))
	}
	return tr.To
}

// Note: the services issue status-set requests without reading the
// record's current status first. The Gateway is the authority on
// whether a transition is legal; an illegal one surfaces as a
// transport error. The From column above documents intent only.
