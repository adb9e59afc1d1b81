package absence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerTransitions(t *testing.T) {
	tests := []struct {
		trigger Trigger
		from    Status
		to      Status
	}{
		{TriggerApprove, StatusEnquired, StatusApproved},
		{TriggerReject, StatusEnquired, StatusDeclined},
		{TriggerCancelApproval, StatusApproved, StatusApprovalCancelled},
		{TriggerCancelRequest, StatusEnquired, StatusRequestCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.trigger.String(), func(t *testing.T) {
			tr, ok := tt.trigger.Transition()
			require.True(t, ok)
			assert.Equal(t, tt.from, tr.From)
			assert.Equal(t, tt.to, tr.To)
			assert.Equal(t, tt.to, tt.trigger.Target())
		})
	}
}

func TestTriggerUnknown(t *testing.T) {
	_, ok := Trigger("promote").Transition()
	assert.False(t, ok)

	assert.Panics(t, func() {
		Trigger("promote").Target()
	})
}

// Every trigger must leave the record in a valid status, and the two
// cancel paths plus reject land on deletable statuses.
func TestTriggerTargetsAreValid(t *testing.T) {
	for _, trigger := range []Trigger{TriggerApprove, TriggerReject, TriggerCancelApproval, TriggerCancelRequest} {
		assert.True(t, trigger.Target().IsValid())
	}

	assert.True(t, TriggerReject.Target().Deletable())
	assert.True(t, TriggerCancelApproval.Target().Deletable())
	assert.True(t, TriggerCancelRequest.Target().Deletable())
	assert.False(t, TriggerApprove.Target().Deletable())
}
