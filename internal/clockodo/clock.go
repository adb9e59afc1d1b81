package clockodo

import (
	"context"
	"fmt"
)

type clockEnvelope struct {
	Running *Entry `json:"running"`
	Stopped *Entry `json:"stopped"`
}

// ClockStartParams are the parameters for starting the clock. Billable
// and ProjectsID are optional; when Billable is nil the API applies the
// customer or project default.
type ClockStartParams struct {
	CustomersID int    `json:"customers_id"`
	ServicesID  int    `json:"services_id"`
	Billable    *int   `json:"billable,omitempty"`
	ProjectsID  *int   `json:"projects_id,omitempty"`
	Text        string `json:"text,omitempty"`
}

// GetClock returns the currently running entry, or nil when no clock
// is running (v2 API).
func (c *Client) GetClock(ctx context.Context) (*Entry, error) {
	var env clockEnvelope
	if err := c.get(ctx, "v2/clock", nil, &env); err != nil {
		return nil, err
	}
	return env.Running, nil
}

// ClockStart starts the clock and returns the new running entry.
func (c *Client) ClockStart(ctx context.Context, params ClockStartParams) (*Entry, error) {
	var env clockEnvelope
	if err := c.post(ctx, "v2/clock", params, &env); err != nil {
		return nil, err
	}
	return env.Running, nil
}

// ClockStop stops the running clock entry and returns the completed
// entry.
func (c *Client) ClockStop(ctx context.Context, entryID int) (*Entry, error) {
	var env clockEnvelope
	if err := c.delete(ctx, fmt.Sprintf("v2/clock/%d", entryID), &env); err != nil {
		return nil, err
	}
	return env.Stopped, nil
}
