package clockodo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

type entriesEnvelope struct {
	Entries []Entry `json:"entries"`
}

type entryEnvelope struct {
	Entry *Entry `json:"entry"`
}

// EntryParams are the parameters for creating a time entry. Billable
// is required by the API (0, 1 or 2). UsersID is optional and only
// honored for callers with admin permissions.
type EntryParams struct {
	CustomersID int    `json:"customers_id"`
	ServicesID  int    `json:"services_id"`
	Billable    int    `json:"billable"`
	TimeSince   string `json:"time_since"`
	TimeUntil   string `json:"time_until"`
	ProjectsID  *int   `json:"projects_id,omitempty"`
	Text        string `json:"text,omitempty"`
	UsersID     *int   `json:"users_id,omitempty"`
}

// ListEntries lists time entries in the given ISO-8601 UTC window
// (v2 API). Pass userID <= 0 to list entries for all visible users.
func (c *Client) ListEntries(ctx context.Context, timeSince, timeUntil string, userID int) ([]Entry, error) {
	params := url.Values{}
	params.Set("time_since", timeSince)
	params.Set("time_until", timeUntil)
	if userID > 0 {
		params.Set("filter[users_id]", strconv.Itoa(userID))
	}

	var env entriesEnvelope
	if err := c.get(ctx, "v2/entries", params, &env); err != nil {
		return nil, err
	}
	return env.Entries, nil
}

// CreateEntry creates a new time entry.
func (c *Client) CreateEntry(ctx context.Context, params EntryParams) (*Entry, error) {
	var env entryEnvelope
	if err := c.post(ctx, "v2/entries", params, &env); err != nil {
		return nil, err
	}
	return env.Entry, nil
}

// EditEntry updates an existing entry. Only the fields present in the
// map are changed; the Gateway validates ownership and field values.
func (c *Client) EditEntry(ctx context.Context, entryID int, fields map[string]any) (*Entry, error) {
	var env entryEnvelope
	if err := c.put(ctx, fmt.Sprintf("v2/entries/%d", entryID), fields, &env); err != nil {
		return nil, err
	}
	return env.Entry, nil
}

// DeleteEntry deletes a time entry.
func (c *Client) DeleteEntry(ctx context.Context, entryID int) error {
	return c.delete(ctx, fmt.Sprintf("v2/entries/%d", entryID), nil)
}
