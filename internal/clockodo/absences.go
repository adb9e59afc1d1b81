package clockodo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

type absencesEnvelope struct {
	Absences []Absence `json:"absences"`
	Data     []Absence `json:"data"`
}

type absenceEnvelope struct {
	Absence *Absence `json:"absence"`
	Data    *Absence `json:"data"`
}

func (e absenceEnvelope) record() *Absence {
	if e.Absence != nil {
		return e.Absence
	}
	return e.Data
}

// AbsenceParams are the parameters for creating an absence. Status is
// optional; when nil the Gateway creates the record as enquired.
type AbsenceParams struct {
	DateSince string `json:"date_since"`
	DateUntil string `json:"date_until"`
	Type      int    `json:"type"`
	UsersID   *int   `json:"users_id,omitempty"`
	Status    *int   `json:"status,omitempty"`
	Note      string `json:"note,omitempty"`
}

// ListAbsences lists absences for a year (v4 API).
func (c *Client) ListAbsences(ctx context.Context, year int) ([]Absence, error) {
	params := url.Values{}
	params.Set("filter[year]", strconv.Itoa(year))

	var env absencesEnvelope
	if err := c.get(ctx, "v4/absences", params, &env); err != nil {
		return nil, err
	}
	if env.Absences != nil {
		return env.Absences, nil
	}
	return env.Data, nil
}

// CreateAbsence creates a new absence record.
func (c *Client) CreateAbsence(ctx context.Context, params AbsenceParams) (*Absence, error) {
	var env absenceEnvelope
	if err := c.post(ctx, "v4/absences", params, &env); err != nil {
		return nil, err
	}
	return env.record(), nil
}

// EditAbsence updates an existing absence. Only the fields present in
// the map are changed. Status transitions are not validated locally;
// the Gateway is the authority and rejects illegal transitions.
func (c *Client) EditAbsence(ctx context.Context, absenceID int, fields map[string]any) (*Absence, error) {
	var env absenceEnvelope
	if err := c.put(ctx, fmt.Sprintf("v4/absences/%d", absenceID), fields, &env); err != nil {
		return nil, err
	}
	return env.record(), nil
}

// DeleteAbsence deletes an absence. The Gateway only accepts deletion
// of declined or cancelled records.
func (c *Client) DeleteAbsence(ctx context.Context, absenceID int) error {
	return c.delete(ctx, fmt.Sprintf("v4/absences/%d", absenceID), nil)
}
