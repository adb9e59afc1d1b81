package tools

import (
	"context"
	"encoding/json"

	"github.com/mkessler/clockodo-bridge/internal/clockodo"
	"github.com/mkessler/clockodo-bridge/internal/service"
	"github.com/mkessler/clockodo-bridge/internal/timeutil"
)

type entriesWindowParams struct {
	TimeSince string `json:"time_since"`
	TimeUntil string `json:"time_until"`
}

type clockStartParams struct {
	CustomersID int    `json:"customers_id"`
	ServicesID  int    `json:"services_id"`
	Billable    *int   `json:"billable"`
	ProjectsID  *int   `json:"projects_id"`
	Text        string `json:"text"`
}

type addEntryParams struct {
	CustomersID int    `json:"customers_id"`
	ServicesID  int    `json:"services_id"`
	Billable    int    `json:"billable"`
	TimeSince   string `json:"time_since"`
	TimeUntil   string `json:"time_until"`
	ProjectsID  *int   `json:"projects_id"`
	Text        string `json:"text"`
}

type entryIDParams struct {
	EntryID int `json:"entry_id"`
}

type editEntryParams struct {
	EntryID int            `json:"entry_id"`
	Fields  map[string]any `json:"fields"`
}

type vacationRangeParams struct {
	DateSince string `json:"date_since"`
	DateUntil string `json:"date_until"`
}

type absenceIDParams struct {
	AbsenceID int `json:"absence_id"`
}

type deleteVacationParams struct {
	AbsenceID  int  `json:"absence_id"`
	AutoCancel bool `json:"auto_cancel"`
}

// normalizeWindow normalizes both bounds of a time window before they
// reach the Gateway. A malformed bound fails here, pre-network.
func normalizeWindow(since, until string) (string, string, error) {
	normalizedSince, err := timeutil.NormalizeDateTime(since)
	if err != nil {
		return "", "", err
	}
	normalizedUntil, err := timeutil.NormalizeDateTime(until)
	if err != nil {
		return "", "", err
	}
	return normalizedSince, normalizedUntil, nil
}

// normalizeEntryFields normalizes the datetime fields inside an edit
// payload, leaving every other field untouched.
func normalizeEntryFields(fields map[string]any) (map[string]any, error) {
	for _, key := range []string{"time_since", "time_until"} {
		if raw, ok := fields[key]; ok {
			value, ok := raw.(string)
			if !ok {
				return nil, paramErr("%s must be a string", key)
			}
			normalized, err := timeutil.NormalizeDateTime(value)
			if err != nil {
				return nil, err
			}
			fields[key] = normalized
		}
	}
	return fields, nil
}

func registerUserReadTools(reg *Registry, user *service.UserService) {
	reg.Register("get_current_user_id", "Resolve the user id behind the configured API credentials.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			id, err := user.CurrentUserID(ctx)
			if err != nil {
				return nil, err
			}
			return map[string]any{"user_id": id}, nil
		})

	reg.Register("get_my_clock", "Show the currently running clock entry, if any.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			running, err := user.GetMyClock(ctx)
			if err != nil {
				return nil, err
			}
			return map[string]any{"running": running}, nil
		})

	reg.Register("get_my_entries", "List the caller's time entries in a window.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			var p entriesWindowParams
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			since, until, err := normalizeWindow(p.TimeSince, p.TimeUntil)
			if err != nil {
				return nil, err
			}
			entries, err := user.GetMyEntries(ctx, since, until)
			if err != nil {
				return nil, err
			}
			return map[string]any{"entries": entries}, nil
		})
}

func registerUserEditTools(reg *Registry, user *service.UserService) {
	reg.Register("start_my_clock", "Start the clock for the caller.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			var p clockStartParams
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			if p.CustomersID == 0 || p.ServicesID == 0 {
				return nil, paramErr("customers_id and services_id are required")
			}
			return user.StartMyClock(ctx, clockodo.ClockStartParams{
				CustomersID: p.CustomersID,
				ServicesID:  p.ServicesID,
				Billable:    p.Billable,
				ProjectsID:  p.ProjectsID,
				Text:        p.Text,
			})
		})

	reg.Register("stop_my_clock", "Stop the currently running clock.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			return user.StopMyClock(ctx)
		})

	reg.Register("add_my_entry", "Create a time entry owned by the caller.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			var p addEntryParams
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			if p.CustomersID == 0 || p.ServicesID == 0 {
				return nil, paramErr("customers_id and services_id are required")
			}
			since, until, err := normalizeWindow(p.TimeSince, p.TimeUntil)
			if err != nil {
				return nil, err
			}
			return user.AddMyEntry(ctx, clockodo.EntryParams{
				CustomersID: p.CustomersID,
				ServicesID:  p.ServicesID,
				Billable:    p.Billable,
				TimeSince:   since,
				TimeUntil:   until,
				ProjectsID:  p.ProjectsID,
				Text:        p.Text,
			})
		})

	reg.Register("edit_my_entry", "Edit one of the caller's time entries.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			var p editEntryParams
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			if p.EntryID == 0 {
				return nil, paramErr("entry_id is required")
			}
			fields, err := normalizeEntryFields(p.Fields)
			if err != nil {
				return nil, err
			}
			return user.EditMyEntry(ctx, p.EntryID, fields)
		})

	reg.Register("delete_my_entry", "Delete one of the caller's time entries.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			var p entryIDParams
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			if p.EntryID == 0 {
				return nil, paramErr("entry_id is required")
			}
			if err := user.DeleteMyEntry(ctx, p.EntryID); err != nil {
				return nil, err
			}
			return map[string]any{"deleted": true, "entry_id": p.EntryID}, nil
		})

	reg.Register("add_my_vacation", "Request a vacation for the caller.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			var p vacationRangeParams
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			if p.DateSince == "" || p.DateUntil == "" {
				return nil, paramErr("date_since and date_until are required")
			}
			return user.AddMyVacation(ctx, p.DateSince, p.DateUntil)
		})

	reg.Register("cancel_my_vacation", "Cancel an approved vacation.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			var p absenceIDParams
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			if p.AbsenceID == 0 {
				return nil, paramErr("absence_id is required")
			}
			return user.CancelMyVacation(ctx, p.AbsenceID)
		})

	reg.Register("delete_my_vacation", "Delete a vacation, optionally cancelling it first.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			var p deleteVacationParams
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			if p.AbsenceID == 0 {
				return nil, paramErr("absence_id is required")
			}
			if err := user.DeleteMyVacation(ctx, p.AbsenceID, p.AutoCancel); err != nil {
				return nil, err
			}
			return map[string]any{"deleted": true, "absence_id": p.AbsenceID}, nil
		})
}
