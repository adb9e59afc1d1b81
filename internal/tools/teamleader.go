package tools

import (
	"context"
	"encoding/json"

	"github.com/mkessler/clockodo-bridge/internal/domain/absence"
	"github.com/mkessler/clockodo-bridge/internal/service"
)

type adjustVacationParams struct {
	AbsenceID    int    `json:"absence_id"`
	NewDateSince string `json:"new_date_since"`
	NewDateUntil string `json:"new_date_until"`
}

type teamVacationParams struct {
	UserID      int    `json:"user_id"`
	DateSince   string `json:"date_since"`
	DateUntil   string `json:"date_until"`
	Type        *int   `json:"type"`
	AutoApprove bool   `json:"auto_approve"`
}

func registerTeamLeaderReadTools(reg *Registry, leader *service.TeamLeaderService) {
	reg.Register("list_pending_vacation_requests", "List vacation requests awaiting approval.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			var p yearParams
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			if p.Year == 0 {
				return nil, paramErr("year is required")
			}
			pending, err := leader.ListPendingVacations(ctx, p.Year)
			if err != nil {
				return nil, err
			}
			return map[string]any{"pending": pending, "count": len(pending)}, nil
		})
}

func registerTeamLeaderEditTools(reg *Registry, leader *service.TeamLeaderService) {
	reg.Register("approve_vacation_request", "Approve a pending vacation request.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			var p absenceIDParams
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			if p.AbsenceID == 0 {
				return nil, paramErr("absence_id is required")
			}
			return leader.ApproveVacation(ctx, p.AbsenceID)
		})

	reg.Register("reject_vacation_request", "Reject a pending vacation request.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			var p absenceIDParams
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			if p.AbsenceID == 0 {
				return nil, paramErr("absence_id is required")
			}
			return leader.RejectVacation(ctx, p.AbsenceID)
		})

	reg.Register("adjust_vacation_dates", "Change the date range of an absence.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			var p adjustVacationParams
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			if p.AbsenceID == 0 {
				return nil, paramErr("absence_id is required")
			}
			if p.NewDateSince == "" || p.NewDateUntil == "" {
				return nil, paramErr("new_date_since and new_date_until are required")
			}
			return leader.AdjustVacationLength(ctx, p.AbsenceID, p.NewDateSince, p.NewDateUntil)
		})

	reg.Register("create_team_vacation", "Create a vacation on behalf of a team member.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			var p teamVacationParams
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			if p.UserID == 0 {
				return nil, paramErr("user_id is required")
			}
			if p.DateSince == "" || p.DateUntil == "" {
				return nil, paramErr("date_since and date_until are required")
			}
			absenceType := int(absence.TypeVacation)
			if p.Type != nil {
				absenceType = *p.Type
			}
			return leader.CreateTeamVacation(ctx, p.UserID, p.DateSince, p.DateUntil, absenceType, p.AutoApprove)
		})

	reg.Register("edit_team_entry", "Edit a team member's time entry.",
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
			return leader.EditTeamEntry(ctx, p.EntryID, fields)
		})

	reg.Register("delete_team_entry", "Delete a team member's time entry.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			var p entryIDParams
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			if p.EntryID == 0 {
				return nil, paramErr("entry_id is required")
			}
			if err := leader.DeleteTeamEntry(ctx, p.EntryID); err != nil {
				return nil, err
			}
			return map[string]any{"deleted": true, "entry_id": p.EntryID}, nil
		})
}
