package tools

import (
	"context"
	"encoding/json"

	"github.com/mkessler/clockodo-bridge/internal/compliance"
	"github.com/mkessler/clockodo-bridge/internal/config"
	"github.com/mkessler/clockodo-bridge/internal/service"
)

type overtimeParams struct {
	Year             int      `json:"year"`
	MaxOvertimeHours *float64 `json:"max_overtime_hours"`
}

type vacationParams struct {
	Year                 int      `json:"year"`
	MinVacationDays      *float64 `json:"min_vacation_days"`
	MaxVacationRemaining *float64 `json:"max_vacation_remaining"`
}

type summaryParams struct {
	Year                 int      `json:"year"`
	MaxOvertimeHours     *float64 `json:"max_overtime_hours"`
	MinVacationDays      *float64 `json:"min_vacation_days"`
	MaxVacationRemaining *float64 `json:"max_vacation_remaining"`
}

func orDefault(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}

// registerHRTools registers the read-only compliance analysis tools.
// Omitted thresholds fall back to the configured defaults.
func registerHRTools(reg *Registry, hr *service.HRService, defaults config.ComplianceConfig) {
	reg.Register("check_overtime_compliance", "Report employees whose overtime exceeds the threshold.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			var p overtimeParams
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			if p.Year == 0 {
				return nil, paramErr("year is required")
			}
			return hr.CheckOvertimeCompliance(ctx, p.Year, orDefault(p.MaxOvertimeHours, defaults.MaxOvertimeHours))
		})

	reg.Register("check_vacation_compliance", "Report employees with vacation usage issues.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			var p vacationParams
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			if p.Year == 0 {
				return nil, paramErr("year is required")
			}
			return hr.CheckVacationCompliance(ctx, p.Year,
				orDefault(p.MinVacationDays, defaults.MinVacationDays),
				orDefault(p.MaxVacationRemaining, defaults.MaxVacationRemaining))
		})

	reg.Register("get_hr_summary", "Complete HR compliance summary for all employees.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			var p summaryParams
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			if p.Year == 0 {
				return nil, paramErr("year is required")
			}
			cfg := compliance.Config{
				MaxOvertimeHours:     orDefault(p.MaxOvertimeHours, defaults.MaxOvertimeHours),
				MinVacationDays:      orDefault(p.MinVacationDays, defaults.MinVacationDays),
				MaxVacationRemaining: orDefault(p.MaxVacationRemaining, defaults.MaxVacationRemaining),
			}
			return hr.GetHRSummary(ctx, p.Year, cfg)
		})
}
