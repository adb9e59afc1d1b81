package compliance

import "github.com/mkessler/clockodo-bridge/internal/clockodo"

// Violation is one tagged compliance finding. Only the fields relevant
// to the kind are populated: threshold/excess for overtime, the day
// counters for vacation.
type Violation struct {
	Type          ViolationKind `json:"type"`
	OvertimeHours *float64      `json:"overtime_hours,omitempty"`
	Threshold     *float64      `json:"threshold,omitempty"`
	ExcessHours   *float64      `json:"excess_hours,omitempty"`
	UsedDays      *float64      `json:"used_days,omitempty"`
	RemainingDays *float64      `json:"remaining_days,omitempty"`
	ExcessDays    *float64      `json:"excess_days,omitempty"`
	DaysShort     *float64      `json:"days_short,omitempty"`
}

// EmployeeViolations carries every finding for one employee. Employees
// without findings keep an empty (never nil) Violations slice so
// downstream total-employee accounting sees every report.
type EmployeeViolations struct {
	UserID     int         `json:"user_id"`
	UserName   string      `json:"user_name"`
	Year       int         `json:"year"`
	Violations []Violation `json:"violations"`
}

// CollectViolations runs both analyzers over every report and returns
// one record per report, input order preserved. Each record carries
// zero, one or two violations.
func CollectViolations(reports []clockodo.UserReport, cfg Config) []EmployeeViolations {
	records := make([]EmployeeViolations, 0, len(reports))

	for _, report := range reports {
		record := EmployeeViolations{
			UserID:     report.UsersID,
			UserName:   report.UsersName,
			Year:       report.Year,
			Violations: []Violation{},
		}

		if overtime := AnalyzeOvertime(report, cfg.MaxOvertimeHours); overtime.HasViolation {
			hours := overtime.OvertimeHours
			threshold := overtime.Threshold
			record.Violations = append(record.Violations, Violation{
				Type:          KindExcessiveOvertime,
				OvertimeHours: &hours,
				Threshold:     &threshold,
				ExcessHours:   overtime.ExcessHours,
			})
		}

		if vacation := AnalyzeVacation(report, cfg.MinVacationDays, cfg.MaxVacationRemaining); vacation.HasViolation {
			used := vacation.UsedDays
			remaining := vacation.RemainingDays
			record.Violations = append(record.Violations, Violation{
				Type:          vacation.Kind,
				UsedDays:      &used,
				RemainingDays: &remaining,
				ExcessDays:    vacation.ExcessDays,
				DaysShort:     vacation.DaysShort,
			})
		}

		records = append(records, record)
	}
	return records
}
