// Package compliance computes overtime and vacation verdicts from
// Clockodo user reports. The analyzers are pure functions: they never
// touch the network and never fail, treating absent report fields as
// zero.
package compliance

import (
	"github.com/shopspring/decimal"

	"github.com/mkessler/clockodo-bridge/internal/clockodo"
)

const secondsPerHour = 3600

// ViolationKind tags the category of a compliance violation.
type ViolationKind string

const (
	KindExcessiveOvertime          ViolationKind = "excessive_overtime"
	KindExcessiveVacationRemaining ViolationKind = "excessive_vacation_remaining"
	KindInsufficientVacationTaken  ViolationKind = "insufficient_vacation_taken"
)

// Config bundles the thresholds for a compliance run.
type Config struct {
	MaxOvertimeHours     float64 `json:"max_overtime_hours"`
	MinVacationDays      float64 `json:"min_vacation_days"`
	MaxVacationRemaining float64 `json:"max_vacation_remaining"`
}

// OvertimeVerdict is the result of analyzing one report for overtime.
// ExcessHours is set exactly when HasViolation is true.
type OvertimeVerdict struct {
	HasViolation  bool     `json:"has_violation"`
	OvertimeHours float64  `json:"overtime_hours"`
	Threshold     float64  `json:"threshold"`
	ExcessHours   *float64 `json:"excess_hours,omitempty"`
}

// VacationVerdict is the result of analyzing one report for vacation
// usage. When HasViolation is true, Kind identifies the category and
// exactly one of ExcessDays or DaysShort is set.
type VacationVerdict struct {
	HasViolation   bool          `json:"has_violation"`
	UsedDays       float64       `json:"used_days"`
	RemainingDays  float64       `json:"remaining_days"`
	TotalAvailable float64       `json:"total_available"`
	Kind           ViolationKind `json:"violation_type,omitempty"`
	ExcessDays     *float64      `json:"excess_days,omitempty"`
	DaysShort      *float64      `json:"days_short,omitempty"`
}

// AnalyzeOvertime checks one report against a caller-supplied overtime
// threshold in hours. The report carries seconds; both the tracked
// difference and the carryover are converted before the comparison,
// which is strictly greater-than (exactly on the threshold is not a
// violation). Non-positive thresholds are legal.
func AnalyzeOvertime(report clockodo.UserReport, maxHoursThreshold float64) OvertimeVerdict {
	diffHours := float64(report.Diff) / secondsPerHour
	carryoverHours := float64(report.OvertimeCarryover) / secondsPerHour
	total := diffHours + carryoverHours

	verdict := OvertimeVerdict{
		HasViolation:  total > maxHoursThreshold,
		OvertimeHours: total,
		Threshold:     maxHoursThreshold,
	}
	if verdict.HasViolation {
		excess := total - maxHoursThreshold
		verdict.ExcessHours = &excess
	}
	return verdict
}

// AnalyzeVacation checks one report against two independent vacation
// thresholds. remaining = quota + carry - used. Excessive remaining
// days are checked before insufficient used days; when degenerate
// thresholds make both hold, only excessive_vacation_remaining is
// reported. Day arithmetic runs on decimals so half-day quotas do not
// accumulate float drift.
func AnalyzeVacation(report clockodo.UserReport, minDaysUsed, maxDaysRemaining float64) VacationVerdict {
	quota := decimal.NewFromFloat(report.HolidaysQuota)
	carry := decimal.NewFromFloat(report.HolidaysCarry)
	used := decimal.NewFromFloat(report.SumAbsence.RegularHolidays)

	total := quota.Add(carry)
	remaining := total.Sub(used)

	verdict := VacationVerdict{
		UsedDays:       used.InexactFloat64(),
		RemainingDays:  remaining.InexactFloat64(),
		TotalAvailable: total.InexactFloat64(),
	}

	maxRemaining := decimal.NewFromFloat(maxDaysRemaining)
	minUsed := decimal.NewFromFloat(minDaysUsed)

	switch {
	case remaining.GreaterThan(maxRemaining):
		verdict.HasViolation = true
		verdict.Kind = KindExcessiveVacationRemaining
		excess := remaining.Sub(maxRemaining).InexactFloat64()
		verdict.ExcessDays = &excess
	case used.LessThan(minUsed):
		verdict.HasViolation = true
		verdict.Kind = KindInsufficientVacationTaken
		short := minUsed.Sub(used).InexactFloat64()
		verdict.DaysShort = &short
	}
	return verdict
}
