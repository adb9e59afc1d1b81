// Package service implements the business operations the tool surface
// exposes: HR compliance reporting, current-user time tracking and
// team-leader absence management. Services fetch fresh data from the
// Clockodo client per call and hold no state across calls, except the
// user service's memoized identity.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/mkessler/clockodo-bridge/internal/clockodo"
	"github.com/mkessler/clockodo-bridge/internal/compliance"
)

// HRService computes compliance reports over the whole roster.
type HRService struct {
	client *clockodo.Client
	logger *zap.Logger
}

// NewHRService creates an HR compliance service.
func NewHRService(client *clockodo.Client, logger *zap.Logger) *HRService {
	return &HRService{client: client, logger: logger}
}

// OvertimeViolator is one employee exceeding the overtime threshold.
type OvertimeViolator struct {
	UserID        int     `json:"user_id"`
	UserName      string  `json:"user_name"`
	OvertimeHours float64 `json:"overtime_hours"`
	Threshold     float64 `json:"threshold"`
	ExcessHours   float64 `json:"excess_hours"`
}

// OvertimeComplianceReport is the result of an overtime check.
type OvertimeComplianceReport struct {
	Year            int                `json:"year"`
	Threshold       float64            `json:"threshold"`
	TotalViolations int                `json:"total_violations"`
	Violations      []OvertimeViolator `json:"violations"`
}

// VacationViolator is one employee with a vacation compliance issue.
type VacationViolator struct {
	UserID        int                      `json:"user_id"`
	UserName      string                   `json:"user_name"`
	ViolationType compliance.ViolationKind `json:"violation_type"`
	UsedDays      float64                  `json:"used_days"`
	RemainingDays float64                  `json:"remaining_days"`
	ExcessDays    *float64                 `json:"excess_days,omitempty"`
	DaysShort     *float64                 `json:"days_short,omitempty"`
}

// VacationComplianceReport is the result of a vacation check.
type VacationComplianceReport struct {
	Year                 int                `json:"year"`
	MinVacationDays      float64            `json:"min_vacation_days"`
	MaxVacationRemaining float64            `json:"max_vacation_remaining"`
	TotalViolations      int                `json:"total_violations"`
	Violations           []VacationViolator `json:"violations"`
}

// Summary is the combined compliance picture for one year. Every
// employee on the roster counts toward TotalEmployees, violating or
// not.
type Summary struct {
	Year                         int                             `json:"year"`
	TotalEmployees               int                             `json:"total_employees"`
	EmployeesWithViolations      []compliance.EmployeeViolations `json:"employees_with_violations"`
	TotalEmployeesWithViolations int                             `json:"total_employees_with_violations"`
	Config                       compliance.Config               `json:"config"`
}

// CheckOvertimeCompliance reports employees whose accumulated overtime
// exceeds maxOvertimeHours for the given year.
func (s *HRService) CheckOvertimeCompliance(ctx context.Context, year int, maxOvertimeHours float64) (*OvertimeComplianceReport, error) {
	reports, err := s.client.GetUserReports(ctx, year, 0, clockodo.ReportYear)
	if err != nil {
		return nil, err
	}

	violations := []OvertimeViolator{}
	for _, report := range reports {
		verdict := compliance.AnalyzeOvertime(report, maxOvertimeHours)
		if !verdict.HasViolation {
			continue
		}
		violations = append(violations, OvertimeViolator{
			UserID:        report.UsersID,
			UserName:      report.UsersName,
			OvertimeHours: verdict.OvertimeHours,
			Threshold:     verdict.Threshold,
			ExcessHours:   *verdict.ExcessHours,
		})
	}

	s.logger.Info("overtime compliance checked",
		zap.Int("year", year),
		zap.Int("employees", len(reports)),
		zap.Int("violations", len(violations)))

	return &OvertimeComplianceReport{
		Year:            year,
		Threshold:       maxOvertimeHours,
		TotalViolations: len(violations),
		Violations:      violations,
	}, nil
}

// CheckVacationCompliance reports employees who retain too many or
// have used too few vacation days for the given year.
func (s *HRService) CheckVacationCompliance(ctx context.Context, year int, minVacationDays, maxVacationRemaining float64) (*VacationComplianceReport, error) {
	reports, err := s.client.GetUserReports(ctx, year, 0, clockodo.ReportYear)
	if err != nil {
		return nil, err
	}

	violations := []VacationViolator{}
	for _, report := range reports {
		verdict := compliance.AnalyzeVacation(report, minVacationDays, maxVacationRemaining)
		if !verdict.HasViolation {
			continue
		}
		violations = append(violations, VacationViolator{
			UserID:        report.UsersID,
			UserName:      report.UsersName,
			ViolationType: verdict.Kind,
			UsedDays:      verdict.UsedDays,
			RemainingDays: verdict.RemainingDays,
			ExcessDays:    verdict.ExcessDays,
			DaysShort:     verdict.DaysShort,
		})
	}

	s.logger.Info("vacation compliance checked",
		zap.Int("year", year),
		zap.Int("employees", len(reports)),
		zap.Int("violations", len(violations)))

	return &VacationComplianceReport{
		Year:                 year,
		MinVacationDays:      minVacationDays,
		MaxVacationRemaining: maxVacationRemaining,
		TotalViolations:      len(violations),
		Violations:           violations,
	}, nil
}

// GetHRSummary runs both analyzers over every employee and returns the
// filtered violation list alongside whole-roster counts and the
// thresholds that were applied.
func (s *HRService) GetHRSummary(ctx context.Context, year int, cfg compliance.Config) (*Summary, error) {
	reports, err := s.client.GetUserReports(ctx, year, 0, clockodo.ReportYear)
	if err != nil {
		return nil, err
	}

	all := compliance.CollectViolations(reports, cfg)

	withViolations := []compliance.EmployeeViolations{}
	for _, record := range all {
		if len(record.Violations) > 0 {
			withViolations = append(withViolations, record)
		}
	}

	return &Summary{
		Year:                         year,
		TotalEmployees:               len(reports),
		EmployeesWithViolations:      withViolations,
		TotalEmployeesWithViolations: len(withViolations),
		Config:                       cfg,
	}, nil
}
