package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/mkessler/clockodo-bridge/internal/clockodo"
	"github.com/mkessler/clockodo-bridge/internal/domain/absence"
)

// ClientFactory builds a Clockodo client on demand. The team-leader
// service constructs its client lazily so a misconfigured credential
// surfaces on first use instead of at startup.
type ClientFactory func() (*clockodo.Client, error)

// TeamLeaderService implements team-scoped operations: absence
// approval, rejection and adjustment, plus edits to team members'
// entries. Scope enforcement belongs to the Gateway's permission
// model; nothing here checks whether a record belongs to the caller's
// team.
type TeamLeaderService struct {
	factory ClientFactory
	logger  *zap.Logger

	mu     sync.Mutex
	client *clockodo.Client
}

// NewTeamLeaderService creates a team-leader service with a lazily
// initialized client.
func NewTeamLeaderService(factory ClientFactory, logger *zap.Logger) *TeamLeaderService {
	return &TeamLeaderService{factory: factory, logger: logger}
}

// getClient returns the cached client, building it on first use. A
// factory failure is not cached; the next call retries.
func (s *TeamLeaderService) getClient() (*clockodo.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}
	client, err := s.factory()
	if err != nil {
		return nil, err
	}
	s.client = client
	return client, nil
}

// ApproveVacation moves an enquired absence to approved. The prior
// status is not verified locally.
func (s *TeamLeaderService) ApproveVacation(ctx context.Context, absenceID int) (*clockodo.Absence, error) {
	return s.setStatus(ctx, absenceID, absence.TriggerApprove)
}

// RejectVacation moves an enquired absence to declined.
func (s *TeamLeaderService) RejectVacation(ctx context.Context, absenceID int) (*clockodo.Absence, error) {
	return s.setStatus(ctx, absenceID, absence.TriggerReject)
}

func (s *TeamLeaderService) setStatus(ctx context.Context, absenceID int, trigger absence.Trigger) (*clockodo.Absence, error) {
	client, err := s.getClient()
	if err != nil {
		return nil, err
	}
	target := int(trigger.Target())
	s.logger.Info("absence status transition",
		zap.Int("absence_id", absenceID),
		zap.String("trigger", trigger.String()),
		zap.Int("target_status", target))
	return client.EditAbsence(ctx, absenceID, map[string]any{"status": target})
}

// ListPendingVacations returns the enquired absences for a year, in
// the order the Gateway returned them.
func (s *TeamLeaderService) ListPendingVacations(ctx context.Context, year int) ([]clockodo.Absence, error) {
	client, err := s.getClient()
	if err != nil {
		return nil, err
	}
	absences, err := client.ListAbsences(ctx, year)
	if err != nil {
		return nil, err
	}

	pending := []clockodo.Absence{}
	for _, record := range absences {
		if absence.Status(record.Status) == absence.StatusEnquired {
			pending = append(pending, record)
		}
	}
	return pending, nil
}

// AdjustVacationLength changes the date range of an absence without
// touching its status. Useful for partial approvals and corrections.
func (s *TeamLeaderService) AdjustVacationLength(ctx context.Context, absenceID int, newDateSince, newDateUntil string) (*clockodo.Absence, error) {
	client, err := s.getClient()
	if err != nil {
		return nil, err
	}
	return client.EditAbsence(ctx, absenceID, map[string]any{
		"date_since": newDateSince,
		"date_until": newDateUntil,
	})
}

// CreateTeamVacation creates an absence on behalf of a team member.
// With autoApprove the record is created directly in approved status,
// otherwise as enquired.
func (s *TeamLeaderService) CreateTeamVacation(ctx context.Context, userID int, dateSince, dateUntil string, absenceType int, autoApprove bool) (*clockodo.Absence, error) {
	client, err := s.getClient()
	if err != nil {
		return nil, err
	}

	status := int(absence.StatusEnquired)
	if autoApprove {
		status = int(absence.StatusApproved)
	}
	return client.CreateAbsence(ctx, clockodo.AbsenceParams{
		DateSince: dateSince,
		DateUntil: dateUntil,
		Type:      absenceType,
		UsersID:   &userID,
		Status:    &status,
	})
}

// EditTeamEntry updates a team member's time entry; a pass-through
// with scope enforcement delegated to the Gateway.
func (s *TeamLeaderService) EditTeamEntry(ctx context.Context, entryID int, fields map[string]any) (*clockodo.Entry, error) {
	client, err := s.getClient()
	if err != nil {
		return nil, err
	}
	return client.EditEntry(ctx, entryID, fields)
}

// DeleteTeamEntry deletes a team member's time entry.
func (s *TeamLeaderService) DeleteTeamEntry(ctx context.Context, entryID int) error {
	client, err := s.getClient()
	if err != nil {
		return err
	}
	return client.DeleteEntry(ctx, entryID)
}
