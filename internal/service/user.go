package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/mkessler/clockodo-bridge/internal/clockodo"
	"github.com/mkessler/clockodo-bridge/internal/domain/absence"
)

// ErrNoRunningClock is returned by StopMyClock when no clock entry is
// currently running.
var ErrNoRunningClock = errors.New("no clock is currently running")

// NotFoundError reports that no Clockodo user matches the credential
// identity the client authenticates as.
type NotFoundError struct {
	Email string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find user with email %s", e.Email)
}

// UserService implements self-scoped operations: the caller acts only
// on their own clock, entries and absences. The owner id is resolved
// from the API credentials and injected server-side, so callers never
// name a user for "my" operations.
type UserService struct {
	client *clockodo.Client
	logger *zap.Logger

	mu            sync.Mutex
	currentUserID int
	resolved      bool
}

// NewUserService creates a user-scoped service.
func NewUserService(client *clockodo.Client, logger *zap.Logger) *UserService {
	return &UserService{client: client, logger: logger}
}

// CurrentUserID resolves the caller's user id by scanning the roster
// for the record whose email equals the API user, compared exactly.
// The result is memoized for the lifetime of the service; a failed
// resolution is not cached, so the next call re-fetches the roster.
func (s *UserService) CurrentUserID(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.resolved {
		return s.currentUserID, nil
	}

	users, err := s.client.ListUsers(ctx)
	if err != nil {
		return 0, err
	}

	email := s.client.APIUser()
	for _, user := range users {
		if user.Email == email {
			s.currentUserID = user.ID
			s.resolved = true
			s.logger.Info("resolved current user", zap.Int("user_id", user.ID))
			return user.ID, nil
		}
	}
	return 0, &NotFoundError{Email: email}
}

// GetMyClock returns the caller's running clock entry, or nil when
// nothing is running.
func (s *UserService) GetMyClock(ctx context.Context) (*clockodo.Entry, error) {
	return s.client.GetClock(ctx)
}

// StartMyClock starts the clock for the caller.
func (s *UserService) StartMyClock(ctx context.Context, params clockodo.ClockStartParams) (*clockodo.Entry, error) {
	return s.client.ClockStart(ctx, params)
}

// StopMyClock reads the running clock and stops it. Returns
// ErrNoRunningClock when nothing is running.
func (s *UserService) StopMyClock(ctx context.Context) (*clockodo.Entry, error) {
	running, err := s.client.GetClock(ctx)
	if err != nil {
		return nil, err
	}
	if running == nil || running.ID == 0 {
		return nil, ErrNoRunningClock
	}
	return s.client.ClockStop(ctx, running.ID)
}

// GetMyEntries lists the caller's entries in the given window. The
// user filter is always the resolved identity.
func (s *UserService) GetMyEntries(ctx context.Context, timeSince, timeUntil string) ([]clockodo.Entry, error) {
	userID, err := s.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}
	return s.client.ListEntries(ctx, timeSince, timeUntil, userID)
}

// AddMyEntry creates a time entry owned by the caller. Any users_id in
// params is overwritten with the resolved identity.
func (s *UserService) AddMyEntry(ctx context.Context, params clockodo.EntryParams) (*clockodo.Entry, error) {
	userID, err := s.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}
	params.UsersID = &userID
	return s.client.CreateEntry(ctx, params)
}

// EditMyEntry updates an entry. Ownership is enforced by the Gateway's
// permission model, not here; this facade is not a security control.
func (s *UserService) EditMyEntry(ctx context.Context, entryID int, fields map[string]any) (*clockodo.Entry, error) {
	return s.client.EditEntry(ctx, entryID, fields)
}

// DeleteMyEntry deletes an entry, again trusting the Gateway to
// enforce ownership.
func (s *UserService) DeleteMyEntry(ctx context.Context, entryID int) error {
	return s.client.DeleteEntry(ctx, entryID)
}

// AddMyVacation requests a vacation for the caller. The record is
// created as enquired; approval is a team-leader operation.
func (s *UserService) AddMyVacation(ctx context.Context, dateSince, dateUntil string) (*clockodo.Absence, error) {
	userID, err := s.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}
	return s.client.CreateAbsence(ctx, clockodo.AbsenceParams{
		DateSince: dateSince,
		DateUntil: dateUntil,
		Type:      int(absence.TypeVacation),
		UsersID:   &userID,
	})
}

// CancelMyVacation cancels an approved absence by setting its status
// to approval-cancelled. The current status is not read first; an
// illegal transition is rejected by the Gateway.
func (s *UserService) CancelMyVacation(ctx context.Context, absenceID int) (*clockodo.Absence, error) {
	target := int(absence.TriggerCancelApproval.Target())
	return s.client.EditAbsence(ctx, absenceID, map[string]any{"status": target})
}

// DeleteMyVacation deletes an absence. With autoCancel the cancel
// transition is attempted first as a best effort: its failure is
// logged and discarded, and the deletion proceeds regardless. This is
// the single place in the service layer where an error is swallowed.
func (s *UserService) DeleteMyVacation(ctx context.Context, absenceID int, autoCancel bool) error {
	if autoCancel {
		s.bestEffort("cancel absence before delete", func() error {
			_, err := s.CancelMyVacation(ctx, absenceID)
			return err
		})
	}
	return s.client.DeleteAbsence(ctx, absenceID)
}

// bestEffort runs a step whose failure must not block the operation it
// precedes. The error is logged rather than propagated, so a genuine
// connectivity failure is still visible in the logs even though it
// does not stop the caller.
func (s *UserService) bestEffort(step string, fn func() error) {
	if err := fn(); err != nil {
		s.logger.Warn("best-effort step failed",
			zap.String("step", step),
			zap.Error(err))
	}
}
