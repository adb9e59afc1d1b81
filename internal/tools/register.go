package tools

import (
	"fmt"

	"github.com/mkessler/clockodo-bridge/internal/clockodo"
	"github.com/mkessler/clockodo-bridge/internal/config"
	"github.com/mkessler/clockodo-bridge/internal/service"
)

// InvalidParamsError reports a malformed or incomplete tool parameter
// payload. It is raised before any network call.
type InvalidParamsError struct {
	Reason string
}

func (e *InvalidParamsError) Error() string {
	return "invalid tool parameters: " + e.Reason
}

func paramErr(format string, args ...any) error {
	return &InvalidParamsError{Reason: fmt.Sprintf(format, args...)}
}

// Deps bundles everything the tool handlers close over.
type Deps struct {
	Client     *clockodo.Client
	HR         *service.HRService
	User       *service.UserService
	TeamLeader *service.TeamLeaderService
	Defaults   config.ComplianceConfig
}

// RegisterAll registers every tool group the permission set allows.
// The reference tools and health check are always available; the HR,
// user and team-leader groups are feature-gated.
func RegisterAll(reg *Registry, deps Deps, perms config.Permissions) {
	registerReferenceTools(reg, deps.Client, perms)

	if perms.HRReadOnly {
		registerHRTools(reg, deps.HR, deps.Defaults)
	}
	if perms.UserRead {
		registerUserReadTools(reg, deps.User)
	}
	if perms.UserEdit {
		registerUserEditTools(reg, deps.User)
	}
	if perms.AdminRead {
		registerTeamLeaderReadTools(reg, deps.TeamLeader)
	}
	if perms.AdminEdit {
		registerTeamLeaderEditTools(reg, deps.TeamLeader)
	}
}
