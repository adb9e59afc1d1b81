package clockodo

import (
	"context"
	"net/url"
	"strconv"
)

// Report detail levels for GetUserReports. Level 0 returns yearly
// totals only; higher levels add month, week and day breakdowns.
const (
	ReportYear = iota
	ReportMonths
	ReportWeeks
	ReportDays
	ReportAll
)

type userReportsEnvelope struct {
	UserReports []UserReport `json:"userreports"`
}

// GetUserReports fetches annual tracking summaries. userreports is a
// legacy v1 endpoint with no v2+ successor, so it lives directly under
// /api/ with no version prefix. Pass userID <= 0 to fetch all users.
func (c *Client) GetUserReports(ctx context.Context, year int, userID, detailLevel int) ([]UserReport, error) {
	params := url.Values{}
	params.Set("year", strconv.Itoa(year))
	params.Set("type", strconv.Itoa(detailLevel))
	if userID > 0 {
		params.Set("users_id", strconv.Itoa(userID))
	}

	var env userReportsEnvelope
	if err := c.get(ctx, "userreports", params, &env); err != nil {
		return nil, err
	}
	return env.UserReports, nil
}
