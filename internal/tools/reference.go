package tools

import (
	"context"
	"encoding/json"

	"github.com/mkessler/clockodo-bridge/internal/clockodo"
	"github.com/mkessler/clockodo-bridge/internal/config"
)

type yearParams struct {
	Year int `json:"year"`
}

// registerReferenceTools registers the always-available tools: the
// health check and the Clockodo reference-data listings.
func registerReferenceTools(reg *Registry, client *clockodo.Client, perms config.Permissions) {
	reg.Register("health", "Health check reporting the enabled feature groups.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			return map[string]any{
				"status":           "ok",
				"enabled_features": perms.EnabledFeatures(),
			}, nil
		})

	reg.Register("list_users", "List all users from the Clockodo API.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			users, err := client.ListUsers(ctx)
			if err != nil {
				return nil, err
			}
			return map[string]any{"users": users}, nil
		})

	reg.Register("list_customers", "List all customers from the Clockodo API.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			customers, err := client.ListCustomers(ctx)
			if err != nil {
				return nil, err
			}
			return map[string]any{"customers": customers}, nil
		})

	reg.Register("list_services", "List all services from the Clockodo API.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			services, err := client.ListServices(ctx)
			if err != nil {
				return nil, err
			}
			return map[string]any{"services": services}, nil
		})

	reg.Register("list_projects", "List all projects from the Clockodo API.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			projects, err := client.ListProjects(ctx)
			if err != nil {
				return nil, err
			}
			return map[string]any{"projects": projects}, nil
		})

	reg.Register("get_raw_user_reports", "Fetch raw user reports for a year, for debugging.",
		func(ctx context.Context, params json.RawMessage) (any, error) {
			var p yearParams
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			if p.Year == 0 {
				return nil, paramErr("year is required")
			}
			reports, err := client.GetUserReports(ctx, p.Year, 0, clockodo.ReportYear)
			if err != nil {
				return nil, err
			}
			return map[string]any{"userreports": reports}, nil
		})
}
