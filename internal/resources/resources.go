// Package resources builds read-only context snapshots over the
// Clockodo data: addressable documents a conversational caller can
// attach to its context instead of invoking a tool.
package resources

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mkessler/clockodo-bridge/internal/clockodo"
	"github.com/mkessler/clockodo-bridge/internal/domain/absence"
)

// Resource is one addressable snapshot.
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MimeType    string `json:"mimeType"`
	Content     any    `json:"content"`
}

// Provider builds resources from fresh Gateway data per request;
// nothing is cached.
type Provider struct {
	client *clockodo.Client
	logger *zap.Logger
}

// NewProvider creates a resource provider.
func NewProvider(client *clockodo.Client, logger *zap.Logger) *Provider {
	return &Provider{client: client, logger: logger}
}

// CurrentEntry returns the running clock entry as a resource, or a
// placeholder when nothing is running.
func (p *Provider) CurrentEntry(ctx context.Context) (*Resource, error) {
	running, err := p.client.GetClock(ctx)
	if err != nil {
		return nil, err
	}

	if running == nil {
		return &Resource{
			URI:         "clockodo://current-entry",
			Name:        "Current Time Entry",
			Description: "No time entry currently running",
			MimeType:    "application/json",
			Content:     map[string]any{"running": false},
		}, nil
	}

	customer := running.CustomersName
	if customer == "" {
		customer = "Unknown"
	}
	service := running.ServicesName
	if service == "" {
		service = "Unknown"
	}
	return &Resource{
		URI:         "clockodo://current-entry",
		Name:        "Current Time Entry",
		Description: fmt.Sprintf("Currently tracking: %s - %s", customer, service),
		MimeType:    "application/json",
		Content:     running,
	}, nil
}

// Customers returns the customer list as a resource.
func (p *Provider) Customers(ctx context.Context) (*Resource, error) {
	customers, err := p.client.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(customers))
	for _, c := range customers {
		names = append(names, c.Name)
	}
	return &Resource{
		URI:         "clockodo://customers",
		Name:        "Customers List",
		Description: fmt.Sprintf("Available customers (%d total)", len(customers)),
		MimeType:    "application/json",
		Content: map[string]any{
			"count":     len(customers),
			"customers": customers,
			"names":     names,
		},
	}, nil
}

// Services returns the service list as a resource.
func (p *Provider) Services(ctx context.Context) (*Resource, error) {
	services, err := p.client.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(services))
	for _, s := range services {
		names = append(names, s.Name)
	}
	return &Resource{
		URI:         "clockodo://services",
		Name:        "Services List",
		Description: fmt.Sprintf("Available services (%d total)", len(services)),
		MimeType:    "application/json",
		Content: map[string]any{
			"count":    len(services),
			"services": services,
			"names":    names,
		},
	}, nil
}

// AbsenceTypes returns the static legend of absence type and status
// codes. No Gateway call is involved.
func (p *Provider) AbsenceTypes() *Resource {
	types := map[string]string{}
	for _, t := range []absence.Type{
		absence.TypeVacation,
		absence.TypeIllness,
		absence.TypeOvertimeReduction,
		absence.TypeSpecialLeave,
	} {
		types[fmt.Sprintf("%d", int(t))] = t.String()
	}

	statuses := map[string]string{}
	for _, s := range []absence.Status{
		absence.StatusEnquired,
		absence.StatusApproved,
		absence.StatusDeclined,
		absence.StatusApprovalCancelled,
		absence.StatusRequestCancelled,
	} {
		statuses[fmt.Sprintf("%d", int(s))] = s.String()
	}

	return &Resource{
		URI:         "clockodo://absence-types",
		Name:        "Absence Codes",
		Description: "Numeric absence type and status codes with their meanings",
		MimeType:    "application/json",
		Content: map[string]any{
			"types":    types,
			"statuses": statuses,
		},
	}
}
