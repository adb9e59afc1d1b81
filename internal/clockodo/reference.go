package clockodo

import "context"

// The v3/v4 endpoints started keying collections under "data" instead
// of the entity name. Both forms are accepted here so the client keeps
// working across API revisions.

type usersEnvelope struct {
	Users []User `json:"users"`
	Data  []User `json:"data"`
}

type customersEnvelope struct {
	Customers []Customer `json:"customers"`
	Data      []Customer `json:"data"`
}

type servicesEnvelope struct {
	Services []Service `json:"services"`
	Data     []Service `json:"data"`
}

type projectsEnvelope struct {
	Projects []Project `json:"projects"`
	Data     []Project `json:"data"`
}

// ListUsers lists all users (v3 API).
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var env usersEnvelope
	if err := c.get(ctx, "v3/users", nil, &env); err != nil {
		return nil, err
	}
	if env.Users != nil {
		return env.Users, nil
	}
	return env.Data, nil
}

// ListCustomers lists all customers (v3 API).
func (c *Client) ListCustomers(ctx context.Context) ([]Customer, error) {
	var env customersEnvelope
	if err := c.get(ctx, "v3/customers", nil, &env); err != nil {
		return nil, err
	}
	if env.Customers != nil {
		return env.Customers, nil
	}
	return env.Data, nil
}

// ListServices lists all services (v4 API).
func (c *Client) ListServices(ctx context.Context) ([]Service, error) {
	var env servicesEnvelope
	if err := c.get(ctx, "v4/services", nil, &env); err != nil {
		return nil, err
	}
	if env.Services != nil {
		return env.Services, nil
	}
	return env.Data, nil
}

// ListProjects lists all projects (v4 API).
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var env projectsEnvelope
	if err := c.get(ctx, "v4/projects", nil, &env); err != nil {
		return nil, err
	}
	if env.Projects != nil {
		return env.Projects, nil
	}
	return env.Data, nil
}
