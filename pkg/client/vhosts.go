package client

import (
	"context"

	"github.com/andrelcunha/rmqadmin/pkg/requests"
	"github.com/andrelcunha/rmqadmin/pkg/responses"
)

func (c *Client) ListVirtualHosts(ctx context.Context) ([]responses.VirtualHost, error) {
	return fetch(ctx, c, responses.ParseVirtualHostList, "/vhosts", "vhosts")
}

func (c *Client) GetVirtualHost(ctx context.Context, name string) (*responses.VirtualHost, error) {
	return fetch(ctx, c, responses.ParseVirtualHost, "/vhosts/{name}", "vhosts", name)
}

func (c *Client) CreateVirtualHost(ctx context.Context, params requests.VirtualHostParams) error {
	return c.put(ctx, "/vhosts/{name}", params, "vhosts", params.Name)
}

func (c *Client) DeleteVirtualHost(ctx context.Context, name string) error {
	return c.delete(ctx, "/vhosts/{name}", "vhosts", name)
}

func (c *Client) ListUsers(ctx context.Context) ([]responses.User, error) {
	return fetch(ctx, c, responses.ParseUserList, "/users", "users")
}

func (c *Client) GetUser(ctx context.Context, name string) (*responses.User, error) {
	return fetch(ctx, c, responses.ParseUser, "/users/{name}", "users", name)
}

// CreateUser creates or updates a user. PasswordHash must already be
// salted and hashed, see requests.HashPassword.
func (c *Client) CreateUser(ctx context.Context, params requests.UserParams) error {
	return c.put(ctx, "/users/{name}", params, "users", params.Name)
}

func (c *Client) DeleteUser(ctx context.Context, name string) error {
	return c.delete(ctx, "/users/{name}", "users", name)
}
