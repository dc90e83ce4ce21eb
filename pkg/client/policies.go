package client

import (
	"context"

	"github.com/andrelcunha/rmqadmin/pkg/requests"
	"github.com/andrelcunha/rmqadmin/pkg/responses"
)

func (c *Client) ListRuntimeParameters(ctx context.Context) ([]responses.RuntimeParameter, error) {
	return fetch(ctx, c, responses.ParseRuntimeParameterList, "/parameters", "parameters")
}

func (c *Client) UpsertRuntimeParameter(ctx context.Context, param requests.RuntimeParameterDefinition) error {
	return c.put(ctx, "/parameters/{component}/{vhost}/{name}", param, "parameters", param.Component, param.VHost, param.Name)
}

func (c *Client) ClearRuntimeParameter(ctx context.Context, component, vhost, name string) error {
	return c.delete(ctx, "/parameters/{component}/{vhost}/{name}", "parameters", component, vhost, name)
}

func (c *Client) ListPolicies(ctx context.Context) ([]responses.Policy, error) {
	return fetch(ctx, c, responses.ParsePolicyList, "/policies", "policies")
}

func (c *Client) ListPoliciesIn(ctx context.Context, vhost string) ([]responses.Policy, error) {
	return fetch(ctx, c, responses.ParsePolicyList, "/policies/{vhost}", "policies", vhost)
}

func (c *Client) GetPolicy(ctx context.Context, vhost, name string) (*responses.Policy, error) {
	return fetch(ctx, c, responses.ParsePolicy, "/policies/{vhost}/{name}", "policies", vhost, name)
}

func (c *Client) DeclarePolicy(ctx context.Context, params requests.PolicyParams) error {
	return c.put(ctx, "/policies/{vhost}/{name}", params, "policies", params.VHost, params.Name)
}

func (c *Client) DeletePolicy(ctx context.Context, vhost, name string) error {
	return c.delete(ctx, "/policies/{vhost}/{name}", "policies", vhost, name)
}
