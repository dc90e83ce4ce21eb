package client

import (
	"context"

	"github.com/andrelcunha/rmqadmin/pkg/responses"
)

func (c *Client) ListNodes(ctx context.Context) ([]responses.ClusterNode, error) {
	return fetch(ctx, c, responses.ParseClusterNodeList, "/nodes", "nodes")
}

func (c *Client) GetNode(ctx context.Context, name string) (*responses.ClusterNode, error) {
	return fetch(ctx, c, responses.ParseClusterNode, "/nodes/{name}", "nodes", name)
}

func (c *Client) GetClusterName(ctx context.Context) (*responses.ClusterIdentity, error) {
	return fetch(ctx, c, responses.ParseClusterIdentity, "/cluster-name", "cluster-name")
}
