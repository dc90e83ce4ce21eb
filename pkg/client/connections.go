package client

import (
	"context"

	"github.com/andrelcunha/rmqadmin/pkg/responses"
)

func (c *Client) ListConnections(ctx context.Context) ([]responses.Connection, error) {
	return fetch(ctx, c, responses.ParseConnectionList, "/connections", "connections")
}

// ListUserConnections lists the connections opened by one user.
func (c *Client) ListUserConnections(ctx context.Context, username string) ([]responses.UserConnection, error) {
	return fetch(ctx, c, responses.ParseUserConnectionList, "/connections/username/{name}", "connections", "username", username)
}

func (c *Client) ListChannels(ctx context.Context) ([]responses.Channel, error) {
	return fetch(ctx, c, responses.ParseChannelList, "/channels", "channels")
}

func (c *Client) ListConsumers(ctx context.Context) ([]responses.Consumer, error) {
	return fetch(ctx, c, responses.ParseConsumerList, "/consumers", "consumers")
}
