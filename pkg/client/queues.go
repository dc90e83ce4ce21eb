package client

import (
	"context"

	"github.com/andrelcunha/rmqadmin/pkg/commons"
	"github.com/andrelcunha/rmqadmin/pkg/requests"
	"github.com/andrelcunha/rmqadmin/pkg/responses"
)

func (c *Client) ListQueues(ctx context.Context) ([]responses.QueueInfo, error) {
	return fetch(ctx, c, responses.ParseQueueInfoList, "/queues", "queues")
}

func (c *Client) ListQueuesIn(ctx context.Context, vhost string) ([]responses.QueueInfo, error) {
	return fetch(ctx, c, responses.ParseQueueInfoList, "/queues/{vhost}", "queues", vhost)
}

func (c *Client) GetQueueInfo(ctx context.Context, vhost, name string) (*responses.QueueInfo, error) {
	return fetch(ctx, c, responses.ParseQueueInfo, "/queues/{vhost}/{name}", "queues", vhost, name)
}

func (c *Client) DeclareQueue(ctx context.Context, vhost string, params requests.QueueParams) error {
	return c.put(ctx, "/queues/{vhost}/{name}", params, "queues", vhost, params.Name)
}

func (c *Client) DeleteQueue(ctx context.Context, vhost, name string) error {
	return c.delete(ctx, "/queues/{vhost}/{name}", "queues", vhost, name)
}

func (c *Client) ListExchanges(ctx context.Context) ([]responses.ExchangeInfo, error) {
	return fetch(ctx, c, responses.ParseExchangeInfoList, "/exchanges", "exchanges")
}

func (c *Client) ListExchangesIn(ctx context.Context, vhost string) ([]responses.ExchangeInfo, error) {
	return fetch(ctx, c, responses.ParseExchangeInfoList, "/exchanges/{vhost}", "exchanges", vhost)
}

func (c *Client) GetExchangeInfo(ctx context.Context, vhost, name string) (*responses.ExchangeInfo, error) {
	return fetch(ctx, c, responses.ParseExchangeInfo, "/exchanges/{vhost}/{name}", "exchanges", vhost, name)
}

func (c *Client) DeclareExchange(ctx context.Context, vhost string, params requests.ExchangeParams) error {
	return c.put(ctx, "/exchanges/{vhost}/{name}", params, "exchanges", vhost, params.Name)
}

func (c *Client) DeleteExchange(ctx context.Context, vhost, name string) error {
	return c.delete(ctx, "/exchanges/{vhost}/{name}", "exchanges", vhost, name)
}

func (c *Client) ListBindings(ctx context.Context) ([]responses.BindingInfo, error) {
	return fetch(ctx, c, responses.ParseBindingInfoList, "/bindings", "bindings")
}

func (c *Client) ListBindingsIn(ctx context.Context, vhost string) ([]responses.BindingInfo, error) {
	return fetch(ctx, c, responses.ParseBindingInfoList, "/bindings/{vhost}", "bindings", vhost)
}

// BindQueue binds queue to exchange.
func (c *Client) BindQueue(ctx context.Context, vhost, exchange, queue string, params requests.BindingParams) error {
	return c.bind(ctx, vhost, exchange, commons.BindingDestinationQueue, queue, params)
}

// BindExchange binds destination to source (exchange-to-exchange).
func (c *Client) BindExchange(ctx context.Context, vhost, source, destination string, params requests.BindingParams) error {
	return c.bind(ctx, vhost, source, commons.BindingDestinationExchange, destination, params)
}

func (c *Client) bind(ctx context.Context, vhost, source string, kind commons.BindingDestinationType, destination string, params requests.BindingParams) error {
	seg, err := kind.PathSegment()
	if err != nil {
		return err
	}
	route := "/bindings/{vhost}/e/{source}/" + seg + "/{destination}"
	return c.post(ctx, route, params, "bindings", vhost, "e", source, seg, destination)
}
