package main

import (
	"context"

	"github.com/spf13/cobra"
)

// listing fetches one resource kind. scoped tells whether --vhost was set
// explicitly.
type listing func(ctx context.Context, a *app, scoped bool) (any, error)

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List resources",
	}

	listings := []struct {
		use   string
		short string
		fetch listing
	}{
		{"queues", "List queues", func(ctx context.Context, a *app, scoped bool) (any, error) {
			if scoped {
				return a.client.ListQueuesIn(ctx, a.vhost)
			}
			return a.client.ListQueues(ctx)
		}},
		{"exchanges", "List exchanges", func(ctx context.Context, a *app, scoped bool) (any, error) {
			if scoped {
				return a.client.ListExchangesIn(ctx, a.vhost)
			}
			return a.client.ListExchanges(ctx)
		}},
		{"bindings", "List bindings", func(ctx context.Context, a *app, scoped bool) (any, error) {
			if scoped {
				return a.client.ListBindingsIn(ctx, a.vhost)
			}
			return a.client.ListBindings(ctx)
		}},
		{"policies", "List policies", func(ctx context.Context, a *app, scoped bool) (any, error) {
			if scoped {
				return a.client.ListPoliciesIn(ctx, a.vhost)
			}
			return a.client.ListPolicies(ctx)
		}},
		{"vhosts", "List virtual hosts", func(ctx context.Context, a *app, _ bool) (any, error) {
			return a.client.ListVirtualHosts(ctx)
		}},
		{"users", "List users", func(ctx context.Context, a *app, _ bool) (any, error) {
			return a.client.ListUsers(ctx)
		}},
		{"connections", "List client connections", func(ctx context.Context, a *app, _ bool) (any, error) {
			return a.client.ListConnections(ctx)
		}},
		{"channels", "List channels", func(ctx context.Context, a *app, _ bool) (any, error) {
			return a.client.ListChannels(ctx)
		}},
		{"consumers", "List consumers", func(ctx context.Context, a *app, _ bool) (any, error) {
			return a.client.ListConsumers(ctx)
		}},
		{"nodes", "List cluster nodes", func(ctx context.Context, a *app, _ bool) (any, error) {
			return a.client.ListNodes(ctx)
		}},
		{"parameters", "List runtime parameters", func(ctx context.Context, a *app, _ bool) (any, error) {
			return a.client.ListRuntimeParameters(ctx)
		}},
	}

	for _, l := range listings {
		fetch := l.fetch
		cmd.AddCommand(&cobra.Command{
			Use:   l.use,
			Short: l.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				scoped := cmd.Flags().Changed("vhost")
				v, err := fetch(cmd.Context(), a, scoped)
				if err != nil {
					return err
				}
				return a.print(v)
			},
		})
	}
	return cmd
}
