package main

import (
	"fmt"
	"io"

	"github.com/andrelcunha/rmqadmin/config"
	"github.com/andrelcunha/rmqadmin/pkg/client"
	"github.com/andrelcunha/rmqadmin/pkg/metrics"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// app carries what every command needs. client is built lazily from cfg
// unless a test injected one.
type app struct {
	cfg       *config.Config
	client    *client.Client
	collector *metrics.Collector
	out       io.Writer
	vhost     string
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "rmqadmin",
		Short:         "Inspect and manage a RabbitMQ cluster through its HTTP management API",
		Version:       a.cfg.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.connect()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.collector != nil {
				log.Debug().
					Int64("requests", a.collector.TotalRequests()).
					Float64("rate", a.collector.RequestRate()).
					Msg("Management API usage")
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.Endpoint, "endpoint", a.cfg.Endpoint, "management API root")
	flags.StringVarP(&a.cfg.Username, "username", "u", a.cfg.Username, "management API user")
	flags.StringVarP(&a.cfg.Password, "password", "p", a.cfg.Password, "management API password")
	flags.StringVar(&a.vhost, "vhost", a.cfg.VHost, "virtual host")

	root.AddCommand(newListCmd(a), newDeclareCmd(a), newDeleteCmd(a))
	return root
}

func (a *app) connect() error {
	if a.client != nil {
		return nil
	}

	opts := []client.Option{
		client.WithTimeout(a.cfg.Timeout),
		client.WithLogger(log.Logger),
	}
	if a.cfg.EnableMetrics {
		collector, err := metrics.NewCollector(prometheus.NewRegistry(), metrics.DefaultConfig())
		if err != nil {
			return fmt.Errorf("failed to set up metrics: %w", err)
		}
		a.collector = collector
		opts = append(opts, client.WithMetrics(collector))
	}

	c, err := client.New(a.cfg.Endpoint, a.cfg.Username, a.cfg.Password, opts...)
	if err != nil {
		return err
	}
	a.client = c
	return nil
}

func (a *app) print(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, string(out))
	return err
}
