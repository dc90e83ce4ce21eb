package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newDeleteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete queues, exchanges and policies",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "queue <name>",
			Short: "Delete a queue",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.client.DeleteQueue(cmd.Context(), a.vhost, args[0]); err != nil {
					return err
				}
				log.Info().Str("vhost", a.vhost).Str("queue", args[0]).Msg("Queue deleted")
				return nil
			},
		},
		&cobra.Command{
			Use:   "exchange <name>",
			Short: "Delete an exchange",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.client.DeleteExchange(cmd.Context(), a.vhost, args[0]); err != nil {
					return err
				}
				log.Info().Str("vhost", a.vhost).Str("exchange", args[0]).Msg("Exchange deleted")
				return nil
			},
		},
		&cobra.Command{
			Use:   "policy <name>",
			Short: "Delete a policy",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.client.DeletePolicy(cmd.Context(), a.vhost, args[0]); err != nil {
					return err
				}
				log.Info().Str("vhost", a.vhost).Str("policy", args[0]).Msg("Policy deleted")
				return nil
			},
		},
	)
	return cmd
}
