package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andrelcunha/rmqadmin/pkg/commons"
	"github.com/andrelcunha/rmqadmin/pkg/requests"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// generatedQueuePrefix names exclusive queues declared without a name.
const generatedQueuePrefix = "rmqadmin.gen-"

func newDeclareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "declare",
		Short: "Declare queues, exchanges, policies, virtual hosts and users",
	}
	cmd.AddCommand(
		newDeclareQueueCmd(a),
		newDeclareExchangeCmd(a),
		newDeclarePolicyCmd(a),
		newDeclareVirtualHostCmd(a),
		newDeclareUserCmd(a),
	)
	return cmd
}

func newDeclareQueueCmd(a *app) *cobra.Command {
	var (
		queueType string
		exclusive bool
		rawArgs   []string
	)

	cmd := &cobra.Command{
		Use:   "queue [name]",
		Short: "Declare a quorum queue, a stream or a classic queue",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}

			qt, err := commons.ParseQueueType(queueType)
			if err != nil {
				return err
			}
			optionalArgs, err := parseKeyValues(rawArgs)
			if err != nil {
				return err
			}

			var params requests.QueueParams
			switch {
			case exclusive && qt != commons.QueueTypeClassic:
				return fmt.Errorf("only classic queues can be exclusive, got '%s'", qt)
			case exclusive:
				if name == "" {
					name = generatedQueuePrefix + uuid.New().String()
				}
				params = requests.NewExclusiveClassicQueue(name, optionalArgs)
			case name == "":
				return fmt.Errorf("a name is required for non-exclusive queues")
			case qt == commons.QueueTypeQuorum:
				params = requests.NewQuorumQueue(name, optionalArgs)
			case qt == commons.QueueTypeStream:
				params = requests.NewStream(name, optionalArgs)
			default:
				params = requests.NewDurableClassicQueue(name, optionalArgs)
			}

			if _, err := params.AMQPTable(); err != nil {
				return err
			}
			if err := a.client.DeclareQueue(cmd.Context(), a.vhost, params); err != nil {
				return err
			}
			log.Info().Str("vhost", a.vhost).Str("queue", params.Name).Str("type", qt.String()).Msg("Queue declared")
			_, err = fmt.Fprintln(a.out, params.Name)
			return err
		},
	}

	cmd.Flags().StringVarP(&queueType, "type", "t", commons.QueueTypeQuorum.String(), "queue type: quorum, stream or classic")
	cmd.Flags().BoolVar(&exclusive, "exclusive", false, "declare an exclusive classic queue")
	cmd.Flags().StringArrayVar(&rawArgs, "arg", nil, "optional x-argument as key=value (repeatable)")
	return cmd
}

func newDeclareExchangeCmd(a *app) *cobra.Command {
	var (
		exchangeType string
		durable      bool
		autoDelete   bool
		rawArgs      []string
	)

	cmd := &cobra.Command{
		Use:   "exchange <name>",
		Short: "Declare an exchange",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			et, err := commons.ParseExchangeType(exchangeType)
			if err != nil {
				return err
			}
			optionalArgs, err := parseKeyValues(rawArgs)
			if err != nil {
				return err
			}

			params := requests.NewExchangeParams(args[0], et, durable, autoDelete, optionalArgs)
			if _, err := params.AMQPTable(); err != nil {
				return err
			}
			if err := a.client.DeclareExchange(cmd.Context(), a.vhost, params); err != nil {
				return err
			}
			log.Info().Str("vhost", a.vhost).Str("exchange", params.Name).Str("type", et.String()).Msg("Exchange declared")
			return nil
		},
	}

	cmd.Flags().StringVarP(&exchangeType, "type", "t", commons.ExchangeTypeDirect.String(), "exchange type: direct, fanout, topic or headers")
	cmd.Flags().BoolVar(&durable, "durable", true, "survive broker restarts")
	cmd.Flags().BoolVar(&autoDelete, "auto-delete", false, "delete when the last binding is removed")
	cmd.Flags().StringArrayVar(&rawArgs, "arg", nil, "optional argument as key=value (repeatable)")
	return cmd
}

func newDeclarePolicyCmd(a *app) *cobra.Command {
	var (
		pattern    string
		applyTo    string
		priority   int32
		definition []string
	)

	cmd := &cobra.Command{
		Use:   "policy <name>",
		Short: "Declare a policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := commons.ParsePolicyTarget(applyTo)
			if err != nil {
				return err
			}
			def, err := parseKeyValues(definition)
			if err != nil {
				return err
			}
			if def == nil {
				def = requests.XArguments{}
			}

			params := requests.PolicyParams{
				VHost:      a.vhost,
				Name:       args[0],
				Pattern:    pattern,
				ApplyTo:    target,
				Priority:   priority,
				Definition: requests.PolicyDefinition(def),
			}
			if err := a.client.DeclarePolicy(cmd.Context(), params); err != nil {
				return err
			}
			log.Info().Str("vhost", a.vhost).Str("policy", params.Name).Msg("Policy declared")
			return nil
		},
	}

	cmd.Flags().StringVar(&pattern, "pattern", "", "regular expression matched against resource names")
	cmd.Flags().StringVar(&applyTo, "apply-to", commons.PolicyTargetAll.String(), "queues, classic_queues, quorum_queues, streams, exchanges or all")
	cmd.Flags().Int32Var(&priority, "priority", 0, "policy priority")
	cmd.Flags().StringArrayVar(&definition, "definition", nil, "definition entry as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("pattern")
	return cmd
}

func newDeclareVirtualHostCmd(a *app) *cobra.Command {
	var (
		description      string
		tags             []string
		defaultQueueType string
		tracing          bool
	)

	cmd := &cobra.Command{
		Use:   "vhost <name>",
		Short: "Declare a virtual host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := requests.VirtualHostParams{Name: args[0], Tags: tags, Tracing: tracing}
			if cmd.Flags().Changed("description") {
				params.Description = &description
			}
			if defaultQueueType != "" {
				qt, err := commons.ParseQueueType(defaultQueueType)
				if err != nil {
					return err
				}
				params.DefaultQueueType = &qt
			}

			if err := a.client.CreateVirtualHost(cmd.Context(), params); err != nil {
				return err
			}
			log.Info().Str("vhost", params.Name).Msg("Virtual host declared")
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "free-form description")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "comma-separated tags")
	cmd.Flags().StringVar(&defaultQueueType, "default-queue-type", "", "quorum, stream or classic")
	cmd.Flags().BoolVar(&tracing, "tracing", false, "enable message tracing")
	return cmd
}

func newDeclareUserCmd(a *app) *cobra.Command {
	var (
		password string
		tags     []string
	)

	cmd := &cobra.Command{
		Use:   "user <name>",
		Short: "Declare a user; the password is salted and hashed locally",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := requests.HashPassword(password)
			if err != nil {
				return err
			}
			params := requests.UserParams{
				Name:         args[0],
				PasswordHash: hash,
				Tags:         strings.Join(tags, ","),
			}
			if err := a.client.CreateUser(cmd.Context(), params); err != nil {
				return err
			}
			log.Info().Str("user", params.Name).Strs("tags", tags).Msg("User declared")
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "user-password", "", "password of the new user")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "comma-separated tags, e.g. administrator")
	_ = cmd.MarkFlagRequired("user-password")
	return cmd
}

// parseKeyValues turns key=value pairs into an argument map. Values that
// look like integers or booleans keep that type, since the broker rejects
// e.g. a string x-max-length.
func parseKeyValues(pairs []string) (requests.XArguments, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(requests.XArguments, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid key=value pair '%s'", pair)
		}
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			out[key] = n
		} else if b, err := strconv.ParseBool(value); err == nil {
			out[key] = b
		} else {
			out[key] = value
		}
	}
	return out, nil
}
