// Package requests builds the payloads sent to the management API when
// declaring broker resources.
package requests

import (
	"fmt"

	"github.com/rabbitmq/amqp091-go"
)

// XArguments holds optional "x-" arguments of queues, exchanges and bindings.
// Values must be JSON-like: string, number, bool, nil, []any or map[string]any.
type XArguments map[string]any

// QueueTypeArgument is the argument key that tells the broker which queue
// implementation to use.
const QueueTypeArgument = "x-queue-type"

// toTable converts arguments to an AMQP 0-9-1 field table, turning nested
// maps into nested tables so amqp091.Table.Validate accepts them.
func toTable(args XArguments) (amqp091.Table, error) {
	table := amqp091.Table{}
	for k, v := range args {
		table[k] = toFieldValue(v)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("arguments cannot be sent over AMQP: %w", err)
	}
	return table, nil
}

func toFieldValue(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		nested := amqp091.Table{}
		for k, inner := range tv {
			nested[k] = toFieldValue(inner)
		}
		return nested
	case XArguments:
		return toFieldValue(map[string]any(tv))
	case []any:
		out := make([]any, len(tv))
		for i, inner := range tv {
			out[i] = toFieldValue(inner)
		}
		return out
	case []string:
		out := make([]any, len(tv))
		for i, inner := range tv {
			out[i] = inner
		}
		return out
	default:
		return v
	}
}
