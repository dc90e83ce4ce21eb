package requests

import (
	"github.com/andrelcunha/rmqadmin/pkg/commons"
	"github.com/rabbitmq/amqp091-go"
)

// QueueParams is the body of a queue declaration (PUT /queues/{vhost}/{name}).
type QueueParams struct {
	Name       string            `json:"name"`
	QueueType  commons.QueueType `json:"-"`
	Durable    bool              `json:"durable"`
	AutoDelete bool              `json:"auto_delete"`
	Exclusive  bool              `json:"exclusive"`
	Arguments  XArguments        `json:"arguments,omitempty"`
}

// NewQuorumQueue declares a durable quorum queue.
func NewQuorumQueue(name string, optionalArgs XArguments) QueueParams {
	return QueueParams{
		Name:       name,
		QueueType:  commons.QueueTypeQuorum,
		Durable:    true,
		AutoDelete: false,
		Exclusive:  false,
		Arguments:  combinedArgs(optionalArgs, commons.QueueTypeQuorum),
	}
}

// NewStream declares a durable stream.
func NewStream(name string, optionalArgs XArguments) QueueParams {
	return QueueParams{
		Name:       name,
		QueueType:  commons.QueueTypeStream,
		Durable:    true,
		AutoDelete: false,
		Exclusive:  false,
		Arguments:  combinedArgs(optionalArgs, commons.QueueTypeStream),
	}
}

// NewDurableClassicQueue declares a durable, non-exclusive classic queue.
func NewDurableClassicQueue(name string, optionalArgs XArguments) QueueParams {
	return QueueParams{
		Name:       name,
		QueueType:  commons.QueueTypeClassic,
		Durable:    true,
		AutoDelete: false,
		Exclusive:  false,
		Arguments:  combinedArgs(optionalArgs, commons.QueueTypeClassic),
	}
}

// NewExclusiveClassicQueue declares a transient classic queue owned by a
// single connection.
func NewExclusiveClassicQueue(name string, optionalArgs XArguments) QueueParams {
	return QueueParams{
		Name:       name,
		QueueType:  commons.QueueTypeClassic,
		Durable:    false,
		AutoDelete: false,
		Exclusive:  true,
		Arguments:  combinedArgs(optionalArgs, commons.QueueTypeClassic),
	}
}

// combinedArgs stamps the queue type first and then copies the caller's
// arguments over it, so a caller-supplied x-queue-type wins. The caller's map
// is left untouched.
func combinedArgs(optionalArgs XArguments, queueType commons.QueueType) XArguments {
	result := make(XArguments, len(optionalArgs)+1)
	result[QueueTypeArgument] = queueType.String()
	for k, v := range optionalArgs {
		result[k] = v
	}
	return result
}

// AMQPTable returns the arguments as a field table for queue.declare over
// AMQP 0-9-1.
func (p QueueParams) AMQPTable() (amqp091.Table, error) {
	return toTable(p.Arguments)
}
