package requests

import (
	"github.com/andrelcunha/rmqadmin/pkg/commons"
	"github.com/rabbitmq/amqp091-go"
)

// ExchangeParams is the body of an exchange declaration. Arguments are passed
// through as given.
type ExchangeParams struct {
	Name         string               `json:"name"`
	ExchangeType commons.ExchangeType `json:"type"`
	Durable      bool                 `json:"durable"`
	AutoDelete   bool                 `json:"auto_delete"`
	Arguments    XArguments           `json:"arguments,omitempty"`
}

func NewExchangeParams(name string, exchangeType commons.ExchangeType, durable, autoDelete bool, optionalArgs XArguments) ExchangeParams {
	return ExchangeParams{
		Name:         name,
		ExchangeType: exchangeType,
		Durable:      durable,
		AutoDelete:   autoDelete,
		Arguments:    optionalArgs,
	}
}

func NewDurableExchange(name string, exchangeType commons.ExchangeType, optionalArgs XArguments) ExchangeParams {
	return NewExchangeParams(name, exchangeType, true, false, optionalArgs)
}

func NewFanoutExchange(name string, durable, autoDelete bool, optionalArgs XArguments) ExchangeParams {
	return NewExchangeParams(name, commons.ExchangeTypeFanout, durable, autoDelete, optionalArgs)
}

func NewDurableFanoutExchange(name string, optionalArgs XArguments) ExchangeParams {
	return NewExchangeParams(name, commons.ExchangeTypeFanout, true, false, optionalArgs)
}

func NewTopicExchange(name string, durable, autoDelete bool, optionalArgs XArguments) ExchangeParams {
	return NewExchangeParams(name, commons.ExchangeTypeTopic, durable, autoDelete, optionalArgs)
}

func NewDurableTopicExchange(name string, optionalArgs XArguments) ExchangeParams {
	return NewExchangeParams(name, commons.ExchangeTypeTopic, true, false, optionalArgs)
}

func NewDirectExchange(name string, durable, autoDelete bool, optionalArgs XArguments) ExchangeParams {
	return NewExchangeParams(name, commons.ExchangeTypeDirect, durable, autoDelete, optionalArgs)
}

func NewDurableDirectExchange(name string, optionalArgs XArguments) ExchangeParams {
	return NewExchangeParams(name, commons.ExchangeTypeDirect, true, false, optionalArgs)
}

func NewHeadersExchange(name string, durable, autoDelete bool, optionalArgs XArguments) ExchangeParams {
	return NewExchangeParams(name, commons.ExchangeTypeHeaders, durable, autoDelete, optionalArgs)
}

func NewDurableHeadersExchange(name string, optionalArgs XArguments) ExchangeParams {
	return NewExchangeParams(name, commons.ExchangeTypeHeaders, true, false, optionalArgs)
}

// AMQPTable returns the arguments as a field table for exchange.declare over
// AMQP 0-9-1.
func (p ExchangeParams) AMQPTable() (amqp091.Table, error) {
	return toTable(p.Arguments)
}
