package requests

import (
	"testing"

	"github.com/andrelcunha/rmqadmin/pkg/commons"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangeParams_ConvenienceConstructors(t *testing.T) {
	args := XArguments{"alternate-exchange": "unrouted"}

	cases := []struct {
		name       string
		params     ExchangeParams
		typ        commons.ExchangeType
		durable    bool
		autoDelete bool
	}{
		{"fanout", NewFanoutExchange("x", false, true, args), commons.ExchangeTypeFanout, false, true},
		{"durable fanout", NewDurableFanoutExchange("x", args), commons.ExchangeTypeFanout, true, false},
		{"topic", NewTopicExchange("x", true, true, args), commons.ExchangeTypeTopic, true, true},
		{"durable topic", NewDurableTopicExchange("x", args), commons.ExchangeTypeTopic, true, false},
		{"direct", NewDirectExchange("x", false, false, args), commons.ExchangeTypeDirect, false, false},
		{"durable direct", NewDurableDirectExchange("x", args), commons.ExchangeTypeDirect, true, false},
		{"headers", NewHeadersExchange("x", true, false, args), commons.ExchangeTypeHeaders, true, false},
		{"durable headers", NewDurableHeadersExchange("x", args), commons.ExchangeTypeHeaders, true, false},
		{"durable generic", NewDurableExchange("x", commons.ExchangeTypeTopic, args), commons.ExchangeTypeTopic, true, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, "x", tc.params.Name)
			assert.Equal(t, tc.typ, tc.params.ExchangeType)
			assert.Equal(t, tc.durable, tc.params.Durable)
			assert.Equal(t, tc.autoDelete, tc.params.AutoDelete)
			assert.Equal(t, args, tc.params.Arguments)
		})
	}
}

func TestExchangeParams_NoArgumentInjection(t *testing.T) {
	p := NewDurableTopicExchange("events", nil)
	assert.Nil(t, p.Arguments)

	data, err := Encode(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"events","type":"topic","durable":true,"auto_delete":false}`, string(data))
}

func TestExchangeParams_EncodeWithArguments(t *testing.T) {
	p := NewExchangeParams("hdr", commons.ExchangeTypeHeaders, false, true, XArguments{"x-match": "any"})

	data, err := Encode(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"hdr","type":"headers","durable":false,"auto_delete":true,"arguments":{"x-match":"any"}}`, string(data))
}

func TestExchangeParams_AMQPTable(t *testing.T) {
	table, err := NewDurableDirectExchange("d", XArguments{"alternate-exchange": "ae"}).AMQPTable()
	require.NoError(t, err)
	assert.Equal(t, "ae", table["alternate-exchange"])

	table, err = NewDurableDirectExchange("d", nil).AMQPTable()
	require.NoError(t, err)
	assert.Empty(t, table)
}
