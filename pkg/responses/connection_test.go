package responses

import (
	"strings"
	"testing"

	"github.com/andrelcunha/rmqadmin/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConnectionList_Renames(t *testing.T) {
	conns, err := ParseConnectionList(testutil.Fixture("connections.json"))
	require.NoError(t, err)
	require.Len(t, conns, 1)

	c := conns[0]
	assert.Equal(t, "billing", c.Username)
	assert.Equal(t, "10.0.0.5", c.ServerHostname)
	assert.Equal(t, uint32(5672), c.ServerPort)
	assert.Equal(t, "10.0.0.9", c.ClientHostname)
	assert.Equal(t, uint32(53412), c.ClientPort)
	assert.Equal(t, uint16(2047), c.ChannelMax)
	assert.Equal(t, uint16(2), c.ChannelCount)
	assert.Equal(t, uint64(1718000000123), c.ConnectedAt)
	assert.Equal(t, "AMQP 0-9-1", c.Protocol)

	props := c.ClientProperties
	require.NotNil(t, props.ConnectionName)
	assert.Equal(t, "billing-worker", *props.ConnectionName)
	assert.Equal(t, "Go", props.Platform)
	assert.Equal(t, "1.10.0", props.Version)

	caps := props.Capabilities
	assert.True(t, caps.AuthenticationFailureClose)
	assert.True(t, caps.BasicNack)
	assert.True(t, caps.ConnectionBlocked)
	assert.True(t, caps.ConsumerCancelNotify)
	assert.True(t, caps.ExchangeToExchangeBindings)
	assert.True(t, caps.PublisherConfirms)
}

func TestParseConnectionList_WithoutConnectionName(t *testing.T) {
	raw := strings.Replace(string(testutil.Fixture("connections.json")), `"connection_name": "billing-worker",`, "", 1)

	conns, err := ParseConnectionList([]byte(raw))
	require.NoError(t, err)
	assert.Nil(t, conns[0].ClientProperties.ConnectionName)
}

func TestParseConnectionList_NestedErrorPath(t *testing.T) {
	raw := strings.Replace(string(testutil.Fixture("connections.json")), `"basic.nack": true`, `"basic.nack": 1`, 1)

	_, err := ParseConnectionList([]byte(raw))
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "connection", perr.Resource)
	assert.Equal(t, "client_properties.capabilities.basic.nack", perr.Field)
	assert.Equal(t, MalformedField, perr.Kind)
	assert.Equal(t, "1", perr.Value)
	assert.Equal(t, 0, perr.Index)
}

func TestParseConnectionList_MissingNestedField(t *testing.T) {
	raw := strings.Replace(string(testutil.Fixture("connections.json")), `"publisher_confirms": true`, `"other": true`, 1)

	_, err := ParseConnectionList([]byte(raw))

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, MissingField, perr.Kind)
	assert.Equal(t, "client_properties.capabilities.publisher_confirms", perr.Field)
}

func TestParseUserConnectionList(t *testing.T) {
	conns, err := ParseUserConnectionList(testutil.Fixture("user_connections.json"))
	require.NoError(t, err)
	require.Len(t, conns, 1)
	assert.Equal(t, "billing", conns[0].Username)
	assert.Equal(t, "/", conns[0].VHost)
}

func TestParseChannelList(t *testing.T) {
	channels, err := ParseChannelList(testutil.Fixture("channels.json"))
	require.NoError(t, err)
	require.Len(t, channels, 1)

	ch := channels[0]
	assert.Equal(t, uint32(1), ch.ID)
	assert.True(t, ch.HasPublisherConfirmsEnabled)
	assert.Equal(t, uint32(50), ch.PrefetchCount)
	assert.Equal(t, uint32(3), ch.MessagesUnacknowledged)
	assert.Equal(t, "10.0.0.9", ch.ConnectionDetails.ClientHostname)
	assert.Equal(t, uint32(53412), ch.ConnectionDetails.ClientPort)
}

func TestParseConsumerList(t *testing.T) {
	consumers, err := ParseConsumerList(testutil.Fixture("consumers.json"))
	require.NoError(t, err)
	require.Len(t, consumers, 1)

	c := consumers[0]
	assert.Equal(t, "ctag-billing-1", c.ConsumerTag)
	assert.True(t, c.ManualAck)
	assert.True(t, c.Active)
	assert.False(t, c.Exclusive)
	assert.Equal(t, NameAndVirtualHost{Name: "orders", VHost: "/"}, c.Queue)
}

func TestParseConsumer_QueueNotAnObject(t *testing.T) {
	_, err := ParseConsumer([]byte(`{"consumer_tag":"c","active":true,"exclusive":false,"ack_required":false,"queue":"orders"}`))

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "queue", perr.Field)
	assert.Equal(t, MalformedField, perr.Kind)
}
