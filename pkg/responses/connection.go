package responses

type Connection struct {
	Name             string           `json:"name"`
	Node             string           `json:"node"`
	State            string           `json:"state"`
	Protocol         string           `json:"protocol"`
	Username         string           `json:"username"`
	ConnectedAt      uint64           `json:"connected_at"`
	ServerHostname   string           `json:"server_hostname"`
	ServerPort       uint32           `json:"server_port"`
	ClientHostname   string           `json:"client_hostname"`
	ClientPort       uint32           `json:"client_port"`
	ChannelMax       uint16           `json:"channel_max"`
	ChannelCount     uint16           `json:"channel_count"`
	ClientProperties ClientProperties `json:"client_properties"`
}

type ClientProperties struct {
	// ConnectionName is only reported when the client sets one.
	ConnectionName *string            `json:"connection_name,omitempty"`
	Platform       string             `json:"platform"`
	Product        string             `json:"product"`
	Version        string             `json:"version"`
	Capabilities   ClientCapabilities `json:"capabilities"`
}

type ClientCapabilities struct {
	AuthenticationFailureClose bool `json:"authentication_failure_close"`
	BasicNack                  bool `json:"basic_nack"`
	ConnectionBlocked          bool `json:"connection_blocked"`
	ConsumerCancelNotify       bool `json:"consumer_cancel_notify"`
	ExchangeToExchangeBindings bool `json:"exchange_to_exchange_bindings"`
	PublisherConfirms          bool `json:"publisher_confirms"`
}

// UserConnection is the short form returned by /connections/username/{user}.
type UserConnection struct {
	Name     string `json:"name"`
	Node     string `json:"node"`
	Username string `json:"username"`
	VHost    string `json:"vhost"`
}

type Channel struct {
	ID                          uint32            `json:"id"`
	Name                        string            `json:"name"`
	ConnectionDetails           ConnectionDetails `json:"connection_details"`
	VHost                       string            `json:"vhost"`
	State                       string            `json:"state"`
	ConsumerCount               uint32            `json:"consumer_count"`
	HasPublisherConfirmsEnabled bool              `json:"has_publisher_confirms_enabled"`
	PrefetchCount               uint32            `json:"prefetch_count"`
	MessagesUnacknowledged      uint32            `json:"messages_unacknowledged"`
	MessagesUnconfirmed         uint32            `json:"messages_unconfirmed"`
}

type ConnectionDetails struct {
	Name           string `json:"name"`
	ClientHostname string `json:"client_hostname"`
	ClientPort     uint32 `json:"client_port"`
}

type Consumer struct {
	ConsumerTag string             `json:"consumer_tag"`
	Active      bool               `json:"active"`
	Exclusive   bool               `json:"exclusive"`
	ManualAck   bool               `json:"manual_ack"`
	Queue       NameAndVirtualHost `json:"queue"`
}

type NameAndVirtualHost struct {
	Name  string `json:"name"`
	VHost string `json:"vhost"`
}

var clientCapabilitiesResource = resource[ClientCapabilities]{
	name: "client capabilities",
	fields: []field[ClientCapabilities]{
		required("authentication_failure_close", boolean, func(c *ClientCapabilities, v bool) { c.AuthenticationFailureClose = v }),
		required("basic.nack", boolean, func(c *ClientCapabilities, v bool) { c.BasicNack = v }),
		required("connection.blocked", boolean, func(c *ClientCapabilities, v bool) { c.ConnectionBlocked = v }),
		required("consumer_cancel_notify", boolean, func(c *ClientCapabilities, v bool) { c.ConsumerCancelNotify = v }),
		required("exchange_exchange_bindings", boolean, func(c *ClientCapabilities, v bool) { c.ExchangeToExchangeBindings = v }),
		required("publisher_confirms", boolean, func(c *ClientCapabilities, v bool) { c.PublisherConfirms = v }),
	},
}

var clientPropertiesResource = resource[ClientProperties]{
	name: "client properties",
	fields: []field[ClientProperties]{
		optional("connection_name", str, func(p *ClientProperties, v *string) { p.ConnectionName = v }),
		required("platform", str, func(p *ClientProperties, v string) { p.Platform = v }),
		required("product", str, func(p *ClientProperties, v string) { p.Product = v }),
		required("version", str, func(p *ClientProperties, v string) { p.Version = v }),
		required("capabilities", nested(clientCapabilitiesResource), func(p *ClientProperties, v ClientCapabilities) { p.Capabilities = v }),
	},
}

var connectionResource = resource[Connection]{
	name: "connection",
	fields: []field[Connection]{
		required("name", str, func(c *Connection, v string) { c.Name = v }),
		required("node", str, func(c *Connection, v string) { c.Node = v }),
		required("state", str, func(c *Connection, v string) { c.State = v }),
		required("protocol", str, func(c *Connection, v string) { c.Protocol = v }),
		required("user", str, func(c *Connection, v string) { c.Username = v }),
		required("connected_at", u64, func(c *Connection, v uint64) { c.ConnectedAt = v }),
		required("host", str, func(c *Connection, v string) { c.ServerHostname = v }),
		required("port", u32, func(c *Connection, v uint32) { c.ServerPort = v }),
		required("peer_host", str, func(c *Connection, v string) { c.ClientHostname = v }),
		required("peer_port", u32, func(c *Connection, v uint32) { c.ClientPort = v }),
		required("channel_max", u16, func(c *Connection, v uint16) { c.ChannelMax = v }),
		required("channels", u16, func(c *Connection, v uint16) { c.ChannelCount = v }),
		required("client_properties", nested(clientPropertiesResource), func(c *Connection, v ClientProperties) { c.ClientProperties = v }),
	},
}

var userConnectionResource = resource[UserConnection]{
	name: "user connection",
	fields: []field[UserConnection]{
		required("name", str, func(c *UserConnection, v string) { c.Name = v }),
		required("node", str, func(c *UserConnection, v string) { c.Node = v }),
		required("user", str, func(c *UserConnection, v string) { c.Username = v }),
		required("vhost", str, func(c *UserConnection, v string) { c.VHost = v }),
	},
}

var connectionDetailsResource = resource[ConnectionDetails]{
	name: "connection details",
	fields: []field[ConnectionDetails]{
		required("name", str, func(d *ConnectionDetails, v string) { d.Name = v }),
		required("peer_host", str, func(d *ConnectionDetails, v string) { d.ClientHostname = v }),
		required("peer_port", u32, func(d *ConnectionDetails, v uint32) { d.ClientPort = v }),
	},
}

var channelResource = resource[Channel]{
	name: "channel",
	fields: []field[Channel]{
		required("number", u32, func(c *Channel, v uint32) { c.ID = v }),
		required("name", str, func(c *Channel, v string) { c.Name = v }),
		required("connection_details", nested(connectionDetailsResource), func(c *Channel, v ConnectionDetails) { c.ConnectionDetails = v }),
		required("vhost", str, func(c *Channel, v string) { c.VHost = v }),
		required("state", str, func(c *Channel, v string) { c.State = v }),
		required("consumer_count", u32, func(c *Channel, v uint32) { c.ConsumerCount = v }),
		required("confirm", boolean, func(c *Channel, v bool) { c.HasPublisherConfirmsEnabled = v }),
		required("prefetch_count", u32, func(c *Channel, v uint32) { c.PrefetchCount = v }),
		required("messages_unacknowledged", u32, func(c *Channel, v uint32) { c.MessagesUnacknowledged = v }),
		required("messages_unconfirmed", u32, func(c *Channel, v uint32) { c.MessagesUnconfirmed = v }),
	},
}

var nameAndVirtualHostResource = resource[NameAndVirtualHost]{
	name: "queue reference",
	fields: []field[NameAndVirtualHost]{
		required("name", str, func(n *NameAndVirtualHost, v string) { n.Name = v }),
		required("vhost", str, func(n *NameAndVirtualHost, v string) { n.VHost = v }),
	},
}

var consumerResource = resource[Consumer]{
	name: "consumer",
	fields: []field[Consumer]{
		required("consumer_tag", str, func(c *Consumer, v string) { c.ConsumerTag = v }),
		required("active", boolean, func(c *Consumer, v bool) { c.Active = v }),
		required("exclusive", boolean, func(c *Consumer, v bool) { c.Exclusive = v }),
		required("ack_required", boolean, func(c *Consumer, v bool) { c.ManualAck = v }),
		required("queue", nested(nameAndVirtualHostResource), func(c *Consumer, v NameAndVirtualHost) { c.Queue = v }),
	},
}

func ParseConnection(raw []byte) (*Connection, error) {
	return connectionResource.one(raw)
}

func ParseConnectionList(raw []byte) ([]Connection, error) {
	return connectionResource.list(raw)
}

func ParseUserConnectionList(raw []byte) ([]UserConnection, error) {
	return userConnectionResource.list(raw)
}

func ParseChannel(raw []byte) (*Channel, error) {
	return channelResource.one(raw)
}

func ParseChannelList(raw []byte) ([]Channel, error) {
	return channelResource.list(raw)
}

func ParseConsumer(raw []byte) (*Consumer, error) {
	return consumerResource.one(raw)
}

func ParseConsumerList(raw []byte) ([]Consumer, error) {
	return consumerResource.list(raw)
}
