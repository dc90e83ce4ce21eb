package responses

import (
	"github.com/andrelcunha/rmqadmin/pkg/commons"
	"github.com/tidwall/gjson"
)

// XArguments are the optional arguments reported for queues, exchanges and
// bindings.
type XArguments map[string]any

// QueueInfo is a snapshot of a queue. Leader, Members and Online are only
// reported for replicated types (quorum queues and streams) and are nil
// otherwise.
type QueueInfo struct {
	Name       string     `json:"name"`
	VHost      string     `json:"vhost"`
	QueueType  string     `json:"queue_type"`
	Durable    bool       `json:"durable"`
	AutoDelete bool       `json:"auto_delete"`
	Exclusive  bool       `json:"exclusive"`
	Arguments  XArguments `json:"arguments"`

	Node    string    `json:"node"`
	State   string    `json:"state"`
	Leader  *string   `json:"leader,omitempty"`
	Members *[]string `json:"members,omitempty"`
	Online  *[]string `json:"online,omitempty"`

	Memory               uint64  `json:"memory"`
	ConsumerCount        uint16  `json:"consumer_count"`
	ConsumerUtilisation  float32 `json:"consumer_utilisation"`
	ExclusiveConsumerTag *string `json:"exclusive_consumer_tag,omitempty"`

	Policy *string `json:"policy,omitempty"`

	MessageBytes               uint64 `json:"message_bytes"`
	MessageBytesPersistent     uint64 `json:"message_bytes_persistent"`
	MessageBytesRAM            uint64 `json:"message_bytes_ram"`
	MessageBytesReady          uint64 `json:"message_bytes_ready"`
	MessageBytesUnacknowledged uint64 `json:"message_bytes_unacknowledged"`

	MessageCount               uint64 `json:"message_count"`
	OnDiskMessageCount         uint64 `json:"on_disk_message_count"`
	InMemoryMessageCount       uint64 `json:"in_memory_message_count"`
	UnacknowledgedMessageCount uint64 `json:"unacknowledged_message_count"`
}

// Type parses the reported queue type. Queue types added by newer brokers
// come back as an UnknownVariantError.
func (q QueueInfo) Type() (commons.QueueType, error) {
	return commons.ParseQueueType(q.QueueType)
}

// IsReplicated reports whether the broker returned replica information.
func (q QueueInfo) IsReplicated() bool {
	return q.Leader != nil || q.Members != nil || q.Online != nil
}

type ExchangeInfo struct {
	Name         string     `json:"name"`
	VHost        string     `json:"vhost"`
	ExchangeType string     `json:"exchange_type"`
	Durable      bool       `json:"durable"`
	AutoDelete   bool       `json:"auto_delete"`
	Arguments    XArguments `json:"arguments"`
}

// Type parses the reported exchange type. Plugin exchange types such as
// x-consistent-hash come back as an UnknownVariantError.
func (e ExchangeInfo) Type() (commons.ExchangeType, error) {
	return commons.ParseExchangeType(e.ExchangeType)
}

type BindingInfo struct {
	VHost           string                         `json:"vhost"`
	Source          string                         `json:"source"`
	Destination     string                         `json:"destination"`
	DestinationType commons.BindingDestinationType `json:"destination_type"`
	RoutingKey      string                         `json:"routing_key"`
	Arguments       XArguments                     `json:"arguments"`
	PropertiesKey   string                         `json:"properties_key"`
}

func arguments(r gjson.Result) (XArguments, error) {
	m, err := object(r)
	return XArguments(m), err
}

var queueInfoResource = resource[QueueInfo]{
	name: "queue",
	fields: []field[QueueInfo]{
		required("name", str, func(q *QueueInfo, v string) { q.Name = v }),
		required("vhost", str, func(q *QueueInfo, v string) { q.VHost = v }),
		required("type", str, func(q *QueueInfo, v string) { q.QueueType = v }),
		required("durable", boolean, func(q *QueueInfo, v bool) { q.Durable = v }),
		required("auto_delete", boolean, func(q *QueueInfo, v bool) { q.AutoDelete = v }),
		required("exclusive", boolean, func(q *QueueInfo, v bool) { q.Exclusive = v }),
		required("arguments", arguments, func(q *QueueInfo, v XArguments) { q.Arguments = v }),

		required("node", str, func(q *QueueInfo, v string) { q.Node = v }),
		required("state", str, func(q *QueueInfo, v string) { q.State = v }),
		optional("leader", str, func(q *QueueInfo, v *string) { q.Leader = v }),
		optional("members", strList, func(q *QueueInfo, v *[]string) { q.Members = v }),
		optional("online", strList, func(q *QueueInfo, v *[]string) { q.Online = v }),

		required("memory", u64, func(q *QueueInfo, v uint64) { q.Memory = v }),
		required("consumers", u16, func(q *QueueInfo, v uint16) { q.ConsumerCount = v }),
		required("consumer_utilisation", f32, func(q *QueueInfo, v float32) { q.ConsumerUtilisation = v }),
		optional("exclusive_consumer_tag", str, func(q *QueueInfo, v *string) { q.ExclusiveConsumerTag = v }),

		optional("policy", str, func(q *QueueInfo, v *string) { q.Policy = v }),

		required("message_bytes", u64, func(q *QueueInfo, v uint64) { q.MessageBytes = v }),
		required("message_bytes_persistent", u64, func(q *QueueInfo, v uint64) { q.MessageBytesPersistent = v }),
		required("message_bytes_ram", u64, func(q *QueueInfo, v uint64) { q.MessageBytesRAM = v }),
		required("message_bytes_ready", u64, func(q *QueueInfo, v uint64) { q.MessageBytesReady = v }),
		required("message_bytes_unacknowledged", u64, func(q *QueueInfo, v uint64) { q.MessageBytesUnacknowledged = v }),

		required("messages", u64, func(q *QueueInfo, v uint64) { q.MessageCount = v }),
		required("messages_persistent", u64, func(q *QueueInfo, v uint64) { q.OnDiskMessageCount = v }),
		required("messages_ram", u64, func(q *QueueInfo, v uint64) { q.InMemoryMessageCount = v }),
		required("messages_unacknowledged", u64, func(q *QueueInfo, v uint64) { q.UnacknowledgedMessageCount = v }),
	},
}

var exchangeInfoResource = resource[ExchangeInfo]{
	name: "exchange",
	fields: []field[ExchangeInfo]{
		required("name", str, func(e *ExchangeInfo, v string) { e.Name = v }),
		required("vhost", str, func(e *ExchangeInfo, v string) { e.VHost = v }),
		required("type", str, func(e *ExchangeInfo, v string) { e.ExchangeType = v }),
		required("durable", boolean, func(e *ExchangeInfo, v bool) { e.Durable = v }),
		required("auto_delete", boolean, func(e *ExchangeInfo, v bool) { e.AutoDelete = v }),
		required("arguments", arguments, func(e *ExchangeInfo, v XArguments) { e.Arguments = v }),
	},
}

var bindingInfoResource = resource[BindingInfo]{
	name: "binding",
	fields: []field[BindingInfo]{
		required("vhost", str, func(b *BindingInfo, v string) { b.VHost = v }),
		required("source", str, func(b *BindingInfo, v string) { b.Source = v }),
		required("destination", str, func(b *BindingInfo, v string) { b.Destination = v }),
		required("destination_type", enum(commons.ParseBindingDestinationType), func(b *BindingInfo, v commons.BindingDestinationType) { b.DestinationType = v }),
		required("routing_key", str, func(b *BindingInfo, v string) { b.RoutingKey = v }),
		required("arguments", arguments, func(b *BindingInfo, v XArguments) { b.Arguments = v }),
		required("properties_key", str, func(b *BindingInfo, v string) { b.PropertiesKey = v }),
	},
}

func ParseQueueInfo(raw []byte) (*QueueInfo, error) {
	return queueInfoResource.one(raw)
}

func ParseQueueInfoList(raw []byte) ([]QueueInfo, error) {
	return queueInfoResource.list(raw)
}

func ParseExchangeInfo(raw []byte) (*ExchangeInfo, error) {
	return exchangeInfoResource.one(raw)
}

func ParseExchangeInfoList(raw []byte) ([]ExchangeInfo, error) {
	return exchangeInfoResource.list(raw)
}

func ParseBindingInfoList(raw []byte) ([]BindingInfo, error) {
	return bindingInfoResource.list(raw)
}
