// Package commons holds the broker vocabulary shared by request builders and
// response parsers. Every enumeration is closed: the constant values are the
// exact spellings used by the management API, and parsing anything else fails
// with an UnknownVariantError.
package commons

// QueueType is the broker-level queue implementation.
type QueueType string

const (
	QueueTypeClassic QueueType = "classic"
	QueueTypeQuorum  QueueType = "quorum"
	QueueTypeStream  QueueType = "stream"
)

// AllQueueTypes lists every QueueType variant.
func AllQueueTypes() []QueueType {
	return []QueueType{QueueTypeClassic, QueueTypeQuorum, QueueTypeStream}
}

// ParseQueueType maps a wire string to a QueueType.
func ParseQueueType(s string) (QueueType, error) {
	switch QueueType(s) {
	case QueueTypeClassic:
		return QueueTypeClassic, nil
	case QueueTypeQuorum:
		return QueueTypeQuorum, nil
	case QueueTypeStream:
		return QueueTypeStream, nil
	default:
		return "", unknown("queue type", s)
	}
}

func (t QueueType) String() string {
	return string(t)
}

func (t QueueType) MarshalText() ([]byte, error) {
	if _, err := ParseQueueType(string(t)); err != nil {
		return nil, err
	}
	return []byte(t), nil
}

func (t *QueueType) UnmarshalText(b []byte) error {
	v, err := ParseQueueType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ExchangeType is the routing algorithm of an exchange.
type ExchangeType string

const (
	ExchangeTypeDirect  ExchangeType = "direct"
	ExchangeTypeFanout  ExchangeType = "fanout"
	ExchangeTypeTopic   ExchangeType = "topic"
	ExchangeTypeHeaders ExchangeType = "headers"
)

// AllExchangeTypes lists every ExchangeType variant.
func AllExchangeTypes() []ExchangeType {
	return []ExchangeType{ExchangeTypeDirect, ExchangeTypeFanout, ExchangeTypeTopic, ExchangeTypeHeaders}
}

// ParseExchangeType maps a wire string to an ExchangeType.
func ParseExchangeType(s string) (ExchangeType, error) {
	switch ExchangeType(s) {
	case ExchangeTypeDirect:
		return ExchangeTypeDirect, nil
	case ExchangeTypeFanout:
		return ExchangeTypeFanout, nil
	case ExchangeTypeTopic:
		return ExchangeTypeTopic, nil
	case ExchangeTypeHeaders:
		return ExchangeTypeHeaders, nil
	default:
		return "", unknown("exchange type", s)
	}
}

func (t ExchangeType) String() string {
	return string(t)
}

func (t ExchangeType) MarshalText() ([]byte, error) {
	if _, err := ParseExchangeType(string(t)); err != nil {
		return nil, err
	}
	return []byte(t), nil
}

func (t *ExchangeType) UnmarshalText(b []byte) error {
	v, err := ParseExchangeType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// PolicyTarget selects which resources a policy applies to ("apply-to").
type PolicyTarget string

const (
	PolicyTargetQueues        PolicyTarget = "queues"
	PolicyTargetClassicQueues PolicyTarget = "classic_queues"
	PolicyTargetQuorumQueues  PolicyTarget = "quorum_queues"
	PolicyTargetStreams       PolicyTarget = "streams"
	PolicyTargetExchanges     PolicyTarget = "exchanges"
	PolicyTargetAll           PolicyTarget = "all"
)

// AllPolicyTargets lists every PolicyTarget variant.
func AllPolicyTargets() []PolicyTarget {
	return []PolicyTarget{
		PolicyTargetQueues,
		PolicyTargetClassicQueues,
		PolicyTargetQuorumQueues,
		PolicyTargetStreams,
		PolicyTargetExchanges,
		PolicyTargetAll,
	}
}

// ParsePolicyTarget maps a wire string to a PolicyTarget.
func ParsePolicyTarget(s string) (PolicyTarget, error) {
	switch PolicyTarget(s) {
	case PolicyTargetQueues:
		return PolicyTargetQueues, nil
	case PolicyTargetClassicQueues:
		return PolicyTargetClassicQueues, nil
	case PolicyTargetQuorumQueues:
		return PolicyTargetQuorumQueues, nil
	case PolicyTargetStreams:
		return PolicyTargetStreams, nil
	case PolicyTargetExchanges:
		return PolicyTargetExchanges, nil
	case PolicyTargetAll:
		return PolicyTargetAll, nil
	default:
		return "", unknown("policy target", s)
	}
}

func (t PolicyTarget) String() string {
	return string(t)
}

func (t PolicyTarget) MarshalText() ([]byte, error) {
	if _, err := ParsePolicyTarget(string(t)); err != nil {
		return nil, err
	}
	return []byte(t), nil
}

func (t *PolicyTarget) UnmarshalText(b []byte) error {
	v, err := ParsePolicyTarget(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// BindingDestinationType tells whether a binding routes to a queue or to
// another exchange.
type BindingDestinationType string

const (
	BindingDestinationQueue    BindingDestinationType = "queue"
	BindingDestinationExchange BindingDestinationType = "exchange"
)

// AllBindingDestinationTypes lists every BindingDestinationType variant.
func AllBindingDestinationTypes() []BindingDestinationType {
	return []BindingDestinationType{BindingDestinationQueue, BindingDestinationExchange}
}

// ParseBindingDestinationType maps a wire string to a BindingDestinationType.
func ParseBindingDestinationType(s string) (BindingDestinationType, error) {
	switch BindingDestinationType(s) {
	case BindingDestinationQueue:
		return BindingDestinationQueue, nil
	case BindingDestinationExchange:
		return BindingDestinationExchange, nil
	default:
		return "", unknown("binding destination type", s)
	}
}

func (t BindingDestinationType) String() string {
	return string(t)
}

// PathSegment is the short form used in binding URLs: "q" or "e".
func (t BindingDestinationType) PathSegment() (string, error) {
	switch t {
	case BindingDestinationQueue:
		return "q", nil
	case BindingDestinationExchange:
		return "e", nil
	default:
		return "", unknown("binding destination type", string(t))
	}
}

func (t BindingDestinationType) MarshalText() ([]byte, error) {
	if _, err := ParseBindingDestinationType(string(t)); err != nil {
		return nil, err
	}
	return []byte(t), nil
}

func (t *BindingDestinationType) UnmarshalText(b []byte) error {
	v, err := ParseBindingDestinationType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
