package requests

import "github.com/andrelcunha/rmqadmin/pkg/commons"

// VirtualHostParams is the body of PUT /vhosts/{name}. Unset optional fields
// are left out of the payload.
type VirtualHostParams struct {
	Name             string             `json:"name"`
	Description      *string            `json:"description,omitempty"`
	Tags             []string           `json:"tags,omitempty"`
	DefaultQueueType *commons.QueueType `json:"default_queue_type,omitempty"`
	Tracing          bool               `json:"tracing"`
}

// UserParams is the body of PUT /users/{name}. Tags is a comma-separated list
// such as "administrator,monitoring".
type UserParams struct {
	Name         string `json:"name"`
	PasswordHash string `json:"password_hash"`
	Tags         string `json:"tags"`
}

// BindingParams is the body of POST /bindings/{vhost}/e/{source}/{q|e}/{destination}.
type BindingParams struct {
	RoutingKey string     `json:"routing_key"`
	Arguments  XArguments `json:"arguments,omitempty"`
}
