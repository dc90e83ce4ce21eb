package requests

import "github.com/andrelcunha/rmqadmin/pkg/commons"

// PolicyDefinition is the set of keys a policy applies to matching resources.
// A nil definition is sent as JSON null, an empty one as {}.
type PolicyDefinition map[string]any

// PolicyParams is the body of PUT /policies/{vhost}/{name}. The pattern is a
// broker-side regular expression and is not checked here.
type PolicyParams struct {
	VHost      string               `json:"vhost"`
	Name       string               `json:"name"`
	Pattern    string               `json:"pattern"`
	ApplyTo    commons.PolicyTarget `json:"apply-to"`
	Priority   int32                `json:"priority"`
	Definition PolicyDefinition     `json:"definition"`
}

// RuntimeParameterValue is the opaque value of a runtime parameter.
type RuntimeParameterValue map[string]any

// RuntimeParameterDefinition is the body of
// PUT /parameters/{component}/{vhost}/{name}.
type RuntimeParameterDefinition struct {
	Name      string                `json:"name"`
	VHost     string                `json:"vhost"`
	Component string                `json:"component"`
	Value     RuntimeParameterValue `json:"value"`
}
