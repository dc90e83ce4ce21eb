package responses

import (
	"github.com/andrelcunha/rmqadmin/pkg/commons"
	"github.com/tidwall/gjson"
)

type RuntimeParameterValue map[string]any

type RuntimeParameter struct {
	Name      string                `json:"name"`
	VHost     string                `json:"vhost"`
	Component string                `json:"component"`
	Value     RuntimeParameterValue `json:"value"`
}

// PolicyDefinition is nil when the broker omits the definition or reports
// null, and an empty non-nil map when it reports {}.
type PolicyDefinition map[string]any

type Policy struct {
	Name       string               `json:"name"`
	VHost      string               `json:"vhost"`
	Pattern    string               `json:"pattern"`
	ApplyTo    commons.PolicyTarget `json:"apply_to"`
	Priority   int16                `json:"priority"`
	Definition PolicyDefinition     `json:"definition"`
}

var runtimeParameterResource = resource[RuntimeParameter]{
	name: "runtime parameter",
	fields: []field[RuntimeParameter]{
		required("name", str, func(p *RuntimeParameter, v string) { p.Name = v }),
		required("vhost", str, func(p *RuntimeParameter, v string) { p.VHost = v }),
		required("component", str, func(p *RuntimeParameter, v string) { p.Component = v }),
		required("value", func(r gjson.Result) (RuntimeParameterValue, error) {
			m, err := object(r)
			return RuntimeParameterValue(m), err
		}, func(p *RuntimeParameter, v RuntimeParameterValue) { p.Value = v }),
	},
}

var policyResource = resource[Policy]{
	name: "policy",
	fields: []field[Policy]{
		required("name", str, func(p *Policy, v string) { p.Name = v }),
		required("vhost", str, func(p *Policy, v string) { p.VHost = v }),
		required("pattern", str, func(p *Policy, v string) { p.Pattern = v }),
		required("apply-to", enum(commons.ParsePolicyTarget), func(p *Policy, v commons.PolicyTarget) { p.ApplyTo = v }),
		required("priority", i16, func(p *Policy, v int16) { p.Priority = v }),
		optional("definition", object, func(p *Policy, v *map[string]any) {
			if v != nil {
				p.Definition = PolicyDefinition(*v)
			}
		}),
	},
}

func ParseRuntimeParameter(raw []byte) (*RuntimeParameter, error) {
	return runtimeParameterResource.one(raw)
}

func ParseRuntimeParameterList(raw []byte) ([]RuntimeParameter, error) {
	return runtimeParameterResource.list(raw)
}

func ParsePolicy(raw []byte) (*Policy, error) {
	return policyResource.one(raw)
}

func ParsePolicyList(raw []byte) ([]Policy, error) {
	return policyResource.list(raw)
}
