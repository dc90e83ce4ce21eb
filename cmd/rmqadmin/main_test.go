package main

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/andrelcunha/rmqadmin/config"
	"github.com/andrelcunha/rmqadmin/internal/testutil"
	"github.com/andrelcunha/rmqadmin/pkg/client"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func runCLI(t *testing.T, args ...string) (string, *testutil.FakeAPI, error) {
	t.Helper()
	api := testutil.NewFakeAPI()
	c, err := client.New(testutil.FakeEndpoint, testutil.FakeUsername, testutil.FakePassword,
		client.WithHTTPDoer(api.Doer()),
		client.WithLogger(zerolog.Nop()),
	)
	require.NoError(t, err)

	var out bytes.Buffer
	a := &app{
		cfg: &config.Config{
			Endpoint: testutil.FakeEndpoint,
			Username: testutil.FakeUsername,
			Password: testutil.FakePassword,
			Timeout:  time.Second,
			VHost:    "/",
		},
		client: c,
		out:    &out,
	}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	err = root.Execute()
	return out.String(), api, err
}

func TestListQueues(t *testing.T) {
	out, api, err := runCLI(t, "list", "queues")
	require.NoError(t, err)

	assert.Equal(t, 2, len(gjson.Parse(out).Array()))
	assert.Equal(t, "orders", gjson.Get(out, "0.name").String())

	req, _ := api.LastRequest()
	assert.Equal(t, "/api/queues", req.Path)
}

func TestListQueues_ScopedToVHost(t *testing.T) {
	_, api, err := runCLI(t, "list", "queues", "--vhost", "/")
	require.NoError(t, err)

	req, _ := api.LastRequest()
	assert.Equal(t, "/api/queues/%2F", req.Path)
}

func TestListEveryResource(t *testing.T) {
	for _, resource := range []string{"queues", "exchanges", "bindings", "policies", "vhosts", "users", "connections", "channels", "consumers", "nodes", "parameters"} {
		t.Run(resource, func(t *testing.T) {
			out, _, err := runCLI(t, "list", resource)
			require.NoError(t, err)
			assert.True(t, gjson.Parse(out).IsArray(), out)
		})
	}
}

func TestDeclareQueue_Quorum(t *testing.T) {
	out, api, err := runCLI(t, "declare", "queue", "orders", "--type", "quorum", "--arg", "x-delivery-limit=20")
	require.NoError(t, err)
	assert.Equal(t, "orders\n", out)

	req, _ := api.LastRequest()
	assert.Equal(t, "PUT", req.Method)
	assert.Equal(t, "/api/queues/%2F/orders", req.Path)
	assert.Equal(t, "quorum", gjson.GetBytes(req.Body, "arguments.x-queue-type").String())
	assert.Equal(t, int64(20), gjson.GetBytes(req.Body, "arguments.x-delivery-limit").Int())
	assert.True(t, gjson.GetBytes(req.Body, "durable").Bool())
}

func TestDeclareQueue_ExclusiveGeneratesName(t *testing.T) {
	out, api, err := runCLI(t, "declare", "queue", "--type", "classic", "--exclusive")
	require.NoError(t, err)

	name := strings.TrimSpace(out)
	assert.True(t, strings.HasPrefix(name, generatedQueuePrefix), name)

	req, _ := api.LastRequest()
	assert.Equal(t, "/api/queues/%2F/"+name, req.Path)
	assert.True(t, gjson.GetBytes(req.Body, "exclusive").Bool())
	assert.False(t, gjson.GetBytes(req.Body, "durable").Bool())
}

func TestDeclareQueue_Rejections(t *testing.T) {
	_, _, err := runCLI(t, "declare", "queue", "--type", "quorum")
	assert.ErrorContains(t, err, "name is required")

	_, _, err = runCLI(t, "declare", "queue", "q", "--type", "stream", "--exclusive")
	assert.ErrorContains(t, err, "only classic queues can be exclusive")

	_, _, err = runCLI(t, "declare", "queue", "q", "--type", "lazy")
	assert.Error(t, err)

	_, _, err = runCLI(t, "declare", "queue", "q", "--arg", "novalue")
	assert.ErrorContains(t, err, "invalid key=value pair")
}

func TestDeclareExchange(t *testing.T) {
	_, api, err := runCLI(t, "declare", "exchange", "events", "--type", "topic", "--auto-delete")
	require.NoError(t, err)

	req, _ := api.LastRequest()
	assert.Equal(t, "/api/exchanges/%2F/events", req.Path)
	assert.Equal(t, "topic", gjson.GetBytes(req.Body, "type").String())
	assert.True(t, gjson.GetBytes(req.Body, "auto_delete").Bool())
	assert.True(t, gjson.GetBytes(req.Body, "durable").Bool())
}

func TestDeclarePolicy(t *testing.T) {
	_, api, err := runCLI(t, "declare", "policy", "limits",
		"--pattern", "^orders$", "--apply-to", "quorum_queues", "--priority", "7",
		"--definition", "delivery-limit=20")
	require.NoError(t, err)

	req, _ := api.LastRequest()
	assert.Equal(t, "/api/policies/%2F/limits", req.Path)
	assert.Equal(t, "quorum_queues", gjson.GetBytes(req.Body, "apply-to").String())
	assert.Equal(t, int64(7), gjson.GetBytes(req.Body, "priority").Int())
	assert.Equal(t, int64(20), gjson.GetBytes(req.Body, "definition.delivery-limit").Int())
}

func TestDeclarePolicy_EmptyDefinitionIsObject(t *testing.T) {
	_, api, err := runCLI(t, "declare", "policy", "noop", "--pattern", ".*")
	require.NoError(t, err)

	req, _ := api.LastRequest()
	assert.JSONEq(t, `{}`, gjson.GetBytes(req.Body, "definition").Raw)
}

func TestDeclareVirtualHost(t *testing.T) {
	_, api, err := runCLI(t, "declare", "vhost", "staging", "--description", "Staging", "--tags", "qa,eu", "--default-queue-type", "quorum")
	require.NoError(t, err)

	req, _ := api.LastRequest()
	assert.Equal(t, "/api/vhosts/staging", req.Path)
	assert.JSONEq(t, `{
		"name": "staging",
		"description": "Staging",
		"tags": ["qa", "eu"],
		"default_queue_type": "quorum",
		"tracing": false
	}`, string(req.Body))
}

func TestDeclareUser_HashesPassword(t *testing.T) {
	_, api, err := runCLI(t, "declare", "user", "ops", "--user-password", "s3cret", "--tags", "monitoring,policymaker")
	require.NoError(t, err)

	req, _ := api.LastRequest()
	assert.Equal(t, "/api/users/ops", req.Path)
	assert.Equal(t, "monitoring,policymaker", gjson.GetBytes(req.Body, "tags").String())

	hash := gjson.GetBytes(req.Body, "password_hash").String()
	raw, err := base64.StdEncoding.DecodeString(hash)
	require.NoError(t, err)
	assert.Len(t, raw, 4+32, "salt followed by a SHA-256 digest")
	assert.NotContains(t, string(req.Body), "s3cret")
}

func TestDelete(t *testing.T) {
	for _, tc := range []struct {
		kind string
		path string
	}{
		{"queue", "/api/queues/%2F/orders"},
		{"exchange", "/api/exchanges/%2F/orders"},
		{"policy", "/api/policies/%2F/orders"},
	} {
		t.Run(tc.kind, func(t *testing.T) {
			_, api, err := runCLI(t, "delete", tc.kind, "orders")
			require.NoError(t, err)

			req, _ := api.LastRequest()
			assert.Equal(t, "DELETE", req.Method)
			assert.Equal(t, tc.path, req.Path)
		})
	}
}

func TestParseKeyValues(t *testing.T) {
	args, err := parseKeyValues([]string{"x-max-length=1000", "x-single-active-consumer=true", "x-overflow=reject-publish", "x-empty="})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), args["x-max-length"])
	assert.Equal(t, true, args["x-single-active-consumer"])
	assert.Equal(t, "reject-publish", args["x-overflow"])
	assert.Equal(t, "", args["x-empty"])

	args, err = parseKeyValues(nil)
	require.NoError(t, err)
	assert.Nil(t, args)

	_, err = parseKeyValues([]string{"=v"})
	assert.Error(t, err)
}
