package testutil

import (
	"net/http"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/tidwall/gjson"
)

const (
	FakeUsername = "guest"
	FakePassword = "guest"
	// FakeEndpoint is the API root the fake answers under; the host is
	// never resolved since requests are served in-process.
	FakeEndpoint = "http://rabbit.test:15672/api"
)

// RecordedRequest is one request received by FakeAPI. Path keeps the
// escaping the client sent, e.g. "/api/queues/%2F/orders".
type RecordedRequest struct {
	Method      string
	Path        string
	ContentType string
	Body        []byte
}

type cannedResponse struct {
	status int
	body   []byte
}

// FakeAPI is an in-process stand-in for the management API. GET routes
// answer with the embedded fixtures; writes are recorded and acknowledged.
type FakeAPI struct {
	App *fiber.App

	mu        sync.Mutex
	requests  []RecordedRequest
	responses map[string]cannedResponse
}

func NewFakeAPI() *FakeAPI {
	f := &FakeAPI{
		responses: make(map[string]cannedResponse),
	}

	app := fiber.New(fiber.Config{
		AppName:               "rmqadmin-fake-management-api",
		DisableStartupMessage: true,
	})
	app.Use(basicauth.New(basicauth.Config{
		Users: map[string]string{FakeUsername: FakePassword},
		Unauthorized: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":  "not_authorized",
				"reason": "Login failed",
			})
		},
	}))
	app.All("/*", f.handle)
	f.App = app

	f.stubFixtures()
	return f
}

func (f *FakeAPI) stubFixtures() {
	lists := map[string]string{
		"/api/vhosts":                          "vhosts.json",
		"/api/users":                           "users.json",
		"/api/connections":                     "connections.json",
		"/api/connections/username/billing":    "user_connections.json",
		"/api/channels":                        "channels.json",
		"/api/consumers":                       "consumers.json",
		"/api/queues":                          "queues.json",
		"/api/queues/%2F":                      "queues.json",
		"/api/queues/%2F/orders":               "queue_quorum.json",
		"/api/queues/%2F/audit":                "queue_classic.json",
		"/api/exchanges":                       "exchanges.json",
		"/api/exchanges/%2F":                   "exchanges.json",
		"/api/bindings":                        "bindings.json",
		"/api/bindings/%2F":                    "bindings.json",
		"/api/nodes":                           "nodes.json",
		"/api/cluster-name":                    "cluster_name.json",
		"/api/parameters":                      "parameters.json",
		"/api/policies":                        "policies.json",
		"/api/policies/%2F":                    "policies.json",
	}
	for path, name := range lists {
		f.Stub(http.MethodGet, path, http.StatusOK, Fixture(name))
	}

	// Single-entity routes reuse list fixtures.
	singles := map[string]struct {
		fixture string
		index   string
	}{
		"/api/vhosts/%2F":           {"vhosts.json", "0"},
		"/api/vhosts/staging":       {"vhosts.json", "1"},
		"/api/users/guest":          {"users.json", "0"},
		"/api/exchanges/%2F/events": {"exchanges.json", "1"},
		"/api/nodes/rabbit@node-1":  {"nodes.json", "0"},
		"/api/policies/%2F/limits":  {"policies.json", "0"},
	}
	for path, s := range singles {
		f.Stub(http.MethodGet, path, http.StatusOK, []byte(gjson.GetBytes(Fixture(s.fixture), s.index).Raw))
	}
}

// Stub sets the response for method and raw path, replacing any default.
func (f *FakeAPI) Stub(method, path string, status int, body []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[method+" "+path] = cannedResponse{status: status, body: body}
}

// Requests returns every request received so far.
func (f *FakeAPI) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]RecordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

// LastRequest returns the most recent request, if any.
func (f *FakeAPI) LastRequest() (RecordedRequest, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return RecordedRequest{}, false
	}
	return f.requests[len(f.requests)-1], true
}

func (f *FakeAPI) handle(c *fiber.Ctx) error {
	// fiber reuses request buffers once the handler returns
	body := append([]byte(nil), c.Body()...)
	path := string(c.Request().URI().PathOriginal())

	f.mu.Lock()
	f.requests = append(f.requests, RecordedRequest{
		Method:      c.Method(),
		Path:        path,
		ContentType: c.Get(fiber.HeaderContentType),
		Body:        body,
	})
	resp, ok := f.responses[c.Method()+" "+path]
	f.mu.Unlock()

	if ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Status(resp.status).Send(resp.body)
	}

	switch c.Method() {
	case fiber.MethodPut, fiber.MethodPost:
		return c.SendStatus(fiber.StatusCreated)
	case fiber.MethodDelete:
		return c.SendStatus(fiber.StatusNoContent)
	default:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":  "Object Not Found",
			"reason": "Not Found",
		})
	}
}

// Doer returns an HTTP doer that serves requests through the fiber app
// without opening a socket.
func (f *FakeAPI) Doer() *FiberDoer {
	return &FiberDoer{app: f.App}
}

type FiberDoer struct {
	app *fiber.App
}

func (d *FiberDoer) Do(req *http.Request) (*http.Response, error) {
	return d.app.Test(req, -1)
}
