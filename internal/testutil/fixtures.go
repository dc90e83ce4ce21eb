package testutil

import (
	"embed"
	"fmt"
)

//go:embed fixtures/*.json
var fixtures embed.FS

// Fixture returns a canned management API response body by file name,
// e.g. Fixture("queues.json"). It panics on unknown names since fixtures
// are compiled in.
func Fixture(name string) []byte {
	data, err := fixtures.ReadFile("fixtures/" + name)
	if err != nil {
		panic(fmt.Sprintf("fixture '%s' not found: %v", name, err))
	}
	return data
}
