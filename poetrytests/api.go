package poetrytests

import (
	"net/http"

	"github.com/poetrydb/contract-tests/config"
	"github.com/poetrydb/contract-tests/framework"
	"github.com/poetrydb/contract-tests/poetrydb"
	"github.com/poetrydb/contract-tests/validate"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Environment is what every test in the suite needs to know about the service under test.
type Environment struct {
	// BaseURL is the service address. Empty means poetrydb.DefaultBaseURL.
	BaseURL string

	// HTTPClient is shared by the clients of all tests; it holds no per-test state. Nil
	// means http.DefaultClient.
	HTTPClient *http.Client

	// Logger, if set, receives every client's request lines as they happen, in addition to
	// the debug output captured for each test.
	Logger framework.Logger

	Fixtures config.Fixtures
}

// T represents a test or subtest in the PoetryDB contract suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that
// is outside of the Go test runner, with per-test debug logging provided by the framework
// package. To make assertions, pass the *T to the assert and require packages as if it were
// a *testing.T.
//
// Every T builds its own poetrydb.Client on first use, logging to the test's debug output,
// so no two tests share client state.
type T struct {
	context *framework.Context
	env     *Environment
	client  *poetrydb.Client
}

func newTestScope(context *framework.Context, env *Environment) *T {
	return &T{context: context, env: env}
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods
// in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

func (t *T) Helper() {}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.env))
	})
}

// Debug logs some debug output for the test. The output is passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Fixtures returns the known catalogue facts the suite asserts on.
func (t *T) Fixtures() config.Fixtures {
	return t.env.Fixtures
}

// Client returns this test's PoetryDB client, creating it on first use.
func (t *T) Client() *poetrydb.Client {
	if t.client == nil {
		c, err := poetrydb.NewClient(t.env.BaseURL,
			poetrydb.WithHTTPClient(t.env.HTTPClient),
			poetrydb.WithLogger(framework.MultiLogger(t.context.DebugLogger(), t.env.Logger)),
		)
		require.NoError(t, err)
		t.client = c
	}
	return t.client
}

// RequireOK fails the test immediately unless the request succeeded with status 200. It is
// shaped to take a client call directly: t.RequireOK(t.Client().LookupTitle(...)).
func (t *T) RequireOK(resp *poetrydb.Response, err error) *poetrydb.Response {
	require.NoError(t, err, "request failed")
	require.Equal(t, http.StatusOK, resp.StatusCode, "unexpected status from %s", resp.URL)
	return resp
}

// RequireJSON decodes a response body, failing the test immediately if it is not JSON.
func (t *T) RequireJSON(resp *poetrydb.Response) ldvalue.Value {
	v, err := resp.JSON()
	require.NoError(t, err)
	t.Debug("Body: %s", v.JSONString())
	return v
}

// RequireShape fails the test immediately if body does not have the given shape. Shape
// failures are reported separately from value mismatches.
func (t *T) RequireShape(body ldvalue.Value, shape *validate.Shape) {
	if err := validate.Check(body, shape); err != nil {
		require.Fail(t, "wrong shape", "%s", err)
	}
}

// RequirePoems decodes a successful response, checks its shape, and returns its items:
// t.RequirePoems(t.RequireOK(t.Client().LookupTitle(...)), validate.Poems).
func (t *T) RequirePoems(resp *poetrydb.Response, shape *validate.Shape) []ldvalue.Value {
	body := t.RequireJSON(resp)
	t.RequireShape(body, shape)
	return items(body)
}

// AssertAbsent checks that a projection left out attributes that were not requested.
func (t *T) AssertAbsent(poem ldvalue.Value, keys ...string) {
	for _, k := range keys {
		assert.False(t, validate.HasKey(poem, k), "unexpected attribute %q in %s", k, poem.JSONString())
	}
}

func items(array ldvalue.Value) []ldvalue.Value {
	ret := make([]ldvalue.Value, 0, array.Count())
	for i := 0; i < array.Count(); i++ {
		ret = append(ret, array.GetByIndex(i))
	}
	return ret
}
