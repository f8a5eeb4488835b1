package poetrytests

import (
	"github.com/poetrydb/contract-tests/framework"
)

// RunTestSuite runs every contract test against the service described by env.
func RunTestSuite(
	env Environment,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, &env)

		t.Run("title", DoTitleTests)
		t.Run("author", DoAuthorTests)
		t.Run("random", DoRandomTests)
		t.Run("combined search", DoCombinedSearchTests)
	})
}
