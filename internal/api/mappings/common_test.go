package mappings

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/catalog-admin/internal/config"
	"github.com/spec-kit/catalog-admin/internal/dispatch"
	"github.com/spec-kit/catalog-admin/internal/service"
	"github.com/spec-kit/catalog-admin/pkg/util"
)

func testPagination() config.PaginationConfig {
	return config.PaginationConfig{SkipDefault: 0, LimitDefault: 25}
}

func listContext(query map[string]string) *dispatch.Context {
	return &dispatch.Context{Request: &dispatch.Request{Query: query}}
}

func TestListInputDefaults(t *testing.T) {
	t.Parallel()

	args, err := listInput(testPagination())(listContext(nil))
	require.NoError(t, err)
	params := args.(service.ListParams)
	require.EqualValues(t, 0, params.Skip)
	require.EqualValues(t, 25, params.Limit)
	require.Nil(t, params.Activated)
}

func TestListInputWindow(t *testing.T) {
	t.Parallel()

	args, err := listInput(testPagination())(listContext(map[string]string{
		"_start": "10",
		"_end":   "35",
		"_sort":  "name",
		"_order": "DESC",
		"q":      "blue",
	}))
	require.NoError(t, err)
	params := args.(service.ListParams)
	require.EqualValues(t, 10, params.Skip)
	require.EqualValues(t, 25, params.Limit)
	require.Equal(t, "name", params.Sort)
	require.Equal(t, "DESC", params.Order)
	require.Equal(t, "blue", params.Q)
}

func TestListInputActivatedFlag(t *testing.T) {
	t.Parallel()

	args, err := listInput(testPagination())(listContext(map[string]string{"activated": "true"}))
	require.NoError(t, err)
	params := args.(service.ListParams)
	require.NotNil(t, params.Activated)
	require.True(t, *params.Activated)

	_, err = listInput(testPagination())(listContext(map[string]string{"activated": "maybe"}))
	requireValidation(t, err)
}

func TestListInputRejectsBadWindow(t *testing.T) {
	t.Parallel()

	in := listInput(testPagination())

	_, err := in(listContext(map[string]string{"_start": "abc"}))
	requireValidation(t, err)

	_, err = in(listContext(map[string]string{"_start": "-1"}))
	requireValidation(t, err)

	_, err = in(listContext(map[string]string{"_start": "10", "_end": "5"}))
	requireValidation(t, err)
}

func requireValidation(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, util.NameValidationFailed, util.ToDomainError(err).Name)
}

func TestListOutputSetsTotalCountHeader(t *testing.T) {
	t.Parallel()

	resp, err := listOutput(nil, &service.ListResult{Data: []string{"a", "b"}, Total: 42})
	require.NoError(t, err)
	require.Equal(t, "42", resp.Headers["X-Total-Count"])
	require.Equal(t, []string{"a", "b"}, resp.Body)
}

func TestBuildAllRegistersWithoutCollisions(t *testing.T) {
	t.Parallel()

	descriptors := BuildAll(testPagination(), Services{})
	registry := dispatch.NewRegistry()
	require.NoError(t, registry.Register(descriptors...))

	// one quadruple per catalog entity plus the four auth routes
	require.Len(t, descriptors, 24)

	for _, probe := range []struct{ method, path string }{
		{"POST", "/user/logins"},
		{"POST", "/user/registers"},
		{"POST", "/user/refreshTokens"},
		{"PUT", "/user/changePasswords/user-1"},
		{"GET", "/products"},
		{"POST", "/productTypes"},
		{"GET", "/smells/abc"},
		{"PUT", "/gifts/abc"},
		{"GET", "/accounts"},
	} {
		_, _, ok := registry.Resolve(probe.method, probe.path)
		require.True(t, ok, "expected %s %s to resolve", probe.method, probe.path)
	}
}

func TestProtectionFlags(t *testing.T) {
	t.Parallel()

	registry := dispatch.NewRegistry()
	require.NoError(t, registry.Register(BuildAll(testPagination(), Services{})...))

	list, _, ok := registry.Resolve("GET", "/products")
	require.True(t, ok)
	require.False(t, list.Protected)

	get, _, ok := registry.Resolve("GET", "/products/42")
	require.True(t, ok)
	require.True(t, get.Protected)

	login, _, ok := registry.Resolve("POST", "/user/logins")
	require.True(t, ok)
	require.False(t, login.Protected)

	change, _, ok := registry.Resolve("PUT", "/user/changePasswords/42")
	require.True(t, ok)
	require.True(t, change.Protected)
}
