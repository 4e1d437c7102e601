package dispatch

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func noop(_ context.Context, _ *Context, _ any) (any, error) { return nil, nil }

func TestRegisterRejectsNilOperation(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	err := r.Register(Descriptor{Path: "/products", Method: http.MethodGet})
	require.Error(t, err)
}

func TestRegisterRejectsSameShapeRoutes(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NoError(t, r.Register(Descriptor{Path: "/products/:id", Method: http.MethodGet, Handle: noop}))

	// parameter names do not distinguish route shapes
	err := r.Register(Descriptor{Path: "/products/:slug", Method: http.MethodGet, Handle: noop})
	require.Error(t, err)

	// same path on another verb is fine
	require.NoError(t, r.Register(Descriptor{Path: "/products/:id", Method: http.MethodPut, Handle: noop}))
}

func TestResolveExtractsParams(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NoError(t, r.Register(
		Descriptor{Path: "/products", Method: http.MethodGet, Operation: "list", Handle: noop},
		Descriptor{Path: "/products/:id", Method: http.MethodGet, Operation: "getById", Handle: noop},
		Descriptor{Path: "/user/changePasswords/:id", Method: http.MethodPut, Operation: "changePassword", Handle: noop},
	))

	desc, params, ok := r.Resolve("GET", "/products/42")
	require.True(t, ok)
	require.Equal(t, "getById", desc.Operation)
	require.Equal(t, map[string]string{"id": "42"}, params)

	desc, params, ok = r.Resolve("get", "/products")
	require.True(t, ok)
	require.Equal(t, "list", desc.Operation)
	require.Empty(t, params)

	_, _, ok = r.Resolve("GET", "/products/42/extra")
	require.False(t, ok)

	_, _, ok = r.Resolve("DELETE", "/products/42")
	require.False(t, ok)

	desc, params, ok = r.Resolve("PUT", "/user/changePasswords/user-1")
	require.True(t, ok)
	require.Equal(t, "changePassword", desc.Operation)
	require.Equal(t, "user-1", params["id"])
}
