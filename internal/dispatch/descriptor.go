// Package dispatch implements the declarative route-to-service layer: a
// registry of endpoint descriptors and a dispatcher that executes requests
// against them. Route resolution semantics (fail-fast duplicate detection,
// exact-segment matching with a single named parameter) live here rather
// than in the HTTP framework, which only carries bytes in and out.
package dispatch

import (
	"context"
	"fmt"
	"strings"
)

// Operation is a business operation bound to a descriptor. It receives the
// canonical argument object produced by the input transform, or the dispatch
// context's raw request when no transform is declared.
type Operation func(ctx context.Context, dctx *Context, args any) (any, error)

// InputTransform extracts and normalizes a canonical argument object from
// the raw request. A returned error short-circuits dispatch; the bound
// operation is never invoked.
type InputTransform func(dctx *Context) (any, error)

// OutputTransform reshapes a successful operation result into a response.
// It is never invoked on a failure path.
type OutputTransform func(dctx *Context, result any) (*Response, error)

// Descriptor binds an HTTP path and verb to a named service operation with
// optional transforms. Descriptors are built once at startup and never
// mutated afterwards.
type Descriptor struct {
	Path      string
	Method    string
	Service   string
	Operation string
	Protected bool
	Handle    Operation
	Input     InputTransform
	Output    OutputTransform
}

type routeEntry struct {
	segments   []string
	descriptor *Descriptor
}

// Registry holds the static route table. Populate it fully at startup; it is
// read-only at request time and therefore safe for concurrent Resolve calls.
type Registry struct {
	routes map[string][]routeEntry
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{routes: make(map[string][]routeEntry)}
}

// Register appends a batch of descriptors, failing fast when two descriptors
// collide on the same method and path shape.
func (r *Registry) Register(descriptors ...Descriptor) error {
	for i := range descriptors {
		desc := descriptors[i]
		if desc.Handle == nil {
			return fmt.Errorf("dispatch: descriptor %s %s has no operation", desc.Method, desc.Path)
		}
		segments := splitPath(desc.Path)
		method := strings.ToUpper(desc.Method)
		for _, existing := range r.routes[method] {
			if sameShape(existing.segments, segments) {
				return fmt.Errorf("dispatch: duplicate route %s %s", method, desc.Path)
			}
		}
		r.routes[method] = append(r.routes[method], routeEntry{
			segments:   segments,
			descriptor: &desc,
		})
	}
	return nil
}

// Resolve matches method and path against the table, returning the
// descriptor and extracted named parameters.
func (r *Registry) Resolve(method, path string) (*Descriptor, map[string]string, bool) {
	segments := splitPath(path)
	for _, entry := range r.routes[strings.ToUpper(method)] {
		if params, ok := match(entry.segments, segments); ok {
			return entry.descriptor, params, true
		}
	}
	return nil, nil, false
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// sameShape reports whether two patterns would match the same requests:
// literal segments must be identical, parameter segments collide regardless
// of their name.
func sameShape(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		aParam := strings.HasPrefix(a[i], ":")
		bParam := strings.HasPrefix(b[i], ":")
		if aParam != bParam {
			return false
		}
		if !aParam && a[i] != b[i] {
			return false
		}
	}
	return true
}

// match performs exact-segment-count matching: literal segments compare
// verbatim, a ":name" segment captures the request segment under name.
func match(pattern, segments []string) (map[string]string, bool) {
	if len(pattern) != len(segments) {
		return nil, false
	}
	var params map[string]string
	for i, seg := range pattern {
		if name, ok := strings.CutPrefix(seg, ":"); ok {
			if params == nil {
				params = make(map[string]string, 1)
			}
			params[name] = segments[i]
			continue
		}
		if seg != segments[i] {
			return nil, false
		}
	}
	return params, true
}
