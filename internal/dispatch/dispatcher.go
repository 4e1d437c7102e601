package dispatch

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/catalog-admin/internal/domain"
	"github.com/spec-kit/catalog-admin/internal/observability"
	"github.com/spec-kit/catalog-admin/pkg/util"
)

// Request is the transport-neutral view of an inbound HTTP request.
type Request struct {
	Method  string
	Path    string
	Params  map[string]string
	Query   map[string]string
	Headers map[string]string
	Body    []byte
}

// Header returns a header value by its canonical name.
func (r *Request) Header(name string) string {
	return r.Headers[http.CanonicalHeaderKey(name)]
}

// DecodeBody unmarshals the JSON request body into v. An empty body is not
// an error; absent fields keep their zero values.
func (r *Request) DecodeBody(v any) error {
	if len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return util.NewValidation("request body is not valid JSON")
	}
	return nil
}

// Context is the per-request dispatch state: the raw request, the
// correlation id, a request-scoped logger and, for protected routes, the
// verified identity. It is created at request entry and discarded after the
// response is written.
type Context struct {
	Request       *Request
	CorrelationID string
	Logger        *zap.Logger
	Identity      *domain.IdentitySnapshot
}

// Response is what the transport layer writes back: a status, extra headers
// and a JSON-marshalable body.
type Response struct {
	Status  int
	Headers map[string]string
	Body    any
}

// SetHeader records a response header.
func (r *Response) SetHeader(name, value string) {
	if r.Headers == nil {
		r.Headers = make(map[string]string, 2)
	}
	r.Headers[name] = value
}

// ErrorEnvelope is the structured error body every failed request receives.
type ErrorEnvelope struct {
	Name       string `json:"name"`
	Message    string `json:"message"`
	Code       int    `json:"code"`
	StatusCode int    `json:"statusCode"`
}

// TokenVerifier checks a bearer token and returns the identity it asserts.
type TokenVerifier interface {
	Verify(raw string) (domain.IdentitySnapshot, error)
}

// Dispatcher executes requests end-to-end against resolved descriptors and
// is the single place failures are mapped to the error envelope.
type Dispatcher struct {
	registry *Registry
	verifier TokenVerifier
	logger   *zap.Logger
	metrics  *observability.Metrics
}

// NewDispatcher wires the dispatcher's collaborators.
func NewDispatcher(registry *Registry, verifier TokenVerifier, logger *zap.Logger, metrics *observability.Metrics) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		verifier: verifier,
		logger:   logger,
		metrics:  metrics,
	}
}

// Dispatch runs one request through resolve, token check, input transform,
// operation and output transform. It always returns a writable response and
// never panics through to the transport.
func (d *Dispatcher) Dispatch(ctx context.Context, req *Request) *Response {
	dctx := &Context{
		Request:       req,
		CorrelationID: uuid.NewString(),
	}
	dctx.Logger = d.logger.With(zap.String("correlationId", dctx.CorrelationID))

	desc, params, ok := d.registry.Resolve(req.Method, req.Path)
	if !ok {
		return d.fail(dctx, req, util.New(util.NameNotFoundRoute))
	}
	req.Params = params

	if desc.Protected {
		raw := extractToken(req)
		if raw == "" {
			return d.fail(dctx, req, util.New(util.NameTokenMissing))
		}
		identity, err := d.verifier.Verify(raw)
		if err != nil {
			return d.fail(dctx, req, util.Wrap(util.NameTokenExpired, err))
		}
		dctx.Identity = &identity
	}

	var args any = req
	if desc.Input != nil {
		transformed, err := desc.Input(dctx)
		if err != nil {
			return d.fail(dctx, req, err)
		}
		args = transformed
	}

	result, err := desc.Handle(ctx, dctx, args)
	if err != nil {
		return d.fail(dctx, req, err)
	}

	if desc.Output != nil {
		resp, err := desc.Output(dctx, result)
		if err != nil {
			return d.fail(dctx, req, err)
		}
		if resp.Status == 0 {
			resp.Status = http.StatusOK
		}
		return resp
	}
	return &Response{Status: http.StatusOK, Body: result}
}

func (d *Dispatcher) fail(dctx *Context, req *Request, err error) *Response {
	de := util.ToDomainError(err)
	dctx.Logger.Error("request failed",
		zap.String("method", req.Method),
		zap.String("path", req.Path),
		zap.String("name", de.Name),
		zap.Int("code", de.Code),
		zap.Error(de),
	)
	d.metrics.RecordError(req.Path, req.Method, de.Name)
	return &Response{
		Status: de.StatusCode,
		Body: ErrorEnvelope{
			Name:       de.Name,
			Message:    de.Message,
			Code:       de.Code,
			StatusCode: de.StatusCode,
		},
	}
}

// extractToken pulls the bearer token from the X-Access-Token header, the
// token query parameter or the token body field, in that precedence order.
func extractToken(req *Request) string {
	if token := req.Header("X-Access-Token"); token != "" {
		return token
	}
	if token := req.Query["token"]; token != "" {
		return token
	}
	var body struct {
		Token string `json:"token"`
	}
	if len(req.Body) > 0 && json.Unmarshal(req.Body, &body) == nil {
		return body.Token
	}
	return ""
}
