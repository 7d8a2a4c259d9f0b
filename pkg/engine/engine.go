// Package engine serves the public mock surface: the five HTTP verbs under
// /mock/{mockId}/{basePath}, with policy enforcement, fault injection,
// artificial latency and fire-and-forget access accounting.
package engine

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mocksmith/mocksmith/pkg/fault"
	"github.com/mocksmith/mocksmith/pkg/fieldgen"
	"github.com/mocksmith/mocksmith/pkg/httputil"
	"github.com/mocksmith/mocksmith/pkg/mock"
	"github.com/mocksmith/mocksmith/pkg/paginate"
	"github.com/mocksmith/mocksmith/pkg/plan"
	"github.com/mocksmith/mocksmith/pkg/policy"
	"github.com/mocksmith/mocksmith/pkg/reqschema"
	"github.com/mocksmith/mocksmith/pkg/resource"
	"github.com/mocksmith/mocksmith/pkg/store"
)

// Serving error messages. The resolve message is shared between a missing
// mock and a missing method binding.
const (
	msgNotFound     = "Mock/Method not found or inactive"
	msgExpired      = "Mock endpoint has expired"
	msgRateLimited  = "Daily request limit exceeded"
	msgInvalidJSON  = "Invalid JSON body"
	msgValidation   = "Validation failed"
	msgResourceGone = "Resource not found"
)

// Rate-limit response headers, attached to every serving response that
// reaches the rate-limit step. Values are -1 on unlimited plans.
const (
	headerRateLimit     = "X-RateLimit-Limit"
	headerRateRemaining = "X-RateLimit-Remaining"
	headerRateReset     = "X-RateLimit-Reset"
)

// recordTimeout bounds the detached counter updates after a served request.
const recordTimeout = 5 * time.Second

// statusCoder lets domain errors carry their own HTTP status.
type statusCoder interface {
	StatusCode() int
}

// Engine routes and serves public mock traffic.
type Engine struct {
	store     store.Store
	resources *resource.Manager
	policy    *policy.Enforcer
	plans     plan.Provider
	injector  *fault.Injector
	log       *slog.Logger
}

// New assembles a serving engine.
func New(s store.Store, res *resource.Manager, pol *policy.Enforcer, plans plan.Provider, inj *fault.Injector, log *slog.Logger) *Engine {
	return &Engine{
		store:     s,
		resources: res,
		policy:    pol,
		plans:     plans,
		injector:  inj,
		log:       log,
	}
}

// Routes builds the public serving router.
func (e *Engine) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(e.recoverPanic)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteNotFound(w, msgNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteNotFound(w, msgNotFound)
	})

	r.Route("/mock/{mockID}/{basePath}", func(r chi.Router) {
		r.Get("/", e.handleCollection)
		r.Post("/", e.handleCreate)
		r.Get("/{resourceID}", e.handleGetItem)
		r.Put("/{resourceID}", e.handleReplace)
		r.Patch("/{resourceID}", e.handlePatch)
		r.Delete("/{resourceID}", e.handleDelete)
	})
	return r
}

// request is the resolved serving context a verb handler operates on.
type request struct {
	mc   *mock.Config
	ep   *mock.Endpoint
	plan plan.Plan
	now  time.Time
}

// resolve runs the shared front half of the serving pipeline: look up the
// active mock and endpoint, reject expired mocks before they consume
// quota, then check the daily rate limit and attach its headers. Returns
// false once a response has been written.
func (e *Engine) resolve(w http.ResponseWriter, r *http.Request) (*request, bool) {
	ctx := r.Context()
	now := time.Now()

	mockID := chi.URLParam(r, "mockID")
	basePath := chi.URLParam(r, "basePath")

	mc, err := e.store.GetMock(ctx, mockID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httputil.WriteNotFound(w, msgNotFound)
		} else {
			e.log.Error("mock lookup failed", "mock", mockID, "error", err)
			httputil.WriteInternalError(w)
		}
		return nil, false
	}
	if !mc.IsActive || mc.BasePath != basePath {
		httputil.WriteNotFound(w, msgNotFound)
		return nil, false
	}

	ep, err := e.store.GetEndpoint(ctx, mockID, r.Method)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httputil.WriteNotFound(w, msgNotFound)
		} else {
			e.log.Error("endpoint lookup failed", "mock", mockID, "method", r.Method, "error", err)
			httputil.WriteInternalError(w)
		}
		return nil, false
	}
	if !ep.IsActive {
		httputil.WriteNotFound(w, msgNotFound)
		return nil, false
	}

	// Expired mocks are rejected before the rate limit so they never burn
	// quota.
	if mc.IsExpired(now) {
		httputil.WriteError(w, http.StatusGone, msgExpired)
		return nil, false
	}

	p := e.effectivePlan(ctx, mc.OrganizationID, now)

	rl := e.policy.CheckRateLimit(mc, p, now)
	w.Header().Set(headerRateLimit, strconv.FormatInt(rl.Limit, 10))
	w.Header().Set(headerRateRemaining, strconv.FormatInt(rl.Remaining, 10))
	w.Header().Set(headerRateReset, strconv.FormatInt(rl.Reset, 10))
	if !rl.Allowed {
		httputil.WriteError(w, http.StatusTooManyRequests, msgRateLimited)
		return nil, false
	}

	return &request{mc: mc, ep: ep, plan: p, now: now}, true
}

// effectivePlan resolves the organization's plan. Provider failures
// degrade to Free rather than failing the request.
func (e *Engine) effectivePlan(ctx context.Context, organizationID string, now time.Time) plan.Plan {
	sub, err := e.plans.Subscription(ctx, organizationID)
	if err != nil {
		e.log.Warn("subscription lookup failed", "organization", organizationID, "error", err)
		return plan.Free
	}
	return plan.Effective(sub, now)
}

// delay applies the endpoint's artificial latency. Returns false when the
// client disconnected during the wait; nothing is written in that case.
func (e *Engine) delay(r *http.Request, ep *mock.Endpoint) bool {
	if ep.DelayMS <= 0 {
		return true
	}
	return fault.Delay(r.Context(), time.Duration(ep.DelayMS)*time.Millisecond) == nil
}

// record bumps the mock and endpoint access counters in a detached
// goroutine. Failures are logged and never affect the served response.
func (e *Engine) record(req *request) {
	mc, ep, now := req.mc, req.ep, req.now
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		if err := e.policy.RecordRequest(ctx, mc, now); err != nil {
			e.log.Warn("recording mock access failed", "mock", mc.ID, "error", err)
		}
		if err := e.store.IncrementEndpointAccess(ctx, ep.ID); err != nil {
			e.log.Warn("recording endpoint access failed", "endpoint", ep.ID, "error", err)
		}
	}()
}

// decodeBody parses the request body as a JSON object. Writes a 400 and
// returns false on malformed input.
func decodeBody(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httputil.WriteBadRequest(w, msgInvalidJSON)
		return nil, false
	}
	return body, true
}

// validateBody gates a mutating body against the endpoint's request
// schema, writing the itemized 400 on failure.
func validateBody(w http.ResponseWriter, body map[string]any, schema *reqschema.Schema) bool {
	res := reqschema.Validate(body, schema)
	if !res.Valid {
		httputil.WriteErrorWithDetails(w, http.StatusBadRequest, msgValidation, res.Errors)
		return false
	}
	return true
}

// writeDomainError maps known domain errors onto their status codes;
// anything unrecognized is logged and surfaced as a generic 500.
func (e *Engine) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, resource.ErrNotFound):
		httputil.WriteNotFound(w, msgResourceGone)
	case errors.Is(err, resource.ErrConflict):
		httputil.WriteError(w, http.StatusConflict, err.Error())
	default:
		var sc statusCoder
		if errors.As(err, &sc) {
			httputil.WriteError(w, sc.StatusCode(), err.Error())
			return
		}
		e.log.Error("serving request failed", "error", err)
		httputil.WriteInternalError(w)
	}
}

// handleCollection serves GET on the collection: a fresh, unpersisted
// dataset on every call. This is the only route with fault injection.
func (e *Engine) handleCollection(w http.ResponseWriter, r *http.Request) {
	req, ok := e.resolve(w, r)
	if !ok {
		return
	}

	if req.ep.RandomErrors {
		if code, fired := e.injector.Roll(float64(req.ep.ErrorRate)); fired {
			httputil.WriteError(w, code, http.StatusText(code))
			return
		}
	}
	if !e.delay(r, req.ep) {
		return
	}

	data := fieldgen.Dataset(req.ep.Fields, req.ep.Count)
	if req.ep.Pagination {
		page := queryInt(r, "page", paginate.DefaultPage)
		limit := queryInt(r, "limit", paginate.DefaultLimit)
		httputil.WriteOK(w, paginate.Paginate(data, page, limit))
	} else {
		httputil.WriteOK(w, map[string]any{"data": data})
	}

	e.record(req)
}

// handleCreate serves POST on the collection: validate, persist, return
// the stored payload.
func (e *Engine) handleCreate(w http.ResponseWriter, r *http.Request) {
	req, ok := e.resolve(w, r)
	if !ok {
		return
	}
	if !e.delay(r, req.ep) {
		return
	}

	body, ok := decodeBody(w, r)
	if !ok {
		return
	}
	if !validateBody(w, body, req.ep.RequestSchema) {
		return
	}

	payload, err := e.resources.Create(r.Context(), req.mc.ID, req.ep.Fields, body, req.plan)
	if err != nil {
		e.writeDomainError(w, err)
		return
	}
	httputil.WriteCreated(w, payload)

	e.record(req)
}

func (e *Engine) handleGetItem(w http.ResponseWriter, r *http.Request) {
	req, ok := e.resolve(w, r)
	if !ok {
		return
	}
	if !e.delay(r, req.ep) {
		return
	}

	payload, err := e.resources.Get(r.Context(), req.mc.ID, chi.URLParam(r, "resourceID"))
	if err != nil {
		e.writeDomainError(w, err)
		return
	}
	httputil.WriteOK(w, payload)

	e.record(req)
}

func (e *Engine) handleReplace(w http.ResponseWriter, r *http.Request) {
	e.handleMutation(w, r, e.resources.Replace)
}

func (e *Engine) handlePatch(w http.ResponseWriter, r *http.Request) {
	e.handleMutation(w, r, e.resources.Patch)
}

// handleMutation is the shared PUT/PATCH body: validate, apply, return the
// resulting payload. The two verbs differ only in the resource operation.
func (e *Engine) handleMutation(w http.ResponseWriter, r *http.Request, apply func(context.Context, string, string, map[string]any) (map[string]any, error)) {
	req, ok := e.resolve(w, r)
	if !ok {
		return
	}
	if !e.delay(r, req.ep) {
		return
	}

	body, ok := decodeBody(w, r)
	if !ok {
		return
	}
	if !validateBody(w, body, req.ep.RequestSchema) {
		return
	}

	payload, err := apply(r.Context(), req.mc.ID, chi.URLParam(r, "resourceID"), body)
	if err != nil {
		e.writeDomainError(w, err)
		return
	}
	httputil.WriteOK(w, payload)

	e.record(req)
}

func (e *Engine) handleDelete(w http.ResponseWriter, r *http.Request) {
	req, ok := e.resolve(w, r)
	if !ok {
		return
	}
	if !e.delay(r, req.ep) {
		return
	}

	if !e.resources.Delete(r.Context(), req.mc.ID, chi.URLParam(r, "resourceID")) {
		httputil.WriteNotFound(w, msgResourceGone)
		return
	}
	httputil.WriteNoContent(w)

	e.record(req)
}

// recoverPanic is the handler-boundary catch: panics surface as a generic
// 500 with full detail logged server-side only.
func (e *Engine) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				e.log.Error("panic serving request", "method", r.Method, "path", r.URL.Path, "panic", rec)
				httputil.WriteInternalError(w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
