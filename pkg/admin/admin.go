// Package admin exposes the management plane: mock lifecycle, endpoint
// editing, resource listing and dataset previews. Identity arrives via
// headers from the upstream identity provider; the serving plane in
// pkg/engine stays unauthenticated.
package admin

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mocksmith/mocksmith/internal/id"
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

// Identity headers supplied by the upstream identity provider.
const (
	HeaderOrganizationID = "X-Organization-ID"
	HeaderUserID         = "X-User-ID"
)

// previewMaxCount caps ad hoc preview generation.
const previewMaxCount = 100

type ctxKey int

const identityKey ctxKey = 0

type identity struct {
	OrganizationID string
	UserID         string
}

// API is the management-plane handler set.
type API struct {
	store     store.Store
	resources *resource.Manager
	policy    *policy.Enforcer
	plans     plan.Provider
	log       *slog.Logger
}

// New assembles the management API.
func New(s store.Store, res *resource.Manager, pol *policy.Enforcer, plans plan.Provider, log *slog.Logger) *API {
	return &API{store: s, resources: res, policy: pol, plans: plans, log: log}
}

// Routes builds the management router, mounted under /api.
func (a *API) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(a.requireIdentity)

	r.Route("/mocks", func(r chi.Router) {
		r.Post("/", a.handleCreate)
		r.Get("/", a.handleList)
		r.Route("/{mockID}", func(r chi.Router) {
			r.Get("/", a.handleGet)
			r.Put("/", a.handleUpdate)
			r.Delete("/", a.handleDelete)
			r.Post("/reactivate", a.handleReactivate)
			r.Get("/resources", a.handleResources)
			r.Delete("/resources", a.handleDeleteResources)
			r.Post("/preview", a.handlePreview)
		})
	})
	return r
}

// requireIdentity rejects requests without an organization header.
func (a *API) requireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		org := r.Header.Get(HeaderOrganizationID)
		if org == "" {
			httputil.WriteError(w, http.StatusUnauthorized, "Missing organization identity")
			return
		}
		idty := identity{OrganizationID: org, UserID: r.Header.Get(HeaderUserID)}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey, idty)))
	})
}

func identityFrom(ctx context.Context) identity {
	idty, _ := ctx.Value(identityKey).(identity)
	return idty
}

func (a *API) effectivePlan(ctx context.Context, organizationID string, now time.Time) plan.Plan {
	sub, err := a.plans.Subscription(ctx, organizationID)
	if err != nil {
		a.log.Warn("subscription lookup failed", "organization", organizationID, "error", err)
		return plan.Free
	}
	return plan.Effective(sub, now)
}

// ownedMock fetches a mock and enforces organization ownership. Foreign
// mocks are indistinguishable from absent ones.
func (a *API) ownedMock(w http.ResponseWriter, r *http.Request) (*mock.Config, bool) {
	mc, err := a.store.GetMock(r.Context(), chi.URLParam(r, "mockID"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httputil.WriteNotFound(w, "Mock not found")
		} else {
			a.log.Error("mock lookup failed", "error", err)
			httputil.WriteInternalError(w)
		}
		return nil, false
	}
	if mc.OrganizationID != identityFrom(r.Context()).OrganizationID {
		httputil.WriteNotFound(w, "Mock not found")
		return nil, false
	}
	return mc, true
}

type createMockRequest struct {
	Name          string            `json:"name"`
	BasePath      string            `json:"basePath"`
	Description   string            `json:"description"`
	Fields        []fieldgen.Field  `json:"fields"`
	Count         int               `json:"count"`
	Pagination    bool              `json:"pagination"`
	RandomErrors  bool              `json:"randomErrors"`
	ErrorRate     int               `json:"errorRate"`
	DelayMS       int               `json:"delay"`
	RequestSchema *reqschema.Schema `json:"requestSchema"`
	SeedCount     int               `json:"seedCount"`
}

// handleCreate creates a mock with its five method endpoints. The base
// path is unique per organization; the active-mock ceiling applies first.
func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idty := identityFrom(ctx)
	now := time.Now()

	var req createMockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid JSON body")
		return
	}
	if req.Name == "" || req.BasePath == "" {
		httputil.WriteBadRequest(w, "Name and basePath are required")
		return
	}
	if strings.ContainsAny(req.BasePath, "/ ") {
		httputil.WriteBadRequest(w, "basePath must be a single path segment")
		return
	}
	if req.Count <= 0 {
		req.Count = 10
	}

	p := a.effectivePlan(ctx, idty.OrganizationID, now)
	if err := a.policy.CheckActiveMockCeiling(ctx, idty.OrganizationID, p, now); err != nil {
		a.writeDomainError(w, err)
		return
	}

	mc := &mock.Config{
		ID:             id.Short(),
		OrganizationID: idty.OrganizationID,
		CreatedBy:      idty.UserID,
		Name:           req.Name,
		BasePath:       req.BasePath,
		Description:    req.Description,
		IsActive:       true,
		ExpiresAt:      policy.ExpiresAtFor(p, now),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := a.store.CreateMock(ctx, mc); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			httputil.WriteError(w, http.StatusConflict, "A mock with this base path already exists")
			return
		}
		a.log.Error("mock create failed", "error", err)
		httputil.WriteInternalError(w)
		return
	}

	endpoints := make([]*mock.Endpoint, 0, len(mock.Methods))
	for _, method := range mock.Methods {
		endpoints = append(endpoints, &mock.Endpoint{
			ID:            id.UUID(),
			MockConfigID:  mc.ID,
			Method:        method,
			Fields:        req.Fields,
			Count:         req.Count,
			Pagination:    req.Pagination,
			RandomErrors:  req.RandomErrors,
			ErrorRate:     req.ErrorRate,
			DelayMS:       req.DelayMS,
			RequestSchema: req.RequestSchema,
			IsActive:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	if err := a.store.CreateEndpoints(ctx, endpoints); err != nil {
		// Creation is all-or-nothing from the caller's view.
		if derr := a.store.DeleteMock(ctx, mc.ID); derr != nil {
			a.log.Error("rollback after endpoint create failed", "mock", mc.ID, "error", derr)
		}
		a.log.Error("endpoint create failed", "mock", mc.ID, "error", err)
		httputil.WriteInternalError(w)
		return
	}

	seeded := 0
	if req.SeedCount > 0 {
		n, err := a.resources.Seed(ctx, mc.ID, req.Fields, req.SeedCount, p)
		if err != nil {
			// The mock exists and is usable; seeding is best effort.
			a.log.Warn("seeding failed", "mock", mc.ID, "requested", req.SeedCount, "created", n, "error", err)
		}
		seeded = n
	}

	httputil.WriteCreated(w, map[string]any{
		"mock":      mc,
		"endpoints": endpoints,
		"seeded":    seeded,
	})
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	mocks, err := a.store.ListMocks(r.Context(), identityFrom(r.Context()).OrganizationID)
	if err != nil {
		a.log.Error("mock list failed", "error", err)
		httputil.WriteInternalError(w)
		return
	}
	if mocks == nil {
		mocks = []*mock.Config{}
	}
	httputil.WriteOK(w, map[string]any{"data": mocks})
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	mc, ok := a.ownedMock(w, r)
	if !ok {
		return
	}

	endpoints := make([]*mock.Endpoint, 0, len(mock.Methods))
	for _, method := range mock.Methods {
		ep, err := a.store.GetEndpoint(r.Context(), mc.ID, method)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			a.log.Error("endpoint fetch failed", "mock", mc.ID, "method", method, "error", err)
			httputil.WriteInternalError(w)
			return
		}
		endpoints = append(endpoints, ep)
	}
	httputil.WriteOK(w, map[string]any{"mock": mc, "endpoints": endpoints})
}

type updateMockRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`

	// Generation settings. Fields and RequestSchema propagate to every
	// endpoint (POST id-resolution and mutation validation depend on
	// them); the rest only shape the GET collection.
	Fields        []fieldgen.Field  `json:"fields"`
	Count         *int              `json:"count"`
	Pagination    *bool             `json:"pagination"`
	RandomErrors  *bool             `json:"randomErrors"`
	ErrorRate     *int              `json:"errorRate"`
	DelayMS       *int              `json:"delay"`
	RequestSchema *reqschema.Schema `json:"requestSchema"`
}

func (a *API) handleUpdate(w http.ResponseWriter, r *http.Request) {
	mc, ok := a.ownedMock(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	now := time.Now()

	var req updateMockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid JSON body")
		return
	}

	if req.Name != nil {
		mc.Name = *req.Name
	}
	if req.Description != nil {
		mc.Description = *req.Description
	}
	if req.IsActive != nil {
		mc.IsActive = *req.IsActive
	}
	mc.UpdatedAt = now
	if err := a.store.UpdateMock(ctx, mc); err != nil {
		a.log.Error("mock update failed", "mock", mc.ID, "error", err)
		httputil.WriteInternalError(w)
		return
	}

	for _, method := range mock.Methods {
		ep, err := a.store.GetEndpoint(ctx, mc.ID, method)
		if err != nil {
			continue
		}
		if req.Fields != nil {
			ep.Fields = req.Fields
		}
		if req.RequestSchema != nil {
			ep.RequestSchema = req.RequestSchema
		}
		if method == "GET" {
			if req.Count != nil {
				ep.Count = *req.Count
			}
			if req.Pagination != nil {
				ep.Pagination = *req.Pagination
			}
			if req.RandomErrors != nil {
				ep.RandomErrors = *req.RandomErrors
			}
			if req.ErrorRate != nil {
				ep.ErrorRate = *req.ErrorRate
			}
			if req.DelayMS != nil {
				ep.DelayMS = *req.DelayMS
			}
		}
		ep.UpdatedAt = now
		if err := a.store.UpdateEndpoint(ctx, ep); err != nil {
			a.log.Error("endpoint update failed", "endpoint", ep.ID, "error", err)
			httputil.WriteInternalError(w)
			return
		}
	}

	httputil.WriteOK(w, map[string]any{"mock": mc})
}

// handleDelete removes a mock. Free-tier deletion only deactivates;
// requesting a permanent delete on the free tier is a policy violation.
// Paid tiers always delete for real, resources included.
func (a *API) handleDelete(w http.ResponseWriter, r *http.Request) {
	mc, ok := a.ownedMock(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	now := time.Now()

	p := a.effectivePlan(ctx, mc.OrganizationID, now)
	permanent := r.URL.Query().Get("permanent") == "true"

	if p.Tier == plan.TierFree {
		if permanent {
			httputil.WriteError(w, http.StatusForbidden, "Upgrade your plan to permanently delete mocks")
			return
		}
		mc.IsActive = false
		mc.UpdatedAt = now
		if err := a.store.UpdateMock(ctx, mc); err != nil {
			a.log.Error("mock deactivate failed", "mock", mc.ID, "error", err)
			httputil.WriteInternalError(w)
			return
		}
		httputil.WriteOK(w, map[string]any{"deactivated": true})
		return
	}

	if _, err := a.resources.DeleteAll(ctx, mc.ID); err != nil {
		a.log.Error("resource delete-all failed", "mock", mc.ID, "error", err)
		httputil.WriteInternalError(w)
		return
	}
	if err := a.store.DeleteEndpoints(ctx, mc.ID); err != nil {
		a.log.Error("endpoint delete failed", "mock", mc.ID, "error", err)
		httputil.WriteInternalError(w)
		return
	}
	if err := a.store.DeleteMock(ctx, mc.ID); err != nil {
		a.log.Error("mock delete failed", "mock", mc.ID, "error", err)
		httputil.WriteInternalError(w)
		return
	}
	httputil.WriteOK(w, map[string]any{"deleted": true})
}

func (a *API) handleReactivate(w http.ResponseWriter, r *http.Request) {
	mc, ok := a.ownedMock(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	now := time.Now()

	p := a.effectivePlan(ctx, mc.OrganizationID, now)
	if err := a.policy.Reactivate(ctx, mc, p, now); err != nil {
		if errors.Is(err, policy.ErrNotExpired) {
			httputil.WriteBadRequest(w, "Mock has not expired")
			return
		}
		a.log.Error("reactivate failed", "mock", mc.ID, "error", err)
		httputil.WriteInternalError(w)
		return
	}
	httputil.WriteOK(w, map[string]any{"mock": mc})
}

func (a *API) handleResources(w http.ResponseWriter, r *http.Request) {
	mc, ok := a.ownedMock(w, r)
	if !ok {
		return
	}

	page := queryInt(r, "page", paginate.DefaultPage)
	limit := queryInt(r, "limit", paginate.DefaultLimit)

	payloads, total, err := a.resources.Page(r.Context(), mc.ID, page, limit)
	if err != nil {
		a.log.Error("resource listing failed", "mock", mc.ID, "error", err)
		httputil.WriteInternalError(w)
		return
	}
	if payloads == nil {
		payloads = []map[string]any{}
	}

	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	httputil.WriteOK(w, map[string]any{
		"data": payloads,
		"pagination": paginate.Meta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

func (a *API) handleDeleteResources(w http.ResponseWriter, r *http.Request) {
	mc, ok := a.ownedMock(w, r)
	if !ok {
		return
	}
	n, err := a.resources.DeleteAll(r.Context(), mc.ID)
	if err != nil {
		a.log.Error("resource delete-all failed", "mock", mc.ID, "error", err)
		httputil.WriteInternalError(w)
		return
	}
	httputil.WriteOK(w, map[string]any{"deleted": n})
}

type previewRequest struct {
	Fields []fieldgen.Field `json:"fields"`
	Count  int              `json:"count"`
}

// handlePreview generates an ad hoc, unpersisted sample. With no explicit
// fields the mock's GET endpoint schema is used. Count zero previews a
// single object outside any dataset sequence.
func (a *API) handlePreview(w http.ResponseWriter, r *http.Request) {
	mc, ok := a.ownedMock(w, r)
	if !ok {
		return
	}

	var req previewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid JSON body")
		return
	}

	fields := req.Fields
	if len(fields) == 0 {
		ep, err := a.store.GetEndpoint(r.Context(), mc.ID, "GET")
		if err != nil {
			httputil.WriteBadRequest(w, "No fields to preview")
			return
		}
		fields = ep.Fields
	}

	if req.Count <= 0 {
		httputil.WriteOK(w, map[string]any{"record": fieldgen.Object(fields, fieldgen.NoIndex)})
		return
	}
	count := req.Count
	if count > previewMaxCount {
		count = previewMaxCount
	}
	httputil.WriteOK(w, map[string]any{"data": fieldgen.Dataset(fields, count)})
}

// writeDomainError maps coded domain errors; everything else is a 500.
func (a *API) writeDomainError(w http.ResponseWriter, err error) {
	var sc interface{ StatusCode() int }
	if errors.As(err, &sc) {
		httputil.WriteError(w, sc.StatusCode(), err.Error())
		return
	}
	a.log.Error("management request failed", "error", err)
	httputil.WriteInternalError(w)
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
