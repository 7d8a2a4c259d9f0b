package admin

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mocksmith/mocksmith/pkg/logging"
	"github.com/mocksmith/mocksmith/pkg/mock"
	"github.com/mocksmith/mocksmith/pkg/plan"
	"github.com/mocksmith/mocksmith/pkg/policy"
	"github.com/mocksmith/mocksmith/pkg/resource"
	"github.com/mocksmith/mocksmith/pkg/store/memstore"
)

type fixture struct {
	store *memstore.Store
	srv   *httptest.Server
}

func newFixture(t *testing.T, subs plan.StaticProvider) *fixture {
	t.Helper()
	s := memstore.New()
	log := logging.Nop()
	api := New(s, resource.NewManager(s, log), policy.NewEnforcer(s, log), subs, log)
	srv := httptest.NewServer(api.Routes())
	t.Cleanup(srv.Close)
	return &fixture{store: s, srv: srv}
}

func (f *fixture) do(t *testing.T, method, path, org string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, f.srv.URL+path, rd)
	require.NoError(t, err)
	if org != "" {
		req.Header.Set(HeaderOrganizationID, org)
		req.Header.Set(HeaderUserID, "user-1")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp, decoded
}

func validCreate() map[string]any {
	return map[string]any{
		"name":     "Users API",
		"basePath": "users",
		"fields": []map[string]any{
			{"name": "id", "type": "autoIncrement"},
			{"name": "name", "type": "fullName"},
		},
		"count": 5,
	}
}

func (f *fixture) createMock(t *testing.T, org string, req map[string]any) string {
	t.Helper()
	resp, body := f.do(t, http.MethodPost, "/mocks", org, req)
	require.Equal(t, http.StatusCreated, resp.StatusCode, "body: %v", body)
	return body["mock"].(map[string]any)["id"].(string)
}

func TestCreateMock(t *testing.T) {
	f := newFixture(t, nil)

	resp, body := f.do(t, http.MethodPost, "/mocks", "org1", validCreate())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	mc := body["mock"].(map[string]any)
	assert.Equal(t, "users", mc["basePath"])
	assert.Equal(t, "org1", mc["organizationId"])
	assert.Equal(t, true, mc["isActive"])
	assert.NotEmpty(t, mc["expiresAt"], "free plan mocks get an expiry")

	eps := body["endpoints"].([]any)
	require.Len(t, eps, 5)
	methods := map[string]bool{}
	for _, e := range eps {
		methods[e.(map[string]any)["method"].(string)] = true
	}
	for _, m := range mock.Methods {
		assert.True(t, methods[m], "missing %s endpoint", m)
	}
}

func TestCreateMockRequiresIdentity(t *testing.T) {
	f := newFixture(t, nil)
	resp, body := f.do(t, http.MethodPost, "/mocks", "", validCreate())
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Missing organization identity", body["error"])
}

func TestCreateMockValidatesInput(t *testing.T) {
	f := newFixture(t, nil)

	resp, _ := f.do(t, http.MethodPost, "/mocks", "org1", map[string]any{"name": "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = f.do(t, http.MethodPost, "/mocks", "org1", map[string]any{"name": "x", "basePath": "a/b"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateMockDuplicateBasePath(t *testing.T) {
	f := newFixture(t, nil)
	f.createMock(t, "org1", validCreate())

	resp, body := f.do(t, http.MethodPost, "/mocks", "org1", validCreate())
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "A mock with this base path already exists", body["error"])
}

func TestCreateMockCeiling(t *testing.T) {
	f := newFixture(t, nil)

	for _, base := range []string{"users", "orders", "items"} {
		req := validCreate()
		req["basePath"] = base
		req["name"] = base
		f.createMock(t, "org1", req)
	}

	req := validCreate()
	req["basePath"] = "fourth"
	resp, body := f.do(t, http.MethodPost, "/mocks", "org1", req)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, body["error"], "free plan limit reached")
}

func TestCreateMockWithSeeding(t *testing.T) {
	f := newFixture(t, nil)
	req := validCreate()
	req["seedCount"] = 4

	resp, body := f.do(t, http.MethodPost, "/mocks", "org1", req)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.EqualValues(t, 4, body["seeded"])

	mockID := body["mock"].(map[string]any)["id"].(string)
	resp, listing := f.do(t, http.MethodGet, "/mocks/"+mockID+"/resources", "org1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	pg := listing["pagination"].(map[string]any)
	assert.EqualValues(t, 4, pg["total"])
}

func TestListMocksScopedToOrganization(t *testing.T) {
	f := newFixture(t, nil)
	f.createMock(t, "org1", validCreate())

	other := validCreate()
	other["basePath"] = "orders"
	f.createMock(t, "org2", other)

	resp, body := f.do(t, http.MethodGet, "/mocks", "org1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"].([]any), 1)
}

func TestGetMock(t *testing.T) {
	f := newFixture(t, nil)
	mockID := f.createMock(t, "org1", validCreate())

	resp, body := f.do(t, http.MethodGet, "/mocks/"+mockID, "org1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["endpoints"].([]any), 5)

	// Foreign orgs see a 404, not a 403.
	resp, _ = f.do(t, http.MethodGet, "/mocks/"+mockID, "org2", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateMock(t *testing.T) {
	f := newFixture(t, nil)
	mockID := f.createMock(t, "org1", validCreate())

	resp, body := f.do(t, http.MethodPut, "/mocks/"+mockID, "org1", map[string]any{
		"name":       "Renamed",
		"count":      42,
		"pagination": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Renamed", body["mock"].(map[string]any)["name"])

	ep, err := f.store.GetEndpoint(t.Context(), mockID, "GET")
	require.NoError(t, err)
	assert.Equal(t, 42, ep.Count)
	assert.True(t, ep.Pagination)

	// Generation knobs only touch the GET endpoint.
	post, err := f.store.GetEndpoint(t.Context(), mockID, "POST")
	require.NoError(t, err)
	assert.Equal(t, 5, post.Count)
}

func TestDeleteMockFreeTierDeactivates(t *testing.T) {
	f := newFixture(t, nil)
	mockID := f.createMock(t, "org1", validCreate())

	resp, body := f.do(t, http.MethodDelete, "/mocks/"+mockID, "org1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["deactivated"])

	mc, err := f.store.GetMock(t.Context(), mockID)
	require.NoError(t, err)
	assert.False(t, mc.IsActive)
}

func TestDeleteMockFreeTierPermanentForbidden(t *testing.T) {
	f := newFixture(t, nil)
	mockID := f.createMock(t, "org1", validCreate())

	resp, body := f.do(t, http.MethodDelete, "/mocks/"+mockID+"?permanent=true", "org1", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Upgrade your plan to permanently delete mocks", body["error"])
}

func TestDeleteMockPaidTierHardDeletes(t *testing.T) {
	f := newFixture(t, plan.StaticProvider{
		"org1": {Plan: plan.TierPro, Status: "active"},
	})
	req := validCreate()
	req["seedCount"] = 2
	mockID := f.createMock(t, "org1", req)

	resp, body := f.do(t, http.MethodDelete, "/mocks/"+mockID, "org1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["deleted"])

	_, err := f.store.GetMock(t.Context(), mockID)
	assert.Error(t, err)
	n, err := f.store.CountResources(t.Context(), mockID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestReactivate(t *testing.T) {
	f := newFixture(t, nil)
	mockID := f.createMock(t, "org1", validCreate())

	// Still live: rejected.
	resp, body := f.do(t, http.MethodPost, "/mocks/"+mockID+"/reactivate", "org1", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Mock has not expired", body["error"])

	// Force expiry, then reactivate.
	mc, err := f.store.GetMock(t.Context(), mockID)
	require.NoError(t, err)
	past := time.Now().Add(-time.Hour)
	mc.ExpiresAt = &past
	require.NoError(t, f.store.UpdateMock(t.Context(), mc))

	resp, _ = f.do(t, http.MethodPost, "/mocks/"+mockID+"/reactivate", "org1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	mc, err = f.store.GetMock(t.Context(), mockID)
	require.NoError(t, err)
	assert.True(t, mc.IsActive)
	require.NotNil(t, mc.ExpiresAt)
	assert.True(t, mc.ExpiresAt.After(time.Now()))
}

func TestDeleteAllResources(t *testing.T) {
	f := newFixture(t, nil)
	req := validCreate()
	req["seedCount"] = 3
	mockID := f.createMock(t, "org1", req)

	resp, body := f.do(t, http.MethodDelete, "/mocks/"+mockID+"/resources", "org1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 3, body["deleted"])
}

func TestPreview(t *testing.T) {
	f := newFixture(t, nil)
	mockID := f.createMock(t, "org1", validCreate())

	t.Run("dataset", func(t *testing.T) {
		resp, body := f.do(t, http.MethodPost, "/mocks/"+mockID+"/preview", "org1", map[string]any{"count": 3})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		data := body["data"].([]any)
		require.Len(t, data, 3)
		// The mock's own GET fields apply: autoIncrement runs 1..3.
		assert.EqualValues(t, 1, data[0].(map[string]any)["id"])
		assert.EqualValues(t, 3, data[2].(map[string]any)["id"])
	})

	t.Run("single object", func(t *testing.T) {
		resp, body := f.do(t, http.MethodPost, "/mocks/"+mockID+"/preview", "org1", map[string]any{"count": 0})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		rec := body["record"].(map[string]any)
		// Outside a dataset, autoIncrement falls back to a random value.
		assert.Contains(t, rec, "id")
		assert.Contains(t, rec, "name")
	})

	t.Run("explicit fields", func(t *testing.T) {
		resp, body := f.do(t, http.MethodPost, "/mocks/"+mockID+"/preview", "org1", map[string]any{
			"count":  2,
			"fields": []map[string]any{{"name": "email", "type": "email"}},
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		data := body["data"].([]any)
		require.Len(t, data, 2)
		assert.Contains(t, data[0].(map[string]any), "email")
	})

	t.Run("count capped", func(t *testing.T) {
		resp, body := f.do(t, http.MethodPost, "/mocks/"+mockID+"/preview", "org1", map[string]any{"count": 10000})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, body["data"].([]any), previewMaxCount)
	})
}
