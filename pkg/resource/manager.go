// Package resource implements the mock data manager: CRUD over persisted
// resource documents scoped by mock identity, with id-field resolution,
// timestamp injection, plan quota enforcement and oldest-first cleanup.
package resource

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mocksmith/mocksmith/internal/id"
	"github.com/mocksmith/mocksmith/pkg/fieldgen"
	"github.com/mocksmith/mocksmith/pkg/mock"
	"github.com/mocksmith/mocksmith/pkg/plan"
	"github.com/mocksmith/mocksmith/pkg/store"
)

// HardRecordCap is the absolute per-mock persisted record ceiling. It is a
// safety valve independent of plan quotas: exceeding it prunes the oldest
// CleanupBatch records.
const (
	HardRecordCap = 1000
	CleanupBatch  = 100
)

// Sentinel errors. The exact "Resource not found" text is part of the
// serving contract; callers pattern-match on it.
var (
	ErrNotFound = errors.New("Resource not found")
	ErrConflict = errors.New("Resource already exists")
)

// resourceIDLength is the width of generated base-36 resource ids.
const resourceIDLength = 12

// Manager owns resource lifecycle for all mocks.
type Manager struct {
	store store.Store
	log   *slog.Logger
}

// NewManager creates a resource manager over the given store.
func NewManager(s store.Store, log *slog.Logger) *Manager {
	return &Manager{store: s, log: log}
}

// idFieldName scans the generation schema for a field literally named
// id/_id/ID and returns its name, or "" when the schema has none.
func idFieldName(fields []fieldgen.Field) string {
	for _, f := range fields {
		switch f.Name {
		case "id", "_id", "ID":
			return f.Name
		}
	}
	return ""
}

// resolveResourceID extracts the resource id from the payload's id field,
// or generates one. Returns the id and whether it came from the payload.
func resolveResourceID(data map[string]any, idField string) (string, bool) {
	if idField != "" {
		switch v := data[idField].(type) {
		case string:
			if v != "" {
				return v, true
			}
		case float64:
			return fmt.Sprintf("%v", v), true
		case int:
			return fmt.Sprintf("%d", v), true
		}
	}
	return id.Base36(resourceIDLength), false
}

func nowISO(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func clonePayload(data map[string]any) map[string]any {
	out := make(map[string]any, len(data)+2)
	for k, v := range data {
		out[k] = v
	}
	return out
}

// Create persists one resource under a mock. The payload's id field (per
// schema) names the resource when present; otherwise a base-36 id is
// generated and, if the schema declares an id field, written back into the
// stored payload. createdAt/updatedAt are injected unconditionally,
// overwriting caller-supplied values.
//
// The organization's effective plan gates the persisted record count; the
// hard cap triggers oldest-first cleanup after the write.
func (m *Manager) Create(ctx context.Context, mockID string, fields []fieldgen.Field, data map[string]any, p plan.Plan) (map[string]any, error) {
	if p.MaxRecordsPerMock != plan.Unlimited {
		count, err := m.store.CountResources(ctx, mockID)
		if err != nil {
			return nil, err
		}
		if count >= p.MaxRecordsPerMock {
			return nil, &plan.QuotaError{Plan: p.Tier, Limit: p.MaxRecordsPerMock, What: "records per mock"}
		}
	}

	idField := idFieldName(fields)
	resourceID, fromPayload := resolveResourceID(data, idField)

	now := time.Now()
	payload := clonePayload(data)
	if !fromPayload && idField != "" {
		payload[idField] = resourceID
	}
	payload["createdAt"] = nowISO(now)
	payload["updatedAt"] = nowISO(now)

	doc := &mock.Data{
		ID:           id.UUID(),
		MockConfigID: mockID,
		ResourceID:   resourceID,
		Payload:      payload,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := m.store.CreateResource(ctx, doc); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}

	m.cleanup(ctx, mockID)

	return payload, nil
}

// cleanup prunes the oldest records once the hard cap is exceeded.
// Failures are logged, never surfaced: the create already succeeded.
func (m *Manager) cleanup(ctx context.Context, mockID string) {
	count, err := m.store.CountResources(ctx, mockID)
	if err != nil {
		m.log.Warn("resource cleanup count failed", "mock", mockID, "error", err)
		return
	}
	if count <= HardRecordCap {
		return
	}

	removed, err := m.store.DeleteOldestResources(ctx, mockID, CleanupBatch)
	if err != nil {
		m.log.Error("resource cleanup failed", "mock", mockID, "error", err)
		return
	}
	m.log.Info("pruned oldest resources", "mock", mockID, "removed", removed)
}

// Seed generates count records through the dataset generator and persists
// them one at a time through Create, so each record inherits id resolution
// and cleanup behavior. Under a capped plan the requested count is clamped
// down to the remaining slots; zero remaining slots is a quota error.
// Returns how many records were created.
func (m *Manager) Seed(ctx context.Context, mockID string, fields []fieldgen.Field, count int, p plan.Plan) (int, error) {
	if count <= 0 {
		return 0, nil
	}

	if p.MaxRecordsPerMock != plan.Unlimited {
		current, err := m.store.CountResources(ctx, mockID)
		if err != nil {
			return 0, err
		}
		slots := p.MaxRecordsPerMock - current
		if slots <= 0 {
			return 0, &plan.QuotaError{Plan: p.Tier, Limit: p.MaxRecordsPerMock, What: "records per mock"}
		}
		if count > slots {
			count = slots
		}
	}

	records := fieldgen.Dataset(fields, count)
	created := 0
	for _, rec := range records {
		if _, err := m.Create(ctx, mockID, fields, rec, p); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// Get returns the stored payload for (mockID, resourceID).
func (m *Manager) Get(ctx context.Context, mockID, resourceID string) (map[string]any, error) {
	d, err := m.store.GetResource(ctx, mockID, resourceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d.Payload, nil
}

// Page returns a newest-first page of payloads plus the total count, for
// management listing.
func (m *Manager) Page(ctx context.Context, mockID string, page, limit int) ([]map[string]any, int, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	docs, total, err := m.store.ListResources(ctx, mockID, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	payloads := make([]map[string]any, len(docs))
	for i, d := range docs {
		payloads[i] = d.Payload
	}
	return payloads, total, nil
}

// Replace overwrites a resource's payload with the full input plus a
// refreshed updatedAt. Fields of the previous payload missing from the
// input are gone afterward: this is a true replace, not a merge.
func (m *Manager) Replace(ctx context.Context, mockID, resourceID string, data map[string]any) (map[string]any, error) {
	if _, err := m.store.GetResource(ctx, mockID, resourceID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	now := time.Now()
	payload := clonePayload(data)
	payload["updatedAt"] = nowISO(now)

	doc := &mock.Data{
		MockConfigID: mockID,
		ResourceID:   resourceID,
		Payload:      payload,
		UpdatedAt:    now,
	}
	if err := m.store.UpdateResource(ctx, doc); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return payload, nil
}

// Patch shallow-merges the input keys over the existing payload and
// refreshes updatedAt.
func (m *Manager) Patch(ctx context.Context, mockID, resourceID string, patch map[string]any) (map[string]any, error) {
	existing, err := m.store.GetResource(ctx, mockID, resourceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	now := time.Now()
	payload := clonePayload(existing.Payload)
	for k, v := range patch {
		payload[k] = v
	}
	payload["updatedAt"] = nowISO(now)

	doc := &mock.Data{
		MockConfigID: mockID,
		ResourceID:   resourceID,
		Payload:      payload,
		UpdatedAt:    now,
	}
	if err := m.store.UpdateResource(ctx, doc); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return payload, nil
}

// Delete removes a resource and reports success. Store-level failures are
// swallowed into false, so deletion looks idempotent to callers.
func (m *Manager) Delete(ctx context.Context, mockID, resourceID string) bool {
	if err := m.store.DeleteResource(ctx, mockID, resourceID); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			m.log.Warn("resource delete failed", "mock", mockID, "resource", resourceID, "error", err)
		}
		return false
	}
	return true
}

// DeleteAll removes every resource under a mock and returns the count.
func (m *Manager) DeleteAll(ctx context.Context, mockID string) (int64, error) {
	return m.store.DeleteResources(ctx, mockID)
}
