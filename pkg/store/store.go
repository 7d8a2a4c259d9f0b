// Package store defines the document-store contract the engine persists
// through. Implementations provide per-document atomicity and the two
// uniqueness constraints the domain relies on: (organizationId, basePath)
// for mocks and (mockConfigId, resourceId) for resources.
//
// Counter updates are expressed as store-level increment operations rather
// than application-level read-modify-write so concurrent traffic cannot
// lose updates.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/mocksmith/mocksmith/pkg/mock"
)

// Sentinel errors. Implementations translate their native failures into
// these so callers can use errors.Is.
var (
	// ErrNotFound is returned when no document matches.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicate is returned when a uniqueness constraint is violated.
	ErrDuplicate = errors.New("duplicate key")
)

// Store is the persistence boundary for mock configurations, endpoints and
// resource documents.
type Store interface {
	// CreateMock persists a new mock configuration. Returns ErrDuplicate
	// when the organization already has a mock at the same basePath.
	CreateMock(ctx context.Context, cfg *mock.Config) error

	// GetMock fetches a mock by id.
	GetMock(ctx context.Context, mockID string) (*mock.Config, error)

	// GetMockByBasePath fetches a mock by its id and basePath pair, the
	// lookup the public serving surface uses.
	GetMockByBasePath(ctx context.Context, mockID, basePath string) (*mock.Config, error)

	// ListMocks returns an organization's mocks, newest first.
	ListMocks(ctx context.Context, organizationID string) ([]*mock.Config, error)

	// UpdateMock replaces a mock configuration document.
	UpdateMock(ctx context.Context, cfg *mock.Config) error

	// DeleteMock removes a mock configuration document.
	DeleteMock(ctx context.Context, mockID string) error

	// CountActiveMocks counts an organization's mocks that are flagged
	// active and not expired at the given instant.
	CountActiveMocks(ctx context.Context, organizationID string, now time.Time) (int, error)

	// RecordMockAccess atomically bumps a mock's serving counters: the
	// daily request count is set to 1 when resetDaily is true, incremented
	// otherwise; lastRequestDate and lastAccessedAt are stamped with now
	// and the overall access count is incremented.
	RecordMockAccess(ctx context.Context, mockID string, resetDaily bool, now time.Time) error

	// CreateEndpoints persists a mock's endpoint set in one call.
	CreateEndpoints(ctx context.Context, endpoints []*mock.Endpoint) error

	// GetEndpoint fetches the endpoint bound to (mockID, method).
	GetEndpoint(ctx context.Context, mockID, method string) (*mock.Endpoint, error)

	// UpdateEndpoint replaces an endpoint document.
	UpdateEndpoint(ctx context.Context, ep *mock.Endpoint) error

	// IncrementEndpointAccess atomically bumps an endpoint's access count.
	IncrementEndpointAccess(ctx context.Context, endpointID string) error

	// DeleteEndpoints removes all endpoints belonging to a mock.
	DeleteEndpoints(ctx context.Context, mockID string) error

	// CreateResource persists a resource document. Returns ErrDuplicate
	// when the mock already has a resource with the same resourceId.
	CreateResource(ctx context.Context, d *mock.Data) error

	// GetResource fetches a resource by (mockID, resourceID).
	GetResource(ctx context.Context, mockID, resourceID string) (*mock.Data, error)

	// ListResources returns a page of a mock's resources, newest first,
	// plus the total count.
	ListResources(ctx context.Context, mockID string, offset, limit int) ([]*mock.Data, int, error)

	// UpdateResource replaces a resource document's payload and updatedAt.
	UpdateResource(ctx context.Context, d *mock.Data) error

	// DeleteResource removes a resource by (mockID, resourceID).
	DeleteResource(ctx context.Context, mockID, resourceID string) error

	// DeleteResources removes every resource belonging to a mock and
	// returns how many were removed.
	DeleteResources(ctx context.Context, mockID string) (int64, error)

	// DeleteOldestResources removes up to n of the mock's oldest resources
	// by creation time and returns how many were removed.
	DeleteOldestResources(ctx context.Context, mockID string, n int) (int64, error)

	// CountResources counts a mock's persisted resources.
	CountResources(ctx context.Context, mockID string) (int, error)
}
