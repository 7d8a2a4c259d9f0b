// Package mock defines the persisted domain model: mock configurations,
// their per-method endpoints, and stored resource documents.
package mock

import (
	"time"

	"github.com/mocksmith/mocksmith/pkg/fieldgen"
	"github.com/mocksmith/mocksmith/pkg/reqschema"
)

// Methods lists the HTTP verbs every mock gets an endpoint for, in creation
// order. Exactly one endpoint per method exists for an active mock; all five
// are created atomically with the mock itself.
var Methods = []string{"GET", "POST", "PUT", "PATCH", "DELETE"}

// Config is one mock API definition. (OrganizationID, BasePath) is unique.
type Config struct {
	ID             string `json:"id" bson:"_id"`
	OrganizationID string `json:"organizationId" bson:"organizationId"`
	CreatedBy      string `json:"createdBy" bson:"createdBy"`
	Name           string `json:"name" bson:"name"`
	BasePath       string `json:"basePath" bson:"basePath"`
	Description    string `json:"description,omitempty" bson:"description,omitempty"`
	IsActive       bool   `json:"isActive" bson:"isActive"`

	// ExpiresAt is assigned from the plan's TTL policy; nil means the mock
	// never expires.
	ExpiresAt *time.Time `json:"expiresAt,omitempty" bson:"expiresAt,omitempty"`

	// Access counters, bumped fire-and-forget on every served request.
	AccessCount    int64      `json:"accessCount" bson:"accessCount"`
	LastAccessedAt *time.Time `json:"lastAccessedAt,omitempty" bson:"lastAccessedAt,omitempty"`

	// Daily rate-limit state. DailyRequestCount resets when LastRequestDate
	// falls on an earlier calendar day than the current request.
	DailyRequestCount int64      `json:"dailyRequestCount" bson:"dailyRequestCount"`
	LastRequestDate   *time.Time `json:"lastRequestDate,omitempty" bson:"lastRequestDate,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Endpoint is one HTTP-method binding under a mock. (MockConfigID, Method)
// is unique.
type Endpoint struct {
	ID           string `json:"id" bson:"_id"`
	MockConfigID string `json:"mockConfigId" bson:"mockConfigId"`
	Method       string `json:"method" bson:"method"`

	// Fields is the ordered generation schema. Only the GET endpoint's
	// generation settings are editable after creation.
	Fields []fieldgen.Field `json:"fields" bson:"fields"`

	// Count is how many records the GET collection endpoint generates.
	Count int `json:"count" bson:"count"`

	// Pagination wraps the GET collection response in a page envelope.
	Pagination bool `json:"pagination" bson:"pagination"`

	// RandomErrors enables fault injection at ErrorRate percent (0-100).
	RandomErrors bool `json:"randomErrors" bson:"randomErrors"`
	ErrorRate    int  `json:"errorRate" bson:"errorRate"`

	// DelayMS suspends the response for this many milliseconds.
	DelayMS int `json:"delay" bson:"delay"`

	// RequestSchema optionally gates mutating request bodies.
	RequestSchema *reqschema.Schema `json:"requestSchema,omitempty" bson:"requestSchema,omitempty"`

	AccessCount int64     `json:"accessCount" bson:"accessCount"`
	IsActive    bool      `json:"isActive" bson:"isActive"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Data is one persisted resource document under a mock's collection.
// (MockConfigID, ResourceID) is unique and is the addressing key for
// item-level GET/PUT/PATCH/DELETE.
type Data struct {
	ID           string         `json:"id" bson:"_id"`
	MockConfigID string         `json:"mockConfigId" bson:"mockConfigId"`
	ResourceID   string         `json:"resourceId" bson:"resourceId"`
	Payload      map[string]any `json:"data" bson:"data"`
	CreatedAt    time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// IsExpired reports whether the mock is past its expiry timestamp.
func (c *Config) IsExpired(now time.Time) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(now)
}

// IsActiveAt reports whether the mock counts against the active-mock
// ceiling: flagged active and not expired.
func (c *Config) IsActiveAt(now time.Time) bool {
	return c.IsActive && !c.IsExpired(now)
}
