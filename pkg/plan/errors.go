package plan

import (
	"fmt"
	"net/http"
)

// QuotaError is returned when a plan ceiling blocks an action. The message
// names the plan and the limit so users know what to upgrade.
type QuotaError struct {
	Plan  Tier
	Limit int
	What  string
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("%s plan limit reached: max %d %s", e.Plan, e.Limit, e.What)
}

// StatusCode returns the HTTP status code for this error.
func (e *QuotaError) StatusCode() int {
	return http.StatusForbidden
}
