// Package paginate slices in-memory collections into page envelopes.
package paginate

// DefaultPage and DefaultLimit apply when a caller passes zero values.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Meta describes the position of a page within the full collection.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Result is the paginated response envelope.
type Result[T any] struct {
	Data       []T  `json:"data"`
	Pagination Meta `json:"pagination"`
}

// Paginate returns the requested page of items plus metadata. Total always
// reflects the full input length. An out-of-range page yields empty data
// with unchanged total/totalPages. Non-positive limits yield empty data and
// zero totalPages; Paginate never panics.
func Paginate[T any](items []T, page, limit int) Result[T] {
	total := len(items)

	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	data := []T{}
	if limit > 0 {
		start := (page - 1) * limit
		if start < 0 {
			start = 0
		}
		if start < total {
			end := start + limit
			if end > total {
				end = total
			}
			data = items[start:end]
		}
	}

	return Result[T]{
		Data: data,
		Pagination: Meta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}
